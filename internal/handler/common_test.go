package handler

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func testContext(t *testing.T) echo.Context {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserID(t *testing.T) {
    t.Run("accepts every numeric representation", func(t *testing.T) {
        for name, v := range map[string]interface{}{
            "uint64":  uint64(42),
            "int":     42,
            "int64":   int64(42),
            "float64": float64(42), // JSON decoders produce float64
            "string":  "42",
        } {
            t.Run(name, func(t *testing.T) {
                c := testContext(t)
                c.Set("user_id", v)
                id, err := getUserID(c)
                require.NoError(t, err)
                assert.Equal(t, uint64(42), id)
            })
        }
    })

    t.Run("missing value", func(t *testing.T) {
        _, err := getUserID(testContext(t))
        assert.Error(t, err)
    })

    t.Run("non-numeric string", func(t *testing.T) {
        c := testContext(t)
        c.Set("user_id", "not-a-number")
        _, err := getUserID(c)
        assert.Error(t, err)
    })
}

func TestHealth(t *testing.T) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
    rec := httptest.NewRecorder()

    require.NoError(t, Health(e.NewContext(req, rec)))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())
}
