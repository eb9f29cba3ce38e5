package handler

// This file defines the HTTP handlers for registration pricing.  A
// rebuild recomputes every line item and the total for one registration;
// the review endpoint returns the persisted items alongside the stored
// total so clients can render a checkout summary.  Both endpoints verify
// that the authenticated user owns the registration before touching it.

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/eventflow/registration/internal/pricing"
    "github.com/eventflow/registration/internal/queue"
    "github.com/eventflow/registration/internal/repository"
    queue_publisher "github.com/eventflow/registration/internal/service"
)

// PricingHandler groups the dependencies needed to rebuild and review a
// registration's pricing.  The engine owns the rebuild pipeline; the
// repositories are used for ownership checks and for reading the
// persisted items back on review.
type PricingHandler struct {
    RegistrationRepo *repository.RegistrationRepo // ownership checks and total reads
    ItemRepo         *repository.ItemRepo         // persisted line items for review
    Engine           *pricing.Engine              // rebuild pipeline
}

// NewPricingHandler constructs a PricingHandler.  All dependencies must
// be non-nil.
func NewPricingHandler(regRepo *repository.RegistrationRepo, itemRepo *repository.ItemRepo, engine *pricing.Engine) *PricingHandler {
    if regRepo == nil || itemRepo == nil || engine == nil {
        panic("nil dependency passed to NewPricingHandler")
    }
    return &PricingHandler{
        RegistrationRepo: regRepo,
        ItemRepo:         itemRepo,
        Engine:           engine,
    }
}

// Rebuild handles POST /v1/registrations/:id/pricing/rebuild.  It wipes
// and recomputes the registration's line items and returns the new
// total.  It responds 404 when the registration does not exist and 403
// when it belongs to a different user.  Concurrent rebuild requests for
// the same registration are coalesced into a single run by the engine.
func (h *PricingHandler) Rebuild(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    regID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || regID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
    }
    ctx := c.Request().Context()
    reg, err := h.RegistrationRepo.GetByID(ctx, regID)
    if err != nil {
        if errors.Is(err, repository.ErrRegistrationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load registration"})
    }
    if reg.CreatedBy != userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    total, err := h.Engine.Rebuild(ctx, regID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to rebuild pricing"})
    }

    // Publish the rebuilt event asynchronously.  A broker outage must not
    // fail the request; the error is already logged by the publisher.
    items, err := h.ItemRepo.ListByRegistration(ctx, regID)
    if err != nil {
        log.Printf("pricing: failed to count items for event: %v", err)
        items = nil
    }
    go func(ev queue.PricingRebuiltEvent) {
        pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishPricingRebuilt(pubCtx, ev)
    }(queue.PricingRebuiltEvent{
        RegistrationID: regID,
        EventID:        reg.EventID,
        UserID:         userID,
        ItemCount:      len(items),
        Total:          total,
        RebuiltAt:      time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusOK, echo.Map{
        "registration_id": regID,
        "total":           total,
    })
}

// Review handles GET /v1/registrations/:id/review.  It returns the
// persisted line items in insertion order together with their sum and
// the registration's stored total.  The two figures agree right after a
// rebuild; a drift between them means the underlying data changed and a
// new rebuild is due.
func (h *PricingHandler) Review(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    regID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || regID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
    }
    ctx := c.Request().Context()
    reg, err := h.RegistrationRepo.GetByID(ctx, regID)
    if err != nil {
        if errors.Is(err, repository.ErrRegistrationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load registration"})
    }
    if reg.CreatedBy != userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    items, err := h.ItemRepo.ListByRegistration(ctx, regID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load items"})
    }
    var subtotal float64
    for _, it := range items {
        subtotal += it.Amount
    }
    return c.JSON(http.StatusOK, echo.Map{
        "registration_id": regID,
        "status":          reg.Status,
        "items":           items,
        "count":           len(items),
        "subtotal":        subtotal,
        "amount_total":    reg.AmountTotal,
    })
}
