package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing
    "github.com/redis/go-redis/v9"

    "github.com/eventflow/registration/internal/config"     // rate limit configuration for protected routes
    "github.com/eventflow/registration/internal/handler"    // import the handlers that implement business logic
    "github.com/eventflow/registration/internal/middleware" // import middleware for JWT authentication and rate limiting
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterPricing registers the pricing endpoints and their middleware.
// All pricing routes require a valid access token; ownership of the
// registration is checked per request inside the handlers.  The rate
// limiter runs after authentication so its key strategy can include the
// user id, and it degrades to a no-op when Redis is unavailable.
func RegisterPricing(e *echo.Echo, p *handler.PricingHandler, jwtSecret string, rdb *redis.Client, rlCfg config.RateLimitConfig) {
    // Create a route group under /v1 for endpoints that require a valid
    // access token.  All handlers registered on this group execute the
    // JWTAuth middleware before being invoked.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.NewTokenBucket(rlCfg, rdb))

    // Recompute all line items and the total for one registration.  POST is
    // used because the operation mutates persisted state even though it is
    // idempotent for unchanged inputs.
    auth.POST("/registrations/:id/pricing/rebuild", p.Rebuild)
    // Return the persisted line items, their sum and the stored total for
    // the registration's review page.
    auth.GET("/registrations/:id/review", p.Review)
}
