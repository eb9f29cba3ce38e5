package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // Loads .env files in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/eventflow/registration/internal/config"     // Internal config loader
    "github.com/eventflow/registration/internal/database"   // MySQL connector
    "github.com/eventflow/registration/internal/handler"    // HTTP handlers
    "github.com/eventflow/registration/internal/pricing"    // Pricing rebuild engine
    "github.com/eventflow/registration/internal/queue"      // Background event consumer
    "github.com/eventflow/registration/internal/repository" // Data access layer
    "github.com/eventflow/registration/internal/router"     // Route registration
)

func main() {
    // Load .env when present; real deployments set env vars directly.
    _ = godotenv.Load()

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer db.Close()

    // Redis backs the distributed rate limiter.  A nil client disables
    // limiting instead of blocking startup.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; rate limiting disabled")
    }
    rlCfg := config.LoadRateLimitConfig()

    // Repositories over the shared connection pool.
    regRepo := repository.NewRegistrationRepo(db)
    attRepo := repository.NewAttendeeRepo(db)
    bookingRepo := repository.NewRoomBookingRepo(db)
    mealRepo := repository.NewMealRepo(db)
    discountRepo := repository.NewDiscountRepo(db)
    itemRepo := repository.NewItemRepo(db)

    // The engine consumes the repositories through the store adapter.
    store := repository.NewPricingStore(regRepo, attRepo, bookingRepo, mealRepo, discountRepo, itemRepo)
    engine := pricing.NewEngine(store)

    pricingHandler := handler.NewPricingHandler(regRepo, itemRepo, engine)

    e := echo.New() // Create Echo instance
    router.RegisterRoutes(e)
    router.RegisterPricing(e, pricingHandler, cfg.JWTSecret, rdb, rlCfg)

    // Consume pricing.rebuilt events in the background.  The consumer runs
    // its own reconnect loop and never stops the server.
    go func() {
        if err := queue.StartPricingConsumer(); err != nil {
            log.Printf("pricing consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}
