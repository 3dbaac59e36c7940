package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockpulse/stockpulse/config"
	"github.com/stockpulse/stockpulse/internal/api"
	"github.com/stockpulse/stockpulse/internal/quote"
	"github.com/stockpulse/stockpulse/internal/service"
	"github.com/stockpulse/stockpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the like ledger repository.
//   - Builds the upstream quote client from config.
//   - Creates the lookup service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// The like ledger is constructed once here and handed to the service by
// reference; nothing resolves it through a global.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize the like ledger repository (responsible for DB access)
	repo := storage.NewLikesRepository(db)

	// Upstream quote client with a bounded per-call timeout
	quotes := quote.NewClient(cfg.Quote.BaseURL, time.Duration(cfg.Quote.TimeoutMS)*time.Millisecond)

	// Initialize service layer (lookup orchestration)
	svc := service.NewLookupService(quotes, repo)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
