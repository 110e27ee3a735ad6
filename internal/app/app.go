package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sppulse/sppulse/config"
	"github.com/sppulse/sppulse/internal/api"
	"github.com/sppulse/sppulse/internal/service"
	"github.com/sppulse/sppulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (PricesRepository).
//   - Creates the service layer (summary + gains).
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewPricesRepository(db)

	summarySvc := service.NewSummaryService(repo)
	gainsSvc := service.NewGainsService(repo)

	handler := api.NewHandler(summarySvc, gainsSvc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
