package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/grocx/pricetrack/config"
	"github.com/grocx/pricetrack/internal/api"
	"github.com/grocx/pricetrack/internal/service"
	"github.com/grocx/pricetrack/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (product, store, price).
//   - Initializes the service layer (validation + orchestration).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (DB access)
	productRepo := storage.NewProductRepository(db)
	storeRepo := storage.NewStoreRepository(db)
	priceRepo := storage.NewPriceRepository(db)

	// Service layer (business logic)
	products := service.NewProductService(productRepo)
	stores := service.NewStoreService(storeRepo)
	prices := service.NewPriceService(priceRepo)

	// HTTP layer
	handler := api.NewHandler(products, stores, prices)
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
