package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/grocx/pricetrack/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// Per-request timeout; cancellation itself is the transport layer's job.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("/barcode/:barcode", handler.GetProductByBarcode)
			products.GET("/search", handler.SearchProducts)
			products.POST("", handler.CreateProduct)
			products.DELETE("/:barcode", handler.DeleteProduct)
		}

		v1.GET("/stores", handler.ListStores)

		prices := v1.Group("/prices")
		{
			prices.POST("", handler.RecordPrice)
			prices.GET("", handler.GetAllPriceEntries)
			prices.GET("/history/:product_id", handler.GetPriceHistory)
		}
	}

	return router
}
