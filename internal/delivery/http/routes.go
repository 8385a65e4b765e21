package http

import (
	"github.com/gin-gonic/gin"

	"github.com/priceboard/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerClient, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("", handler.ListSuppliers)
			suppliers.POST("", handler.CreateSupplier)
			suppliers.PUT("/:id", handler.UpdateSupplier)
			suppliers.DELETE("/:id", handler.DeleteSupplier)
		}

		pricelists := v1.Group("/pricelists")
		{
			pricelists.POST("/search", handler.SearchPriceLists)
			pricelists.POST("/expand", handler.ExpandPriceList)
			pricelists.POST("/price", handler.ExtractLinePrice)
		}
	}

	return router
}
