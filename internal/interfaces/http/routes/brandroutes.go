package routes

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/interfaces/http/handlers"
)

// BrandRouteConfig holds dependencies for brand routes.
type BrandRouteConfig struct {
	BrandHandler *handlers.BrandHandler
}

// SetupBrandRoutes configures brand routes.
func SetupBrandRoutes(api *gin.RouterGroup, cfg *BrandRouteConfig) {
	brands := api.Group("/brands")
	{
		brands.POST("", cfg.BrandHandler.Create)
		brands.GET("/:id", cfg.BrandHandler.Get)
		brands.PUT("/:id", cfg.BrandHandler.Update)
		brands.DELETE("/:id", cfg.BrandHandler.Delete)
	}
}
