package routes

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/interfaces/http/handlers"
)

// FranchiseRouteConfig holds dependencies for franchise routes.
type FranchiseRouteConfig struct {
	FranchiseHandler *handlers.FranchiseHandler
}

// SetupFranchiseRoutes configures franchise routes, including the
// operating-hours check.
func SetupFranchiseRoutes(api *gin.RouterGroup, cfg *FranchiseRouteConfig) {
	franchises := api.Group("/franchises")
	{
		franchises.POST("", cfg.FranchiseHandler.Create)
		franchises.GET("/:id", cfg.FranchiseHandler.Get)
		franchises.PUT("/:id", cfg.FranchiseHandler.Update)
		franchises.DELETE("/:id", cfg.FranchiseHandler.Delete)

		franchises.GET("/:id/open", cfg.FranchiseHandler.CheckOpen)
	}
}
