package routes

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/interfaces/http/handlers"
)

// BusinessRouteConfig holds dependencies for business routes, including the
// nested franchise listing.
type BusinessRouteConfig struct {
	BusinessHandler  *handlers.BusinessHandler
	FranchiseHandler *handlers.FranchiseHandler
}

// SetupBusinessRoutes configures business routes.
func SetupBusinessRoutes(api *gin.RouterGroup, cfg *BusinessRouteConfig) {
	businesses := api.Group("/businesses")
	{
		businesses.POST("", cfg.BusinessHandler.Create)
		businesses.GET("/:id", cfg.BusinessHandler.Get)
		businesses.PUT("/:id", cfg.BusinessHandler.Update)
		businesses.DELETE("/:id", cfg.BusinessHandler.Delete)

		businesses.GET("/:id/franchises", cfg.FranchiseHandler.ListByBusiness)
	}
}
