// Package routes wires handlers onto the Gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/interfaces/http/handlers"
)

// OrganizationRouteConfig holds dependencies for organization routes,
// including the nested child listings and the hierarchy endpoint.
type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	BrandHandler        *handlers.BrandHandler
	BusinessHandler     *handlers.BusinessHandler
	HierarchyHandler    *handlers.HierarchyHandler
}

// SetupOrganizationRoutes configures organization routes.
func SetupOrganizationRoutes(api *gin.RouterGroup, cfg *OrganizationRouteConfig) {
	organizations := api.Group("/organizations")
	{
		organizations.POST("", cfg.OrganizationHandler.Create)
		organizations.GET("", cfg.OrganizationHandler.List)
		organizations.GET("/:id", cfg.OrganizationHandler.Get)
		organizations.PUT("/:id", cfg.OrganizationHandler.Update)
		organizations.DELETE("/:id", cfg.OrganizationHandler.Delete)

		organizations.GET("/:id/brands", cfg.BrandHandler.ListByOrganization)
		organizations.GET("/:id/businesses", cfg.BusinessHandler.ListByOrganization)
		organizations.GET("/:id/hierarchy", cfg.HierarchyHandler.Get)
	}
}
