// Package http assembles the Gin engine, wiring repositories, use cases,
// handlers and middleware together.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	brandUC "branchline/internal/application/brand/usecases"
	businessUC "branchline/internal/application/business/usecases"
	franchiseUC "branchline/internal/application/franchise/usecases"
	hierarchyUC "branchline/internal/application/hierarchy/usecases"
	organizationUC "branchline/internal/application/organization/usecases"
	"branchline/internal/infrastructure/config"
	"branchline/internal/infrastructure/repository"
	"branchline/internal/interfaces/http/handlers"
	"branchline/internal/interfaces/http/middleware"
	"branchline/internal/interfaces/http/routes"
	"branchline/internal/shared/logger"
)

// Router holds the Gin engine and the handlers mounted on it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	organizationHandler *handlers.OrganizationHandler
	brandHandler        *handlers.BrandHandler
	businessHandler     *handlers.BusinessHandler
	franchiseHandler    *handlers.FranchiseHandler
	hierarchyHandler    *handlers.HierarchyHandler
	healthHandler       *handlers.HealthHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	orgRepo := repository.NewOrganizationRepository(db, log)
	brandRepo := repository.NewBrandRepository(db, log)
	businessRepo := repository.NewBusinessRepository(db, log)
	franchiseRepo := repository.NewFranchiseRepository(db, log)

	organizationHandler := handlers.NewOrganizationHandler(
		organizationUC.NewCreateOrganizationUseCase(orgRepo, log),
		organizationUC.NewGetOrganizationUseCase(orgRepo, log),
		organizationUC.NewListOrganizationsUseCase(orgRepo, log),
		organizationUC.NewUpdateOrganizationUseCase(orgRepo, log),
		organizationUC.NewDeleteOrganizationUseCase(orgRepo, brandRepo, businessRepo, log),
	)

	brandHandler := handlers.NewBrandHandler(
		brandUC.NewCreateBrandUseCase(brandRepo, orgRepo, log),
		brandUC.NewGetBrandUseCase(brandRepo, orgRepo, log),
		brandUC.NewListBrandsUseCase(brandRepo, orgRepo, log),
		brandUC.NewUpdateBrandUseCase(brandRepo, orgRepo, log),
		brandUC.NewDeleteBrandUseCase(brandRepo, businessRepo, log),
	)

	businessHandler := handlers.NewBusinessHandler(
		businessUC.NewCreateBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
		businessUC.NewGetBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
		businessUC.NewListBusinessesUseCase(businessRepo, orgRepo, brandRepo, log),
		businessUC.NewUpdateBusinessUseCase(businessRepo, orgRepo, brandRepo, log),
		businessUC.NewDeleteBusinessUseCase(businessRepo, franchiseRepo, log),
	)

	franchiseHandler := handlers.NewFranchiseHandler(
		franchiseUC.NewCreateFranchiseUseCase(franchiseRepo, businessRepo, log),
		franchiseUC.NewGetFranchiseUseCase(franchiseRepo, businessRepo, log),
		franchiseUC.NewListFranchisesUseCase(franchiseRepo, businessRepo, log),
		franchiseUC.NewUpdateFranchiseUseCase(franchiseRepo, businessRepo, log),
		franchiseUC.NewDeleteFranchiseUseCase(franchiseRepo, log),
		franchiseUC.NewCheckFranchiseOpenUseCase(franchiseRepo, log),
	)

	hierarchyHandler := handlers.NewHierarchyHandler(
		hierarchyUC.NewGetHierarchyUseCase(
			orgRepo, brandRepo, businessRepo, franchiseRepo,
			cfg.Hierarchy.FanoutWarnThreshold, log,
		),
	)

	healthHandler := handlers.NewHealthHandler(db)

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		organizationHandler: organizationHandler,
		brandHandler:        brandHandler,
		businessHandler:     businessHandler,
		franchiseHandler:    franchiseHandler,
		hierarchyHandler:    hierarchyHandler,
		healthHandler:       healthHandler,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupHealthRoutes(r.engine, &routes.HealthRouteConfig{
		HealthHandler: r.healthHandler,
	})

	api := r.engine.Group("/api")

	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.organizationHandler,
		BrandHandler:        r.brandHandler,
		BusinessHandler:     r.businessHandler,
		HierarchyHandler:    r.hierarchyHandler,
	})
	routes.SetupBrandRoutes(api, &routes.BrandRouteConfig{
		BrandHandler: r.brandHandler,
	})
	routes.SetupBusinessRoutes(api, &routes.BusinessRouteConfig{
		BusinessHandler:  r.businessHandler,
		FranchiseHandler: r.franchiseHandler,
	})
	routes.SetupFranchiseRoutes(api, &routes.FranchiseRouteConfig{
		FranchiseHandler: r.franchiseHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
