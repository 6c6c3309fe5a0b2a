package routes

import (
	"github.com/gin-gonic/gin"

	"branchline/internal/interfaces/http/handlers"
)

// HealthRouteConfig holds dependencies for the probe endpoints.
type HealthRouteConfig struct {
	HealthHandler *handlers.HealthHandler
}

// SetupHealthRoutes configures liveness and readiness probes. They live
// outside the /api group so infrastructure probes need no versioned path.
func SetupHealthRoutes(engine *gin.Engine, cfg *HealthRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.Health)
	engine.GET("/ready", cfg.HealthHandler.Ready)
}
