package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"branchline/internal/shared/utils"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health. It reports process liveness only.
func (h *HealthHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

// Ready handles GET /ready. It pings the database so load balancers stop
// routing to instances that lost their connection.
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"status": "ready"})
}
