package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"branchline/internal/application/hierarchy/usecases"
	"branchline/internal/shared/id"
	"branchline/internal/shared/logger"
	"branchline/internal/shared/utils"
)

// HierarchyHandler serves the organization subtree aggregation endpoint.
type HierarchyHandler struct {
	getHierarchyUC *usecases.GetHierarchyUseCase
	logger         logger.Interface
}

// NewHierarchyHandler creates a new HierarchyHandler
func NewHierarchyHandler(getHierarchyUC *usecases.GetHierarchyUseCase) *HierarchyHandler {
	return &HierarchyHandler{
		getHierarchyUC: getHierarchyUC,
		logger:         logger.NewLogger(),
	}
}

// Get handles GET /api/organizations/:id/hierarchy
func (h *HierarchyHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHierarchyUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
