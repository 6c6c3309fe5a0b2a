package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"branchline/internal/application/business/dto"
	"branchline/internal/application/business/usecases"
	"branchline/internal/shared/id"
	"branchline/internal/shared/logger"
	"branchline/internal/shared/utils"
)

// BusinessHandler serves the /api/businesses endpoints and the nested
// business listing under an organization.
type BusinessHandler struct {
	createUC *usecases.CreateBusinessUseCase
	getUC    *usecases.GetBusinessUseCase
	listUC   *usecases.ListBusinessesUseCase
	updateUC *usecases.UpdateBusinessUseCase
	deleteUC *usecases.DeleteBusinessUseCase
	logger   logger.Interface
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(
	createUC *usecases.CreateBusinessUseCase,
	getUC *usecases.GetBusinessUseCase,
	listUC *usecases.ListBusinessesUseCase,
	updateUC *usecases.UpdateBusinessUseCase,
	deleteUC *usecases.DeleteBusinessUseCase,
) *BusinessHandler {
	return &BusinessHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /api/businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create business", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Get handles GET /api/businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBusiness, "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListByOrganization handles GET /api/organizations/:id/businesses
func (h *BusinessHandler) ListByOrganization(c *gin.Context) {
	orgSID, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	query := dto.ListBusinessesQuery{
		IsActive: utils.ParseBoolFilter(c, "is_active"),
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
	}
	if brandSID := c.Query("brand_id"); brandSID != "" {
		query.BrandSID = &brandSID
	}

	result, total, err := h.listUC.Execute(c.Request.Context(), orgSID, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, total)
}

// Update handles PUT /api/businesses/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBusiness, "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update business", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Delete handles DELETE /api/businesses/:id
func (h *BusinessHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBusiness, "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, nil)
}
