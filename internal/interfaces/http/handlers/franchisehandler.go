package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"branchline/internal/application/franchise/dto"
	"branchline/internal/application/franchise/usecases"
	"branchline/internal/shared/errors"
	"branchline/internal/shared/id"
	"branchline/internal/shared/logger"
	"branchline/internal/shared/utils"
)

// FranchiseHandler serves the /api/franchises endpoints, the nested listing
// under a business, and the operating-hours check.
type FranchiseHandler struct {
	createUC    *usecases.CreateFranchiseUseCase
	getUC       *usecases.GetFranchiseUseCase
	listUC      *usecases.ListFranchisesUseCase
	updateUC    *usecases.UpdateFranchiseUseCase
	deleteUC    *usecases.DeleteFranchiseUseCase
	checkOpenUC *usecases.CheckFranchiseOpenUseCase
	logger      logger.Interface
}

// NewFranchiseHandler creates a new FranchiseHandler
func NewFranchiseHandler(
	createUC *usecases.CreateFranchiseUseCase,
	getUC *usecases.GetFranchiseUseCase,
	listUC *usecases.ListFranchisesUseCase,
	updateUC *usecases.UpdateFranchiseUseCase,
	deleteUC *usecases.DeleteFranchiseUseCase,
	checkOpenUC *usecases.CheckFranchiseOpenUseCase,
) *FranchiseHandler {
	return &FranchiseHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		checkOpenUC: checkOpenUC,
		logger:      logger.NewLogger(),
	}
}

// Create handles POST /api/franchises
func (h *FranchiseHandler) Create(c *gin.Context) {
	var req dto.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create franchise", "error", err)
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

// Get handles GET /api/franchises/:id
func (h *FranchiseHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFranchise, "franchise")
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

// ListByBusiness handles GET /api/businesses/:id/franchises
func (h *FranchiseHandler) ListByBusiness(c *gin.Context) {
	businessSID, err := utils.ParseSIDParam(c, "id", id.PrefixBusiness, "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	query := dto.ListFranchisesQuery{
		IsActive: utils.ParseBoolFilter(c, "is_active"),
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
	}

	result, total, err := h.listUC.Execute(c.Request.Context(), businessSID, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, total)
}

// Update handles PUT /api/franchises/:id
func (h *FranchiseHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFranchise, "franchise")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update franchise", "sid", sid, "error", err)
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

// Delete handles DELETE /api/franchises/:id
func (h *FranchiseHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFranchise, "franchise")
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

// CheckOpen handles GET /api/franchises/:id/open. The optional "at" query
// parameter is an RFC 3339 timestamp; it defaults to the current time.
func (h *FranchiseHandler) CheckOpen(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFranchise, "franchise")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	at := time.Now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("at must be an RFC 3339 timestamp"))
			return
		}
		at = parsed
	}

	result, err := h.checkOpenUC.Execute(c.Request.Context(), sid, at)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
