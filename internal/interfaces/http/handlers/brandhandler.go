package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"branchline/internal/application/brand/dto"
	"branchline/internal/application/brand/usecases"
	"branchline/internal/shared/id"
	"branchline/internal/shared/logger"
	"branchline/internal/shared/utils"
)

// BrandHandler serves the /api/brands endpoints and the nested brand listing
// under an organization.
type BrandHandler struct {
	createUC *usecases.CreateBrandUseCase
	getUC    *usecases.GetBrandUseCase
	listUC   *usecases.ListBrandsUseCase
	updateUC *usecases.UpdateBrandUseCase
	deleteUC *usecases.DeleteBrandUseCase
	logger   logger.Interface
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(
	createUC *usecases.CreateBrandUseCase,
	getUC *usecases.GetBrandUseCase,
	listUC *usecases.ListBrandsUseCase,
	updateUC *usecases.UpdateBrandUseCase,
	deleteUC *usecases.DeleteBrandUseCase,
) *BrandHandler {
	return &BrandHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /api/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create brand", "error", err)
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

// Get handles GET /api/brands/:id
func (h *BrandHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBrand, "brand")
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

// ListByOrganization handles GET /api/organizations/:id/brands
func (h *BrandHandler) ListByOrganization(c *gin.Context) {
	orgSID, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	isActive := utils.ParseBoolFilter(c, "is_active")
	activeOnly := isActive != nil && *isActive

	result, err := h.listUC.Execute(c.Request.Context(), orgSID, activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// Update handles PUT /api/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBrand, "brand")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update brand", "sid", sid, "error", err)
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

// Delete handles DELETE /api/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBrand, "brand")
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
