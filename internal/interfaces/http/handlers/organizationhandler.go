// Package handlers exposes the REST endpoints of the backoffice API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"branchline/internal/application/organization/dto"
	"branchline/internal/application/organization/usecases"
	"branchline/internal/shared/id"
	"branchline/internal/shared/logger"
	"branchline/internal/shared/utils"
)

// OrganizationHandler serves the /api/organizations endpoints.
type OrganizationHandler struct {
	createUC *usecases.CreateOrganizationUseCase
	getUC    *usecases.GetOrganizationUseCase
	listUC   *usecases.ListOrganizationsUseCase
	updateUC *usecases.UpdateOrganizationUseCase
	deleteUC *usecases.DeleteOrganizationUseCase
	logger   logger.Interface
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(
	createUC *usecases.CreateOrganizationUseCase,
	getUC *usecases.GetOrganizationUseCase,
	listUC *usecases.ListOrganizationsUseCase,
	updateUC *usecases.UpdateOrganizationUseCase,
	deleteUC *usecases.DeleteOrganizationUseCase,
) *OrganizationHandler {
	return &OrganizationHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /api/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create organization", "error", err)
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

// Get handles GET /api/organizations/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
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

// List handles GET /api/organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := dto.ListOrganizationsQuery{
		IsActive: utils.ParseBoolFilter(c, "is_active"),
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
	}

	result, total, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, total)
}

// Update handles PUT /api/organizations/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update organization", "sid", sid, "error", err)
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

// Delete handles DELETE /api/organizations/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrganization, "organization")
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
