package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// UpdateOrganizationUseCase applies a partial update to an organization.
// Only fields present in the request are changed.
type UpdateOrganizationUseCase struct {
	repo   organization.Repository
	logger logger.Interface
}

// NewUpdateOrganizationUseCase creates a new UpdateOrganizationUseCase
func NewUpdateOrganizationUseCase(repo organization.Repository, logger logger.Interface) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute updates the organization with the given SID
func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, sid string, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.Name != nil {
		if err := org.UpdateName(*req.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Settings != nil {
		settings := org.Settings()
		if req.Settings.Timezone != "" {
			settings.Timezone = req.Settings.Timezone
		}
		if req.Settings.Locale != "" {
			settings.Locale = req.Settings.Locale
		}
		if req.Settings.Currency != "" {
			settings.Currency = req.Settings.Currency
		}
		org.UpdateSettings(settings)
	}
	if req.Contact != nil {
		if err := org.UpdateContact(organization.Contact{
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Website: req.Contact.Website,
		}); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Plan != nil {
		if err := org.ChangePlan(organization.Plan(*req.Plan)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Limits != nil {
		org.UpdateLimits(organization.Limits{
			Brands:     req.Limits.Brands,
			Businesses: req.Limits.Businesses,
			Users:      req.Limits.Users,
			StorageMB:  req.Limits.StorageMB,
		})
	}
	if req.IsActive != nil {
		if *req.IsActive {
			org.Activate()
		} else {
			org.Deactivate()
		}
	}

	if err := uc.repo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	uc.logger.Infow("organization updated successfully", "sid", sid)
	return dto.NewOrganizationResponse(org), nil
}
