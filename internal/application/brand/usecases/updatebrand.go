package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/brand/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// UpdateBrandUseCase applies a partial update to a brand. Only fields present
// in the request are changed.
type UpdateBrandUseCase struct {
	repo    brand.Repository
	orgRepo organization.Repository
	logger  logger.Interface
}

// NewUpdateBrandUseCase creates a new UpdateBrandUseCase
func NewUpdateBrandUseCase(repo brand.Repository, orgRepo organization.Repository, logger logger.Interface) *UpdateBrandUseCase {
	return &UpdateBrandUseCase{
		repo:    repo,
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// Execute updates the brand with the given SID
func (uc *UpdateBrandUseCase) Execute(ctx context.Context, sid string, req dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, brand.ErrBrandNotFound) {
			return nil, apperrors.NewNotFoundError("brand not found")
		}
		uc.logger.Errorw("failed to get brand", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	if req.Name != nil {
		if err := b.UpdateName(*req.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Guidelines != nil {
		b.UpdateGuidelines(brand.Guidelines{
			LogoURL:        req.Guidelines.LogoURL,
			PrimaryColor:   req.Guidelines.PrimaryColor,
			SecondaryColor: req.Guidelines.SecondaryColor,
		})
	}
	if req.Limits != nil {
		b.UpdateLimits(brand.Limits{
			Businesses: req.Limits.Businesses,
			Users:      req.Limits.Users,
			Forms:      req.Limits.Forms,
		})
	}
	if req.IsActive != nil {
		if *req.IsActive {
			b.Activate()
		} else {
			b.Deactivate()
		}
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update brand", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	org, err := uc.orgRepo.GetByID(ctx, b.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to resolve brand organization", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to resolve brand organization: %w", err)
	}

	uc.logger.Infow("brand updated successfully", "sid", sid)
	return dto.NewBrandResponse(b, org.SID()), nil
}
