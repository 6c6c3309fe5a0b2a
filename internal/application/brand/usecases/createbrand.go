// Package usecases contains the brand application services.
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

// CreateBrandUseCase handles the creation of a new brand under an
// organization, enforcing the organization's brand quota.
type CreateBrandUseCase struct {
	repo    brand.Repository
	orgRepo organization.Repository
	logger  logger.Interface
}

// NewCreateBrandUseCase creates a new CreateBrandUseCase
func NewCreateBrandUseCase(repo brand.Repository, orgRepo organization.Repository, logger logger.Interface) *CreateBrandUseCase {
	return &CreateBrandUseCase{
		repo:    repo,
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// Execute creates a new brand
func (uc *CreateBrandUseCase) Execute(ctx context.Context, req dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	org, err := uc.orgRepo.GetBySID(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "organization_sid", req.OrganizationID)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	activeBrands, err := uc.repo.CountActiveByOrganization(ctx, org.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}

	allowed, err := org.CheckLimit(organization.LimitBrands, activeBrands)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand limit: %w", err)
	}
	if !allowed {
		uc.logger.Warnw("brand limit reached",
			"organization_sid", org.SID(),
			"active_brands", activeBrands,
			"limit", org.Limits().Brands)
		return nil, apperrors.NewValidationError("brand limit reached for organization")
	}

	b, err := brand.NewBrand(req.Name, org.ID())
	if err != nil {
		uc.logger.Errorw("failed to create brand entity", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.Guidelines != nil {
		b.UpdateGuidelines(brand.Guidelines{
			LogoURL:        req.Guidelines.LogoURL,
			PrimaryColor:   req.Guidelines.PrimaryColor,
			SecondaryColor: req.Guidelines.SecondaryColor,
		})
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to save brand", "error", err)
		return nil, fmt.Errorf("failed to save brand: %w", err)
	}

	uc.logger.Infow("brand created successfully",
		"id", b.ID(),
		"sid", b.SID(),
		"organization_sid", org.SID(),
	)

	return dto.NewBrandResponse(b, org.SID()), nil
}
