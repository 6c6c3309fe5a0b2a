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

// ListBrandsUseCase lists the brands of an organization ordered by name
type ListBrandsUseCase struct {
	repo    brand.Repository
	orgRepo organization.Repository
	logger  logger.Interface
}

// NewListBrandsUseCase creates a new ListBrandsUseCase
func NewListBrandsUseCase(repo brand.Repository, orgRepo organization.Repository, logger logger.Interface) *ListBrandsUseCase {
	return &ListBrandsUseCase{
		repo:    repo,
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// Execute lists the brands of the organization with the given SID. When
// activeOnly is true, soft-deleted brands are excluded.
func (uc *ListBrandsUseCase) Execute(ctx context.Context, organizationSID string, activeOnly bool) ([]*dto.BrandResponse, error) {
	org, err := uc.orgRepo.GetBySID(ctx, organizationSID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	brands, err := uc.repo.ListByOrganization(ctx, org.ID(), activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list brands", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	return dto.NewBrandResponses(brands, org.SID()), nil
}
