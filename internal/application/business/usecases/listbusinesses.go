package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/business/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// ListBusinessesUseCase lists the businesses of an organization newest first
type ListBusinessesUseCase struct {
	repo      business.Repository
	orgRepo   organization.Repository
	brandRepo brand.Repository
	logger    logger.Interface
}

// NewListBusinessesUseCase creates a new ListBusinessesUseCase
func NewListBusinessesUseCase(
	repo business.Repository,
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	logger logger.Interface,
) *ListBusinessesUseCase {
	return &ListBusinessesUseCase{
		repo:      repo,
		orgRepo:   orgRepo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Execute lists the businesses of the organization with the given SID
func (uc *ListBusinessesUseCase) Execute(ctx context.Context, organizationSID string, query dto.ListBusinessesQuery) ([]*dto.BusinessResponse, int64, error) {
	org, err := uc.orgRepo.GetBySID(ctx, organizationSID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, 0, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "organization_sid", organizationSID)
		return nil, 0, fmt.Errorf("failed to get organization: %w", err)
	}

	filter := business.ListFilter{
		IsActive: query.IsActive,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if query.BrandSID != nil && *query.BrandSID != "" {
		parentBrand, err := uc.brandRepo.GetBySID(ctx, *query.BrandSID)
		if err != nil {
			if errors.Is(err, brand.ErrBrandNotFound) {
				return nil, 0, apperrors.NewNotFoundError("brand not found")
			}
			uc.logger.Errorw("failed to get brand", "error", err, "brand_sid", *query.BrandSID)
			return nil, 0, fmt.Errorf("failed to get brand: %w", err)
		}
		brandID := parentBrand.ID()
		filter.BrandID = &brandID
	}

	businesses, total, err := uc.repo.ListByOrganization(ctx, org.ID(), filter)
	if err != nil {
		uc.logger.Errorw("failed to list businesses", "error", err, "organization_sid", organizationSID)
		return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
	}

	// Resolve brand SIDs once for the whole page.
	brandSIDsByID := make(map[uint]string)
	orgBrands, err := uc.brandRepo.ListByOrganization(ctx, org.ID(), false)
	if err != nil {
		uc.logger.Errorw("failed to resolve brand names", "error", err, "organization_sid", organizationSID)
		return nil, 0, fmt.Errorf("failed to resolve brands: %w", err)
	}
	for _, b := range orgBrands {
		brandSIDsByID[b.ID()] = b.SID()
	}

	responses := make([]*dto.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		var brandSID *string
		if b.BrandID() != nil {
			if s, ok := brandSIDsByID[*b.BrandID()]; ok {
				brandSID = &s
			}
		}
		responses = append(responses, dto.NewBusinessResponse(b, org.SID(), brandSID))
	}
	return responses, total, nil
}
