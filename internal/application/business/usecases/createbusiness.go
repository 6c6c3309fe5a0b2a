// Package usecases contains the business application services.
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

// CreateBusinessUseCase handles the creation of a new business, enforcing
// both the organization business quota and, when branded, the brand quota.
type CreateBusinessUseCase struct {
	repo      business.Repository
	orgRepo   organization.Repository
	brandRepo brand.Repository
	logger    logger.Interface
}

// NewCreateBusinessUseCase creates a new CreateBusinessUseCase
func NewCreateBusinessUseCase(
	repo business.Repository,
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	logger logger.Interface,
) *CreateBusinessUseCase {
	return &CreateBusinessUseCase{
		repo:      repo,
		orgRepo:   orgRepo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Execute creates a new business
func (uc *CreateBusinessUseCase) Execute(ctx context.Context, req dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	org, err := uc.orgRepo.GetBySID(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "organization_sid", req.OrganizationID)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	activeBusinesses, err := uc.repo.CountActiveByOrganization(ctx, org.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}
	allowed, err := org.CheckLimit(organization.LimitBusinesses, activeBusinesses)
	if err != nil {
		return nil, fmt.Errorf("failed to check business limit: %w", err)
	}
	if !allowed {
		uc.logger.Warnw("business limit reached",
			"organization_sid", org.SID(),
			"active_businesses", activeBusinesses,
			"limit", org.Limits().Businesses)
		return nil, apperrors.NewValidationError("business limit reached for organization")
	}

	var parentBrand *brand.Brand
	if req.BrandID != nil && *req.BrandID != "" {
		parentBrand, err = uc.brandRepo.GetBySID(ctx, *req.BrandID)
		if err != nil {
			if errors.Is(err, brand.ErrBrandNotFound) {
				return nil, apperrors.NewNotFoundError("brand not found")
			}
			uc.logger.Errorw("failed to get brand", "error", err, "brand_sid", *req.BrandID)
			return nil, fmt.Errorf("failed to get brand: %w", err)
		}
		if parentBrand.OrganizationID() != org.ID() {
			return nil, apperrors.NewValidationError("brand does not belong to the organization")
		}

		brandBusinesses, err := uc.repo.CountActiveByBrand(ctx, parentBrand.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to count brand businesses: %w", err)
		}
		brandAllowed, err := parentBrand.CheckLimit(brand.LimitBusinesses, brandBusinesses)
		if err != nil {
			return nil, fmt.Errorf("failed to check brand business limit: %w", err)
		}
		if !brandAllowed {
			uc.logger.Warnw("brand business limit reached",
				"brand_sid", parentBrand.SID(),
				"active_businesses", brandBusinesses,
				"limit", parentBrand.Limits().Businesses)
			return nil, apperrors.NewValidationError("business limit reached for brand")
		}
	}

	industry, err := business.ParseIndustry(req.Industry)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	b, err := business.NewBusiness(req.Name, org.ID(), req.OwnerID, industry, business.Contact{
		Email:   req.Contact.Email,
		Phone:   req.Contact.Phone,
		Website: req.Contact.Website,
	})
	if err != nil {
		uc.logger.Errorw("failed to create business entity", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if parentBrand != nil {
		if err := b.AssignBrand(parentBrand.ID()); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Address != nil {
		b.UpdateAddress(business.Address{
			Street:    req.Address.Street,
			City:      req.Address.City,
			State:     req.Address.State,
			Country:   req.Address.Country,
			ZipCode:   req.Address.ZipCode,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		})
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to save business", "error", err)
		return nil, fmt.Errorf("failed to save business: %w", err)
	}

	uc.logger.Infow("business created successfully",
		"id", b.ID(),
		"sid", b.SID(),
		"organization_sid", org.SID(),
	)

	var brandSID *string
	if parentBrand != nil {
		s := parentBrand.SID()
		brandSID = &s
	}
	return dto.NewBusinessResponse(b, org.SID(), brandSID), nil
}
