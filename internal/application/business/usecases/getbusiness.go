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

// GetBusinessUseCase retrieves a single business by its public ID
type GetBusinessUseCase struct {
	repo      business.Repository
	orgRepo   organization.Repository
	brandRepo brand.Repository
	logger    logger.Interface
}

// NewGetBusinessUseCase creates a new GetBusinessUseCase
func NewGetBusinessUseCase(
	repo business.Repository,
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	logger logger.Interface,
) *GetBusinessUseCase {
	return &GetBusinessUseCase{
		repo:      repo,
		orgRepo:   orgRepo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Execute retrieves the business with the given SID
func (uc *GetBusinessUseCase) Execute(ctx context.Context, sid string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			return nil, apperrors.NewNotFoundError("business not found")
		}
		uc.logger.Errorw("failed to get business", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return resolveBusinessResponse(ctx, uc.orgRepo, uc.brandRepo, b)
}

// resolveBusinessResponse resolves the parent SIDs referenced by a business.
func resolveBusinessResponse(
	ctx context.Context,
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	b *business.Business,
) (*dto.BusinessResponse, error) {
	org, err := orgRepo.GetByID(ctx, b.OrganizationID())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve business organization: %w", err)
	}

	var brandSID *string
	if b.BrandID() != nil {
		parentBrand, err := brandRepo.GetByID(ctx, *b.BrandID())
		if err != nil {
			return nil, fmt.Errorf("failed to resolve business brand: %w", err)
		}
		s := parentBrand.SID()
		brandSID = &s
	}

	return dto.NewBusinessResponse(b, org.SID(), brandSID), nil
}
