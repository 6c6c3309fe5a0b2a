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

// GetBrandUseCase retrieves a single brand by its public ID
type GetBrandUseCase struct {
	repo    brand.Repository
	orgRepo organization.Repository
	logger  logger.Interface
}

// NewGetBrandUseCase creates a new GetBrandUseCase
func NewGetBrandUseCase(repo brand.Repository, orgRepo organization.Repository, logger logger.Interface) *GetBrandUseCase {
	return &GetBrandUseCase{
		repo:    repo,
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// Execute retrieves the brand with the given SID
func (uc *GetBrandUseCase) Execute(ctx context.Context, sid string) (*dto.BrandResponse, error) {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, brand.ErrBrandNotFound) {
			return nil, apperrors.NewNotFoundError("brand not found")
		}
		uc.logger.Errorw("failed to get brand", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	org, err := uc.orgRepo.GetByID(ctx, b.OrganizationID())
	if err != nil {
		uc.logger.Errorw("failed to resolve brand organization", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to resolve brand organization: %w", err)
	}

	return dto.NewBrandResponse(b, org.SID()), nil
}
