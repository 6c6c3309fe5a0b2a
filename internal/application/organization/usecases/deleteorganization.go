package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// DeleteOrganizationUseCase hard-deletes an organization. Deletion is blocked
// while active brands or businesses still reference it.
type DeleteOrganizationUseCase struct {
	repo         organization.Repository
	brandRepo    brand.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewDeleteOrganizationUseCase creates a new DeleteOrganizationUseCase
func NewDeleteOrganizationUseCase(
	repo organization.Repository,
	brandRepo brand.Repository,
	businessRepo business.Repository,
	logger logger.Interface,
) *DeleteOrganizationUseCase {
	return &DeleteOrganizationUseCase{
		repo:         repo,
		brandRepo:    brandRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute deletes the organization with the given SID
func (uc *DeleteOrganizationUseCase) Execute(ctx context.Context, sid string) error {
	org, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "sid", sid)
		return fmt.Errorf("failed to get organization: %w", err)
	}

	brandCount, err := uc.brandRepo.CountActiveByOrganization(ctx, org.ID())
	if err != nil {
		return fmt.Errorf("failed to count brands: %w", err)
	}
	if brandCount > 0 {
		return apperrors.NewConflictError("organization has active brands")
	}

	businessCount, err := uc.businessRepo.CountActiveByOrganization(ctx, org.ID())
	if err != nil {
		return fmt.Errorf("failed to count businesses: %w", err)
	}
	if businessCount > 0 {
		return apperrors.NewConflictError("organization has active businesses")
	}

	if err := uc.repo.Delete(ctx, org.ID()); err != nil {
		uc.logger.Errorw("failed to delete organization", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	uc.logger.Infow("organization deleted successfully", "sid", sid)
	return nil
}
