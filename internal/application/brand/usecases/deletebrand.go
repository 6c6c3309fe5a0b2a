package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// DeleteBrandUseCase hard-deletes a brand. Deletion is blocked while active
// businesses still reference it.
type DeleteBrandUseCase struct {
	repo         brand.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewDeleteBrandUseCase creates a new DeleteBrandUseCase
func NewDeleteBrandUseCase(repo brand.Repository, businessRepo business.Repository, logger logger.Interface) *DeleteBrandUseCase {
	return &DeleteBrandUseCase{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute deletes the brand with the given SID
func (uc *DeleteBrandUseCase) Execute(ctx context.Context, sid string) error {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, brand.ErrBrandNotFound) {
			return apperrors.NewNotFoundError("brand not found")
		}
		uc.logger.Errorw("failed to get brand", "error", err, "sid", sid)
		return fmt.Errorf("failed to get brand: %w", err)
	}

	businessCount, err := uc.businessRepo.CountActiveByBrand(ctx, b.ID())
	if err != nil {
		return fmt.Errorf("failed to count businesses: %w", err)
	}
	if businessCount > 0 {
		return apperrors.NewConflictError("brand has active businesses")
	}

	if err := uc.repo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to delete brand", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	uc.logger.Infow("brand deleted successfully", "sid", sid)
	return nil
}
