package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/domain/business"
	"branchline/internal/domain/franchise"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// DeleteBusinessUseCase hard-deletes a business. Deletion is blocked while
// active franchises still reference it.
type DeleteBusinessUseCase struct {
	repo          business.Repository
	franchiseRepo franchise.Repository
	logger        logger.Interface
}

// NewDeleteBusinessUseCase creates a new DeleteBusinessUseCase
func NewDeleteBusinessUseCase(repo business.Repository, franchiseRepo franchise.Repository, logger logger.Interface) *DeleteBusinessUseCase {
	return &DeleteBusinessUseCase{
		repo:          repo,
		franchiseRepo: franchiseRepo,
		logger:        logger,
	}
}

// Execute deletes the business with the given SID
func (uc *DeleteBusinessUseCase) Execute(ctx context.Context, sid string) error {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			return apperrors.NewNotFoundError("business not found")
		}
		uc.logger.Errorw("failed to get business", "error", err, "sid", sid)
		return fmt.Errorf("failed to get business: %w", err)
	}

	franchiseCount, err := uc.franchiseRepo.CountActiveByBusiness(ctx, b.ID())
	if err != nil {
		return fmt.Errorf("failed to count franchises: %w", err)
	}
	if franchiseCount > 0 {
		return apperrors.NewConflictError("business has active franchises")
	}

	if err := uc.repo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to delete business", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete business: %w", err)
	}

	uc.logger.Infow("business deleted successfully", "sid", sid)
	return nil
}
