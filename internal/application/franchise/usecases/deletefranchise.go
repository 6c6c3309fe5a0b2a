package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/domain/franchise"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// DeleteFranchiseUseCase hard-deletes a franchise. Franchises are leaves of
// the hierarchy, so no cascade check applies.
type DeleteFranchiseUseCase struct {
	repo   franchise.Repository
	logger logger.Interface
}

// NewDeleteFranchiseUseCase creates a new DeleteFranchiseUseCase
func NewDeleteFranchiseUseCase(repo franchise.Repository, logger logger.Interface) *DeleteFranchiseUseCase {
	return &DeleteFranchiseUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes the franchise with the given SID
func (uc *DeleteFranchiseUseCase) Execute(ctx context.Context, sid string) error {
	f, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, franchise.ErrFranchiseNotFound) {
			return apperrors.NewNotFoundError("franchise not found")
		}
		uc.logger.Errorw("failed to get franchise", "error", err, "sid", sid)
		return fmt.Errorf("failed to get franchise: %w", err)
	}

	if err := uc.repo.Delete(ctx, f.ID()); err != nil {
		uc.logger.Errorw("failed to delete franchise", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete franchise: %w", err)
	}

	uc.logger.Infow("franchise deleted successfully", "sid", sid)
	return nil
}
