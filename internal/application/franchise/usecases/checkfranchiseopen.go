package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"branchline/internal/application/franchise/dto"
	"branchline/internal/domain/franchise"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// CheckFranchiseOpenUseCase reports whether a franchise is open at a point in
// time according to its operating hours.
type CheckFranchiseOpenUseCase struct {
	repo   franchise.Repository
	logger logger.Interface
}

// NewCheckFranchiseOpenUseCase creates a new CheckFranchiseOpenUseCase
func NewCheckFranchiseOpenUseCase(repo franchise.Repository, logger logger.Interface) *CheckFranchiseOpenUseCase {
	return &CheckFranchiseOpenUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute evaluates the operating hours of the franchise with the given SID
// at the given instant. A deactivated franchise is reported closed.
func (uc *CheckFranchiseOpenUseCase) Execute(ctx context.Context, sid string, at time.Time) (*dto.OpenStatusResponse, error) {
	f, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, franchise.ErrFranchiseNotFound) {
			return nil, apperrors.NewNotFoundError("franchise not found")
		}
		uc.logger.Errorw("failed to get franchise", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get franchise: %w", err)
	}

	open := f.IsActive() && f.IsOpenAt(at)

	return &dto.OpenStatusResponse{
		ID:     f.SID(),
		Open:   open,
		At:     at,
		Active: f.IsActive(),
	}, nil
}
