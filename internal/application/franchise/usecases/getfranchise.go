package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/franchise/dto"
	"branchline/internal/domain/business"
	"branchline/internal/domain/franchise"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// GetFranchiseUseCase retrieves a single franchise by its public ID
type GetFranchiseUseCase struct {
	repo         franchise.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewGetFranchiseUseCase creates a new GetFranchiseUseCase
func NewGetFranchiseUseCase(repo franchise.Repository, businessRepo business.Repository, logger logger.Interface) *GetFranchiseUseCase {
	return &GetFranchiseUseCase{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute retrieves the franchise with the given SID
func (uc *GetFranchiseUseCase) Execute(ctx context.Context, sid string) (*dto.FranchiseResponse, error) {
	f, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, franchise.ErrFranchiseNotFound) {
			return nil, apperrors.NewNotFoundError("franchise not found")
		}
		uc.logger.Errorw("failed to get franchise", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get franchise: %w", err)
	}

	b, err := uc.businessRepo.GetByID(ctx, f.BusinessID())
	if err != nil {
		uc.logger.Errorw("failed to resolve franchise business", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to resolve franchise business: %w", err)
	}

	return dto.NewFranchiseResponse(f, b.SID()), nil
}
