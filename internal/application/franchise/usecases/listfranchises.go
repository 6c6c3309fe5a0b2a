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

// ListFranchisesUseCase lists the franchises of a business ordered by name
type ListFranchisesUseCase struct {
	repo         franchise.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewListFranchisesUseCase creates a new ListFranchisesUseCase
func NewListFranchisesUseCase(repo franchise.Repository, businessRepo business.Repository, logger logger.Interface) *ListFranchisesUseCase {
	return &ListFranchisesUseCase{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute lists the franchises of the business with the given SID
func (uc *ListFranchisesUseCase) Execute(ctx context.Context, businessSID string, query dto.ListFranchisesQuery) ([]*dto.FranchiseResponse, int64, error) {
	b, err := uc.businessRepo.GetBySID(ctx, businessSID)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			return nil, 0, apperrors.NewNotFoundError("business not found")
		}
		uc.logger.Errorw("failed to get business", "error", err, "business_sid", businessSID)
		return nil, 0, fmt.Errorf("failed to get business: %w", err)
	}

	franchises, total, err := uc.repo.ListByBusiness(ctx, b.ID(), franchise.ListFilter{
		IsActive: query.IsActive,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		uc.logger.Errorw("failed to list franchises", "error", err, "business_sid", businessSID)
		return nil, 0, fmt.Errorf("failed to list franchises: %w", err)
	}

	return dto.NewFranchiseResponses(franchises, b.SID()), total, nil
}
