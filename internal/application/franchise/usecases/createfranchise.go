// Package usecases contains the franchise application services.
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

// CreateFranchiseUseCase handles the creation of a new franchise, enforcing
// the business franchise quota.
type CreateFranchiseUseCase struct {
	repo         franchise.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewCreateFranchiseUseCase creates a new CreateFranchiseUseCase
func NewCreateFranchiseUseCase(repo franchise.Repository, businessRepo business.Repository, logger logger.Interface) *CreateFranchiseUseCase {
	return &CreateFranchiseUseCase{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute creates a new franchise
func (uc *CreateFranchiseUseCase) Execute(ctx context.Context, req dto.CreateFranchiseRequest) (*dto.FranchiseResponse, error) {
	b, err := uc.businessRepo.GetBySID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			return nil, apperrors.NewNotFoundError("business not found")
		}
		uc.logger.Errorw("failed to get business", "error", err, "business_sid", req.BusinessID)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	activeFranchises, err := uc.repo.CountActiveByBusiness(ctx, b.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to count franchises: %w", err)
	}
	allowed, err := b.CheckLimit(business.LimitFranchises, activeFranchises)
	if err != nil {
		return nil, fmt.Errorf("failed to check franchise limit: %w", err)
	}
	if !allowed {
		uc.logger.Warnw("franchise limit reached",
			"business_sid", b.SID(),
			"active_franchises", activeFranchises,
			"limit", b.Subscription().Limits.Franchises)
		return nil, apperrors.NewValidationError("franchise limit reached for business")
	}

	if !req.Address.HasCoordinates() {
		return nil, apperrors.NewValidationError("address latitude and longitude are required")
	}

	f, err := franchise.NewFranchise(req.Name, b.ID(), req.Address.ToDomainAddress())
	if err != nil {
		uc.logger.Errorw("failed to create franchise entity", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if req.Contact != nil {
		f.UpdateContact(franchise.Contact{
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		})
	}
	if req.Settings != nil {
		f.UpdateSettings(req.Settings.ToDomainSettings())
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to save franchise", "error", err)
		return nil, fmt.Errorf("failed to save franchise: %w", err)
	}

	uc.logger.Infow("franchise created successfully",
		"id", f.ID(),
		"sid", f.SID(),
		"business_sid", b.SID(),
	)

	return dto.NewFranchiseResponse(f, b.SID()), nil
}
