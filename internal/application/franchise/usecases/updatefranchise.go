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

// UpdateFranchiseUseCase applies a partial update to a franchise. Only fields
// present in the request are changed; a present address must be complete.
type UpdateFranchiseUseCase struct {
	repo         franchise.Repository
	businessRepo business.Repository
	logger       logger.Interface
}

// NewUpdateFranchiseUseCase creates a new UpdateFranchiseUseCase
func NewUpdateFranchiseUseCase(repo franchise.Repository, businessRepo business.Repository, logger logger.Interface) *UpdateFranchiseUseCase {
	return &UpdateFranchiseUseCase{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute updates the franchise with the given SID
func (uc *UpdateFranchiseUseCase) Execute(ctx context.Context, sid string, req dto.UpdateFranchiseRequest) (*dto.FranchiseResponse, error) {
	f, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, franchise.ErrFranchiseNotFound) {
			return nil, apperrors.NewNotFoundError("franchise not found")
		}
		uc.logger.Errorw("failed to get franchise", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get franchise: %w", err)
	}

	if req.Name != nil {
		if err := f.UpdateName(*req.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Address != nil {
		if !req.Address.HasCoordinates() {
			return nil, apperrors.NewValidationError("address latitude and longitude are required")
		}
		if err := f.UpdateAddress(req.Address.ToDomainAddress()); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
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
	if req.IsActive != nil {
		if *req.IsActive {
			f.Activate()
		} else {
			f.Deactivate()
		}
	}

	if err := uc.repo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update franchise", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update franchise: %w", err)
	}

	b, err := uc.businessRepo.GetByID(ctx, f.BusinessID())
	if err != nil {
		uc.logger.Errorw("failed to resolve franchise business", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to resolve franchise business: %w", err)
	}

	uc.logger.Infow("franchise updated successfully", "sid", sid)
	return dto.NewFranchiseResponse(f, b.SID()), nil
}
