package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/business/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// UpdateBusinessUseCase applies a partial update to a business. Only fields
// present in the request are changed; an empty brand_id detaches the brand.
type UpdateBusinessUseCase struct {
	repo      business.Repository
	orgRepo   organization.Repository
	brandRepo brand.Repository
	logger    logger.Interface
}

// NewUpdateBusinessUseCase creates a new UpdateBusinessUseCase
func NewUpdateBusinessUseCase(
	repo business.Repository,
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	logger logger.Interface,
) *UpdateBusinessUseCase {
	return &UpdateBusinessUseCase{
		repo:      repo,
		orgRepo:   orgRepo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// Execute updates the business with the given SID
func (uc *UpdateBusinessUseCase) Execute(ctx context.Context, sid string, req dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	b, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			return nil, apperrors.NewNotFoundError("business not found")
		}
		uc.logger.Errorw("failed to get business", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	if req.Name != nil {
		if err := b.UpdateName(*req.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.BrandID != nil {
		if *req.BrandID == "" {
			b.DetachBrand()
		} else {
			parentBrand, err := uc.brandRepo.GetBySID(ctx, *req.BrandID)
			if err != nil {
				if errors.Is(err, brand.ErrBrandNotFound) {
					return nil, apperrors.NewNotFoundError("brand not found")
				}
				uc.logger.Errorw("failed to get brand", "error", err, "brand_sid", *req.BrandID)
				return nil, fmt.Errorf("failed to get brand: %w", err)
			}
			if parentBrand.OrganizationID() != b.OrganizationID() {
				return nil, apperrors.NewValidationError("brand does not belong to the organization")
			}
			if err := b.AssignBrand(parentBrand.ID()); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
		}
	}
	if req.Industry != nil {
		industry, err := business.ParseIndustry(*req.Industry)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := b.UpdateIndustry(industry); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Contact != nil {
		if err := b.UpdateContact(business.Contact{
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
			Website: req.Contact.Website,
		}); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if req.Address != nil {
		b.UpdateAddress(business.Address{
			Street:    req.Address.Street,
			City:      req.Address.City,
			State:     req.Address.State,
			Country:   req.Address.Country,
			ZipCode:   req.Address.ZipCode,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		})
	}
	if req.Subscription != nil {
		b.UpdateSubscription(business.Subscription{
			Plan:   req.Subscription.Plan,
			Status: req.Subscription.Status,
			Limits: business.Limits{
				Franchises:  req.Subscription.Limits.Franchises,
				Forms:       req.Subscription.Limits.Forms,
				Submissions: req.Subscription.Limits.Submissions,
				Staff:       req.Subscription.Limits.Staff,
				StorageMB:   req.Subscription.Limits.StorageMB,
			},
		})
	}
	if req.IsActive != nil {
		if *req.IsActive {
			b.Activate()
		} else {
			b.Deactivate()
		}
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update business", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	uc.logger.Infow("business updated successfully", "sid", sid)
	return resolveBusinessResponse(ctx, uc.orgRepo, uc.brandRepo, b)
}
