// Package usecases contains the organization application services.
package usecases

import (
	"context"
	"fmt"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// CreateOrganizationUseCase handles the creation of a new organization
type CreateOrganizationUseCase struct {
	repo   organization.Repository
	logger logger.Interface
}

// NewCreateOrganizationUseCase creates a new CreateOrganizationUseCase
func NewCreateOrganizationUseCase(repo organization.Repository, logger logger.Interface) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute creates a new organization on the free plan
func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := organization.NewOrganization(req.Name, organization.Contact{
		Email:   req.Contact.Email,
		Phone:   req.Contact.Phone,
		Website: req.Contact.Website,
	})
	if err != nil {
		uc.logger.Errorw("failed to create organization entity", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to save organization", "error", err)
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	uc.logger.Infow("organization created successfully",
		"id", org.ID(),
		"sid", org.SID(),
		"name", org.Name(),
	)

	return dto.NewOrganizationResponse(org), nil
}
