package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// GetOrganizationUseCase retrieves a single organization by its public ID
type GetOrganizationUseCase struct {
	repo   organization.Repository
	logger logger.Interface
}

// NewGetOrganizationUseCase creates a new GetOrganizationUseCase
func NewGetOrganizationUseCase(repo organization.Repository, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute retrieves the organization with the given SID
func (uc *GetOrganizationUseCase) Execute(ctx context.Context, sid string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return dto.NewOrganizationResponse(org), nil
}
