package usecases

import (
	"context"
	"fmt"

	"branchline/internal/application/organization/dto"
	"branchline/internal/domain/organization"
	"branchline/internal/shared/logger"
)

// ListOrganizationsUseCase lists organizations newest first
type ListOrganizationsUseCase struct {
	repo   organization.Repository
	logger logger.Interface
}

// NewListOrganizationsUseCase creates a new ListOrganizationsUseCase
func NewListOrganizationsUseCase(repo organization.Repository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns a page of organizations and the total matching count
func (uc *ListOrganizationsUseCase) Execute(ctx context.Context, query dto.ListOrganizationsQuery) ([]*dto.OrganizationResponse, int64, error) {
	orgs, total, err := uc.repo.List(ctx, organization.ListFilter{
		IsActive: query.IsActive,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		uc.logger.Errorw("failed to list organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	return dto.NewOrganizationResponses(orgs), total, nil
}
