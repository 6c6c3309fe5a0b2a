// Package usecases contains the hierarchy aggregation service.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"branchline/internal/application/hierarchy/dto"
	"branchline/internal/domain/brand"
	"branchline/internal/domain/business"
	"branchline/internal/domain/franchise"
	"branchline/internal/domain/organization"
	apperrors "branchline/internal/shared/errors"
	"branchline/internal/shared/logger"
)

// GetHierarchyUseCase assembles the full tree under one organization: active
// brands, active businesses annotated with their brand name, and the active
// franchises of exactly that business set, exposed both as a flat collection
// and nested per business. The response is unpaginated; a fan-out above the
// configured threshold is logged at warn level.
type GetHierarchyUseCase struct {
	orgRepo             organization.Repository
	brandRepo           brand.Repository
	businessRepo        business.Repository
	franchiseRepo       franchise.Repository
	fanoutWarnThreshold int
	logger              logger.Interface
}

// NewGetHierarchyUseCase creates a new GetHierarchyUseCase
func NewGetHierarchyUseCase(
	orgRepo organization.Repository,
	brandRepo brand.Repository,
	businessRepo business.Repository,
	franchiseRepo franchise.Repository,
	fanoutWarnThreshold int,
	logger logger.Interface,
) *GetHierarchyUseCase {
	return &GetHierarchyUseCase{
		orgRepo:             orgRepo,
		brandRepo:           brandRepo,
		businessRepo:        businessRepo,
		franchiseRepo:       franchiseRepo,
		fanoutWarnThreshold: fanoutWarnThreshold,
		logger:              logger,
	}
}

// Execute builds the hierarchy of the organization with the given SID
func (uc *GetHierarchyUseCase) Execute(ctx context.Context, organizationSID string) (*dto.HierarchyResponse, error) {
	org, err := uc.orgRepo.GetBySID(ctx, organizationSID)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return nil, apperrors.NewNotFoundError("organization not found")
		}
		uc.logger.Errorw("failed to get organization", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	brands, err := uc.brandRepo.ListByOrganization(ctx, org.ID(), true)
	if err != nil {
		uc.logger.Errorw("failed to list brands", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	isActive := true
	businesses, _, err := uc.businessRepo.ListByOrganization(ctx, org.ID(), business.ListFilter{
		IsActive: &isActive,
	})
	if err != nil {
		uc.logger.Errorw("failed to list businesses", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	businessIDs := make([]uint, 0, len(businesses))
	businessSIDs := make(map[uint]string, len(businesses))
	for _, b := range businesses {
		businessIDs = append(businessIDs, b.ID())
		businessSIDs[b.ID()] = b.SID()
	}

	franchises, err := uc.franchiseRepo.ListActiveByBusinessIDs(ctx, businessIDs)
	if err != nil {
		uc.logger.Errorw("failed to list franchises", "error", err, "organization_sid", organizationSID)
		return nil, fmt.Errorf("failed to list franchises: %w", err)
	}

	fanout := len(brands) + len(businesses) + len(franchises)
	if uc.fanoutWarnThreshold > 0 && fanout > uc.fanoutWarnThreshold {
		uc.logger.Warnw("hierarchy fan-out exceeds threshold",
			"organization_sid", organizationSID,
			"fanout", fanout,
			"threshold", uc.fanoutWarnThreshold)
	}

	brandNames := make(map[uint]string, len(brands))
	brandSIDs := make(map[uint]string, len(brands))
	brandNodes := make([]dto.BrandNode, 0, len(brands))
	for _, br := range brands {
		brandNames[br.ID()] = br.Name()
		brandSIDs[br.ID()] = br.SID()
		brandNodes = append(brandNodes, dto.BrandNode{
			ID:       br.SID(),
			Name:     br.Name(),
			IsActive: br.IsActive(),
		})
	}

	franchiseNodes := make([]dto.FranchiseNode, 0, len(franchises))
	franchisesByBusiness := make(map[uint][]dto.FranchiseNode)
	for _, f := range franchises {
		node := dto.FranchiseNode{
			ID:       f.SID(),
			Name:     f.Name(),
			City:     f.Address().City,
			IsActive: f.IsActive(),
		}
		franchisesByBusiness[f.BusinessID()] = append(franchisesByBusiness[f.BusinessID()], node)

		node.BusinessID = businessSIDs[f.BusinessID()]
		franchiseNodes = append(franchiseNodes, node)
	}

	businessNodes := make([]dto.BusinessNode, 0, len(businesses))
	for _, b := range businesses {
		node := dto.BusinessNode{
			ID:         b.SID(),
			Name:       b.Name(),
			Industry:   b.Industry().String(),
			IsActive:   b.IsActive(),
			Franchises: franchisesByBusiness[b.ID()],
		}
		if node.Franchises == nil {
			node.Franchises = []dto.FranchiseNode{}
		}
		if b.BrandID() != nil {
			if sid, ok := brandSIDs[*b.BrandID()]; ok {
				s := sid
				node.BrandID = &s
			}
			if name, ok := brandNames[*b.BrandID()]; ok {
				n := name
				node.BrandName = &n
			}
		}
		businessNodes = append(businessNodes, node)
	}

	return &dto.HierarchyResponse{
		Organization: dto.OrganizationNode{
			ID:        org.SID(),
			Name:      org.Name(),
			IsActive:  org.IsActive(),
			CreatedAt: org.CreatedAt(),
		},
		Brands:     brandNodes,
		Businesses: businessNodes,
		Franchises: franchiseNodes,
	}, nil
}
