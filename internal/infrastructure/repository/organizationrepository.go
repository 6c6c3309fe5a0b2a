// Package repository contains the GORM implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"branchline/internal/domain/organization"
	"branchline/internal/infrastructure/persistence/mappers"
	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/shared/db"
	"branchline/internal/shared/logger"
)

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
	logger logger.Interface
}

func NewOrganizationRepository(gormDB *gorm.DB, logger logger.Interface) organization.Repository {
	return &OrganizationRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewOrganizationMapper(),
		logger: logger,
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *organization.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		r.logger.Errorw("failed to convert organization to model", "error", err)
		return fmt.Errorf("failed to convert organization to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create organization", "error", err, "sid", org.SID())
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := org.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("organization created", "organization_id", model.ID, "sid", org.SID())
	return nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *organization.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		r.logger.Errorw("failed to convert organization to model", "error", err)
		return fmt.Errorf("failed to convert organization to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.OrganizationModel{}).
		Where("id = ?", org.ID()).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"settings":     model.Settings,
			"contact":      model.Contact,
			"subscription": model.Subscription,
			"limits":       model.Limits,
			"is_active":    model.IsActive,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update organization", "error", result.Error, "organization_id", org.ID())
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}

	return nil
}

func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrganizationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete organization", "error", result.Error, "organization_id", id)
		return fmt.Errorf("failed to delete organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return organization.ErrOrganizationNotFound
	}

	r.logger.Infow("organization deleted", "organization_id", id)
	return nil
}

func (r *OrganizationRepositoryImpl) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		r.logger.Errorw("failed to get organization by ID", "error", err, "organization_id", id)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) GetBySID(ctx context.Context, sid string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organization.ErrOrganizationNotFound
		}
		r.logger.Errorw("failed to get organization by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get organization by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context, filter organization.ListFilter) ([]*organization.Organization, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrganizationModel{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var orgModels []*models.OrganizationModel
	if err := query.
		Order("created_at DESC").
		Scopes(db.Paginate(filter.Limit, filter.Offset)).
		Find(&orgModels).Error; err != nil {
		r.logger.Errorw("failed to list organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	entities, err := r.mapper.ToEntities(orgModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
