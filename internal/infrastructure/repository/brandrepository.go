package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"branchline/internal/domain/brand"
	"branchline/internal/infrastructure/persistence/mappers"
	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/shared/db"
	"branchline/internal/shared/logger"
)

type BrandRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BrandMapper
	logger logger.Interface
}

func NewBrandRepository(gormDB *gorm.DB, logger logger.Interface) brand.Repository {
	return &BrandRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewBrandMapper(),
		logger: logger,
	}
}

func (r *BrandRepositoryImpl) Create(ctx context.Context, b *brand.Brand) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to convert brand to model", "error", err)
		return fmt.Errorf("failed to convert brand to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create brand", "error", err, "sid", b.SID())
		return fmt.Errorf("failed to create brand: %w", err)
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("brand created", "brand_id", model.ID, "sid", b.SID())
	return nil
}

func (r *BrandRepositoryImpl) Update(ctx context.Context, b *brand.Brand) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to convert brand to model", "error", err)
		return fmt.Errorf("failed to convert brand to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.BrandModel{}).
		Where("id = ?", b.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"guidelines": model.Guidelines,
			"limits":     model.Limits,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update brand", "error", result.Error, "brand_id", b.ID())
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}

	return nil
}

func (r *BrandRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BrandModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete brand", "error", result.Error, "brand_id", id)
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return brand.ErrBrandNotFound
	}

	r.logger.Infow("brand deleted", "brand_id", id)
	return nil
}

func (r *BrandRepositoryImpl) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrBrandNotFound
		}
		r.logger.Errorw("failed to get brand by ID", "error", err, "brand_id", id)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BrandRepositoryImpl) GetBySID(ctx context.Context, sid string) (*brand.Brand, error) {
	var model models.BrandModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrBrandNotFound
		}
		r.logger.Errorw("failed to get brand by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get brand by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BrandRepositoryImpl) ListByOrganization(ctx context.Context, organizationID uint, activeOnly bool) ([]*brand.Brand, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BrandModel{}).
		Where("organization_id = ?", organizationID)
	if activeOnly {
		query = query.Scopes(db.ActiveOnly())
	}

	var brandModels []*models.BrandModel
	if err := query.Order("name ASC").Find(&brandModels).Error; err != nil {
		r.logger.Errorw("failed to list brands", "error", err, "organization_id", organizationID)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	return r.mapper.ToEntities(brandModels)
}

func (r *BrandRepositoryImpl) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BrandModel{}).
		Where("organization_id = ?", organizationID).
		Scopes(db.ActiveOnly()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count brands", "error", err, "organization_id", organizationID)
		return 0, fmt.Errorf("failed to count brands: %w", err)
	}
	return count, nil
}
