package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"branchline/internal/domain/business"
	"branchline/internal/infrastructure/persistence/mappers"
	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/shared/db"
	"branchline/internal/shared/logger"
)

type BusinessRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BusinessMapper
	logger logger.Interface
}

func NewBusinessRepository(gormDB *gorm.DB, logger logger.Interface) business.Repository {
	return &BusinessRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewBusinessMapper(),
		logger: logger,
	}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, b *business.Business) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to convert business to model", "error", err)
		return fmt.Errorf("failed to convert business to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create business", "error", err, "sid", b.SID())
		return fmt.Errorf("failed to create business: %w", err)
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("business created", "business_id", model.ID, "sid", b.SID())
	return nil
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, b *business.Business) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		r.logger.Errorw("failed to convert business to model", "error", err)
		return fmt.Errorf("failed to convert business to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.BusinessModel{}).
		Where("id = ?", b.ID()).
		Updates(map[string]interface{}{
			"brand_id":     model.BrandID,
			"name":         model.Name,
			"industry":     model.Industry,
			"contact":      model.Contact,
			"address":      model.Address,
			"subscription": model.Subscription,
			"is_active":    model.IsActive,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update business", "error", result.Error, "business_id", b.ID())
		return fmt.Errorf("failed to update business: %w", result.Error)
	}

	return nil
}

func (r *BusinessRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BusinessModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete business", "error", result.Error, "business_id", id)
		return fmt.Errorf("failed to delete business: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return business.ErrBusinessNotFound
	}

	r.logger.Infow("business deleted", "business_id", id)
	return nil
}

func (r *BusinessRepositoryImpl) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	var model models.BusinessModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, business.ErrBusinessNotFound
		}
		r.logger.Errorw("failed to get business by ID", "error", err, "business_id", id)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BusinessRepositoryImpl) GetBySID(ctx context.Context, sid string) (*business.Business, error) {
	var model models.BusinessModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, business.ErrBusinessNotFound
		}
		r.logger.Errorw("failed to get business by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get business by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *BusinessRepositoryImpl) ListByOrganization(ctx context.Context, organizationID uint, filter business.ListFilter) ([]*business.Business, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BusinessModel{}).
		Where("organization_id = ?", organizationID)
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count businesses", "error", err, "organization_id", organizationID)
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	var businessModels []*models.BusinessModel
	if err := query.
		Order("created_at DESC").
		Scopes(db.Paginate(filter.Limit, filter.Offset)).
		Find(&businessModels).Error; err != nil {
		r.logger.Errorw("failed to list businesses", "error", err, "organization_id", organizationID)
		return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
	}

	entities, err := r.mapper.ToEntities(businessModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *BusinessRepositoryImpl) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BusinessModel{}).
		Where("organization_id = ?", organizationID).
		Scopes(db.ActiveOnly()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count businesses", "error", err, "organization_id", organizationID)
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

func (r *BusinessRepositoryImpl) CountActiveByBrand(ctx context.Context, brandID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BusinessModel{}).
		Where("brand_id = ?", brandID).
		Scopes(db.ActiveOnly()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count businesses by brand", "error", err, "brand_id", brandID)
		return 0, fmt.Errorf("failed to count businesses by brand: %w", err)
	}
	return count, nil
}
