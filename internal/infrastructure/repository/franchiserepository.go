package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"branchline/internal/domain/franchise"
	"branchline/internal/infrastructure/persistence/mappers"
	"branchline/internal/infrastructure/persistence/models"
	"branchline/internal/shared/db"
	"branchline/internal/shared/logger"
)

type FranchiseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FranchiseMapper
	logger logger.Interface
}

func NewFranchiseRepository(gormDB *gorm.DB, logger logger.Interface) franchise.Repository {
	return &FranchiseRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewFranchiseMapper(),
		logger: logger,
	}
}

func (r *FranchiseRepositoryImpl) Create(ctx context.Context, f *franchise.Franchise) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		r.logger.Errorw("failed to convert franchise to model", "error", err)
		return fmt.Errorf("failed to convert franchise to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create franchise", "error", err, "sid", f.SID())
		return fmt.Errorf("failed to create franchise: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("franchise created", "franchise_id", model.ID, "sid", f.SID())
	return nil
}

func (r *FranchiseRepositoryImpl) Update(ctx context.Context, f *franchise.Franchise) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		r.logger.Errorw("failed to convert franchise to model", "error", err)
		return fmt.Errorf("failed to convert franchise to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.FranchiseModel{}).
		Where("id = ?", f.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"address":    model.Address,
			"contact":    model.Contact,
			"settings":   model.Settings,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update franchise", "error", result.Error, "franchise_id", f.ID())
		return fmt.Errorf("failed to update franchise: %w", result.Error)
	}

	return nil
}

func (r *FranchiseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FranchiseModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete franchise", "error", result.Error, "franchise_id", id)
		return fmt.Errorf("failed to delete franchise: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return franchise.ErrFranchiseNotFound
	}

	r.logger.Infow("franchise deleted", "franchise_id", id)
	return nil
}

func (r *FranchiseRepositoryImpl) GetByID(ctx context.Context, id uint) (*franchise.Franchise, error) {
	var model models.FranchiseModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, franchise.ErrFranchiseNotFound
		}
		r.logger.Errorw("failed to get franchise by ID", "error", err, "franchise_id", id)
		return nil, fmt.Errorf("failed to get franchise: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FranchiseRepositoryImpl) GetBySID(ctx context.Context, sid string) (*franchise.Franchise, error) {
	var model models.FranchiseModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, franchise.ErrFranchiseNotFound
		}
		r.logger.Errorw("failed to get franchise by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get franchise by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FranchiseRepositoryImpl) ListByBusiness(ctx context.Context, businessID uint, filter franchise.ListFilter) ([]*franchise.Franchise, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.FranchiseModel{}).
		Where("business_id = ?", businessID)
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count franchises", "error", err, "business_id", businessID)
		return nil, 0, fmt.Errorf("failed to count franchises: %w", err)
	}

	var franchiseModels []*models.FranchiseModel
	if err := query.
		Order("name ASC").
		Scopes(db.Paginate(filter.Limit, filter.Offset)).
		Find(&franchiseModels).Error; err != nil {
		r.logger.Errorw("failed to list franchises", "error", err, "business_id", businessID)
		return nil, 0, fmt.Errorf("failed to list franchises: %w", err)
	}

	entities, err := r.mapper.ToEntities(franchiseModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FranchiseRepositoryImpl) ListActiveByBusinessIDs(ctx context.Context, businessIDs []uint) ([]*franchise.Franchise, error) {
	if len(businessIDs) == 0 {
		return []*franchise.Franchise{}, nil
	}

	var franchiseModels []*models.FranchiseModel
	if err := r.db.WithContext(ctx).
		Model(&models.FranchiseModel{}).
		Where("business_id IN ?", businessIDs).
		Scopes(db.ActiveOnly()).
		Order("name ASC").
		Find(&franchiseModels).Error; err != nil {
		r.logger.Errorw("failed to list franchises by business IDs", "error", err)
		return nil, fmt.Errorf("failed to list franchises by business IDs: %w", err)
	}

	return r.mapper.ToEntities(franchiseModels)
}

func (r *FranchiseRepositoryImpl) CountActiveByBusiness(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FranchiseModel{}).
		Where("business_id = ?", businessID).
		Scopes(db.ActiveOnly()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count franchises", "error", err, "business_id", businessID)
		return 0, fmt.Errorf("failed to count franchises: %w", err)
	}
	return count, nil
}
