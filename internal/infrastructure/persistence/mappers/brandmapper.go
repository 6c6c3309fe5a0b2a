package mappers

import (
	"fmt"

	"branchline/internal/domain/brand"
	"branchline/internal/infrastructure/persistence/models"
)

// BrandMapper handles the conversion between domain entities and persistence models
type BrandMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.BrandModel) (*brand.Brand, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *brand.Brand) (*models.BrandModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.BrandModel) ([]*brand.Brand, error)
}

// brandMapper is the concrete implementation of BrandMapper
type brandMapper struct{}

// NewBrandMapper creates a new brand mapper
func NewBrandMapper() BrandMapper {
	return &brandMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *brandMapper) ToEntity(model *models.BrandModel) (*brand.Brand, error) {
	if model == nil {
		return nil, nil
	}

	var guidelines brand.Guidelines
	if err := unmarshalColumn(model.Guidelines, &guidelines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand guidelines: %w", err)
	}

	limits := brand.DefaultLimits()
	if err := unmarshalColumn(model.Limits, &limits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brand limits: %w", err)
	}

	entity, err := brand.ReconstructBrand(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.Name,
		guidelines,
		limits,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct brand entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *brandMapper) ToModel(entity *brand.Brand) (*models.BrandModel, error) {
	if entity == nil {
		return nil, nil
	}

	guidelinesJSON, err := marshalColumn(entity.Guidelines())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal brand guidelines: %w", err)
	}

	limitsJSON, err := marshalColumn(entity.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal brand limits: %w", err)
	}

	return &models.BrandModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		Name:           entity.Name(),
		Guidelines:     guidelinesJSON,
		Limits:         limitsJSON,
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *brandMapper) ToEntities(brandModels []*models.BrandModel) ([]*brand.Brand, error) {
	entities := make([]*brand.Brand, 0, len(brandModels))
	for _, model := range brandModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
