package mappers

import (
	"fmt"

	"branchline/internal/domain/business"
	"branchline/internal/infrastructure/persistence/models"
)

// BusinessMapper handles the conversion between domain entities and persistence models
type BusinessMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.BusinessModel) (*business.Business, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *business.Business) (*models.BusinessModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.BusinessModel) ([]*business.Business, error)
}

// businessMapper is the concrete implementation of BusinessMapper
type businessMapper struct{}

// NewBusinessMapper creates a new business mapper
func NewBusinessMapper() BusinessMapper {
	return &businessMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *businessMapper) ToEntity(model *models.BusinessModel) (*business.Business, error) {
	if model == nil {
		return nil, nil
	}

	industry, err := business.ParseIndustry(model.Industry)
	if err != nil {
		return nil, fmt.Errorf("failed to parse business industry: %w", err)
	}

	var contact business.Contact
	if err := unmarshalColumn(model.Contact, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business contact: %w", err)
	}

	var address business.Address
	if err := unmarshalColumn(model.Address, &address); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business address: %w", err)
	}

	var subscription business.Subscription
	if err := unmarshalColumn(model.Subscription, &subscription); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business subscription: %w", err)
	}

	entity, err := business.ReconstructBusiness(
		model.ID,
		model.SID,
		model.OrganizationID,
		model.BrandID,
		model.OwnerID,
		model.Name,
		industry,
		contact,
		address,
		subscription,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct business entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *businessMapper) ToModel(entity *business.Business) (*models.BusinessModel, error) {
	if entity == nil {
		return nil, nil
	}

	contactJSON, err := marshalColumn(entity.Contact())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal business contact: %w", err)
	}

	addressJSON, err := marshalColumn(entity.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal business address: %w", err)
	}

	subscriptionJSON, err := marshalColumn(entity.Subscription())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal business subscription: %w", err)
	}

	return &models.BusinessModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		BrandID:        entity.BrandID(),
		OwnerID:        entity.OwnerID(),
		Name:           entity.Name(),
		Industry:       entity.Industry().String(),
		Contact:        contactJSON,
		Address:        addressJSON,
		Subscription:   subscriptionJSON,
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *businessMapper) ToEntities(businessModels []*models.BusinessModel) ([]*business.Business, error) {
	entities := make([]*business.Business, 0, len(businessModels))
	for _, model := range businessModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
