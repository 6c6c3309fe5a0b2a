package mappers

import (
	"fmt"

	"branchline/internal/domain/franchise"
	"branchline/internal/infrastructure/persistence/models"
)

// FranchiseMapper handles the conversion between domain entities and persistence models
type FranchiseMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.FranchiseModel) (*franchise.Franchise, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *franchise.Franchise) (*models.FranchiseModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.FranchiseModel) ([]*franchise.Franchise, error)
}

// franchiseMapper is the concrete implementation of FranchiseMapper
type franchiseMapper struct{}

// NewFranchiseMapper creates a new franchise mapper
func NewFranchiseMapper() FranchiseMapper {
	return &franchiseMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *franchiseMapper) ToEntity(model *models.FranchiseModel) (*franchise.Franchise, error) {
	if model == nil {
		return nil, nil
	}

	var address franchise.Address
	if err := unmarshalColumn(model.Address, &address); err != nil {
		return nil, fmt.Errorf("failed to unmarshal franchise address: %w", err)
	}

	var contact franchise.Contact
	if err := unmarshalColumn(model.Contact, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal franchise contact: %w", err)
	}

	var settings franchise.Settings
	if err := unmarshalColumn(model.Settings, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal franchise settings: %w", err)
	}

	entity, err := franchise.ReconstructFranchise(
		model.ID,
		model.SID,
		model.BusinessID,
		model.Name,
		address,
		contact,
		settings,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct franchise entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *franchiseMapper) ToModel(entity *franchise.Franchise) (*models.FranchiseModel, error) {
	if entity == nil {
		return nil, nil
	}

	addressJSON, err := marshalColumn(entity.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal franchise address: %w", err)
	}

	contactJSON, err := marshalColumn(entity.Contact())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal franchise contact: %w", err)
	}

	settingsJSON, err := marshalColumn(entity.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal franchise settings: %w", err)
	}

	return &models.FranchiseModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		BusinessID: entity.BusinessID(),
		Name:       entity.Name(),
		Address:    addressJSON,
		Contact:    contactJSON,
		Settings:   settingsJSON,
		IsActive:   entity.IsActive(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *franchiseMapper) ToEntities(franchiseModels []*models.FranchiseModel) ([]*franchise.Franchise, error) {
	entities := make([]*franchise.Franchise, 0, len(franchiseModels))
	for _, model := range franchiseModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
