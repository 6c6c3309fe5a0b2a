// Package mappers converts between domain entities and persistence models.
// Nested value objects are marshaled to JSON columns on the way in and
// rehydrated through the domain Reconstruct factories on the way out.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"branchline/internal/domain/organization"
	"branchline/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles the conversion between domain entities and persistence models
type OrganizationMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *organization.Organization) (*models.OrganizationModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.OrganizationModel) ([]*organization.Organization, error)
}

// organizationMapper is the concrete implementation of OrganizationMapper
type organizationMapper struct{}

// NewOrganizationMapper creates a new organization mapper
func NewOrganizationMapper() OrganizationMapper {
	return &organizationMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *organizationMapper) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}

	settings := organization.DefaultSettings()
	if err := unmarshalColumn(model.Settings, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization settings: %w", err)
	}

	var contact organization.Contact
	if err := unmarshalColumn(model.Contact, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization contact: %w", err)
	}

	var subscription organization.Subscription
	if err := unmarshalColumn(model.Subscription, &subscription); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization subscription: %w", err)
	}

	var limits organization.Limits
	if err := unmarshalColumn(model.Limits, &limits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization limits: %w", err)
	}

	entity, err := organization.ReconstructOrganization(
		model.ID,
		model.SID,
		model.Name,
		settings,
		contact,
		subscription,
		limits,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organization entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *organizationMapper) ToModel(entity *organization.Organization) (*models.OrganizationModel, error) {
	if entity == nil {
		return nil, nil
	}

	settingsJSON, err := marshalColumn(entity.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal organization settings: %w", err)
	}

	contactJSON, err := marshalColumn(entity.Contact())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal organization contact: %w", err)
	}

	subscriptionJSON, err := marshalColumn(entity.Subscription())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal organization subscription: %w", err)
	}

	limitsJSON, err := marshalColumn(entity.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal organization limits: %w", err)
	}

	return &models.OrganizationModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Name:         entity.Name(),
		Settings:     settingsJSON,
		Contact:      contactJSON,
		Subscription: subscriptionJSON,
		Limits:       limitsJSON,
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *organizationMapper) ToEntities(orgModels []*models.OrganizationModel) ([]*organization.Organization, error) {
	entities := make([]*organization.Organization, 0, len(orgModels))
	for _, model := range orgModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// marshalColumn serializes a value object into a JSON column.
func marshalColumn(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// unmarshalColumn deserializes a JSON column into a value object.
// An empty column leaves the destination untouched.
func unmarshalColumn(column datatypes.JSON, dest interface{}) error {
	if len(column) == 0 {
		return nil
	}
	return json.Unmarshal(column, dest)
}
