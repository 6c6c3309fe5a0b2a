// Package models contains the GORM persistence models. Nested document
// structures (settings, contact, limits) are stored as JSON columns; the
// mappers package is the anti-corruption layer between these models and the
// domain entities.
package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"branchline/internal/shared/constants"
)

// OrganizationModel represents the database persistence model for organizations.
type OrganizationModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_organization_sid"` // Stripe-style ID: org_xxxxxxxx
	Name         string `gorm:"not null;size:200;index:idx_organization_name"`
	Settings     datatypes.JSON
	Contact      datatypes.JSON
	Subscription datatypes.JSON
	Limits       datatypes.JSON
	IsActive     bool `gorm:"not null;index:idx_organization_is_active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}
