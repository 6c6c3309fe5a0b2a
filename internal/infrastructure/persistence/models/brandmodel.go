package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"branchline/internal/shared/constants"
)

// BrandModel represents the database persistence model for brands.
type BrandModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_brand_sid"` // Stripe-style ID: brd_xxxxxxxx
	OrganizationID uint   `gorm:"not null;index:idx_brand_organization_id"`
	Name           string `gorm:"not null;size:200;index:idx_brand_name"`
	Guidelines     datatypes.JSON
	Limits         datatypes.JSON
	IsActive       bool `gorm:"not null;index:idx_brand_is_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (BrandModel) TableName() string {
	return constants.TableBrands
}
