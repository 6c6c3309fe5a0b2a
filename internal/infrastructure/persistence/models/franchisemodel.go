package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"branchline/internal/shared/constants"
)

// FranchiseModel represents the database persistence model for franchises.
type FranchiseModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_franchise_sid"` // Stripe-style ID: frn_xxxxxxxx
	BusinessID uint   `gorm:"not null;index:idx_franchise_business_id"`
	Name       string `gorm:"not null;size:200;index:idx_franchise_name"`
	Address    datatypes.JSON
	Contact    datatypes.JSON
	Settings   datatypes.JSON
	IsActive   bool `gorm:"not null;index:idx_franchise_is_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (FranchiseModel) TableName() string {
	return constants.TableFranchises
}
