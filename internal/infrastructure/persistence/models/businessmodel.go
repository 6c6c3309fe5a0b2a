package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"branchline/internal/shared/constants"
)

// BusinessModel represents the database persistence model for businesses.
type BusinessModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_business_sid"` // Stripe-style ID: biz_xxxxxxxx
	OrganizationID uint   `gorm:"not null;index:idx_business_organization_id"`
	BrandID        *uint  `gorm:"index:idx_business_brand_id"` // nullable: a business may skip the brand layer
	OwnerID        string `gorm:"not null;size:64;index:idx_business_owner_id"`
	Name           string `gorm:"not null;size:200;index:idx_business_name"`
	Industry       string `gorm:"not null;size:32;index:idx_business_industry"`
	Contact        datatypes.JSON
	Address        datatypes.JSON
	Subscription   datatypes.JSON
	IsActive       bool `gorm:"not null;index:idx_business_is_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (BusinessModel) TableName() string {
	return constants.TableBusinesses
}
