// Package business provides the domain model for businesses: concrete
// commercial entities under one organization and optionally one brand.
package business

import (
	"fmt"
	"time"

	"branchline/internal/shared/id"
)

// Unlimited is the sentinel for a quota without a cap.
const Unlimited = -1

// LimitType identifies a child-entity quota on a business.
type LimitType string

const (
	LimitFranchises LimitType = "franchises"
	LimitStaff      LimitType = "staff"
)

// Contact holds the business contact information.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Address holds the business headquarters location.
type Address struct {
	Street    string  `json:"street,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Limits caps the number of entities under the business. Each field is a
// non-negative cap or Unlimited (-1).
type Limits struct {
	Franchises  int `json:"franchises"`
	Forms       int `json:"forms"`
	Submissions int `json:"submissions"`
	Staff       int `json:"staff"`
	StorageMB   int `json:"storage_mb"`
}

// DefaultLimits returns the quota set a new business starts with.
func DefaultLimits() Limits {
	return Limits{Franchises: 3, Forms: 10, Submissions: 1000, Staff: 10, StorageMB: 1024}
}

// Subscription describes the business's own plan and quotas.
type Subscription struct {
	Plan   string `json:"plan"`
	Status string `json:"status"`
	Limits Limits `json:"limits"`
}

// Business is a concrete commercial entity, always tied to an organization
// and at most one brand.
type Business struct {
	id             uint
	sid            string // Stripe-style ID: biz_xxxxxxxx
	organizationID uint
	brandID        *uint // nullable: a business may skip the brand layer
	ownerID        string
	name           string
	industry       Industry
	contact        Contact
	address        Address
	subscription   Subscription
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBusiness creates a new business under the given organization.
func NewBusiness(name string, organizationID uint, ownerID string, industry Industry, contact Contact) (*Business, error) {
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !industry.IsValid() {
		return nil, fmt.Errorf("invalid industry: %s", industry)
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("business contact email is required")
	}

	sid, err := id.NewBusinessID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Business{
		sid:            sid,
		organizationID: organizationID,
		ownerID:        ownerID,
		name:           name,
		industry:       industry,
		contact:        contact,
		subscription:   Subscription{Plan: "free", Status: "active", Limits: DefaultLimits()},
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructBusiness reconstructs a business from persistence.
func ReconstructBusiness(
	id uint,
	sid string,
	organizationID uint,
	brandID *uint,
	ownerID string,
	name string,
	industry Industry,
	contact Contact,
	address Address,
	subscription Subscription,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Business, error) {
	if id == 0 {
		return nil, fmt.Errorf("business ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("business SID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if !industry.IsValid() {
		return nil, fmt.Errorf("invalid industry: %s", industry)
	}

	return &Business{
		id:             id,
		sid:            sid,
		organizationID: organizationID,
		brandID:        brandID,
		ownerID:        ownerID,
		name:           name,
		industry:       industry,
		contact:        contact,
		address:        address,
		subscription:   subscription,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the internal business ID.
func (b *Business) ID() uint {
	return b.id
}

// SID returns the Stripe-style short ID.
func (b *Business) SID() string {
	return b.sid
}

// OrganizationID returns the owning organization's internal ID.
func (b *Business) OrganizationID() uint {
	return b.organizationID
}

// BrandID returns the internal ID of the owning brand, or nil when the
// business skips the brand layer.
func (b *Business) BrandID() *uint {
	return b.brandID
}

// OwnerID returns the opaque principal ID of the business owner.
func (b *Business) OwnerID() string {
	return b.ownerID
}

// Name returns the business name.
func (b *Business) Name() string {
	return b.name
}

// Industry returns the industry classification.
func (b *Business) Industry() Industry {
	return b.industry
}

// Contact returns the contact information.
func (b *Business) Contact() Contact {
	return b.contact
}

// Address returns the headquarters address.
func (b *Business) Address() Address {
	return b.address
}

// Subscription returns the business subscription including quotas.
func (b *Business) Subscription() Subscription {
	return b.subscription
}

// IsActive reports whether the business is active (not soft-deleted).
func (b *Business) IsActive() bool {
	return b.isActive
}

// CreatedAt returns when the business was created.
func (b *Business) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns when the business was last updated.
func (b *Business) UpdatedAt() time.Time {
	return b.updatedAt
}

// SetID sets the business ID (only for persistence layer use).
func (b *Business) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("business ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("business ID cannot be zero")
	}
	b.id = id
	return nil
}

// AssignBrand attaches the business to a brand.
func (b *Business) AssignBrand(brandID uint) error {
	if brandID == 0 {
		return fmt.Errorf("brand ID cannot be zero")
	}
	b.brandID = &brandID
	b.touch()
	return nil
}

// DetachBrand removes the brand association.
func (b *Business) DetachBrand() {
	b.brandID = nil
	b.touch()
}

// UpdateName updates the business name.
func (b *Business) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("business name cannot be empty")
	}
	b.name = name
	b.touch()
	return nil
}

// UpdateIndustry updates the industry classification.
func (b *Business) UpdateIndustry(industry Industry) error {
	if !industry.IsValid() {
		return fmt.Errorf("invalid industry: %s", industry)
	}
	b.industry = industry
	b.touch()
	return nil
}

// UpdateContact replaces the contact information.
func (b *Business) UpdateContact(contact Contact) error {
	if contact.Email == "" {
		return fmt.Errorf("business contact email cannot be empty")
	}
	b.contact = contact
	b.touch()
	return nil
}

// UpdateAddress replaces the headquarters address.
func (b *Business) UpdateAddress(address Address) {
	b.address = address
	b.touch()
}

// UpdateSubscription replaces the subscription including quotas.
func (b *Business) UpdateSubscription(subscription Subscription) {
	b.subscription = subscription
	b.touch()
}

// Activate marks the business active.
func (b *Business) Activate() {
	b.isActive = true
	b.touch()
}

// Deactivate soft-deletes the business.
func (b *Business) Deactivate() {
	b.isActive = false
	b.touch()
}

// CheckLimit reports whether one more child of the given type may be created
// under this business. activeCount is supplied by the caller via an explicit
// count query.
func (b *Business) CheckLimit(limitType LimitType, activeCount int64) (bool, error) {
	var limit int
	switch limitType {
	case LimitFranchises:
		limit = b.subscription.Limits.Franchises
	case LimitStaff:
		limit = b.subscription.Limits.Staff
	default:
		return false, fmt.Errorf("unsupported business limit type: %s", limitType)
	}

	if limit == Unlimited {
		return true, nil
	}
	return activeCount < int64(limit), nil
}

func (b *Business) touch() {
	b.updatedAt = time.Now().UTC()
}
