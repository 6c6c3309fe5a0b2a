// Package brand provides the domain model for brands, the optional grouping
// layer between an organization and its businesses.
package brand

import (
	"fmt"
	"time"

	"branchline/internal/shared/id"
)

// Unlimited is the sentinel for a quota without a cap.
const Unlimited = -1

// LimitType identifies a child-entity quota on a brand.
type LimitType string

const (
	LimitBusinesses LimitType = "businesses"
)

// Guidelines holds the brand's shared visual identity.
type Guidelines struct {
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}

// Limits caps the number of entities under the brand. Each field is a
// non-negative cap or Unlimited (-1).
type Limits struct {
	Businesses int `json:"businesses"`
	Users      int `json:"users"`
	Forms      int `json:"forms"`
}

// DefaultLimits returns the quota set a new brand starts with.
func DefaultLimits() Limits {
	return Limits{Businesses: Unlimited, Users: Unlimited, Forms: Unlimited}
}

// Brand groups businesses under an organization with a shared identity.
type Brand struct {
	id             uint
	sid            string // Stripe-style ID: brd_xxxxxxxx
	organizationID uint
	name           string
	guidelines     Guidelines
	limits         Limits
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBrand creates a new brand under the given organization.
func NewBrand(name string, organizationID uint) (*Brand, error) {
	if name == "" {
		return nil, fmt.Errorf("brand name is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}

	sid, err := id.NewBrandID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Brand{
		sid:            sid,
		organizationID: organizationID,
		name:           name,
		limits:         DefaultLimits(),
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructBrand reconstructs a brand from persistence.
func ReconstructBrand(
	id uint,
	sid string,
	organizationID uint,
	name string,
	guidelines Guidelines,
	limits Limits,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Brand, error) {
	if id == 0 {
		return nil, fmt.Errorf("brand ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("brand SID is required")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("brand name is required")
	}

	return &Brand{
		id:             id,
		sid:            sid,
		organizationID: organizationID,
		name:           name,
		guidelines:     guidelines,
		limits:         limits,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the internal brand ID.
func (b *Brand) ID() uint {
	return b.id
}

// SID returns the Stripe-style short ID.
func (b *Brand) SID() string {
	return b.sid
}

// OrganizationID returns the owning organization's internal ID.
func (b *Brand) OrganizationID() uint {
	return b.organizationID
}

// Name returns the brand name.
func (b *Brand) Name() string {
	return b.name
}

// Guidelines returns the brand guidelines.
func (b *Brand) Guidelines() Guidelines {
	return b.guidelines
}

// Limits returns the configured quotas.
func (b *Brand) Limits() Limits {
	return b.limits
}

// IsActive reports whether the brand is active (not soft-deleted).
func (b *Brand) IsActive() bool {
	return b.isActive
}

// CreatedAt returns when the brand was created.
func (b *Brand) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns when the brand was last updated.
func (b *Brand) UpdatedAt() time.Time {
	return b.updatedAt
}

// SetID sets the brand ID (only for persistence layer use).
func (b *Brand) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("brand ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("brand ID cannot be zero")
	}
	b.id = id
	return nil
}

// UpdateName updates the brand name.
func (b *Brand) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("brand name cannot be empty")
	}
	b.name = name
	b.touch()
	return nil
}

// UpdateGuidelines replaces the brand guidelines.
func (b *Brand) UpdateGuidelines(guidelines Guidelines) {
	b.guidelines = guidelines
	b.touch()
}

// UpdateLimits overrides the configured quotas.
func (b *Brand) UpdateLimits(limits Limits) {
	b.limits = limits
	b.touch()
}

// Activate marks the brand active.
func (b *Brand) Activate() {
	b.isActive = true
	b.touch()
}

// Deactivate soft-deletes the brand.
func (b *Brand) Deactivate() {
	b.isActive = false
	b.touch()
}

// CheckLimit reports whether one more child of the given type may be created
// under this brand. activeCount is supplied by the caller via an explicit
// count query.
func (b *Brand) CheckLimit(limitType LimitType, activeCount int64) (bool, error) {
	var limit int
	switch limitType {
	case LimitBusinesses:
		limit = b.limits.Businesses
	default:
		return false, fmt.Errorf("unsupported brand limit type: %s", limitType)
	}

	if limit == Unlimited {
		return true, nil
	}
	return activeCount < int64(limit), nil
}

func (b *Brand) touch() {
	b.updatedAt = time.Now().UTC()
}
