// Package organization provides the domain model for top-level tenant
// organizations, the root of the Organization → Brand → Business → Franchise
// hierarchy.
package organization

import (
	"fmt"
	"time"

	"branchline/internal/shared/id"
)

// Unlimited is the sentinel for a quota without a cap.
const Unlimited = -1

// Plan represents the subscription plan of an organization.
type Plan string

const (
	PlanFree         Plan = "free"
	PlanStarter      Plan = "starter"
	PlanProfessional Plan = "professional"
	PlanEnterprise   Plan = "enterprise"
)

// IsValid checks if the plan is a known plan.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// String returns the string representation of the plan.
func (p Plan) String() string {
	return string(p)
}

// DefaultLimits returns the quota set an organization starts with on this plan.
func (p Plan) DefaultLimits() Limits {
	switch p {
	case PlanStarter:
		return Limits{Brands: 3, Businesses: 10, Users: 25, StorageMB: 5120}
	case PlanProfessional:
		return Limits{Brands: 10, Businesses: 50, Users: 100, StorageMB: 20480}
	case PlanEnterprise:
		return Limits{Brands: Unlimited, Businesses: Unlimited, Users: Unlimited, StorageMB: Unlimited}
	default:
		return Limits{Brands: 1, Businesses: 2, Users: 5, StorageMB: 1024}
	}
}

// LimitType identifies a child-entity quota on an organization.
type LimitType string

const (
	LimitBrands     LimitType = "brands"
	LimitBusinesses LimitType = "businesses"
)

// Settings holds account-level preferences.
type Settings struct {
	Timezone string `json:"timezone"`
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// DefaultSettings returns the settings a new organization starts with.
func DefaultSettings() Settings {
	return Settings{Timezone: "UTC", Locale: "en-US", Currency: "USD"}
}

// Contact holds the organization's contact information.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Subscription describes the organization's current plan.
type Subscription struct {
	Plan   Plan   `json:"plan"`
	Status string `json:"status"`
}

// Limits caps the number of child entities. Each field is a non-negative
// cap or Unlimited (-1).
type Limits struct {
	Brands     int `json:"brands"`
	Businesses int `json:"businesses"`
	Users      int `json:"users"`
	StorageMB  int `json:"storage_mb"`
}

// Organization is the aggregate root for a tenant account.
type Organization struct {
	id           uint
	sid          string // Stripe-style ID: org_xxxxxxxx
	name         string
	settings     Settings
	contact      Contact
	subscription Subscription
	limits       Limits
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewOrganization creates a new organization on the free plan.
func NewOrganization(name string, contact Contact) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("organization contact email is required")
	}

	sid, err := id.NewOrganizationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Organization{
		sid:          sid,
		name:         name,
		settings:     DefaultSettings(),
		contact:      contact,
		subscription: Subscription{Plan: PlanFree, Status: "active"},
		limits:       PlanFree.DefaultLimits(),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructOrganization reconstructs an organization from persistence.
func ReconstructOrganization(
	id uint,
	sid string,
	name string,
	settings Settings,
	contact Contact,
	subscription Subscription,
	limits Limits,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("organization SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if !subscription.Plan.IsValid() {
		return nil, fmt.Errorf("invalid organization plan: %s", subscription.Plan)
	}

	return &Organization{
		id:           id,
		sid:          sid,
		name:         name,
		settings:     settings,
		contact:      contact,
		subscription: subscription,
		limits:       limits,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the internal organization ID.
func (o *Organization) ID() uint {
	return o.id
}

// SID returns the Stripe-style short ID.
func (o *Organization) SID() string {
	return o.sid
}

// Name returns the organization name.
func (o *Organization) Name() string {
	return o.name
}

// Settings returns the account-level settings.
func (o *Organization) Settings() Settings {
	return o.settings
}

// Contact returns the contact information.
func (o *Organization) Contact() Contact {
	return o.contact
}

// Subscription returns the current subscription.
func (o *Organization) Subscription() Subscription {
	return o.subscription
}

// Limits returns the configured child-entity quotas.
func (o *Organization) Limits() Limits {
	return o.limits
}

// IsActive reports whether the organization is active (not soft-deleted).
func (o *Organization) IsActive() bool {
	return o.isActive
}

// CreatedAt returns when the organization was created.
func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the organization was last updated.
func (o *Organization) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetID sets the organization ID (only for persistence layer use).
func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

// UpdateName updates the organization name.
func (o *Organization) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("organization name cannot be empty")
	}
	o.name = name
	o.touch()
	return nil
}

// UpdateSettings replaces the account-level settings.
func (o *Organization) UpdateSettings(settings Settings) {
	o.settings = settings
	o.touch()
}

// UpdateContact replaces the contact information.
func (o *Organization) UpdateContact(contact Contact) error {
	if contact.Email == "" {
		return fmt.Errorf("organization contact email cannot be empty")
	}
	o.contact = contact
	o.touch()
	return nil
}

// ChangePlan switches the subscription plan and resets limits to the plan
// defaults.
func (o *Organization) ChangePlan(plan Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid organization plan: %s", plan)
	}
	o.subscription.Plan = plan
	o.limits = plan.DefaultLimits()
	o.touch()
	return nil
}

// UpdateLimits overrides the configured quotas.
func (o *Organization) UpdateLimits(limits Limits) {
	o.limits = limits
	o.touch()
}

// Activate marks the organization active.
func (o *Organization) Activate() {
	o.isActive = true
	o.touch()
}

// Deactivate soft-deletes the organization. It stays addressable by ID but
// is excluded from active listings and derived counts.
func (o *Organization) Deactivate() {
	o.isActive = false
	o.touch()
}

// CheckLimit reports whether one more child of the given type may be created.
// activeCount is the current number of active children, supplied by the
// caller via an explicit count query.
func (o *Organization) CheckLimit(limitType LimitType, activeCount int64) (bool, error) {
	var limit int
	switch limitType {
	case LimitBrands:
		limit = o.limits.Brands
	case LimitBusinesses:
		limit = o.limits.Businesses
	default:
		return false, fmt.Errorf("unsupported organization limit type: %s", limitType)
	}

	if limit == Unlimited {
		return true, nil
	}
	return activeCount < int64(limit), nil
}

func (o *Organization) touch() {
	o.updatedAt = time.Now().UTC()
}
