// Package dto defines the request and response shapes of the organization
// API. Update requests use pointer fields so only keys present in the request
// body are applied.
package dto

import (
	"time"

	"branchline/internal/domain/organization"
)

// ContactDTO carries the organization contact document.
type ContactDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty" binding:"omitempty,url"`
}

// SettingsDTO carries the organization settings document.
type SettingsDTO struct {
	Timezone string `json:"timezone,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// LimitsDTO carries the organization quota document. -1 means unlimited.
type LimitsDTO struct {
	Brands     int `json:"brands" binding:"gte=-1"`
	Businesses int `json:"businesses" binding:"gte=-1"`
	Users      int `json:"users" binding:"gte=-1"`
	StorageMB  int `json:"storage_mb" binding:"gte=-1"`
}

// SubscriptionDTO carries the organization plan document.
type SubscriptionDTO struct {
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

// CreateOrganizationRequest represents a request to create a new organization
type CreateOrganizationRequest struct {
	Name    string     `json:"name" binding:"required,min=1,max=200"`
	Contact ContactDTO `json:"contact" binding:"required"`
}

// UpdateOrganizationRequest represents a partial update; nil fields are left
// unchanged.
type UpdateOrganizationRequest struct {
	Name     *string      `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Settings *SettingsDTO `json:"settings,omitempty"`
	Contact  *ContactDTO  `json:"contact,omitempty"`
	Plan     *string      `json:"plan,omitempty" binding:"omitempty,oneof=free starter professional enterprise"`
	Limits   *LimitsDTO   `json:"limits,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

// ListOrganizationsQuery carries the list filters parsed from the query string.
type ListOrganizationsQuery struct {
	IsActive *bool
	Limit    int
	Offset   int
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Settings     SettingsDTO     `json:"settings"`
	Contact      ContactDTO      `json:"contact"`
	Subscription SubscriptionDTO `json:"subscription"`
	Limits       LimitsDTO       `json:"limits"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewOrganizationResponse maps a domain organization to its API shape.
func NewOrganizationResponse(org *organization.Organization) *OrganizationResponse {
	settings := org.Settings()
	contact := org.Contact()
	subscription := org.Subscription()
	limits := org.Limits()

	return &OrganizationResponse{
		ID:   org.SID(),
		Name: org.Name(),
		Settings: SettingsDTO{
			Timezone: settings.Timezone,
			Locale:   settings.Locale,
			Currency: settings.Currency,
		},
		Contact: ContactDTO{
			Email:   contact.Email,
			Phone:   contact.Phone,
			Website: contact.Website,
		},
		Subscription: SubscriptionDTO{
			Plan:   subscription.Plan.String(),
			Status: subscription.Status,
		},
		Limits: LimitsDTO{
			Brands:     limits.Brands,
			Businesses: limits.Businesses,
			Users:      limits.Users,
			StorageMB:  limits.StorageMB,
		},
		IsActive:  org.IsActive(),
		CreatedAt: org.CreatedAt(),
		UpdatedAt: org.UpdatedAt(),
	}
}

// NewOrganizationResponses maps a page of organizations.
func NewOrganizationResponses(orgs []*organization.Organization) []*OrganizationResponse {
	responses := make([]*OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, NewOrganizationResponse(org))
	}
	return responses
}
