// Package dto defines the request and response shapes of the brand API.
package dto

import (
	"time"

	"branchline/internal/domain/brand"
)

// GuidelinesDTO carries the brand visual identity document.
type GuidelinesDTO struct {
	LogoURL        string `json:"logo_url,omitempty" binding:"omitempty,url"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}

// LimitsDTO carries the brand quota document. -1 means unlimited.
type LimitsDTO struct {
	Businesses int `json:"businesses" binding:"gte=-1"`
	Users      int `json:"users" binding:"gte=-1"`
	Forms      int `json:"forms" binding:"gte=-1"`
}

// CreateBrandRequest represents a request to create a new brand.
// OrganizationID is the organization's public ID.
type CreateBrandRequest struct {
	Name           string         `json:"name" binding:"required,min=1,max=200"`
	OrganizationID string         `json:"organization_id" binding:"required"`
	Guidelines     *GuidelinesDTO `json:"guidelines,omitempty"`
}

// UpdateBrandRequest represents a partial update; nil fields are left
// unchanged.
type UpdateBrandRequest struct {
	Name       *string        `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Guidelines *GuidelinesDTO `json:"guidelines,omitempty"`
	Limits     *LimitsDTO     `json:"limits,omitempty"`
	IsActive   *bool          `json:"is_active,omitempty"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	Name           string        `json:"name"`
	Guidelines     GuidelinesDTO `json:"guidelines"`
	Limits         LimitsDTO     `json:"limits"`
	IsActive       bool          `json:"is_active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewBrandResponse maps a domain brand to its API shape. organizationSID is
// the public ID of the owning organization.
func NewBrandResponse(b *brand.Brand, organizationSID string) *BrandResponse {
	guidelines := b.Guidelines()
	limits := b.Limits()

	return &BrandResponse{
		ID:             b.SID(),
		OrganizationID: organizationSID,
		Name:           b.Name(),
		Guidelines: GuidelinesDTO{
			LogoURL:        guidelines.LogoURL,
			PrimaryColor:   guidelines.PrimaryColor,
			SecondaryColor: guidelines.SecondaryColor,
		},
		Limits: LimitsDTO{
			Businesses: limits.Businesses,
			Users:      limits.Users,
			Forms:      limits.Forms,
		},
		IsActive:  b.IsActive(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

// NewBrandResponses maps a list of brands owned by the same organization.
func NewBrandResponses(brands []*brand.Brand, organizationSID string) []*BrandResponse {
	responses := make([]*BrandResponse, 0, len(brands))
	for _, b := range brands {
		responses = append(responses, NewBrandResponse(b, organizationSID))
	}
	return responses
}
