// Package dto defines the request and response shapes of the business API.
package dto

import (
	"time"

	"branchline/internal/domain/business"
)

// ContactDTO carries the business contact document.
type ContactDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty" binding:"omitempty,url"`
}

// AddressDTO carries the business headquarters address. All fields are
// optional.
type AddressDTO struct {
	Street    string  `json:"street,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
}

// LimitsDTO carries the business quota document. -1 means unlimited.
type LimitsDTO struct {
	Franchises  int `json:"franchises" binding:"gte=-1"`
	Forms       int `json:"forms" binding:"gte=-1"`
	Submissions int `json:"submissions" binding:"gte=-1"`
	Staff       int `json:"staff" binding:"gte=-1"`
	StorageMB   int `json:"storage_mb" binding:"gte=-1"`
}

// SubscriptionDTO carries the business plan document.
type SubscriptionDTO struct {
	Plan   string    `json:"plan"`
	Status string    `json:"status"`
	Limits LimitsDTO `json:"limits"`
}

// CreateBusinessRequest represents a request to create a new business.
// OrganizationID and BrandID are public IDs; BrandID is optional.
type CreateBusinessRequest struct {
	Name           string      `json:"name" binding:"required,min=1,max=200"`
	OrganizationID string      `json:"organization_id" binding:"required"`
	BrandID        *string     `json:"brand_id,omitempty"`
	OwnerID        string      `json:"owner_id" binding:"required"`
	Industry       string      `json:"industry" binding:"required"`
	Contact        ContactDTO  `json:"contact" binding:"required"`
	Address        *AddressDTO `json:"address,omitempty"`
}

// UpdateBusinessRequest represents a partial update; nil fields are left
// unchanged. Setting BrandID to an empty string detaches the brand.
type UpdateBusinessRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	BrandID      *string          `json:"brand_id,omitempty"`
	Industry     *string          `json:"industry,omitempty"`
	Contact      *ContactDTO      `json:"contact,omitempty"`
	Address      *AddressDTO      `json:"address,omitempty"`
	Subscription *SubscriptionDTO `json:"subscription,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// ListBusinessesQuery carries the list filters parsed from the query string.
// BrandSID filters to businesses of one brand; unbranded businesses never
// match a brand filter.
type ListBusinessesQuery struct {
	BrandSID *string
	IsActive *bool
	Limit    int
	Offset   int
}

// BusinessResponse represents a business in API responses
type BusinessResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	BrandID        *string         `json:"brand_id,omitempty"`
	OwnerID        string          `json:"owner_id"`
	Name           string          `json:"name"`
	Industry       string          `json:"industry"`
	Contact        ContactDTO      `json:"contact"`
	Address        AddressDTO      `json:"address"`
	Subscription   SubscriptionDTO `json:"subscription"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewBusinessResponse maps a domain business to its API shape. brandSID is
// nil for unbranded businesses.
func NewBusinessResponse(b *business.Business, organizationSID string, brandSID *string) *BusinessResponse {
	contact := b.Contact()
	address := b.Address()
	subscription := b.Subscription()

	return &BusinessResponse{
		ID:             b.SID(),
		OrganizationID: organizationSID,
		BrandID:        brandSID,
		OwnerID:        b.OwnerID(),
		Name:           b.Name(),
		Industry:       b.Industry().String(),
		Contact: ContactDTO{
			Email:   contact.Email,
			Phone:   contact.Phone,
			Website: contact.Website,
		},
		Address: AddressDTO{
			Street:    address.Street,
			City:      address.City,
			State:     address.State,
			Country:   address.Country,
			ZipCode:   address.ZipCode,
			Latitude:  address.Latitude,
			Longitude: address.Longitude,
		},
		Subscription: SubscriptionDTO{
			Plan:   subscription.Plan,
			Status: subscription.Status,
			Limits: LimitsDTO{
				Franchises:  subscription.Limits.Franchises,
				Forms:       subscription.Limits.Forms,
				Submissions: subscription.Limits.Submissions,
				Staff:       subscription.Limits.Staff,
				StorageMB:   subscription.Limits.StorageMB,
			},
		},
		IsActive:  b.IsActive(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
