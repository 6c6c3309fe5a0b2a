// Package dto defines the request and response shapes of the franchise API.
package dto

import (
	"time"

	"branchline/internal/domain/franchise"
)

// AddressDTO carries the franchise location. Every field including the
// coordinates is required at creation; coordinates are pointers so an
// absent value is distinguishable from a legitimate 0.
type AddressDTO struct {
	Street    string   `json:"street" binding:"required"`
	City      string   `json:"city" binding:"required"`
	State     string   `json:"state" binding:"required"`
	Country   string   `json:"country" binding:"required"`
	ZipCode   string   `json:"zip_code" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// HasCoordinates reports whether both coordinates are present.
func (a AddressDTO) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// ContactDTO carries the franchise contact document.
type ContactDTO struct {
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// FeaturesDTO flags the amenities a location offers.
type FeaturesDTO struct {
	Wifi             bool `json:"wifi"`
	Parking          bool `json:"parking"`
	Delivery         bool `json:"delivery"`
	Takeout          bool `json:"takeout"`
	WheelchairAccess bool `json:"wheelchair_access"`
}

// DayHoursDTO is one weekday's operating-hours entry.
type DayHoursDTO struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// SettingsDTO carries the location-level configuration. OperatingHours maps
// lowercase weekday names to that day's hours.
type SettingsDTO struct {
	Capacity       int                    `json:"capacity" binding:"gte=0"`
	Features       FeaturesDTO            `json:"features"`
	OperatingHours map[string]DayHoursDTO `json:"operating_hours,omitempty"`
}

// CreateFranchiseRequest represents a request to create a new franchise.
// BusinessID is the business's public ID.
type CreateFranchiseRequest struct {
	Name       string       `json:"name" binding:"required,min=1,max=200"`
	BusinessID string       `json:"business_id" binding:"required"`
	Address    AddressDTO   `json:"address" binding:"required"`
	Contact    *ContactDTO  `json:"contact,omitempty"`
	Settings   *SettingsDTO `json:"settings,omitempty"`
}

// UpdateFranchiseRequest represents a partial update; nil fields are left
// unchanged. A present address must be complete.
type UpdateFranchiseRequest struct {
	Name     *string      `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Address  *AddressDTO  `json:"address,omitempty"`
	Contact  *ContactDTO  `json:"contact,omitempty"`
	Settings *SettingsDTO `json:"settings,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

// ListFranchisesQuery carries the list filters parsed from the query string.
type ListFranchisesQuery struct {
	IsActive *bool
	Limit    int
	Offset   int
}

// FranchiseResponse represents a franchise in API responses
type FranchiseResponse struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"business_id"`
	Name       string      `json:"name"`
	Address    AddressDTO  `json:"address"`
	Contact    ContactDTO  `json:"contact"`
	Settings   SettingsDTO `json:"settings"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OpenStatusResponse reports whether a franchise is open at a point in time.
type OpenStatusResponse struct {
	ID     string    `json:"id"`
	Open   bool      `json:"open"`
	At     time.Time `json:"at"`
	Active bool      `json:"active"`
}

// ToDomainAddress converts the DTO to the domain value object. Callers must
// check HasCoordinates first; absent coordinates map to 0.
func (a AddressDTO) ToDomainAddress() franchise.Address {
	addr := franchise.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		ZipCode: a.ZipCode,
	}
	if a.Latitude != nil {
		addr.Latitude = *a.Latitude
	}
	if a.Longitude != nil {
		addr.Longitude = *a.Longitude
	}
	return addr
}

// ToDomainSettings converts the DTO to the domain value object.
func (s SettingsDTO) ToDomainSettings() franchise.Settings {
	settings := franchise.Settings{
		Capacity: s.Capacity,
		Features: franchise.Features{
			Wifi:             s.Features.Wifi,
			Parking:          s.Features.Parking,
			Delivery:         s.Features.Delivery,
			Takeout:          s.Features.Takeout,
			WheelchairAccess: s.Features.WheelchairAccess,
		},
	}
	if len(s.OperatingHours) > 0 {
		settings.OperatingHours = make(franchise.OperatingHours, len(s.OperatingHours))
		for day, hours := range s.OperatingHours {
			settings.OperatingHours[day] = franchise.DayHours{
				Open:   hours.Open,
				Close:  hours.Close,
				Closed: hours.Closed,
			}
		}
	}
	return settings
}

// NewFranchiseResponse maps a domain franchise to its API shape. businessSID
// is the public ID of the owning business.
func NewFranchiseResponse(f *franchise.Franchise, businessSID string) *FranchiseResponse {
	address := f.Address()
	contact := f.Contact()
	settings := f.Settings()

	resp := &FranchiseResponse{
		ID:         f.SID(),
		BusinessID: businessSID,
		Name:       f.Name(),
		Address: AddressDTO{
			Street:    address.Street,
			City:      address.City,
			State:     address.State,
			Country:   address.Country,
			ZipCode:   address.ZipCode,
			Latitude:  &address.Latitude,
			Longitude: &address.Longitude,
		},
		Contact: ContactDTO{
			Email: contact.Email,
			Phone: contact.Phone,
		},
		Settings: SettingsDTO{
			Capacity: settings.Capacity,
			Features: FeaturesDTO{
				Wifi:             settings.Features.Wifi,
				Parking:          settings.Features.Parking,
				Delivery:         settings.Features.Delivery,
				Takeout:          settings.Features.Takeout,
				WheelchairAccess: settings.Features.WheelchairAccess,
			},
		},
		IsActive:  f.IsActive(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
	if len(settings.OperatingHours) > 0 {
		resp.Settings.OperatingHours = make(map[string]DayHoursDTO, len(settings.OperatingHours))
		for day, hours := range settings.OperatingHours {
			resp.Settings.OperatingHours[day] = DayHoursDTO{
				Open:   hours.Open,
				Close:  hours.Close,
				Closed: hours.Closed,
			}
		}
	}
	return resp
}

// NewFranchiseResponses maps a list of franchises owned by the same business.
func NewFranchiseResponses(franchises []*franchise.Franchise, businessSID string) []*FranchiseResponse {
	responses := make([]*FranchiseResponse, 0, len(franchises))
	for _, f := range franchises {
		responses = append(responses, NewFranchiseResponse(f, businessSID))
	}
	return responses
}
