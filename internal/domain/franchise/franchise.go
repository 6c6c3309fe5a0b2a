// Package franchise provides the domain model for franchises: physical
// locations belonging to one business.
package franchise

import (
	"fmt"
	"strings"
	"time"

	"branchline/internal/shared/id"
)

// Features flags the amenities a location offers.
type Features struct {
	Wifi             bool `json:"wifi"`
	Parking          bool `json:"parking"`
	Delivery         bool `json:"delivery"`
	Takeout          bool `json:"takeout"`
	WheelchairAccess bool `json:"wheelchair_access"`
}

// DayHours is one weekday's operating-hours entry. Open and Close are
// zero-padded "HH:MM" strings compared lexicographically.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OperatingHours maps lowercase weekday names ("monday" … "sunday") to that
// day's hours. Days without an entry are treated as closed.
type OperatingHours map[string]DayHours

// Settings holds the location-level configuration.
type Settings struct {
	Capacity       int            `json:"capacity"`
	Features       Features       `json:"features"`
	OperatingHours OperatingHours `json:"operating_hours,omitempty"`
}

// Contact holds the location's contact information.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Address is the physical location. All fields including coordinates are
// required at creation; there is no default position.
type Address struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the address is complete.
func (a Address) Validate() error {
	switch {
	case a.Street == "":
		return fmt.Errorf("address street is required")
	case a.City == "":
		return fmt.Errorf("address city is required")
	case a.State == "":
		return fmt.Errorf("address state is required")
	case a.Country == "":
		return fmt.Errorf("address country is required")
	case a.ZipCode == "":
		return fmt.Errorf("address zip code is required")
	}
	return nil
}

// Franchise is a physical location under a business.
type Franchise struct {
	id         uint
	sid        string // Stripe-style ID: frn_xxxxxxxx
	businessID uint
	name       string
	address    Address
	contact    Contact
	settings   Settings
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewFranchise creates a new franchise under the given business.
func NewFranchise(name string, businessID uint, address Address) (*Franchise, error) {
	if name == "" {
		return nil, fmt.Errorf("franchise name is required")
	}
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	sid, err := id.NewFranchiseID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Franchise{
		sid:        sid,
		businessID: businessID,
		name:       name,
		address:    address,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructFranchise reconstructs a franchise from persistence.
func ReconstructFranchise(
	id uint,
	sid string,
	businessID uint,
	name string,
	address Address,
	contact Contact,
	settings Settings,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Franchise, error) {
	if id == 0 {
		return nil, fmt.Errorf("franchise ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("franchise SID is required")
	}
	if businessID == 0 {
		return nil, fmt.Errorf("business ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("franchise name is required")
	}

	return &Franchise{
		id:         id,
		sid:        sid,
		businessID: businessID,
		name:       name,
		address:    address,
		contact:    contact,
		settings:   settings,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the internal franchise ID.
func (f *Franchise) ID() uint {
	return f.id
}

// SID returns the Stripe-style short ID.
func (f *Franchise) SID() string {
	return f.sid
}

// BusinessID returns the owning business's internal ID.
func (f *Franchise) BusinessID() uint {
	return f.businessID
}

// Name returns the franchise name.
func (f *Franchise) Name() string {
	return f.name
}

// Address returns the physical address.
func (f *Franchise) Address() Address {
	return f.address
}

// Contact returns the location contact information.
func (f *Franchise) Contact() Contact {
	return f.contact
}

// Settings returns the location-level settings.
func (f *Franchise) Settings() Settings {
	return f.settings
}

// IsActive reports whether the franchise is active (not soft-deleted).
func (f *Franchise) IsActive() bool {
	return f.isActive
}

// CreatedAt returns when the franchise was created.
func (f *Franchise) CreatedAt() time.Time {
	return f.createdAt
}

// UpdatedAt returns when the franchise was last updated.
func (f *Franchise) UpdatedAt() time.Time {
	return f.updatedAt
}

// SetID sets the franchise ID (only for persistence layer use).
func (f *Franchise) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("franchise ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("franchise ID cannot be zero")
	}
	f.id = id
	return nil
}

// UpdateName updates the franchise name.
func (f *Franchise) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("franchise name cannot be empty")
	}
	f.name = name
	f.touch()
	return nil
}

// UpdateAddress replaces the address. The replacement must be complete.
func (f *Franchise) UpdateAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	f.address = address
	f.touch()
	return nil
}

// UpdateContact replaces the location contact information.
func (f *Franchise) UpdateContact(contact Contact) {
	f.contact = contact
	f.touch()
}

// UpdateSettings replaces the location-level settings.
func (f *Franchise) UpdateSettings(settings Settings) {
	f.settings = settings
	f.touch()
}

// Activate marks the franchise active.
func (f *Franchise) Activate() {
	f.isActive = true
	f.touch()
}

// Deactivate soft-deletes the franchise.
func (f *Franchise) Deactivate() {
	f.isActive = false
	f.touch()
}

// IsOpenAt reports whether the location is open at the given time. The
// weekday entry's closed flag wins; otherwise the time of day must fall
// within [open, close] inclusive. Days without an entry are closed.
func (f *Franchise) IsOpenAt(at time.Time) bool {
	weekday := strings.ToLower(at.Weekday().String())
	hours, ok := f.settings.OperatingHours[weekday]
	if !ok || hours.Closed {
		return false
	}
	if hours.Open == "" || hours.Close == "" {
		return false
	}

	// Zero-padded "HH:MM" strings order lexicographically.
	timeOfDay := at.Format("15:04")
	return hours.Open <= timeOfDay && timeOfDay <= hours.Close
}

func (f *Franchise) touch() {
	f.updatedAt = time.Now().UTC()
}
