package franchise

import "context"

// Repository defines the interface for franchise persistence operations
type Repository interface {
	// Create creates a new franchise
	Create(ctx context.Context, f *Franchise) error

	// Update updates an existing franchise
	Update(ctx context.Context, f *Franchise) error

	// Delete hard-deletes a franchise by internal ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a franchise by internal ID
	GetByID(ctx context.Context, id uint) (*Franchise, error)

	// GetBySID retrieves a franchise by Stripe-style ID
	GetBySID(ctx context.Context, sid string) (*Franchise, error)

	// ListByBusiness retrieves franchises of a business ordered by name
	// ascending. Returns the page of franchises and the total matching count.
	ListByBusiness(ctx context.Context, businessID uint, filter ListFilter) ([]*Franchise, int64, error)

	// ListActiveByBusinessIDs retrieves all active franchises whose business
	// is in the given set, ordered by name ascending. Used by the hierarchy
	// aggregator; unpaginated by design.
	ListActiveByBusinessIDs(ctx context.Context, businessIDs []uint) ([]*Franchise, error)

	// CountActiveByBusiness counts active franchises under a business.
	CountActiveByBusiness(ctx context.Context, businessID uint) (int64, error)
}

// ListFilter defines the filter options for listing franchises
type ListFilter struct {
	IsActive *bool
	Limit    int
	Offset   int
}
