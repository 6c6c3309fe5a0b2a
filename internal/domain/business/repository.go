package business

import "context"

// Repository defines the interface for business persistence operations
type Repository interface {
	// Create creates a new business
	Create(ctx context.Context, b *Business) error

	// Update updates an existing business
	Update(ctx context.Context, b *Business) error

	// Delete hard-deletes a business by internal ID. Callers must
	// cascade-check active franchises first.
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a business by internal ID
	GetByID(ctx context.Context, id uint) (*Business, error)

	// GetBySID retrieves a business by Stripe-style ID
	GetBySID(ctx context.Context, sid string) (*Business, error)

	// ListByOrganization retrieves businesses of an organization newest
	// first. Filtering by BrandID excludes unbranded businesses. Returns the
	// page of businesses and the total matching count.
	ListByOrganization(ctx context.Context, organizationID uint, filter ListFilter) ([]*Business, int64, error)

	// CountActiveByOrganization counts active businesses under an organization.
	CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error)

	// CountActiveByBrand counts active businesses under a brand.
	CountActiveByBrand(ctx context.Context, brandID uint) (int64, error)
}

// ListFilter defines the filter options for listing businesses
type ListFilter struct {
	BrandID  *uint
	IsActive *bool
	Limit    int
	Offset   int
}
