package organization

import "context"

// Repository defines the interface for organization persistence operations
type Repository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *Organization) error

	// Update updates an existing organization
	Update(ctx context.Context, org *Organization) error

	// Delete hard-deletes an organization by internal ID. Callers must
	// cascade-check active children first.
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves an organization by internal ID
	GetByID(ctx context.Context, id uint) (*Organization, error)

	// GetBySID retrieves an organization by Stripe-style ID
	GetBySID(ctx context.Context, sid string) (*Organization, error)

	// List retrieves organizations with optional filters, newest first.
	// Returns the page of organizations and the total matching count.
	List(ctx context.Context, filter ListFilter) ([]*Organization, int64, error)
}

// ListFilter defines the filter options for listing organizations
type ListFilter struct {
	IsActive *bool
	Limit    int
	Offset   int
}
