package brand

import "context"

// Repository defines the interface for brand persistence operations
type Repository interface {
	// Create creates a new brand
	Create(ctx context.Context, b *Brand) error

	// Update updates an existing brand
	Update(ctx context.Context, b *Brand) error

	// Delete hard-deletes a brand by internal ID. Callers must cascade-check
	// active businesses first.
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a brand by internal ID
	GetByID(ctx context.Context, id uint) (*Brand, error)

	// GetBySID retrieves a brand by Stripe-style ID
	GetBySID(ctx context.Context, sid string) (*Brand, error)

	// ListByOrganization retrieves the brands of an organization ordered by
	// name ascending. When activeOnly is true, soft-deleted brands are
	// excluded.
	ListByOrganization(ctx context.Context, organizationID uint, activeOnly bool) ([]*Brand, error)

	// CountActiveByOrganization counts active brands under an organization.
	// Used by the organization quota checker; derived counts are never stored.
	CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error)
}
