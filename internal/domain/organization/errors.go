package organization

import "errors"

var (
	// ErrOrganizationNotFound indicates the organization was not found
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrOrganizationHasChildren indicates the organization cannot be deleted
	// because it still has active brands or businesses
	ErrOrganizationHasChildren = errors.New("organization has active child entities")

	// ErrLimitExceeded indicates a child-entity quota is exhausted
	ErrLimitExceeded = errors.New("organization limit reached")
)
