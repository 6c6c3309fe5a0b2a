package brand

import "errors"

var (
	// ErrBrandNotFound indicates the brand was not found
	ErrBrandNotFound = errors.New("brand not found")

	// ErrBrandHasBusinesses indicates the brand cannot be deleted because it
	// still has active businesses
	ErrBrandHasBusinesses = errors.New("brand has active businesses")

	// ErrLimitExceeded indicates a child-entity quota is exhausted
	ErrLimitExceeded = errors.New("brand limit reached")
)
