package business

import "errors"

var (
	// ErrBusinessNotFound indicates the business was not found
	ErrBusinessNotFound = errors.New("business not found")

	// ErrBusinessHasFranchises indicates the business cannot be deleted
	// because it still has active franchises
	ErrBusinessHasFranchises = errors.New("business has active franchises")

	// ErrBrandMismatch indicates the referenced brand belongs to a different
	// organization
	ErrBrandMismatch = errors.New("brand does not belong to the business organization")

	// ErrLimitExceeded indicates a child-entity quota is exhausted
	ErrLimitExceeded = errors.New("business limit reached")
)
