package franchise

import "errors"

var (
	// ErrFranchiseNotFound indicates the franchise was not found
	ErrFranchiseNotFound = errors.New("franchise not found")
)
