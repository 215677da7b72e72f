package roster

import "errors"

// Common errors
var (
	ErrAllocation     = errors.New("allocation failed")
	ErrMemberNotFound = errors.New("member not found")
)
