package employee

import "errors"

var (
	// ErrUnknownRole is returned when a role is not one of the six defined values.
	ErrUnknownRole = errors.New("unknown employee role")
)
