package tabs

import "errors"

var (
	// ErrInvalidConfiguration indicates a tab list that cannot be applied.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidBadge indicates a badge wire value that cannot be parsed.
	ErrInvalidBadge = errors.New("invalid badge value")
)
