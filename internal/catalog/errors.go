package catalog

import "errors"

var (
	// ErrInvalidRef means the asset reference is empty or escapes the
	// catalog root.
	ErrInvalidRef = errors.New("invalid asset reference")
	// ErrUnknownAsset means no bundled or on-disk asset matches the
	// reference.
	ErrUnknownAsset = errors.New("unknown bundled asset")
)
