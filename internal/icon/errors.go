package icon

import "errors"

var (
	// ErrInvalidSource indicates a raw icon source that is neither an
	// inline data URI nor an absolute http(s) URL.
	ErrInvalidSource = errors.New("invalid icon source")
	// ErrUnsupportedFormat indicates a MIME type outside the allowed set.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrOversizedAsset indicates a fetched payload above the size cap.
	ErrOversizedAsset = errors.New("icon asset too large")
	// ErrNetworkFailure indicates a fetch that failed to produce a payload.
	ErrNetworkFailure = errors.New("icon fetch failed")
	// ErrDecodeFailure indicates bytes that could not be decoded or rendered.
	ErrDecodeFailure = errors.New("icon decode failed")
)
