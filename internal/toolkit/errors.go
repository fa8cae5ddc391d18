package toolkit

import "errors"

// ErrIndexOutOfRange means an operation named a cell index outside the
// applied tab list.
var ErrIndexOutOfRange = errors.New("tab index out of range")
