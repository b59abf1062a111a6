package cycle

import "errors"

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("cycle: invalid board dimensions")

// ErrInvalidMaxLength is returned when the requested maximum cycle length
// is less than 1.
var ErrInvalidMaxLength = errors.New("cycle: invalid max cycle length")
