package pdb

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or the board has fewer than two cells.
	ErrInvalidDimensions = errors.New("pdb: invalid board dimensions")
	// ErrInvalidPatternSize is returned when the requested pattern size is
	// less than 1.
	ErrInvalidPatternSize = errors.New("pdb: invalid pattern size")
)
