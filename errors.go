package slidepuzzle

import "errors"

// Sentinel errors returned by the slidepuzzle package.
var (
	// ErrInvalidDimensions indicates a non-positive width/height or a cell
	// count smaller than 2.
	ErrInvalidDimensions = errors.New("slidepuzzle: width and height must be positive and width*height must be >= 2")

	// ErrNotPermutation indicates the supplied grid is not a permutation of
	// 0..N-1.
	ErrNotPermutation = errors.New("slidepuzzle: grid is not a permutation of 0..N-1")

	// ErrBusy names the condition Release reports by returning false: the
	// puzzle is still held by an in-progress operation on another
	// goroutine. No function in this package returns it.
	ErrBusy = errors.New("slidepuzzle: puzzle is in use and cannot be released")

	// ErrShapeMismatch names the condition ShareCycles/SharePDB report by
	// returning false: the two puzzles do not have equal width and height.
	// No function in this package returns it.
	ErrShapeMismatch = errors.New("slidepuzzle: puzzles have incompatible shapes")

	// ErrSearchExhausted indicates the heuristic lower bound overflowed the
	// representable search depth. This should not happen for any
	// parity-normalized puzzle, but search engines still fail closed.
	ErrSearchExhausted = errors.New("slidepuzzle: search bound exceeded representable maximum")

	// ErrCanceled indicates the caller's context was canceled mid-search.
	ErrCanceled = errors.New("slidepuzzle: search canceled")
)
