package slidepuzzle

import "io"

// Direction identifies which way a numbered tile slides during a move, using
// the same single-character alphabet the cycle automaton matches against:
// 'u' (up), 'd' (down), 'l' (left), 'r' (right). This is the tile's own
// direction of travel, the opposite of the blank's displacement.
type Direction byte

// The four directions a sliding tile can travel.
const (
	DirUp    Direction = 'u'
	DirDown  Direction = 'd'
	DirLeft  Direction = 'l'
	DirRight Direction = 'r'
)

// String renders the direction as its single-character symbol.
func (d Direction) String() string {
	return string(rune(d))
}

// MoveHandler is invoked once per reported move of a solution, in order.
// step is 1-based. After the last move it is invoked once more with
// step == length+1, tile == 0, dir == 0 to signal completion, mirroring the
// original core's terminal callback.
type MoveHandler func(p *Puzzle, step int, tile int, dir Direction)

// SearchStats reports per-depth node generation counts from the most recent
// search, supplementing the optimum itself with diagnostic detail the
// distilled spec omits but the original implementation always printed.
type SearchStats struct {
	// NodesByDepth[i] is the number of nodes expanded at recursion depth i
	// (the root is depth 0), summed over every iteration of the search.
	NodesByDepth []uint64
	// Total is the sum of NodesByDepth.
	Total uint64
}

// Options configures Puzzle construction. Build one with the With* functions
// below; the zero value requests a random grid, no diagnostic stream, and the
// package default deterministic Rand.
type Options struct {
	Grid   []int
	Stream io.Writer
	Rand   Rand
}

// Option is a functional option for New, following the same pattern the
// teacher's Dijkstra/TSP packages use for their own Options structs.
type Option func(*Options)

// WithGrid supplies the initial tile arrangement explicitly. grid must be a
// permutation of 0..width*height-1 (validated by New); tile 0 is the blank.
// Without WithGrid, New fills the grid randomly using the configured Rand.
func WithGrid(grid []int) Option {
	return func(o *Options) {
		o.Grid = grid
	}
}

// WithStream sets a diagnostic sink. Best-effort, human-readable progress
// lines are written here during attach/solve calls; nil (the default)
// disables all output. This is never consulted for control flow.
func WithStream(w io.Writer) Option {
	return func(o *Options) {
		o.Stream = w
	}
}

// WithRand overrides the source of randomness used for an absent grid.
// Without WithRand, New uses the package's default deterministic generator
// seeded from 0 (see Rand, NewRand).
func WithRand(r Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// defaultOptions returns the zero-configuration Options: no initial grid (so
// New fills one randomly), no diagnostic stream, default Rand.
func defaultOptions() Options {
	return Options{
		Grid:   nil,
		Stream: nil,
		Rand:   NewRand(0),
	}
}
