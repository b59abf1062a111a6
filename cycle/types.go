package cycle

import "sync/atomic"

// Zone is the bounding box of the blank's predicted cumulative row/column
// displacement while closing a matched half-cycle, relative to the blank's
// cell at match time (spec.md §4.4). A pending move is prunable exactly
// when this box, shifted by the candidate blank cell, fits strictly inside
// the board.
type Zone struct {
	LMin, LMax, CMin, CMax int
}

// Fits reports whether z, shifted by the candidate blank cell (row, col),
// lies strictly inside a board of the given width and height.
func (z *Zone) Fits(row, col, width, height int) bool {
	return z.LMin+row >= 0 && z.LMax+row < height && z.CMin+col >= 0 && z.CMax+col < width
}

func symbolIndex(sym byte) int {
	switch sym {
	case 'u':
		return 0
	case 'd':
		return 1
	case 'l':
		return 2
	case 'r':
		return 3
	}
	panic("cycle: invalid move symbol")
}

// node is one state of the compiled automaton.
type node struct {
	children [4]int
	fail     int
	own      *Zone // set only if this exact node terminates a registered keyword
	output   *Zone // own, or inherited from the nearest proper suffix that matches
}

// Machine is a compiled, immutable Aho-Corasick automaton over {u,d,l,r}.
// States are plain ints indexing Machine.nodes, passed by copy per search
// frame rather than threaded through a mutable cursor (spec.md §9).
type Machine struct {
	nodes []node
}

// Reset returns the initial (empty-match) state.
func (m *Machine) Reset() int { return 0 }

// Advance transitions from state on symbol, returning the next state and,
// if that state completes a registered keyword (directly, or via the
// longest registered proper suffix), its zone. A nil zone means no match.
func (m *Machine) Advance(state int, symbol byte) (int, *Zone) {
	next := m.nodes[state].children[symbolIndex(symbol)]
	return next, m.nodes[next].output
}

// Bank is a reference-counted, shareable cycle database: the unit puzzle
// instances attach and share (spec.md §3, §5).
type Bank struct {
	Width, Height int
	Machine       *Machine

	refCount int32
}

// Acquire increments the reference count and returns b.
func (b *Bank) Acquire() *Bank {
	atomic.AddInt32(&b.refCount, 1)
	return b
}

// Release decrements the reference count and reports whether this was the
// last reference.
func (b *Bank) Release() bool {
	return atomic.AddInt32(&b.refCount, -1) == 0
}

// SameShape reports whether b was mined for the given board dimensions.
func (b *Bank) SameShape(width, height int) bool {
	return b.Width == width && b.Height == height
}
