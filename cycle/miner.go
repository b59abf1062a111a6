package cycle

// board is the minimal move-generation surface the miner needs: a flat
// precomputed neighbor table, built the same way the root package's own
// move table is. Kept private to this package (rather than imported from
// the root package) to avoid an import cycle, since the root package is
// the one that imports cycle.
type board struct {
	width, height int
	upper         []int
	neighbors     []int
}

func buildBoard(width, height int) *board {
	n := width * height
	neighbors := make([]int, 0, 4*n)
	upper := make([]int, n)
	for i := 0; i < n; i++ {
		if i-width >= 0 {
			neighbors = append(neighbors, i-width)
		}
		if i+width < n {
			neighbors = append(neighbors, i+width)
		}
		if i-1 >= 0 && (i-1)/width == i/width {
			neighbors = append(neighbors, i-1)
		}
		if i+1 < n && (i+1)/width == i/width {
			neighbors = append(neighbors, i+1)
		}
		upper[i] = len(neighbors)
	}
	return &board{width: width, height: height, upper: upper, neighbors: neighbors}
}

func (b *board) moves(blank int) []int {
	first := 0
	if blank > 0 {
		first = b.upper[blank-1]
	}
	return b.neighbors[first:b.upper[blank]]
}

// deltaSymbol maps a blank-cell displacement to the direction symbol of the
// tile sliding into the blank's old cell, the same convention the root
// package's move reporting uses (sp_solve.c's move-to-char mapping).
func deltaSymbol(delta, width int) byte {
	switch delta {
	case width:
		return 'u'
	case -width:
		return 'd'
	case 1:
		return 'l'
	case -1:
		return 'r'
	}
	panic("cycle: invalid move delta")
}

// Mine discovers zero-displacement move cycles up to maxLength moves on a
// width x height board and returns a Bank whose Machine prunes them
// (spec.md §4.5). It searches a dedicated (2W-1) x (2H-1) "cycling" board
// with the blank at the center, decoupling cycle geometry from the edge
// effects of the real board, treating the inflated board's own starting
// configuration as its goal: any move sequence that returns the blank and
// every tile to where they started is, by definition, a cycle
// (sp_solve.c, sliding_puzzle_for_cycling_init and
// sliding_puzzle_for_cycling_search).
func Mine(width, height, maxLength int) (*Bank, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if maxLength < 1 {
		return nil, ErrInvalidMaxLength
	}

	cw, ch := 2*width-1, 2*height-1
	b := buildBoard(cw, ch)
	n := cw * ch
	center := (n - 1) / 2

	goal := make([]int, n)
	for i := range goal {
		switch {
		case i < center:
			goal[i] = i + 1
		case i > center:
			goal[i] = i
		default:
			goal[i] = 0
		}
	}

	builder := NewBuilder()
	machine := builder.Build()
	firstMoveForbid := cw // sliding_puzzle_for_cycling_init forbids the root's first move downward

	moves := make([]byte, 0, maxLength)
	for depthBound := 1; depthBound <= maxLength; {
		grid := append([]int(nil), goal...)
		cyc, found := mine(b, machine, grid, center, goal, moves, machine.Reset(), depthBound, firstMoveForbid)
		if !found {
			depthBound++
			continue
		}
		RegisterCycle(builder, cyc)
		machine = builder.Build()
	}

	return &Bank{Width: width, Height: height, Machine: machine, refCount: 1}, nil
}

// mine is the miner's depth-bounded DFS: it treats goal as both the start
// and the target, pruning only via the automaton (a cycle database is
// always attached during mining, so the plain immediate-reversal rule the
// real search falls back to without one never applies here), and reports
// the first full-depth path that restores goal exactly.
func mine(b *board, m *Machine, grid []int, blank int, goal []int, moves []byte, state, bound, firstMoveForbid int) ([]byte, bool) {
	depth := len(moves)
	if depth == bound {
		if sameGrid(grid, goal) {
			out := make([]byte, len(moves))
			copy(out, moves)
			return out, true
		}
		return nil, false
	}

	for _, to := range b.moves(blank) {
		delta := to - blank
		if depth == 0 && delta == firstMoveForbid {
			continue
		}

		sym := deltaSymbol(delta, b.width)
		nextState, z := m.Advance(state, sym)
		if z != nil {
			row, col := to/b.width, to%b.width
			if z.Fits(row, col, b.width, b.height) {
				continue
			}
		}

		grid[blank], grid[to] = grid[to], grid[blank]
		moves = append(moves, sym)
		cyc, found := mine(b, m, grid, to, goal, moves, nextState, bound, firstMoveForbid)
		moves = moves[:len(moves)-1]
		grid[blank], grid[to] = grid[to], grid[blank]
		if found {
			return cyc, true
		}
	}
	return nil, false
}

func sameGrid(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
