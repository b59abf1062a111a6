package slidepuzzle

// The canonical goal is fixed by construction (spec.md §4.1): blank in cell
// 0, tiles 1..N-1 ascending thereafter. goalPos[t] == t always holds for
// this goal, which is why parity and Manhattan distance below compare
// directly against tile values instead of indirecting through a goal-pos
// table — there is only ever one target arrangement.

// moveTable holds the precomputed, flattened adjacency of blank moves for a
// width x height board: for cell c, neighbors[upper[c-1]:upper[c]] (with
// upper[-1] treated as 0) lists the cells the blank may move to from c, in
// up/down/left/right order. Grounded on the original core's
// pos_perm/upper_nb_perms flat arrays (sp_solve.c, sliding_puzzle_init4).
type moveTable struct {
	width, height int
	upper         []int
	neighbors     []int
}

// buildMoveTable constructs the move table for a width x height board.
func buildMoveTable(width, height int) *moveTable {
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
	return &moveTable{width: width, height: height, upper: upper, neighbors: neighbors}
}

// moves returns the slice of candidate blank cells reachable from blankPos.
func (mt *moveTable) moves(blankPos int) []int {
	first := 0
	if blankPos > 0 {
		first = mt.upper[blankPos-1]
	}
	return mt.neighbors[first:mt.upper[blankPos]]
}

// deltaSymbol maps a blank-cell displacement to the direction symbol of the
// tile that physically slides into the blank's old cell — the opposite of
// the blank's own travel direction. This single mapping serves both the
// cycle automaton's alphabet and solution reporting, since both conventions
// coincide in the original core (sp_solve.c: compare the ACM_match symbol
// assignment against sliding_puzzle_solve_IDA's move-to-char mapping).
func deltaSymbol(delta, width int) Direction {
	switch delta {
	case width:
		return DirUp
	case -width:
		return DirDown
	case 1:
		return DirLeft
	case -1:
		return DirRight
	default:
		panic("slidepuzzle: invalid move delta")
	}
}

// isPermutation reports whether grid is a permutation of 0..len(grid)-1.
func isPermutation(grid []int) bool {
	n := len(grid)
	seen := make([]bool, n)
	for _, v := range grid {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// invertPermutation returns pos such that pos[grid[c]] == c for all c,
// maintaining the invariant spec.md §3 requires of grid/pos.
func invertPermutation(grid []int) []int {
	pos := make([]int, len(grid))
	for c, t := range grid {
		pos[t] = c
	}
	return pos
}

// computeParity returns the inversion-plus-blank-row parity (spec.md §4.1)
// of grid with respect to the canonical ascending goal: (blank row) +
// (number of inversions among non-blank tiles), mod 2.
func computeParity(grid []int, width int) int {
	n := len(grid)
	blankRow := 0
	for i, t := range grid {
		if t == 0 {
			blankRow = i / width
			break
		}
	}
	inversions := 0
	for i := 0; i < n; i++ {
		if grid[i] == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if grid[j] != 0 && grid[i] > grid[j] {
				inversions++
			}
		}
	}
	return (blankRow + inversions) % 2
}

// centralSymmetry maps grid under cell c <-> N-1-c and non-zero tile t <->
// N-t. It is its own inverse, so the same function both normalizes an
// odd-parity grid at ingress and recovers the original frame at egress
// (spec.md §4.1, §4.8).
func centralSymmetry(grid []int) []int {
	n := len(grid)
	out := make([]int, n)
	for pos := 0; pos < n; pos++ {
		v := grid[n-1-pos]
		if v != 0 {
			out[pos] = n - v
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
