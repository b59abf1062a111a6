package slidepuzzle

import (
	"github.com/kappa-labs/slidepuzzle/cycle"
	"github.com/kappa-labs/slidepuzzle/pdb"
)

// pathStep records one move along the branch currently being explored.
// idaSearch/rbfsSearch write into path[depth] before descending into a
// child; a losing branch is simply overwritten by the next candidate at
// the same depth, so no explicit rollback is needed (spec.md §4.6, §4.7).
type pathStep struct {
	tile  int
	delta int
}

// searchCore holds the state IDA* and RBFS share: move generation, the
// optional pattern database and cycle automaton, and a monotonically
// growing pool of per-depth scratch buffers so neither engine allocates
// inside its recursion (spec.md §4.6, §4.7, §9).
type searchCore struct {
	width, height int
	moves         *moveTable
	pattern       *pdb.Database
	automaton     *cycle.Machine

	grids [][]int // grids[d], poss[d]: scratch board/position arrays entered at depth d
	poss  [][]int
	tmp   [][]int // tmp[d]: throwaway position array for ranking RBFS children
	path  []pathStep

	nodesByDepth []uint64
}

func newSearchCore(width, height int, moves *moveTable, pattern *pdb.Database, automaton *cycle.Machine) *searchCore {
	return &searchCore{width: width, height: height, moves: moves, pattern: pattern, automaton: automaton}
}

// ensureDepth grows the scratch pool so depth is a valid index.
func (c *searchCore) ensureDepth(depth int) {
	n := c.width * c.height
	for len(c.grids) <= depth {
		c.grids = append(c.grids, make([]int, n))
		c.poss = append(c.poss, make([]int, n))
		c.tmp = append(c.tmp, make([]int, n))
		c.path = append(c.path, pathStep{})
	}
}

func (c *searchCore) recordNode(depth int) {
	for len(c.nodesByDepth) <= depth {
		c.nodesByDepth = append(c.nodesByDepth, 0)
	}
	c.nodesByDepth[depth]++
}

// rootHeuristic evaluates d2sol for the puzzle's starting arrangement.
func (c *searchCore) rootHeuristic(grid, pos []int) int {
	if c.pattern != nil {
		return c.pattern.Evaluate(pos)
	}
	return manhattanSum(grid, c.width)
}

// heuristicAfterMove evaluates d2sol for a child reached by sliding tile
// from oldCell into newCell, given the parent's own d2sol and (for the PDB
// case) the child's fully updated position array (spec.md §4.2, §4.3).
func (c *searchCore) heuristicAfterMove(parentD2sol, tile, oldCell, newCell int, childPos []int) int {
	if c.pattern != nil {
		return c.pattern.Evaluate(childPos)
	}
	return parentD2sol + manhattanDelta(tile, oldCell, newCell, c.width)
}
