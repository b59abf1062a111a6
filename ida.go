package slidepuzzle

import (
	"context"

	"github.com/kappa-labs/slidepuzzle/cycle"
)

// maxHeuristic stands in for "no bound worked": no reachable board needs a
// bound this large, so returning it from idaSearch/rbfsSearch unambiguously
// signals an exhausted search (spec.md §4.6, §7).
const maxHeuristic = 1 << 30

// runIDA drives IDA*'s outer bound-raising loop starting from d2sol, the
// root's own heuristic value, polling ctx once per bound increment
// (spec.md §4.6, §5). It returns the optimal solution length on success.
func (c *searchCore) runIDA(ctx context.Context, grid, pos []int, d2sol int) (bool, int, error) {
	bound := d2sol
	for {
		if err := ctxErr(ctx); err != nil {
			return false, 0, err
		}
		found, result := c.idaSearch(0, grid, pos, pos[0], d2sol, 0, c.automatonReset(), bound)
		if found {
			return true, result, nil
		}
		if result >= maxHeuristic {
			return false, 0, ErrSearchExhausted
		}
		bound = result
	}
}

func (c *searchCore) automatonReset() int {
	if c.automaton == nil {
		return 0
	}
	return c.automaton.Reset()
}

// idaSearch is one bounded depth-first pass of IDA* (spec.md §4.6). grid/pos
// hold the current board with the blank at blank; d2sol is this node's own
// heuristic value; lastDelta is the displacement that produced it (0 at the
// root); acState is its cycle-automaton state; bound is the f-limit this
// call may not exceed. On success it returns (true, the solution length);
// otherwise (false, the smallest f-value seen among pruned or bound-exceeding
// children) — the next outer bound to try.
func (c *searchCore) idaSearch(depth int, grid, pos []int, blank, d2sol, lastDelta, acState, bound int) (bool, int) {
	if d2sol == 0 {
		return true, depth
	}
	if f := depth + d2sol; f > bound {
		return false, f
	}
	c.recordNode(depth)

	c.ensureDepth(depth + 1)
	childGrid, childPos := c.grids[depth], c.poss[depth]

	next := maxHeuristic
	for _, to := range c.moves.moves(blank) {
		delta := to - blank
		sym := deltaSymbol(delta, c.width)

		nextState := acState
		pruned := false
		if c.automaton != nil {
			var z *cycle.Zone
			nextState, z = c.automaton.Advance(acState, byte(sym))
			if z != nil {
				row, col := to/c.width, to%c.width
				if z.Fits(row, col, c.width, c.height) {
					pruned = true
				}
			}
		} else if delta == -lastDelta {
			pruned = true
		}
		if pruned {
			continue
		}

		tile := grid[to]
		copy(childGrid, grid)
		copy(childPos, pos)
		childGrid[blank] = tile
		childGrid[to] = 0
		childPos[0] = to
		childPos[tile] = blank

		childD2sol := c.heuristicAfterMove(d2sol, tile, to, blank, childPos)

		c.path[depth] = pathStep{tile: tile, delta: delta}
		found, got := c.idaSearch(depth+1, childGrid, childPos, to, childD2sol, delta, nextState, bound)
		if found {
			return true, got
		}
		if got < next {
			next = got
		}
	}
	return false, next
}
