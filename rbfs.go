package slidepuzzle

import (
	"context"

	"github.com/kappa-labs/slidepuzzle/cycle"
)

// rbfsChild is one candidate move ranked during a single RBFS expansion.
type rbfsChild struct {
	to      int
	tile    int
	delta   int
	d2sol   int
	acState int
	f       int
}

// runRBFS drives a single top-level call to Korf's Recursive Best-First
// Search (spec.md §4.7), polling ctx once before starting.
func (c *searchCore) runRBFS(ctx context.Context, grid, pos []int, d2sol int) (bool, int, error) {
	if err := ctxErr(ctx); err != nil {
		return false, 0, err
	}
	found, result := c.rbfsSearch(0, grid, pos, pos[0], d2sol, 0, c.automatonReset(), d2sol, maxHeuristic)
	if !found {
		return false, 0, ErrSearchExhausted
	}
	return true, result, nil
}

// rbfsSearch implements RBFS (spec.md §4.7). depth is g(n); d2sol is h(n);
// nodeF is the F-value this node was entered with, the floor its own
// children's F cannot fall below; bound is the f-limit this call may not
// exceed. On success it returns (true, the solution length); otherwise
// (false, this node's revised F-value).
func (c *searchCore) rbfsSearch(depth int, grid, pos []int, blank, d2sol, lastDelta, acState, nodeF, bound int) (bool, int) {
	if d2sol == 0 {
		return true, depth
	}
	c.recordNode(depth)

	c.ensureDepth(depth + 1)
	childGrid, childPos, tmp := c.grids[depth], c.poss[depth], c.tmp[depth]

	var children []rbfsChild
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
		copy(tmp, pos)
		tmp[0] = to
		tmp[tile] = blank
		childD2sol := c.heuristicAfterMove(d2sol, tile, to, blank, tmp)

		f := depth + 1 + childD2sol
		if f < nodeF {
			f = nodeF
		}
		children = append(children, rbfsChild{to: to, tile: tile, delta: delta, d2sol: childD2sol, acState: nextState, f: f})
	}
	if len(children) == 0 {
		return false, maxHeuristic
	}

	for {
		bestIdx := 0
		for i := 1; i < len(children); i++ {
			if children[i].f < children[bestIdx].f {
				bestIdx = i
			}
		}
		best := children[bestIdx]
		if best.f > bound {
			return false, best.f
		}

		altF := maxHeuristic
		for i, ch := range children {
			if i == bestIdx {
				continue
			}
			if ch.f < altF {
				altF = ch.f
			}
		}
		childBound := bound
		if altF < childBound {
			childBound = altF
		}

		copy(childGrid, grid)
		copy(childPos, pos)
		childGrid[blank] = best.tile
		childGrid[best.to] = 0
		childPos[0] = best.to
		childPos[best.tile] = blank

		c.path[depth] = pathStep{tile: best.tile, delta: best.delta}
		found, result := c.rbfsSearch(depth+1, childGrid, childPos, best.to, best.d2sol, best.delta, best.acState, best.f, childBound)
		if found {
			return true, result
		}
		children[bestIdx].f = result
	}
}
