package slidepuzzle

import (
	"context"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"

	"github.com/kappa-labs/slidepuzzle/cycle"
)

// engineFunc runs one search engine to completion over a scratch copy of
// the puzzle's starting arrangement, returning the optimal length.
type engineFunc func(c *searchCore, grid, pos []int, d2sol int) (bool, int, error)

// SolveIDA finds an optimal solution for p using Iterative Deepening A*
// (spec.md §4.6), installing it as p's current solution and returning its
// length. Solving an already-solved puzzle returns 0 and an empty solution
// (spec.md §8, property 3).
func SolveIDA(ctx context.Context, p *Puzzle) (int, error) {
	return p.solve(ctx, func(c *searchCore, grid, pos []int, d2sol int) (bool, int, error) {
		found, length, err := c.runIDA(ctx, grid, pos, d2sol)
		return found, length, err
	})
}

// SolveRBFS finds an optimal solution for p using Recursive Best-First
// Search (spec.md §4.7), installing it as p's current solution and
// returning its length.
func SolveRBFS(ctx context.Context, p *Puzzle) (int, error) {
	return p.solve(ctx, func(c *searchCore, grid, pos []int, d2sol int) (bool, int, error) {
		found, length, err := c.runRBFS(ctx, grid, pos, d2sol)
		return found, length, err
	})
}

// solve is the shared driver behind SolveIDA/SolveRBFS: it takes p's write
// lock, builds a searchCore over whatever PDB/cycle bank p currently has
// attached, runs the supplied engine over a scratch copy of p's starting
// arrangement (the puzzle's own grid/pos are never mutated by a solve), and
// on success reconstructs the move sequence into p's original frame,
// invoking the move handler for each step plus one terminal call
// (spec.md §4.8, §5, §6).
func (p *Puzzle) solve(ctx context.Context, run engineFunc) (int, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}
	p.lock.WriteBegin()
	defer p.lock.WriteEnd()

	atomic.StoreInt32(&p.state, int32(solvedSearching))

	var automaton *cycle.Machine
	if p.bank != nil {
		automaton = p.bank.Machine
	}
	core := newSearchCore(p.width, p.height, p.moves, p.pattern, automaton)

	rootGrid := append([]int(nil), p.grid...)
	rootPos := append([]int(nil), p.pos...)
	d2sol := core.rootHeuristic(rootGrid, rootPos)

	p.printf("searching (initial bound %d)...\n", d2sol)
	found, length, err := run(core, rootGrid, rootPos, d2sol)
	if err != nil {
		atomic.StoreInt32(&p.state, int32(solvedAborted))
		return 0, pkgerrors.Wrap(err, "slidepuzzle: solve")
	}
	if !found {
		atomic.StoreInt32(&p.state, int32(solvedAborted))
		return 0, ErrSearchExhausted
	}

	solution := make([]int, length)
	dirs := make([]Direction, length)
	for i := 0; i < length; i++ {
		step := core.path[i]
		solution[i] = p.toOriginalTile(step.tile)
		dirs[i] = p.toOriginalDir(deltaSymbol(step.delta, p.width))
	}
	p.solution = solution
	p.dirs = dirs
	p.stats = SearchStats{
		NodesByDepth: append([]uint64(nil), core.nodesByDepth...),
		Total:        sumNodes(core.nodesByDepth),
	}
	atomic.StoreInt32(&p.state, int32(solvedDone))
	p.printf("searching...done, %d moves\n", length)

	if p.handler != nil {
		for i := 0; i < length; i++ {
			p.handler(p, i+1, solution[i], dirs[i])
		}
		p.handler(p, length+1, 0, 0)
	} else {
		for i := 0; i < length; i++ {
			p.printf(" %2d: %2d(%c)\n", i+1, solution[i], byte(dirs[i]))
		}
	}
	return length, nil
}

func sumNodes(nodesByDepth []uint64) uint64 {
	var total uint64
	for _, n := range nodesByDepth {
		total += n
	}
	return total
}
