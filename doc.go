// Package slidepuzzle implements an optimal solver for the classic 15-puzzle
// and its rectangular generalizations.
//
// Given a width, a height, and an initial tile arrangement, the solver finds
// a shortest sequence of blank-tile moves that reaches the canonical goal
// configuration (blank in the top-left corner, tiles ascending thereafter).
// Optimality (minimum move count) is guaranteed by both search engines.
//
// Overview:
//
//   - Puzzle holds a mutable board, its parity-normalized internal frame,
//     and optional references to a shared pattern database and cycle bank.
//   - Two search engines, IDA* (SolveIDA) and RBFS (SolveRBFS), consume the
//     same move generator, heuristic, and cycle pruner, and return identical
//     optima for any given instance.
//   - subpackage pdb builds additive pattern databases: disjoint partitions
//     of non-blank tiles, each with an exact breadth-first distance table.
//   - subpackage cycle builds an Aho-Corasick automaton recognizing move
//     sequences known to produce no net displacement, used to prune futile
//     branches during search.
//
// Concurrency:
//
//   - Distinct Puzzle instances may be driven from separate goroutines with
//     no coordination.
//   - Operations on the same instance are serialized by a per-instance
//     reader/writer lock (see RWLocker): reads (Grid, Solution, Parity) take
//     a shared lock; attaches and solves take an exclusive lock.
//   - A shared pdb.Database or cycle.Bank is immutable once built and is
//     reference-counted; the last releasing Puzzle frees it.
//
// Determinism:
//
//   - Random initial grids are produced through the Rand interface, which
//     defaults to a seedable, deterministic generator (see rng.go) rather
//     than a process-global source.
//
// Example usage:
//
//	p, err := slidepuzzle.New(4, 4, slidepuzzle.WithGrid(initial))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Release()
//	length, err := slidepuzzle.SolveIDA(context.Background(), p)
package slidepuzzle
