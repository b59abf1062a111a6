// Package cycle implements duplicate-path pruning for sliding puzzle
// search: an Aho-Corasick automaton over the move alphabet {u,d,l,r} that
// recognizes move sequences known to return the blank to a cell it has
// already passed through with no net effect, plus a miner that discovers
// such cycles on a dedicated inflated board and loads them into the
// automaton (sp_solve.c, the ACM_* machine and sliding_puzzle_for_cycling_*
// functions).
//
// A Bank is immutable once mined and safe for concurrent use by multiple
// puzzle instances; Acquire/Release track shared ownership the same way
// pdb.Database does.
package cycle
