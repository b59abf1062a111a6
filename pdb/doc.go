// Package pdb builds and evaluates additive pattern databases for sliding
// puzzles: disjoint partitions of the non-blank tiles, each with an exact
// breadth-first distance table over "where could these tiles and nothing
// else be" configurations, summed to produce an admissible heuristic
// stronger than plain Manhattan distance (sp_solve.c,
// sliding_puzzle_heuristic_database_create and friends).
//
// A Database is immutable once built and safe for concurrent Evaluate calls
// from multiple goroutines; Acquire/Release track how many owners currently
// hold a reference, mirroring the refcounted collaborators the root package
// shares across puzzle instances.
package pdb
