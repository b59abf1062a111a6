package slidepuzzle

import "math/rand"

// Rand is the pluggable random-integer source consumed by New when no
// explicit grid is supplied. It is the one process-wide-PRNG concern the
// core spec calls out as an external collaborator (spec.md §5): a caller
// needing reproducible random puzzles supplies a seeded Rand instead of
// relying on global state.
type Rand interface {
	// Intn returns a pseudorandom int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// defaultSeed is the fixed "zero" seed used when NewRand is called with
// seed == 0, matching the teacher's policy of a stable, reproducible default
// rather than a time-based one (see tsp's rngFromSeed).
const defaultSeed int64 = 1

// randSource adapts math/rand.Rand to the Rand interface.
type randSource struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand. Policy: seed == 0 uses defaultSeed;
// any other seed is used verbatim. Same seed, same stream, every time.
func NewRand(seed int64) Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return &randSource{r: rand.New(rand.NewSource(s))}
}

func (rs *randSource) Intn(n int) int {
	return rs.r.Intn(n)
}

// randomPermutation returns a permutation of 0..n-1, drawn via a
// Fisher-Yates shuffle driven by r. Mirrors the original core's rejection
// sampling (sliding_puzzle_init4's "draw a tile, retry if already placed"
// loop) but in O(n) instead of expected O(n^2).
func randomPermutation(n int, r Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
