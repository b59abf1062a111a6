package slidepuzzle

import (
	"context"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/kappa-labs/slidepuzzle/cycle"
	"github.com/kappa-labs/slidepuzzle/pdb"
)

// solved tracks the three-way lifecycle state of a Puzzle's most recent
// search: searching (0) until a call to SolveIDA/SolveRBFS completes,
// then solved (+1) or aborted (-1) (spec.md §3, §7).
type solved int32

const (
	solvedAborted   solved = -1
	solvedSearching solved = 0
	solvedDone      solved = 1
)

// Puzzle is a single sliding-tile puzzle instance: a board, its current
// arrangement, and whatever PDB/cycle-automaton collaborators are attached
// to accelerate its next solve (spec.md §3). All exported methods are safe
// for concurrent use across distinct Puzzle instances; operations on one
// instance are serialized by its own RWLocker (spec.md §5).
type Puzzle struct {
	width, height, n int

	// grid/pos are always the internal, even-parity representation: blank
	// in cell 0, tiles 1..n-1 ascending is reachable as the goal. normalized
	// records whether a central-symmetry transform was applied at
	// construction to get here, so Grid/Solution can map back to the frame
	// the caller actually supplied (spec.md §4.1, §4.8).
	grid       []int
	pos        []int
	parity     int
	normalized bool

	moves *moveTable
	lock  RWLocker
	rnd   Rand

	stream  io.Writer
	handler MoveHandler

	pattern *pdb.Database
	bank    *cycle.Bank

	state    int32 // atomic solved
	solution []int // internal-frame tile ids, set by the most recent solve
	dirs     []Direction
	stats    SearchStats
}

// New constructs a Puzzle for a width x height board. Without WithGrid, the
// initial arrangement is drawn from the configured Rand (WithRand); with
// WithGrid, the supplied grid must be a permutation of 0..width*height-1 or
// New returns ErrNotPermutation.
func New(width, height int, opts ...Option) (*Puzzle, error) {
	if width <= 0 || height <= 0 || width*height < 2 {
		return nil, ErrInvalidDimensions
	}
	n := width * height

	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	var grid []int
	if o.Grid != nil {
		if len(o.Grid) != n || !isPermutation(o.Grid) {
			return nil, ErrNotPermutation
		}
		grid = append([]int(nil), o.Grid...)
	} else {
		grid = randomPermutation(n, o.Rand)
	}

	parity := computeParity(grid, width)
	normalized := parity == 1
	if normalized {
		grid = centralSymmetry(grid)
	}

	p := &Puzzle{
		width:      width,
		height:     height,
		n:          n,
		grid:       grid,
		pos:        invertPermutation(grid),
		parity:     parity,
		normalized: normalized,
		moves:      buildMoveTable(width, height),
		lock:       newRWLocker(),
		rnd:        o.Rand,
	}
	if o.Stream != nil {
		p.stream = o.Stream
	}
	return p, nil
}

// Release releases p if it is not mid-operation, reporting false ("busy")
// otherwise (spec.md §6, §7). A busy Puzzle remains fully usable.
func (p *Puzzle) Release() bool {
	if !p.lock.Destroy() {
		return false
	}
	if p.pattern != nil {
		p.pattern.Release()
		p.pattern = nil
	}
	if p.bank != nil {
		p.bank.Release()
		p.bank = nil
	}
	return true
}

// Parity returns the puzzle's inversion-plus-blank-row parity, computed
// once at construction against the original (caller-supplied or random)
// frame (spec.md §3, §4.1, invariant 2).
func (p *Puzzle) Parity() int {
	p.lock.ReadBegin()
	defer p.lock.ReadEnd()
	return p.parity
}

// Grid returns the current tile arrangement in the original (non-
// normalized) frame the caller supplied to New.
func (p *Puzzle) Grid() []int {
	p.lock.ReadBegin()
	defer p.lock.ReadEnd()
	return p.toOriginalGrid(p.grid)
}

// Solution returns the tiles moved, in order, by the most recent solve, in
// the original frame. Empty until a solve has run.
func (p *Puzzle) Solution() []int {
	p.lock.ReadBegin()
	defer p.lock.ReadEnd()
	out := make([]int, len(p.solution))
	for i, t := range p.solution {
		out[i] = p.toOriginalTile(t)
	}
	return out
}

// Stats reports per-depth node counts from the most recent solve.
func (p *Puzzle) Stats() SearchStats {
	p.lock.ReadBegin()
	defer p.lock.ReadEnd()
	return p.stats
}

// SetMoveHandler installs callback, invoked once per reported move during
// the next solve, and returns the previously installed handler (nil if
// none).
func (p *Puzzle) SetMoveHandler(callback MoveHandler) MoveHandler {
	p.lock.WriteBegin()
	defer p.lock.WriteEnd()
	prev := p.handler
	p.handler = callback
	return prev
}

// SetStream installs a diagnostic sink, returning the previous one.
func (p *Puzzle) SetStream(w io.Writer) io.Writer {
	p.lock.WriteBegin()
	defer p.lock.WriteEnd()
	prev := p.stream
	p.stream = w
	return prev
}

// AttachCycles builds a cycle automaton (mining cycles up to maxLength
// moves) and attaches it to p, releasing any automaton previously attached
// (spec.md §6).
func (p *Puzzle) AttachCycles(ctx context.Context, maxLength int) error {
	if maxLength <= 0 {
		return nil
	}
	if err := ctxErr(ctx); err != nil {
		return err
	}
	p.lock.WriteBegin()
	defer p.lock.WriteEnd()

	p.printf("mining cycles up to %d moves...\n", maxLength)
	bank, err := cycle.Mine(p.width, p.height, maxLength)
	if err != nil {
		return pkgerrors.Wrap(err, "slidepuzzle: attach cycles")
	}
	if p.bank != nil {
		p.bank.Release()
	}
	p.bank = bank
	p.printf("mining cycles...done\n")
	return nil
}

// ShareCycles attaches src's cycle bank to dst, incrementing its reference
// count, provided both boards have equal width and height. Reports false
// (no state change) on shape mismatch.
func ShareCycles(src, dst *Puzzle) bool {
	src.lock.ReadBegin()
	defer src.lock.ReadEnd()
	dst.lock.WriteBegin()
	defer dst.lock.WriteEnd()

	if src.bank == nil || !src.bank.SameShape(dst.width, dst.height) {
		return false
	}
	if dst.bank != nil {
		dst.bank.Release()
	}
	dst.bank = src.bank.Acquire()
	return true
}

// AttachPDB builds an additive pattern database capped at maxPatternSize
// tiles per partition and attaches it to p (spec.md §6).
func (p *Puzzle) AttachPDB(maxPatternSize int) error {
	if maxPatternSize <= 0 {
		return nil
	}
	p.lock.WriteBegin()
	defer p.lock.WriteEnd()

	p.printf("building pattern database (max pattern size %d)...\n", maxPatternSize)
	db, err := pdb.Build(p.width, p.height, maxPatternSize)
	if err != nil {
		return pkgerrors.Wrap(err, "slidepuzzle: attach pdb")
	}
	if p.pattern != nil {
		p.pattern.Release()
	}
	p.pattern = db
	p.printf("building pattern database...done\n")
	return nil
}

// SharePDB attaches src's pattern database to dst, incrementing its
// reference count, provided both boards have equal width and height (the
// canonical goal is fixed, so goal equality is implied). Reports false on
// shape mismatch.
func SharePDB(src, dst *Puzzle) bool {
	src.lock.ReadBegin()
	defer src.lock.ReadEnd()
	dst.lock.WriteBegin()
	defer dst.lock.WriteEnd()

	if src.pattern == nil || !src.pattern.SameShape(dst.width, dst.height) {
		return false
	}
	if dst.pattern != nil {
		dst.pattern.Release()
	}
	dst.pattern = src.pattern.Acquire()
	return true
}

// toOriginalGrid maps an internal-frame grid back to the frame the caller
// originally supplied: the identity if parity was already even, or the
// (self-inverse) central symmetry if it was normalized at construction.
func (p *Puzzle) toOriginalGrid(internal []int) []int {
	if !p.normalized {
		return append([]int(nil), internal...)
	}
	return centralSymmetry(internal)
}

// toOriginalTile maps an internal-frame tile id to the original frame.
func (p *Puzzle) toOriginalTile(tile int) int {
	if !p.normalized || tile == 0 {
		return tile
	}
	return p.n - tile
}

// toOriginalDir flips a reported direction when the frame was normalized.
func (p *Puzzle) toOriginalDir(d Direction) Direction {
	if !p.normalized {
		return d
	}
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (p *Puzzle) printf(format string, args ...interface{}) {
	if p.stream == nil {
		return
	}
	fmt.Fprintf(p.stream, format, args...)
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrCanceled
	default:
		return nil
	}
}
