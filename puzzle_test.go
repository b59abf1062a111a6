package slidepuzzle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	_, err := New(0, 4)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(1, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewRejectsNonPermutationGrid(t *testing.T) {
	_, err := New(2, 2, WithGrid([]int{0, 1, 1, 3}))
	assert.ErrorIs(t, err, ErrNotPermutation)
}

func TestNewWithGridRoundTripsThroughGridInNonNormalizedCase(t *testing.T) {
	grid := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	p, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)
	assert.Equal(t, grid, p.Grid())
	assert.Equal(t, 0, p.Parity())
}

func TestNewWithGridRoundTripsThroughGridInNormalizedCase(t *testing.T) {
	grid := []int{1, 2, 3, 0, 4, 5, 6, 7, 8}
	p, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Parity())
	assert.Equal(t, grid, p.Grid())
}

func TestReleaseSucceedsWhenIdle(t *testing.T) {
	p, err := New(3, 3)
	require.NoError(t, err)
	assert.True(t, p.Release())
}

func TestSetMoveHandlerReturnsPrevious(t *testing.T) {
	p, err := New(3, 3)
	require.NoError(t, err)

	first := func(p *Puzzle, step, tile int, dir Direction) {}
	prev := p.SetMoveHandler(first)
	assert.Nil(t, prev)

	second := func(p *Puzzle, step, tile int, dir Direction) {}
	prev = p.SetMoveHandler(second)
	assert.NotNil(t, prev)
}

func TestSetStreamReturnsPrevious(t *testing.T) {
	p, err := New(3, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	prev := p.SetStream(&buf)
	assert.Nil(t, prev)
	assert.Same(t, &buf, p.SetStream(nil))
}

func TestAttachAndShareCycles(t *testing.T) {
	p, err := New(3, 3)
	require.NoError(t, err)
	require.NoError(t, p.AttachCycles(nil, 6))
	require.NotNil(t, p.bank)

	q, err := New(3, 3)
	require.NoError(t, err)
	assert.True(t, ShareCycles(p, q))
	assert.Same(t, p.bank.Machine, q.bank.Machine)

	mismatched, err := New(2, 3)
	require.NoError(t, err)
	assert.False(t, ShareCycles(p, mismatched))
}

func TestAttachAndSharePDB(t *testing.T) {
	p, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.AttachPDB(4))
	require.NotNil(t, p.pattern)

	q, err := New(2, 2)
	require.NoError(t, err)
	assert.True(t, SharePDB(p, q))
	assert.Same(t, p.pattern, q.pattern)

	mismatched, err := New(2, 3)
	require.NoError(t, err)
	assert.False(t, SharePDB(p, mismatched))
}

func TestSharePDBSurvivesSourceRelease(t *testing.T) {
	p, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.AttachPDB(4))

	q, err := New(2, 2)
	require.NoError(t, err)
	require.True(t, SharePDB(p, q))

	assert.True(t, p.Release())
	require.NotNil(t, q.pattern)
	assert.True(t, q.pattern.SameShape(2, 2))
}
