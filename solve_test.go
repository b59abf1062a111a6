package slidepuzzle

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveIDAOnGoalGridReturnsZero(t *testing.T) {
	goal := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	p, err := New(4, 4, WithGrid(goal))
	require.NoError(t, err)

	length, err := SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, length)
	assert.Empty(t, p.Solution())
}

func TestSolveIDAOnOddParityIdentityGridReturnsZero(t *testing.T) {
	// Blank-bottom-right with ascending tiles: odd parity, normalizes to
	// the canonical goal, so it is already solved (spec.md §8, property 3).
	grid := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}
	p, err := New(4, 4, WithGrid(grid))
	require.NoError(t, err)

	length, err := SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, length)
}

func TestApplyingSolutionReachesGoal(t *testing.T) {
	grid := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}
	p, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)

	length, err := SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 31, length)

	tiles := p.Solution()
	require.Len(t, tiles, length)

	applied := append([]int(nil), grid...)
	blank := indexOf(applied, 0)
	for _, tile := range tiles {
		from := indexOf(applied, tile)
		applied[blank], applied[from] = applied[from], applied[blank]
		blank = from
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, applied)
}

func TestSolveIDAAndSolveRBFSAgreeOnLength(t *testing.T) {
	grid := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}

	p1, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)
	lenIDA, err := SolveIDA(context.Background(), p1)
	require.NoError(t, err)

	p2, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)
	lenRBFS, err := SolveRBFS(context.Background(), p2)
	require.NoError(t, err)

	assert.Equal(t, lenIDA, lenRBFS)
}

func TestSolveIDARespectsCanceledContext(t *testing.T) {
	grid := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}
	p, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = SolveIDA(ctx, p)
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestKorfInstanceOneOptimalLength(t *testing.T) {
	grid := []int{14, 13, 15, 7, 11, 12, 9, 5, 6, 0, 2, 1, 4, 8, 10, 3}
	p, err := New(4, 4, WithGrid(grid))
	require.NoError(t, err)

	length, err := SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 57, length)
}

func TestMoveHandlerIsInvokedOncePerMovePlusTerminal(t *testing.T) {
	grid := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}
	p, err := New(3, 3, WithGrid(grid))
	require.NoError(t, err)

	var calls []int
	p.SetMoveHandler(func(p *Puzzle, step, tile int, dir Direction) {
		calls = append(calls, step)
	})

	length, err := SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, calls, length+1)
	assert.Equal(t, length+1, calls[len(calls)-1])
}

func TestSolveWithoutMoveHandlerPrintsToStream(t *testing.T) {
	grid := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}
	var buf bytes.Buffer
	p, err := New(3, 3, WithGrid(grid), WithStream(&buf))
	require.NoError(t, err)

	_, err = SolveIDA(context.Background(), p)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func indexOf(grid []int, v int) int {
	for i, x := range grid {
		if x == v {
			return i
		}
	}
	return -1
}
