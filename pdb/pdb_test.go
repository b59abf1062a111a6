package pdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsInvalidInput(t *testing.T) {
	_, err := Build(0, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Build(2, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidPatternSize)
}

func TestEvaluateGoalIsZero(t *testing.T) {
	db, err := Build(2, 2, 3)
	require.NoError(t, err)

	goal := []int{0, 1, 2, 3} // pos[tile] == tile
	assert.Equal(t, 0, db.Evaluate(goal))
}

func TestEvaluateSingleMoveIsOne(t *testing.T) {
	db, err := Build(2, 2, 3)
	require.NoError(t, err)

	// Grid [1,0,2,3]: tile 1 slid left into the blank's old cell.
	afterOneMove := []int{1, 0, 2, 3} // pos[tile]: tile0@1, tile1@0, tile2@2, tile3@3
	assert.Equal(t, 1, db.Evaluate(afterOneMove))
}

func TestMirrorEnabledForSquareBoards(t *testing.T) {
	db, err := Build(2, 2, 3)
	require.NoError(t, err)

	require.True(t, db.Mirror)
	require.Len(t, db.MirrorPos, 4)
	assert.Equal(t, []int{0, 2, 1, 3}, db.MirrorPos)
}

func TestMirrorDisabledForRectangularBoards(t *testing.T) {
	db, err := Build(3, 2, 3)
	require.NoError(t, err)

	assert.False(t, db.Mirror)
	assert.Nil(t, db.MirrorPos)
}

func TestAcquireReleaseTracksLastOwner(t *testing.T) {
	db, err := Build(2, 2, 3)
	require.NoError(t, err)

	shared := db.Acquire()
	assert.False(t, db.Release())
	assert.True(t, shared.Release())
}

func TestSameShape(t *testing.T) {
	db, err := Build(2, 3, 2)
	require.NoError(t, err)

	assert.True(t, db.SameShape(2, 3))
	assert.False(t, db.SameShape(3, 2))
}

func TestEffectivePatternSizeCapsToUint32Index(t *testing.T) {
	// 4^k <= 2^32-1 holds up through k=15 (4^16 == 2^32 is one too many);
	// effective size should never claim more than 16 regardless of how
	// large a caller asks for.
	assert.LessOrEqual(t, effectivePatternSize(4), 16)
	assert.Greater(t, effectivePatternSize(4), 0)
}
