package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneFits(t *testing.T) {
	z := &Zone{LMin: -1, LMax: 1, CMin: 0, CMax: 0}
	assert.True(t, z.Fits(2, 2, 4, 4))
	assert.False(t, z.Fits(0, 2, 4, 4)) // LMin+row == -1, hits the edge
	assert.False(t, z.Fits(3, 2, 4, 4)) // LMax+row == 4, not < height
}

func TestBuilderRegisterRejectsDuplicate(t *testing.T) {
	b := NewBuilder()
	assert.True(t, b.Register([]byte("lr"), &Zone{}))
	assert.False(t, b.Register([]byte("lr"), &Zone{LMax: 9}))
}

func TestMachineMatchesRegisteredKeyword(t *testing.T) {
	b := NewBuilder()
	want := &Zone{LMax: 3}
	b.Register([]byte("lr"), want)
	m := b.Build()

	s := m.Reset()
	s, z := m.Advance(s, 'l')
	assert.Nil(t, z)
	_, z = m.Advance(s, 'r')
	require.NotNil(t, z)
	assert.Equal(t, want, z)
}

func TestMachineMatchesViaFailureLink(t *testing.T) {
	// Registering "ud" alone, the sequence "ud" fed symbol-by-symbol from
	// a state that already consumed an unrelated 'u' must still match at
	// the boundary, the way Aho-Corasick's output propagation intends.
	b := NewBuilder()
	want := &Zone{CMax: 1}
	b.Register([]byte("ud"), want)
	m := b.Build()

	s := m.Reset()
	s, _ = m.Advance(s, 'u')
	s, _ = m.Advance(s, 'u')
	_, z := m.Advance(s, 'd')
	require.NotNil(t, z)
	assert.Equal(t, want, z)
}

func TestRegisterCycleCoversImmediateReversals(t *testing.T) {
	b := NewBuilder()
	RegisterCycle(b, []byte("du"))
	m := b.Build()

	for _, pair := range [][2]byte{{'u', 'd'}, {'d', 'u'}, {'l', 'r'}, {'r', 'l'}} {
		s := m.Reset()
		s, _ = m.Advance(s, pair[0])
		_, z := m.Advance(s, pair[1])
		require.NotNilf(t, z, "pair %c%c should be recognized as a cycle", pair[0], pair[1])
		assert.True(t, z.Fits(1, 1, 3, 3))
	}
}

func TestMineRejectsInvalidInput(t *testing.T) {
	_, err := Mine(0, 3, 4)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Mine(3, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidMaxLength)
}

func TestMineFindsImmediateReversalCycle(t *testing.T) {
	bank, err := Mine(2, 2, 2)
	require.NoError(t, err)
	require.NotNil(t, bank.Machine)

	s := bank.Machine.Reset()
	s, _ = bank.Machine.Advance(s, 'u')
	_, z := bank.Machine.Advance(s, 'd')
	assert.NotNil(t, z)
}

func TestBankAcquireReleaseTracksLastOwner(t *testing.T) {
	bank, err := Mine(2, 2, 2)
	require.NoError(t, err)

	shared := bank.Acquire()
	assert.False(t, bank.Release())
	assert.True(t, shared.Release())
}

func TestBankSameShape(t *testing.T) {
	bank, err := Mine(3, 2, 2)
	require.NoError(t, err)

	assert.True(t, bank.SameShape(3, 2))
	assert.False(t, bank.SameShape(2, 3))
}
