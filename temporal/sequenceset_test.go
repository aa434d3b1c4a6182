package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temporalcore/tempo/format"
)

func seq(t *testing.T, from, to int64, v1, v2 float64, lowerInc, upperInc bool) TSequence {
	t.Helper()
	s, err := NewSequence([]TInstant{inst(from, v1), inst(to, v2)}, format.InterpLinear, lowerInc, upperInc, false)
	require.NoError(t, err)

	return s
}

func TestNewSequenceSetRejectsMixedTempType(t *testing.T) {
	a := seq(t, 0, 10, 0, 1, true, true)
	_, err := NewSequenceSet([]TSequence{a})
	require.NoError(t, err)

	b, err := NewSequence([]TInstant{inst(20, 0), inst(30, 1)}, format.InterpStep, true, true, false)
	require.NoError(t, err)
	_, err = NewSequenceSet([]TSequence{a, b})
	require.Error(t, err)
}

func TestMergeArrayGluesAdjacentSequences(t *testing.T) {
	a := seq(t, 0, 10, 0, 1, true, false)
	b := seq(t, 10, 20, 1, 5, true, true)

	set, err := MergeArray([]TSequence{b, a})
	require.NoError(t, err)
	require.Len(t, set.Sequences, 1)
	require.Len(t, set.Sequences[0].Instants, 3)
}

func TestMergeArrayKeepsDisjointSequencesSeparate(t *testing.T) {
	a := seq(t, 0, 10, 0, 1, true, true)
	b := seq(t, 20, 30, 1, 2, true, true)

	set, err := MergeArray([]TSequence{b, a})
	require.NoError(t, err)
	require.Len(t, set.Sequences, 2)
}

func TestMergeArrayRejectsOverlap(t *testing.T) {
	a := seq(t, 0, 10, 0, 1, true, true)
	b := seq(t, 5, 15, 1, 2, true, true)

	_, err := MergeArray([]TSequence{a, b})
	require.Error(t, err)
}

func TestSequenceSetSequenceAt(t *testing.T) {
	a := seq(t, 0, 10, 0, 1, true, false)
	b := seq(t, 20, 30, 1, 2, true, true)
	set, err := NewSequenceSet([]TSequence{a, b})
	require.NoError(t, err)

	found, ok := set.SequenceAt(25)
	require.True(t, ok)
	require.Equal(t, set.Sequences[1].Instants[0].T, found.Instants[0].T)

	_, ok = set.SequenceAt(15)
	require.False(t, ok)
}
