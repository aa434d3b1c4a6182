package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temporalcore/tempo/timeset"
)

func TestAtPeriodSequence(t *testing.T) {
	s := seq(t, 0, 100, 0, 100, true, true)

	p, err := timeset.NewPeriod(20, 80, true, true)
	require.NoError(t, err)

	result, err := AtPeriod(s, p)
	require.NoError(t, err)

	sub, ok := result.(TSequence)
	require.True(t, ok)
	require.Equal(t, 20.0, sub.StartValue().F)
	require.Equal(t, 80.0, sub.EndValue().F)
}

func TestAtPeriodNoOverlapReturnsNil(t *testing.T) {
	s := seq(t, 0, 10, 0, 1, true, true)

	p, err := timeset.NewPeriod(20, 30, true, true)
	require.NoError(t, err)

	result, err := AtPeriod(s, p)
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestMinusPeriodSplitsSequence(t *testing.T) {
	s := seq(t, 0, 100, 0, 100, true, true)

	p, err := timeset.NewPeriod(40, 60, true, true)
	require.NoError(t, err)

	result, err := MinusPeriod(s, p)
	require.NoError(t, err)

	set, ok := result.(TSequenceSet)
	require.True(t, ok)
	require.Len(t, set.Sequences, 2)
}

func TestAtTimestampAndTimestampSet(t *testing.T) {
	s := seq(t, 0, 100, 0, 100, true, true)

	inst, ok := AtTimestamp(s, 50)
	require.True(t, ok)
	require.Equal(t, 50.0, inst.V.F)

	ts, err := timeset.NewTimestampSet([]timeset.Timestamp{10, 50, 90})
	require.NoError(t, err)

	insts := AtTimestampSet(s, ts)
	require.Len(t, insts, 3)
}
