package timeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimestampPeriodPredicates(t *testing.T) {
	p := mustPeriod(t, 10, 20, true, false)

	require.True(t, BeforeTimestampPeriod(5, p))
	require.False(t, BeforeTimestampPeriod(10, p))
	require.True(t, AfterTimestampPeriod(20, p))
	require.False(t, AfterTimestampPeriod(19, p))
	require.True(t, AdjacentTimestampPeriod(20, p))
	require.False(t, AdjacentTimestampPeriod(10, p))
}

func TestTimestampPeriodSetPredicates(t *testing.T) {
	ps, err := NewPeriodSet([]Period{mustPeriod(t, 10, 20, true, true), mustPeriod(t, 30, 40, true, true)})
	require.NoError(t, err)

	require.True(t, BeforeTimestampPeriodSet(5, ps))
	require.False(t, BeforeTimestampPeriodSet(15, ps))
	require.True(t, AfterTimestampPeriodSet(45, ps))
	require.False(t, AfterTimestampPeriodSet(35, ps))
}

func TestTimestampSetPeriodPredicates(t *testing.T) {
	ts, err := NewTimestampSet([]Timestamp{1, 2, 3})
	require.NoError(t, err)
	p := mustPeriod(t, 0, 10, true, true)

	require.True(t, ContainsPeriodTimestampSet(p, ts))
	require.True(t, OverlapsTimestampSetPeriod(ts, p))
	require.False(t, BeforeTimestampSetPeriod(ts, p))

	outside := mustPeriod(t, 100, 200, true, true)
	require.True(t, BeforeTimestampSetPeriod(ts, outside))
	require.False(t, OverlapsTimestampSetPeriod(ts, outside))
}

func TestDistanceHelpers(t *testing.T) {
	require.True(t, DistanceTimestampTimestamp(5, 5).IsZero())
	require.Equal(t, int64(5), DistanceTimestampTimestamp(10, 5).Micros)

	p := mustPeriod(t, 10, 20, true, true)
	require.True(t, DistanceTimestampPeriod(15, p).IsZero())
	require.Equal(t, int64(5), DistanceTimestampPeriod(5, p).Micros)

	ps, err := NewPeriodSet([]Period{mustPeriod(t, 0, 10, true, true), mustPeriod(t, 100, 110, true, true)})
	require.NoError(t, err)
	d := DistancePeriodPeriodSet(mustPeriod(t, 20, 20, true, true), ps)
	require.Equal(t, int64(10), d.Micros)
}
