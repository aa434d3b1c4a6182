package timeset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	ts := FromTime(now)
	require.Equal(t, now, ts.Time())
}

func TestTimestampCmp(t *testing.T) {
	a := Timestamp(100)
	b := Timestamp(200)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
	require.True(t, a.Before(b))
	require.True(t, b.After(a))
}

func TestAddSubInterval(t *testing.T) {
	base := FromTime(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	iv := Interval{Months: 1}
	shifted := base.AddInterval(iv)
	require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), shifted.Time())
	require.Equal(t, FromTime(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)), shifted.SubInterval(iv))
}

func TestIntervalOut(t *testing.T) {
	require.Equal(t, "00:00:00", IntervalOut(Interval{}))
	require.Equal(t, "1 mon 00:00:01", IntervalOut(Interval{Months: 1, Micros: 1_000_000}))
	require.Equal(t, "-00:00:01", IntervalOut(Interval{Micros: -1_000_000}))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2020-01-01 00:00:00")
	require.NoError(t, err)
	require.Equal(t, FromTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), ts)

	_, err = ParseTimestamp("not a timestamp")
	require.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("1 mon 2 days 01:02:03")
	require.NoError(t, err)
	require.Equal(t, int32(1), iv.Months)
	require.Equal(t, int32(2), iv.Days)
	require.Equal(t, int64(3723_000_000), iv.Micros)

	_, err = ParseInterval("garbage")
	require.Error(t, err)
}
