package timeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPeriodSetValidation(t *testing.T) {
	_, err := NewPeriodSet(nil)
	require.Error(t, err)

	p1 := mustPeriod(t, 0, 10, true, true)
	p2 := mustPeriod(t, 10, 20, true, true)
	_, err = NewPeriodSet([]Period{p1, p2})
	require.Error(t, err, "periods that both include a shared bound overlap there")

	p3 := mustPeriod(t, 11, 20, true, true)
	ps, err := NewPeriodSet([]Period{p1, p3})
	require.NoError(t, err)
	require.Equal(t, 2, ps.Len())
}

func TestNewPeriodSetFromUnsorted(t *testing.T) {
	p1 := mustPeriod(t, 10, 20, true, true)
	p2 := mustPeriod(t, 0, 10, true, false)
	p3 := mustPeriod(t, 30, 40, true, true)

	ps, err := NewPeriodSetFromUnsorted([]Period{p1, p2, p3})
	require.NoError(t, err)
	require.Equal(t, 2, ps.Len())
	require.Equal(t, mustPeriod(t, 0, 20, true, true), ps.At(0))
	require.Equal(t, mustPeriod(t, 30, 40, true, true), ps.At(1))
}

func TestPeriodSetFindContainsTimestamp(t *testing.T) {
	p1 := mustPeriod(t, 0, 10, true, true)
	p2 := mustPeriod(t, 20, 30, true, true)
	ps, err := NewPeriodSet([]Period{p1, p2})
	require.NoError(t, err)

	require.Equal(t, 0, ps.FindTimestamp(5))
	require.Equal(t, 1, ps.FindTimestamp(25))
	require.Equal(t, -1, ps.FindTimestamp(15))
	require.True(t, ps.ContainsTimestamp(0))
	require.False(t, ps.ContainsTimestamp(15))
}

func TestPeriodSetUnionIntersectDifference(t *testing.T) {
	a, err := NewPeriodSet([]Period{mustPeriod(t, 0, 10, true, true), mustPeriod(t, 20, 30, true, true)})
	require.NoError(t, err)
	b, err := NewPeriodSet([]Period{mustPeriod(t, 5, 25, true, true)})
	require.NoError(t, err)

	union := a.Union(b)
	require.Equal(t, 1, union.Len())
	require.Equal(t, mustPeriod(t, 0, 30, true, true), union.At(0))

	inter, ok := a.Intersect(b)
	require.True(t, ok)
	require.Equal(t, 2, inter.Len())
	require.Equal(t, mustPeriod(t, 5, 10, true, true), inter.At(0))
	require.Equal(t, mustPeriod(t, 20, 25, true, true), inter.At(1))

	diff, ok := a.Difference(b)
	require.True(t, ok)
	require.Equal(t, 2, diff.Len())

	_, ok = a.Difference(a)
	require.False(t, ok)
}

func TestPeriodSetOverlapsContainsAdjacent(t *testing.T) {
	a, err := NewPeriodSet([]Period{mustPeriod(t, 0, 10, true, true)})
	require.NoError(t, err)
	b, err := NewPeriodSet([]Period{mustPeriod(t, 5, 8, true, true)})
	require.NoError(t, err)
	c, err := NewPeriodSet([]Period{mustPeriod(t, 10, 20, false, true)})
	require.NoError(t, err)

	require.True(t, a.Overlaps(b))
	require.True(t, a.Contains(b))
	require.False(t, b.Contains(a))
	require.True(t, a.Adjacent(c))
}

func TestPeriodSetString(t *testing.T) {
	ps, err := NewPeriodSet([]Period{mustPeriod(t, 0, 10, true, true)})
	require.NoError(t, err)
	require.Contains(t, ps.String(), "{")
	require.Contains(t, ps.String(), "}")
}
