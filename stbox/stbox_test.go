package stbox

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/timeset"
)

func mustPeriod(t *testing.T, lower, upper int64) timeset.Period {
	t.Helper()
	p, err := timeset.NewPeriod(timeset.Timestamp(lower), timeset.Timestamp(upper), true, true)
	require.NoError(t, err)

	return p
}

func TestNewSTBoxNormalizesSwap(t *testing.T) {
	b, err := NewSTBox(true, false, false, 0, 10, 0, 10, 0, 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, b.XMin)
	require.Equal(t, 10.0, b.XMax)
}

func TestFromPoint(t *testing.T) {
	p := geom.NewPoint2D(1, 2, 0)
	b := FromPoint(p, nil)
	require.Equal(t, 1.0, b.XMin)
	require.Equal(t, 1.0, b.XMax)
	require.Equal(t, 2.0, b.YMin)
}

func TestFromPoints(t *testing.T) {
	pts := []geom.Point{geom.NewPoint2D(0, 0, 0), geom.NewPoint2D(5, 3, 0), geom.NewPoint2D(-1, 4, 0)}
	b, err := FromPoints(pts, nil)
	require.NoError(t, err)
	require.Equal(t, -1.0, b.XMin)
	require.Equal(t, 5.0, b.XMax)
	require.Equal(t, 0.0, b.YMin)
	require.Equal(t, 4.0, b.YMax)
}

func TestExpand(t *testing.T) {
	a, _ := NewSTBox(true, false, false, 0, 0, 10, 0, 10, 0, 0, nil)
	b, _ := NewSTBox(true, false, false, 0, 5, 20, 5, 20, 0, 0, nil)
	Expand(&a, b)
	require.Equal(t, 0.0, a.XMin)
	require.Equal(t, 20.0, a.XMax)
}

func TestContainsOverlapsAdjacent(t *testing.T) {
	p := mustPeriod(t, 0, 100)
	outer, _ := NewSTBox(true, false, false, 0, 0, 10, 0, 10, 0, 0, &p)
	inner, _ := NewSTBox(true, false, false, 0, 2, 5, 2, 5, 0, 0, &p)
	require.True(t, outer.Contains(inner))
	require.True(t, inner.Contained(outer))
	require.True(t, outer.Overlaps(inner))
	require.False(t, outer.Adjacent(inner))
}

func TestPositionalPredicates(t *testing.T) {
	a, _ := NewSTBox(true, false, false, 0, 0, 5, 0, 5, 0, 0, nil)
	b, _ := NewSTBox(true, false, false, 0, 10, 15, 0, 5, 0, 0, nil)
	require.True(t, a.Left(b))
	require.True(t, b.Right(a))
	require.False(t, a.Right(b))
}

func TestUnionIntersect(t *testing.T) {
	a, _ := NewSTBox(true, false, false, 0, 0, 5, 0, 5, 0, 0, nil)
	b, _ := NewSTBox(true, false, false, 0, 3, 8, 3, 8, 0, 0, nil)

	u, err := Union(a, b, true)
	require.NoError(t, err)
	require.Equal(t, 0.0, u.XMin)
	require.Equal(t, 8.0, u.XMax)

	disjoint, _ := NewSTBox(true, false, false, 0, 100, 200, 100, 200, 0, 0, nil)
	_, err = Union(a, disjoint, true)
	require.Error(t, err)

	inter, ok := Intersect(a, b)
	require.True(t, ok)
	require.Equal(t, 3.0, inter.XMin)
	require.Equal(t, 5.0, inter.XMax)

	_, ok = Intersect(a, disjoint)
	require.False(t, ok)
}

func TestQuadSplit2D(t *testing.T) {
	b, _ := NewSTBox(true, false, false, 0, 0, 10, 0, 10, 0, 0, nil)
	quads, err := QuadSplit(b)
	require.NoError(t, err)
	require.Len(t, quads, 4)
}

func TestQuadSplit3D(t *testing.T) {
	b, _ := NewSTBox(true, true, false, 0, 0, 10, 0, 10, 0, 10, nil)
	quads, err := QuadSplit(b)
	require.NoError(t, err)
	require.Len(t, quads, 8)
}
