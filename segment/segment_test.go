package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/timeset"
)

func TestValueAtTimeStep(t *testing.T) {
	seg := Segment{
		T1: 0, T2: 100,
		V1: basevalue.NewFloat(1), V2: basevalue.NewFloat(2),
		Interp: format.InterpStep,
	}
	v, err := ValueAtTime(seg, 50)
	require.NoError(t, err)
	require.Equal(t, 1.0, v.F)

	v, err = ValueAtTime(seg, 100)
	require.NoError(t, err)
	require.Equal(t, 2.0, v.F)
}

func TestValueAtTimeLinear(t *testing.T) {
	seg := Segment{
		T1: 0, T2: 100,
		V1: basevalue.NewFloat(0), V2: basevalue.NewFloat(100),
		Interp: format.InterpLinear,
	}
	v, err := ValueAtTime(seg, 25)
	require.NoError(t, err)
	require.Equal(t, 25.0, v.F)
}

func TestValueAtTimeOutOfBounds(t *testing.T) {
	seg := Segment{T1: 0, T2: 10, V1: basevalue.NewFloat(0), V2: basevalue.NewFloat(1), Interp: format.InterpLinear}
	_, err := ValueAtTime(seg, 20)
	require.Error(t, err)
}

func TestValueAtTimeDiscreteUndefined(t *testing.T) {
	seg := Segment{T1: 0, T2: 10, V1: basevalue.NewFloat(0), V2: basevalue.NewFloat(1), Interp: format.InterpDiscrete}
	_, err := ValueAtTime(seg, 5)
	require.Error(t, err)
}

func TestCollinear(t *testing.T) {
	v1 := basevalue.NewFloat(0)
	v2 := basevalue.NewFloat(5)
	v3 := basevalue.NewFloat(10)
	require.True(t, Collinear(format.KindFloat, 0, 50, 100, v1, v2, v3))

	offPath := basevalue.NewFloat(6)
	require.False(t, Collinear(format.KindFloat, 0, 50, 100, v1, offPath, v3))
}

func TestTurningPointsCBuffer(t *testing.T) {
	c1a := geom.NewCBuffer(geom.NewPoint2D(0, 0, 0), 1)
	c1b := geom.NewCBuffer(geom.NewPoint2D(10, 0, 0), 1)
	c2a := geom.NewCBuffer(geom.NewPoint2D(10, 0, 0), 1)
	c2b := geom.NewCBuffer(geom.NewPoint2D(0, 0, 0), 1)

	roots, err := TurningPoints(0, 100, c1a, c1b, c2a, c2b, 2)
	require.NoError(t, err)
	require.NotEmpty(t, roots)
	for _, r := range roots {
		require.GreaterOrEqual(t, int64(r), int64(0))
		require.LessOrEqual(t, int64(r), int64(100))
	}
}

func TestValueIntersectionFloat(t *testing.T) {
	seg := Segment{
		T1: 0, T2: 100,
		V1: basevalue.NewFloat(0), V2: basevalue.NewFloat(100),
		Interp: format.InterpLinear,
	}
	roots, err := ValueIntersection(seg, basevalue.NewFloat(50))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, timeset.Timestamp(50), roots[0])
}

func TestValueIntersectionNPoint(t *testing.T) {
	seg := Segment{
		T1: 0, T2: 100,
		V1: basevalue.NewNPoint(geom.NewNPoint(1, 0)),
		V2: basevalue.NewNPoint(geom.NewNPoint(1, 1)),
		Interp: format.InterpLinear,
	}
	roots, err := ValueIntersection(seg, basevalue.NewNPoint(geom.NewNPoint(1, 0.5)))
	require.NoError(t, err)
	require.Len(t, roots, 1)
}
