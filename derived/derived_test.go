package derived

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

func ts(y, mo, d int) timeset.Timestamp {
	return timeset.FromTime(time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC))
}

func pointSeq(t *testing.T) temporal.TSequence {
	t.Helper()
	seq, err := temporal.NewSequence([]temporal.TInstant{
		temporal.NewInstant(ts(2024, 1, 1), basevalue.NewGeom(geom.NewPoint2D(0, 0, 0))),
		temporal.NewInstant(ts(2024, 1, 2), basevalue.NewGeom(geom.NewPoint2D(10, 0, 0))),
	}, format.InterpLinear, true, true, true)
	require.NoError(t, err)

	return seq
}

func floatSeq(t *testing.T, a, b float64) temporal.TSequence {
	t.Helper()
	seq, err := temporal.NewSequence([]temporal.TInstant{
		temporal.NewInstant(ts(2024, 1, 1), basevalue.NewFloat(a)),
		temporal.NewInstant(ts(2024, 1, 2), basevalue.NewFloat(b)),
	}, format.InterpLinear, true, true, true)
	require.NoError(t, err)

	return seq
}

func TestMakeTCBufferRoundTrip(t *testing.T) {
	tcb, err := MakeTCBuffer(pointSeq(t), floatSeq(t, 1, 3))
	require.NoError(t, err)
	require.Len(t, tcb.Instants, 2)
	require.Equal(t, format.KindCBuffer, tcb.Instants[0].V.Kind)
	require.Equal(t, 1.0, tcb.Instants[0].V.CB.Radius)
	require.Equal(t, 3.0, tcb.Instants[1].V.CB.Radius)
	require.Equal(t, 10.0, tcb.Instants[1].V.CB.Center.X)

	pts, err := ToTGeomPoint(tcb)
	require.NoError(t, err)
	require.Equal(t, format.KindGeom, pts.Instants[0].V.Kind)
	require.Equal(t, 0.0, pts.Instants[0].V.Pt.X)
	require.Equal(t, 10.0, pts.Instants[1].V.Pt.X)

	radii, err := ToTFloat(tcb)
	require.NoError(t, err)
	require.Equal(t, format.KindFloat, radii.Instants[0].V.Kind)
	require.Equal(t, 1.0, radii.Instants[0].V.F)
	require.Equal(t, 3.0, radii.Instants[1].V.F)
}

func TestMakeTPose(t *testing.T) {
	pose, err := MakeTPose(pointSeq(t), floatSeq(t, 0, 1.5707963267948966))
	require.NoError(t, err)
	require.Len(t, pose.Instants, 2)
	require.Equal(t, format.KindPose, pose.Instants[0].V.Kind)
	require.InDelta(t, 0.0, pose.Instants[0].V.Ps.X, 1e-9)
	require.InDelta(t, 10.0, pose.Instants[1].V.Ps.X, 1e-9)
	require.InDelta(t, 1.5707963267948966, pose.Instants[1].V.Ps.Theta, 1e-9)
}

func TestApproxCBufferFromGeomIsZeroRadius(t *testing.T) {
	cb, err := ApproxCBufferFromGeom(pointSeq(t))
	require.NoError(t, err)
	for _, inst := range cb.Instants {
		require.Equal(t, 0.0, inst.V.CB.Radius)
	}
	require.Equal(t, 10.0, cb.Instants[1].V.CB.Center.X)
}

func TestMakeTCBufferRejectsMismatchedKind(t *testing.T) {
	_, err := MakeTCBuffer(floatSeq(t, 1, 2), floatSeq(t, 1, 2))
	require.Error(t, err)
}

func TestMakeTCBufferAcceptsInstants(t *testing.T) {
	p := temporal.NewInstant(ts(2024, 1, 1), basevalue.NewGeom(geom.NewPoint2D(5, 5, 0)))
	r := temporal.NewInstant(ts(2024, 1, 1), basevalue.NewFloat(2))

	tcb, err := MakeTCBuffer(p, r)
	require.NoError(t, err)
	require.Len(t, tcb.Instants, 1)
	require.Equal(t, 2.0, tcb.Instants[0].V.CB.Radius)
}
