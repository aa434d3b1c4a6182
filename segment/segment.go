// Package segment implements the segment-level kernels of §4.5: value at
// a time strictly between two instants, collinearity testing, turning-
// point computation for circular-buffer/point d-within crossings, and
// segment x value intersection. These kernels are the only place the
// lifting engine (§4.6) and restriction engine (§4.7) reach below the
// basevalue.Dispatch abstraction, since value-at-time genuinely needs
// both instants of a segment rather than a single Value.
package segment

import (
	"fmt"
	"math"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/timeset"
)

// FPTolerance is the single floating-point tolerance every root-finder in
// this package uses (§4.5: "a single floating-point tolerance
// FP_TOLERANCE (~1e-12)"), grounded on the teacher's own single-constant
// policy for rounding behavior (encoding/ts_delta.go keeps one delta-zigzag
// convention rather than a tolerance per call site).
const FPTolerance = 1e-12

// Segment is a pair of consecutive instants of a temporal sequence: the
// minimal unit value-at-time, collinearity and turning-point queries
// operate on.
type Segment struct {
	T1, T2 timeset.Timestamp
	V1, V2 basevalue.Value
	Interp format.Interpolation
}

// ValueAtTime returns the value of seg at t (§4.5: "value_at_time(seg,
// t)"). t must lie in [seg.T1, seg.T2]. Step returns V1 for t < T2, V2 at
// t == T2. Linear dispatches to basevalue.Dispatch.InterpolateAt with
// ratio r = (t-T1)/(T2-T1). Discrete segments have no defined
// interior value since each instant stands alone (§3).
func ValueAtTime(seg Segment, t timeset.Timestamp) (basevalue.Value, error) {
	if t < seg.T1 || t > seg.T2 {
		return basevalue.Value{}, fmt.Errorf("%w: time outside segment bounds", errs.ErrInvalidArg)
	}

	switch seg.Interp {
	case format.InterpStep:
		if t == seg.T2 {
			return seg.V2, nil
		}

		return seg.V1, nil
	case format.InterpLinear:
		if seg.T1 == seg.T2 {
			return seg.V1, nil
		}
		r := float64(t-seg.T1) / float64(seg.T2-seg.T1)

		return basevalue.For(seg.V1.Kind).InterpolateAt(seg.V1, seg.V2, r), nil
	default:
		return basevalue.Value{}, fmt.Errorf("%w: value_at_time undefined for discrete segments", errs.ErrInterpolationIllegal)
	}
}

// Collinear tests three instants for collinearity (§4.5: "interpolate the
// first and third at the middle instant's ratio and compare to the middle
// under the base kind's equality tolerance"). t1 < t2 < t3 is assumed.
func Collinear(kind format.BaseKind, t1, t2, t3 timeset.Timestamp, v1, v2, v3 basevalue.Value) bool {
	if t1 == t3 {
		return approxEqual(kind, v1, v2) && approxEqual(kind, v2, v3)
	}

	r := float64(t2-t1) / float64(t3-t1)
	mid := basevalue.For(kind).InterpolateAt(v1, v3, r)

	return approxEqual(kind, mid, v2)
}

// approxEqual reports whether a and b are equal under FPTolerance, per
// BaseKind. Non-numeric/non-spatial kinds (Text) fall back to exact
// Dispatch.Equal, since a text base value has no meaningful magnitude.
func approxEqual(kind format.BaseKind, a, b basevalue.Value) bool {
	switch kind {
	case format.KindInt:
		return a.I == b.I
	case format.KindFloat:
		return math.Abs(a.F-b.F) < FPTolerance
	case format.KindGeom, format.KindGeog:
		return geom.Distance3D(a.Pt, b.Pt) < FPTolerance
	case format.KindCBuffer:
		return geom.Distance2D(a.CB.Center, b.CB.Center) < FPTolerance && math.Abs(a.CB.Radius-b.CB.Radius) < FPTolerance
	case format.KindNPoint:
		return a.NP.RouteID == b.NP.RouteID && math.Abs(a.NP.Position-b.NP.Position) < FPTolerance
	case format.KindPose:
		return math.Abs(a.Ps.X-b.Ps.X) < FPTolerance && math.Abs(a.Ps.Y-b.Ps.Y) < FPTolerance && math.Abs(a.Ps.Theta-b.Ps.Theta) < FPTolerance
	default:
		return basevalue.For(kind).Equal(a, b)
	}
}

