package segment

import (
	"fmt"
	"math"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/timeset"
)

// ValueIntersection locates the timestamp(s) within seg at which seg's
// interpolated value equals target (§4.5: "Segment x value intersection
// ... Float case is a 1-D interpolation check; point case delegates to
// point-on-segment; NPoint compares positions"). seg must be Linear.
func ValueIntersection(seg Segment, target basevalue.Value) ([]timeset.Timestamp, error) {
	if seg.Interp != format.InterpLinear {
		return nil, fmt.Errorf("%w: value intersection requires a linear segment", errs.ErrInterpolationIllegal)
	}

	switch seg.V1.Kind {
	case format.KindFloat:
		return floatSegmentIntersection(seg, target.F), nil
	case format.KindInt:
		return floatSegmentIntersection(Segment{
			T1: seg.T1, T2: seg.T2,
			V1: basevalue.NewFloat(float64(seg.V1.I)), V2: basevalue.NewFloat(float64(seg.V2.I)),
			Interp: format.InterpLinear,
		}, float64(target.I)), nil
	case format.KindGeom, format.KindGeog:
		return SegmentIntersection(seg.T1, seg.T2, seg.V1.Pt, seg.V2.Pt, target.Pt, target.Pt)
	case format.KindNPoint:
		return npointSegmentIntersection(seg, target), nil
	default:
		return nil, fmt.Errorf("%w: value intersection undefined for %s", errs.ErrUnsupported, seg.V1.Kind)
	}
}

func floatSegmentIntersection(seg Segment, target float64) []timeset.Timestamp {
	v1, v2 := seg.V1.F, seg.V2.F
	if math.Abs(v2-v1) < FPTolerance {
		if math.Abs(v1-target) < FPTolerance {
			return []timeset.Timestamp{seg.T1}
		}

		return nil
	}

	r := (target - v1) / (v2 - v1)
	if r < -FPTolerance || r > 1+FPTolerance {
		return nil
	}
	r = math.Max(0, math.Min(1, r))

	t := seg.T1 + timeset.Timestamp(r*float64(seg.T2-seg.T1))

	return []timeset.Timestamp{t}
}

// Intersection locates the timestamp at which segA and segB (which must
// share the same time domain [T1, T2], as produced by sampling two
// sequences at their merged breakpoints) take on equal values, strictly
// between T1 and T2 — a boundary-touching equality is already a shared
// breakpoint and is not reported again. Returns ok=false when the
// segments never cross in the open interval.
//
// Grounded on tsegment_intersection (tsequence.c:1217-1231): when both
// segments are Linear it solves the two linear functions of t against
// each other directly (tnumbersegm_intersection, tsequence.c:1164,
// ratio r=(x3-x1)/(x2-x1-x4+x3), t=T1+r*(T2-T1)) rather than holding either side constant;
// when exactly one segment is Step, its value is constant over the whole
// domain, so the crossing reduces to ValueIntersection on the Linear
// side against that constant (tlinearsegm_intersection_value). Two Step
// segments never have an interior crossing to add (§4.6 step-3 requires
// at least one Linear side) and two Discrete segments have no
// interpolated value at all.
func Intersection(segA, segB Segment) (timeset.Timestamp, bool, error) {
	if segA.T1 != segB.T1 || segA.T2 != segB.T2 {
		return 0, false, fmt.Errorf("%w: intersection requires segments over the same time domain", errs.ErrInvalidArg)
	}

	switch {
	case segA.Interp == format.InterpLinear && segB.Interp == format.InterpLinear:
		return linearPairIntersection(segA, segB)
	case segA.Interp == format.InterpLinear && segB.Interp == format.InterpStep:
		return constantSideIntersection(segA, segB.V1)
	case segA.Interp == format.InterpStep && segB.Interp == format.InterpLinear:
		return constantSideIntersection(segB, segA.V1)
	default:
		return 0, false, nil
	}
}

// linearPairIntersection solves segA(t) == segB(t) for two Linear
// segments sharing a time domain.
func linearPairIntersection(segA, segB Segment) (timeset.Timestamp, bool, error) {
	switch segA.V1.Kind {
	case format.KindFloat:
		return floatPairIntersection(segA.T1, segA.T2, segA.V1.F, segA.V2.F, segB.V1.F, segB.V2.F)
	case format.KindInt:
		return floatPairIntersection(segA.T1, segA.T2, float64(segA.V1.I), float64(segA.V2.I), float64(segB.V1.I), float64(segB.V2.I))
	case format.KindGeom, format.KindGeog:
		ts, err := SegmentIntersection(segA.T1, segA.T2, segA.V1.Pt, segA.V2.Pt, segB.V1.Pt, segB.V2.Pt)
		if err != nil {
			return 0, false, err
		}

		return interiorRoot(ts, segA.T1, segA.T2)
	case format.KindNPoint:
		if segA.V1.NP.RouteID != segB.V1.NP.RouteID {
			return 0, false, nil
		}

		return floatPairIntersection(segA.T1, segA.T2, segA.V1.NP.Position, segA.V2.NP.Position, segB.V1.NP.Position, segB.V2.NP.Position)
	default:
		return 0, false, fmt.Errorf("%w: two-segment intersection undefined for %s", errs.ErrUnsupported, segA.V1.Kind)
	}
}

// floatPairIntersection implements tnumbersegm_intersection: two linear
// functions of t, x1+( x2-x1)*r and x3+(x4-x3)*r over r=(t-t1)/(t2-t1),
// solved for the r at which they're equal.
func floatPairIntersection(t1, t2 timeset.Timestamp, x1, x2, x3, x4 float64) (timeset.Timestamp, bool, error) {
	duration := float64(t2 - t1)
	if duration <= FPTolerance {
		return 0, false, nil
	}

	denum := x2 - x1 - x4 + x3
	if math.Abs(denum) < FPTolerance {
		return 0, false, nil // parallel: no unique crossing
	}

	r := (x3 - x1) / denum
	if r < FPTolerance || r > 1-FPTolerance {
		return 0, false, nil // not strictly interior
	}

	t := t1 + timeset.Timestamp(r*duration)
	if t <= t1 || t >= t2 {
		return 0, false, nil
	}

	return t, true, nil
}

// constantSideIntersection solves the Linear side against the constant
// value the Step side holds over the whole domain.
func constantSideIntersection(linearSeg Segment, constant basevalue.Value) (timeset.Timestamp, bool, error) {
	roots, err := ValueIntersection(linearSeg, constant)
	if err != nil {
		return 0, false, nil // unsupported kind pairing: no closed-form crossing
	}

	return interiorRoot(roots, linearSeg.T1, linearSeg.T2)
}

func interiorRoot(roots []timeset.Timestamp, t1, t2 timeset.Timestamp) (timeset.Timestamp, bool, error) {
	for _, t := range roots {
		if t > t1 && t < t2 {
			return t, true, nil
		}
	}

	return 0, false, nil
}

func npointSegmentIntersection(seg Segment, target basevalue.Value) []timeset.Timestamp {
	if seg.V1.NP.RouteID != target.NP.RouteID {
		return nil
	}

	p1, p2 := seg.V1.NP.Position, seg.V2.NP.Position
	if math.Abs(p2-p1) < FPTolerance {
		if math.Abs(p1-target.NP.Position) < FPTolerance {
			return []timeset.Timestamp{seg.T1}
		}

		return nil
	}

	r := (target.NP.Position - p1) / (p2 - p1)
	if r < -FPTolerance || r > 1+FPTolerance {
		return nil
	}
	r = math.Max(0, math.Min(1, r))

	t := seg.T1 + timeset.Timestamp(r*float64(seg.T2-seg.T1))

	return []timeset.Timestamp{t}
}
