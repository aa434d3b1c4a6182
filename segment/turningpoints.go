package segment

import (
	"math"
	"sort"

	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/timeset"
)

// TurningPoints locates the timestamps within [tL, tU] at which the
// distance between two moving circular buffers equals the threshold d
// (§4.5: "model centres as p1 + v*s, p2 + u*s ... the signed distance
// squared minus d^2 is a quadratic in s; solve; clip roots to [0,
// duration]"). Returns zero, one or two ascending timestamps.
//
// Grounded directly on tcbuffersegm_dwithin_turnpt in the MobilityDB/MEOS
// C sources this spec distills: f(s) = (||centre1(s)-centre2(s)|| -
// (r1(s)+r2(s))) - d is not itself quadratic, but its square expands to a
// quadratic in s once the cross term is isolated algebraically; roots are
// verified against the true (non-squared) distance function to reject the
// spurious root the squaring introduces.
func TurningPoints(tL, tU timeset.Timestamp, start1, end1, start2, end2 geom.CBuffer, d float64) ([]timeset.Timestamp, error) {
	duration := float64(tU - tL)
	if duration <= FPTolerance {
		return nil, nil
	}

	dx0 := start1.Center.X - start2.Center.X
	dy0 := start1.Center.Y - start2.Center.Y
	r0 := start1.Radius + start2.Radius

	vx := ((end1.Center.X - start1.Center.X) - (end2.Center.X - start2.Center.X)) / duration
	vy := ((end1.Center.Y - start1.Center.Y) - (end2.Center.Y - start2.Center.Y)) / duration
	vr := ((end1.Radius - start1.Radius) + (end2.Radius - start2.Radius)) / duration

	a := vx*vx + vy*vy - vr*vr
	b := 2 * (dx0*vx + dy0*vy - (r0+d)*vr)
	c := dx0*dx0 + dy0*dy0 - (r0+d)*(r0+d)
	delta := b*b - 4*a*c

	distAt := func(s float64) float64 {
		dx := dx0 + vx*s
		dy := dy0 + vy*s
		sumR := r0 + vr*s

		return math.Sqrt(dx*dx+dy*dy) - sumR
	}

	var roots []float64
	tryRoot := func(s float64) {
		if s < -FPTolerance || s > duration+FPTolerance {
			return
		}
		if math.Abs(distAt(s)-d) >= FPTolerance {
			return
		}
		for _, r := range roots {
			if math.Abs(r-s) <= FPTolerance {
				return
			}
		}
		roots = append(roots, s)
	}

	if delta >= -FPTolerance {
		if a == 0 && math.Abs(b) >= FPTolerance {
			tryRoot(-c / b)
		} else if a != 0 {
			sqrtDelta := math.Sqrt(math.Max(0, delta))
			tryRoot((-b - sqrtDelta) / (2 * a))
			tryRoot((-b + sqrtDelta) / (2 * a))
		}
	}

	sort.Float64s(roots)

	out := make([]timeset.Timestamp, len(roots))
	for i, s := range roots {
		out[i] = tL + timeset.Timestamp(int64(s))
	}

	return out, nil
}

// SegmentIntersection reports zero, one or two timestamps at which two
// point segments (radii zero) intersect, the degenerate case §4.5 calls
// out: "Identical mathematics, with radii zero, yields point-segment x
// point-segment intersection."
func SegmentIntersection(tL, tU timeset.Timestamp, start1, end1, start2, end2 geom.Point) ([]timeset.Timestamp, error) {
	return TurningPoints(tL, tU,
		geom.NewCBuffer(start1, 0), geom.NewCBuffer(end1, 0),
		geom.NewCBuffer(start2, 0), geom.NewCBuffer(end2, 0), 0)
}
