package stbox

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
)

// Union returns the STBox covering both b and o. If strict is true, Union
// fails when b and o do not overlap (§4.2: "union returns the box over the
// union of the two (fails if strict and they do not overlap)").
func Union(b, o STBox, strict bool) (STBox, error) {
	if !b.compatibleWith(o) {
		return STBox{}, fmt.Errorf("%w: stbox union requires matching SRID/geodetic flag", errs.ErrSridMismatch)
	}
	if strict && !b.Overlaps(o) {
		return STBox{}, fmt.Errorf("%w: stbox union of non-overlapping boxes", errs.ErrDisjointPeriods)
	}

	out := b
	Expand(&out, o)

	return out, nil
}

// Intersect returns the per-dimension intersection of b and o, when every
// dimension shared by both actually intersects (§4.2). Returns false
// otherwise.
func Intersect(b, o STBox) (STBox, bool) {
	if !b.compatibleWith(o) {
		return STBox{}, false
	}

	out := STBox{Geodetic: b.Geodetic, SRID: b.SRID}
	if b.HasX && o.HasX {
		if b.XMax < o.XMin || o.XMax < b.XMin || b.YMax < o.YMin || o.YMax < b.YMin {
			return STBox{}, false
		}
		out.HasX = true
		out.XMin, out.XMax = max(b.XMin, o.XMin), min(b.XMax, o.XMax)
		out.YMin, out.YMax = max(b.YMin, o.YMin), min(b.YMax, o.YMax)
		if b.HasZ && o.HasZ {
			if b.ZMax < o.ZMin || o.ZMax < b.ZMin {
				return STBox{}, false
			}
			out.HasZ = true
			out.ZMin, out.ZMax = max(b.ZMin, o.ZMin), min(b.ZMax, o.ZMax)
		}
	} else if b.HasX {
		out.HasX, out.HasZ = b.HasX, b.HasZ
		out.XMin, out.XMax, out.YMin, out.YMax, out.ZMin, out.ZMax = b.XMin, b.XMax, b.YMin, b.YMax, b.ZMin, b.ZMax
	} else if o.HasX {
		out.HasX, out.HasZ = o.HasX, o.HasZ
		out.XMin, out.XMax, out.YMin, out.YMax, out.ZMin, out.ZMax = o.XMin, o.XMax, o.YMin, o.YMax, o.ZMin, o.ZMax
	}

	if b.HasT && o.HasT {
		ip, ok := b.Period.Intersect(o.Period)
		if !ok {
			return STBox{}, false
		}
		out.HasT, out.Period = true, ip
	} else if b.HasT {
		out.HasT, out.Period = true, b.Period
	} else if o.HasT {
		out.HasT, out.Period = true, o.Period
	}

	return out, true
}

// QuadSplit divides the spatial extent of b into 4 (2D) or 8 (3D) equal-
// volume sub-boxes, preserving Z-front/Z-back layout in the 3D case
// (§4.2). The temporal dimension, if present, is copied unchanged into
// every sub-box. QuadSplit requires HasX.
func QuadSplit(b STBox) ([]STBox, error) {
	if !b.HasX {
		return nil, fmt.Errorf("%w: quad-split requires a spatial stbox", errs.ErrInvalidArg)
	}

	xMid := (b.XMin + b.XMax) / 2
	yMid := (b.YMin + b.YMax) / 2

	type quadrant struct{ xlo, xhi, ylo, yhi float64 }
	quads := []quadrant{
		{b.XMin, xMid, b.YMin, yMid}, // SW
		{xMid, b.XMax, b.YMin, yMid}, // SE
		{b.XMin, xMid, yMid, b.YMax}, // NW
		{xMid, b.XMax, yMid, b.YMax}, // NE
	}

	build := func(q quadrant, zlo, zhi float64, hasZ bool) STBox {
		out := STBox{
			HasX: true, HasZ: hasZ, Geodetic: b.Geodetic, SRID: b.SRID,
			XMin: q.xlo, XMax: q.xhi, YMin: q.ylo, YMax: q.yhi,
			HasT: b.HasT, Period: b.Period,
		}
		if hasZ {
			out.ZMin, out.ZMax = zlo, zhi
		}

		return out
	}

	if !b.HasZ {
		out := make([]STBox, 0, 4)
		for _, q := range quads {
			out = append(out, build(q, 0, 0, false))
		}

		return out, nil
	}

	zMid := (b.ZMin + b.ZMax) / 2
	out := make([]STBox, 0, 8)
	for _, q := range quads {
		out = append(out, build(q, b.ZMin, zMid, true)) // Z-front (-Z side)
	}
	for _, q := range quads {
		out = append(out, build(q, zMid, b.ZMax, true)) // Z-back (+Z side)
	}

	return out, nil
}
