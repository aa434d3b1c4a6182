// Package stbox implements the spatiotemporal bounding box (§3, §4.2):
// an axis-aligned box over X/Y/Z combined with a temporal Period, carrying
// a geodetic flag and an SRID. It is both an index key and a first-class
// value.
package stbox

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/timeset"
)

// STBox is the spatiotemporal bounding box of §3: "(xmin, xmax, ymin, ymax,
// zmin, zmax, period, flags {has-X, has-Z, has-T, geodetic}, SRID)".
type STBox struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64

	HasX     bool
	HasZ     bool
	HasT     bool
	Geodetic bool
	SRID     int32

	Period timeset.Period
}

// NewSTBox builds an STBox, normalizing any min/max swap and validating the
// §3 invariants: min <= max per present dimension; geodetic implies HasX
// and defaults SRID to WGS-84; HasX or HasT must hold.
func NewSTBox(hasX, hasZ, geodetic bool, srid int32, xmin, xmax, ymin, ymax, zmin, zmax float64, period *timeset.Period) (STBox, error) {
	if geodetic && !hasX {
		return STBox{}, fmt.Errorf("%w: geodetic stbox must carry X/Y/Z", errs.ErrInvalidArg)
	}
	if !hasX && period == nil {
		return STBox{}, fmt.Errorf("%w: stbox requires at least one of has-X or has-T", errs.ErrInvalidArg)
	}

	if geodetic && srid == 0 {
		srid = geom.WGS84SRID
	}

	b := STBox{
		HasX: hasX, HasZ: hasZ, Geodetic: geodetic, SRID: srid,
	}
	if hasX {
		b.XMin, b.XMax = minMax(xmin, xmax)
		b.YMin, b.YMax = minMax(ymin, ymax)
		if hasZ {
			b.ZMin, b.ZMax = minMax(zmin, zmax)
		}
	}
	if period != nil {
		b.HasT = true
		b.Period = *period
	}

	return b, nil
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}

	return a, b
}

// FromPoint reduces a single point to a degenerate STBox (geo_set_stbox's
// fast path for one point): xmin == xmax == p.X, and so on.
func FromPoint(p geom.Point, period *timeset.Period) STBox {
	b := STBox{
		HasX: true, HasZ: p.HasZ, Geodetic: p.Geodetic, SRID: p.SRID,
		XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y,
	}
	if p.HasZ {
		b.ZMin, b.ZMax = p.Z, p.Z
	}
	if period != nil {
		b.HasT = true
		b.Period = *period
	}

	return b
}

// FromPoints reduces a slice of points (geo_set_stbox's general case — the
// spec calls out the single-point fast path above, FromPoints generalizes
// it to an arbitrary geometry reduced to its vertex set) to the STBox
// enclosing all of them.
func FromPoints(pts []geom.Point, period *timeset.Period) (STBox, error) {
	if len(pts) == 0 {
		return STBox{}, fmt.Errorf("%w: no points to bound", errs.ErrEmptyInput)
	}

	b := FromPoint(pts[0], period)
	for _, p := range pts[1:] {
		b.XMin, b.XMax = min(b.XMin, p.X), max(b.XMax, p.X)
		b.YMin, b.YMax = min(b.YMin, p.Y), max(b.YMax, p.Y)
		if b.HasZ && p.HasZ {
			b.ZMin, b.ZMax = min(b.ZMin, p.Z), max(b.ZMax, p.Z)
		}
	}

	return b, nil
}

// Expand mutates dst in place to cover src as well (stbox_expand): a plain
// union that tolerates dst starting out empty-of-dimension (e.g. !HasT).
func Expand(dst *STBox, src STBox) {
	if src.HasX {
		if !dst.HasX {
			dst.HasX, dst.XMin, dst.XMax, dst.YMin, dst.YMax = true, src.XMin, src.XMax, src.YMin, src.YMax
		} else {
			dst.XMin, dst.XMax = min(dst.XMin, src.XMin), max(dst.XMax, src.XMax)
			dst.YMin, dst.YMax = min(dst.YMin, src.YMin), max(dst.YMax, src.YMax)
		}
		if src.HasZ {
			if !dst.HasZ {
				dst.HasZ, dst.ZMin, dst.ZMax = true, src.ZMin, src.ZMax
			} else {
				dst.ZMin, dst.ZMax = min(dst.ZMin, src.ZMin), max(dst.ZMax, src.ZMax)
			}
		}
	}
	if src.HasT {
		if !dst.HasT {
			dst.HasT, dst.Period = true, src.Period
		} else {
			dst.Period = dst.Period.Union(src.Period).Period()
		}
	}
}

// compatibleWith reports whether b and o can be compared: when both carry
// a spatial part, their SRID and geodetic flag must match (§4.2). Boxes
// without a shared spatial part are always compatible; Z is not checked.
func (b STBox) compatibleWith(o STBox) bool {
	if b.HasX && o.HasX && (b.SRID != o.SRID || b.Geodetic != o.Geodetic) {
		return false
	}

	return true
}

// String renders b using the WKT-adjacent notation of §4.8's STBox grammar
// fast path (the wkt package owns full parsing/printing; this is a debug
// aid mirroring the teacher's Stringer methods on section headers).
func (b STBox) String() string {
	s := "STBOX"
	if b.Geodetic {
		s = "GEODSTBOX"
	}
	dim := ""
	if b.HasZ {
		dim += "Z"
	}
	if b.HasT {
		dim += "T"
	}
	if dim != "" {
		s += " " + dim
	}
	if b.HasX {
		if b.HasZ {
			s += fmt.Sprintf("(((%g,%g,%g),(%g,%g,%g)))", b.XMin, b.YMin, b.ZMin, b.XMax, b.YMax, b.ZMax)
		} else {
			s += fmt.Sprintf("(((%g,%g),(%g,%g)))", b.XMin, b.YMin, b.XMax, b.YMax)
		}
	}
	if b.HasT {
		s += fmt.Sprintf(",%s", b.Period.String())
	}

	return s
}
