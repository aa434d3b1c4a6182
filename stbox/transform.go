package stbox

import (
	"fmt"

	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/geom"
)

// Transform reprojects b to dstSRID: build the two opposite corner points,
// project each through proj (the narrow geom.Projector consumed interface
// of §6), then rebuild the bounding box from the projected corners (§4.2).
func Transform(b STBox, proj geom.Projector, dstSRID int32) (STBox, error) {
	if !b.HasX {
		return STBox{}, fmt.Errorf("%w: cannot reproject a non-spatial stbox", errs.ErrInvalidArg)
	}

	lo := geom.Point{X: b.XMin, Y: b.YMin, Z: b.ZMin, HasZ: b.HasZ, Geodetic: b.Geodetic, SRID: b.SRID}
	hi := geom.Point{X: b.XMax, Y: b.YMax, Z: b.ZMax, HasZ: b.HasZ, Geodetic: b.Geodetic, SRID: b.SRID}

	loT, err := proj.Transform(lo, b.SRID, dstSRID)
	if err != nil {
		return STBox{}, fmt.Errorf("transform lower corner: %w", err)
	}
	hiT, err := proj.Transform(hi, b.SRID, dstSRID)
	if err != nil {
		return STBox{}, fmt.Errorf("transform upper corner: %w", err)
	}

	out := STBox{
		HasX: true, HasZ: b.HasZ, Geodetic: b.Geodetic, SRID: dstSRID,
		XMin: min(loT.X, hiT.X), XMax: max(loT.X, hiT.X),
		YMin: min(loT.Y, hiT.Y), YMax: max(loT.Y, hiT.Y),
		HasT: b.HasT, Period: b.Period,
	}
	if b.HasZ {
		out.ZMin, out.ZMax = min(loT.Z, hiT.Z), max(loT.Z, hiT.Z)
	}

	return out, nil
}
