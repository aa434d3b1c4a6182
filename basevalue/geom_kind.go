package basevalue

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/internal/hash"
	"github.com/temporalcore/tempo/stbox"
)

// geomDispatch implements Dispatch for planar points (KindGeom); with
// geodetic=true it also backs geogDispatch (KindGeog) by embedding, since
// the two kinds differ only in their WKT tag and geodetic flag, not in
// the shape of the underlying operations.
type geomDispatch struct{ geodetic bool }

func (geomDispatch) Kind() format.BaseKind { return format.KindGeom }
func (geomDispatch) Size(v Value) int {
	if v.Pt.HasZ {
		return 24
	}

	return 16
}

func (geomDispatch) Equal(a, b Value) bool { return a.Pt.EqualsExact(b.Pt) }

func (geomDispatch) Less(a, b Value) bool {
	if a.Pt.X != b.Pt.X {
		return a.Pt.X < b.Pt.X
	}
	if a.Pt.Y != b.Pt.Y {
		return a.Pt.Y < b.Pt.Y
	}

	return a.Pt.Z < b.Pt.Z
}

func (geomDispatch) Hash(v Value) uint64 {
	var buf [24]byte
	binaryPutFloat64(buf[0:8], v.Pt.X)
	binaryPutFloat64(buf[8:16], v.Pt.Y)
	binaryPutFloat64(buf[16:24], v.Pt.Z)

	return hash.Bytes(buf[:])
}

func (geomDispatch) SRID(v Value) (int32, bool) { return v.Pt.SRID, true }

func (geomDispatch) SetSRID(v Value, srid int32) Value {
	v.Pt = v.Pt.WithSRID(srid)

	return v
}

func (geomDispatch) InterpolateAt(a, b Value, ratio float64) Value {
	out := a
	out.Pt = geom.Interpolate(a.Pt, b.Pt, ratio)

	return out
}

func (geomDispatch) SetSTBox(v Value, box *stbox.STBox) {
	*box = stbox.FromPoint(v.Pt, &box.Period)
}

func (geomDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	fields := []float64{v.Pt.X, v.Pt.Y}
	if v.Pt.HasZ {
		fields = append(fields, v.Pt.Z)
	}
	for _, f := range fields {
		var buf [8]byte
		eng.PutUint64(buf[:], math.Float64bits(f))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func (d geomDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, hasZ bool) (Value, error) {
	x, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}
	y, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}

	var pt geom.Point
	if hasZ {
		z, err := readFloat64(r, eng)
		if err != nil {
			return Value{}, err
		}
		pt = geom.NewPoint3D(x, y, z, 0)
	} else {
		pt = geom.NewPoint2D(x, y, 0)
	}
	pt.Geodetic = d.geodetic

	out := Value{Kind: format.KindGeom, Pt: pt}
	if d.geodetic {
		out.Kind = format.KindGeog
	}

	return out, nil
}

func (d geomDispatch) ParseElement(s string) (Value, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 || len(parts) > 3 {
		return Value{}, fmt.Errorf("%w: invalid point literal %q", errs.ErrTextInput, s)
	}

	coords := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid point coordinate %q", errs.ErrTextInput, p)
		}
		coords[i] = f
	}

	var pt geom.Point
	if len(coords) == 3 {
		pt = geom.NewPoint3D(coords[0], coords[1], coords[2], 0)
	} else {
		pt = geom.NewPoint2D(coords[0], coords[1], 0)
	}
	pt.Geodetic = d.geodetic

	out := Value{Kind: format.KindGeom, Pt: pt}
	if d.geodetic {
		out.Kind = format.KindGeog
	}

	return out, nil
}

// geogDispatch backs KindGeog; it embeds geomDispatch (constructed with
// geodetic=true) and overrides only Kind.
type geogDispatch struct{ geomDispatch }

func (geogDispatch) Kind() format.BaseKind { return format.KindGeog }

func binaryPutFloat64(buf []byte, f float64) {
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
}
