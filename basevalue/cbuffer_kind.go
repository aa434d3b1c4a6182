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

type cbufferDispatch struct{}

func (cbufferDispatch) Kind() format.BaseKind { return format.KindCBuffer }
func (cbufferDispatch) Size(Value) int        { return 24 }
func (cbufferDispatch) Equal(a, b Value) bool  { return a.CB.Equal(b.CB) }

func (cbufferDispatch) Less(a, b Value) bool {
	if a.CB.Center.X != b.CB.Center.X {
		return a.CB.Center.X < b.CB.Center.X
	}
	if a.CB.Center.Y != b.CB.Center.Y {
		return a.CB.Center.Y < b.CB.Center.Y
	}

	return a.CB.Radius < b.CB.Radius
}

func (cbufferDispatch) Hash(v Value) uint64 {
	var buf [24]byte
	binaryPutFloat64(buf[0:8], v.CB.Center.X)
	binaryPutFloat64(buf[8:16], v.CB.Center.Y)
	binaryPutFloat64(buf[16:24], v.CB.Radius)

	return hash.Bytes(buf[:])
}

func (cbufferDispatch) SRID(v Value) (int32, bool) { return v.CB.Center.SRID, true }

func (cbufferDispatch) SetSRID(v Value, srid int32) Value {
	v.CB.Center = v.CB.Center.WithSRID(srid)

	return v
}

func (cbufferDispatch) InterpolateAt(a, b Value, ratio float64) Value {
	out := a
	out.CB = geom.InterpolateCBuffer(a.CB, b.CB, ratio)

	return out
}

func (cbufferDispatch) SetSTBox(v Value, box *stbox.STBox) {
	bb := v.CB.BoundingBox()
	box.HasX = true
	box.XMin, box.XMax = bb.XMin, bb.XMax
	box.YMin, box.YMax = bb.YMin, bb.YMax
	box.SRID = v.CB.Center.SRID
}

func (cbufferDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	for _, f := range []float64{v.CB.Center.X, v.CB.Center.Y, v.CB.Radius} {
		var buf [8]byte
		eng.PutUint64(buf[:], math.Float64bits(f))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func (cbufferDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	x, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}
	y, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}
	radius, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}

	return NewCBuffer(geom.NewCBuffer(geom.NewPoint2D(x, y, 0), radius)), nil
}

func (cbufferDispatch) ParseElement(s string) (Value, error) {
	parts := strings.Fields(strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(s))
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("%w: invalid cbuffer literal %q", errs.ErrTextInput, s)
	}

	vals := make([]float64, 3)
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid cbuffer field %q", errs.ErrTextInput, p)
		}
		vals[i] = f
	}

	return NewCBuffer(geom.NewCBuffer(geom.NewPoint2D(vals[0], vals[1], 0), vals[2])), nil
}
