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

type poseDispatch struct{}

func (poseDispatch) Kind() format.BaseKind { return format.KindPose }
func (poseDispatch) Size(Value) int        { return 24 }
func (poseDispatch) Equal(a, b Value) bool  { return a.Ps.Equal(b.Ps) }

func (poseDispatch) Less(a, b Value) bool {
	if a.Ps.X != b.Ps.X {
		return a.Ps.X < b.Ps.X
	}
	if a.Ps.Y != b.Ps.Y {
		return a.Ps.Y < b.Ps.Y
	}

	return a.Ps.Theta < b.Ps.Theta
}

func (poseDispatch) Hash(v Value) uint64 {
	var buf [24]byte
	binaryPutFloat64(buf[0:8], v.Ps.X)
	binaryPutFloat64(buf[8:16], v.Ps.Y)
	binaryPutFloat64(buf[16:24], v.Ps.Theta)

	return hash.Bytes(buf[:])
}

func (poseDispatch) SRID(v Value) (int32, bool) { return v.Ps.SRID, true }

func (poseDispatch) SetSRID(v Value, srid int32) Value {
	v.Ps.SRID = srid

	return v
}

func (poseDispatch) InterpolateAt(a, b Value, ratio float64) Value {
	out := a
	out.Ps = geom.InterpolatePose(a.Ps, b.Ps, ratio)

	return out
}

func (poseDispatch) SetSTBox(v Value, box *stbox.STBox) {
	*box = stbox.FromPoint(v.Ps.Point(), &box.Period)
}

func (poseDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	for _, f := range []float64{v.Ps.X, v.Ps.Y, v.Ps.Theta} {
		var buf [8]byte
		eng.PutUint64(buf[:], math.Float64bits(f))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

func (poseDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	x, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}
	y, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}
	theta, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}

	return NewPose(geom.NewPose(x, y, theta, 0)), nil
}

func (poseDispatch) ParseElement(s string) (Value, error) {
	parts := strings.Fields(strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(s))
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("%w: invalid pose literal %q", errs.ErrTextInput, s)
	}

	vals := make([]float64, 3)
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid pose field %q", errs.ErrTextInput, p)
		}
		vals[i] = f
	}

	return NewPose(geom.NewPose(vals[0], vals[1], vals[2], 0)), nil
}
