package basevalue

import (
	"encoding/binary"
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

type npointDispatch struct{}

func (npointDispatch) Kind() format.BaseKind { return format.KindNPoint }
func (npointDispatch) Size(Value) int        { return 16 }
func (npointDispatch) Equal(a, b Value) bool  { return a.NP.Equal(b.NP) }
func (npointDispatch) Less(a, b Value) bool   { return a.NP.Less(b.NP) }

func (npointDispatch) Hash(v Value) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(v.NP.RouteID))
	binaryPutFloat64(buf[8:16], v.NP.Position)

	return hash.Bytes(buf[:])
}

func (npointDispatch) SRID(Value) (int32, bool)      { return 0, false }
func (npointDispatch) SetSRID(v Value, _ int32) Value { return v }

func (npointDispatch) InterpolateAt(a, b Value, ratio float64) Value {
	out := a
	out.NP = geom.InterpolateNPoint(a.NP, b.NP, ratio)

	return out
}

func (npointDispatch) SetSTBox(Value, *stbox.STBox) {
	// NPoint values resolve against a transportation network whose
	// geometry is outside tempo's scope (§1 Non-goals); no STBox is
	// derivable without that network, so this is intentionally a no-op.
}

func (npointDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	var buf [16]byte
	eng.PutUint64(buf[0:8], uint64(v.NP.RouteID))
	eng.PutUint64(buf[8:16], math.Float64bits(v.NP.Position))
	_, err := w.Write(buf[:])

	return err
}

func (npointDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	route, err := readUint64(r, eng)
	if err != nil {
		return Value{}, err
	}
	pos, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}

	return NewNPoint(geom.NewNPoint(int64(route), pos)), nil
}

func (npointDispatch) ParseElement(s string) (Value, error) {
	parts := strings.Fields(strings.NewReplacer(",", " ").Replace(s))
	if len(parts) != 2 {
		return Value{}, fmt.Errorf("%w: invalid npoint literal %q", errs.ErrTextInput, s)
	}

	route, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid npoint route %q", errs.ErrTextInput, parts[0])
	}
	pos, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid npoint position %q", errs.ErrTextInput, parts[1])
	}

	return NewNPoint(geom.NewNPoint(route, pos)), nil
}
