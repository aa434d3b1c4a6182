package basevalue

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/internal/hash"
	"github.com/temporalcore/tempo/stbox"
)

type floatDispatch struct{}

func (floatDispatch) Kind() format.BaseKind { return format.KindFloat }
func (floatDispatch) Size(Value) int        { return 8 }
func (floatDispatch) Equal(a, b Value) bool  { return a.F == b.F }
func (floatDispatch) Less(a, b Value) bool   { return a.F < b.F }

func (floatDispatch) Hash(v Value) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.F))

	return hash.Bytes(buf[:])
}

func (floatDispatch) SRID(Value) (int32, bool)      { return 0, false }
func (floatDispatch) SetSRID(v Value, _ int32) Value { return v }

func (floatDispatch) InterpolateAt(a, b Value, ratio float64) Value {
	return NewFloat(a.F + (b.F-a.F)*ratio)
}

func (floatDispatch) SetSTBox(Value, *stbox.STBox) {}

func (floatDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	var buf [8]byte
	eng.PutUint64(buf[:], math.Float64bits(v.F))
	_, err := w.Write(buf[:])

	return err
}

func (floatDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	f, err := readFloat64(r, eng)
	if err != nil {
		return Value{}, err
	}

	return NewFloat(f), nil
}

func (floatDispatch) ParseElement(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid float literal %q", errs.ErrTextInput, s)
	}

	return NewFloat(f), nil
}
