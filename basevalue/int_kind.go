package basevalue

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/internal/hash"
	"github.com/temporalcore/tempo/stbox"
)

type intDispatch struct{}

func (intDispatch) Kind() format.BaseKind { return format.KindInt }
func (intDispatch) Size(Value) int        { return 8 }
func (intDispatch) Equal(a, b Value) bool  { return a.I == b.I }
func (intDispatch) Less(a, b Value) bool   { return a.I < b.I }

func (intDispatch) Hash(v Value) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.I))

	return hash.Bytes(buf[:])
}

func (intDispatch) SRID(Value) (int32, bool)         { return 0, false }
func (intDispatch) SetSRID(v Value, _ int32) Value    { return v }
func (intDispatch) InterpolateAt(a, _ Value, _ float64) Value { return a }
func (intDispatch) SetSTBox(Value, *stbox.STBox)      {}

func (intDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	var buf [8]byte
	eng.PutUint64(buf[:], uint64(v.I))
	_, err := w.Write(buf[:])

	return err
}

func (intDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	u, err := readUint64(r, eng)
	if err != nil {
		return Value{}, err
	}

	return NewInt(int64(u)), nil
}

func (intDispatch) ParseElement(s string) (Value, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid int literal %q", errs.ErrTextInput, s)
	}

	return NewInt(i), nil
}
