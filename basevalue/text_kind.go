package basevalue

import (
	"io"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/internal/hash"
	"github.com/temporalcore/tempo/stbox"
)

type textDispatch struct{}

func (textDispatch) Kind() format.BaseKind { return format.KindText }
func (textDispatch) Size(v Value) int       { return 4 + len(v.S) }
func (textDispatch) Equal(a, b Value) bool  { return a.S == b.S }
func (textDispatch) Less(a, b Value) bool   { return a.S < b.S }
func (textDispatch) Hash(v Value) uint64    { return hash.ID(v.S) }

func (textDispatch) SRID(Value) (int32, bool)      { return 0, false }
func (textDispatch) SetSRID(v Value, _ int32) Value { return v }

func (textDispatch) InterpolateAt(a, _ Value, _ float64) Value {
	return a // Text is discrete-only; interpolation is never invoked (§3).
}

func (textDispatch) SetSTBox(Value, *stbox.STBox) {}

// WriteWKB writes a length-prefixed UTF-8 payload (encoding/varstring.go's
// own length-prefix convention, generalized from a columnar string array
// to a single base-value payload).
func (textDispatch) WriteWKB(w io.Writer, v Value, eng endian.EndianEngine) error {
	var lenBuf [4]byte
	eng.PutUint32(lenBuf[:], uint32(len(v.S)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, v.S)

	return err
}

// ReadWKB is the inverse of WriteWKB's length-prefixed UTF-8 encoding.
func (textDispatch) ReadWKB(r io.Reader, eng endian.EndianEngine, _ bool) (Value, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return Value{}, err
	}

	n := eng.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Value{}, err
	}

	return NewText(string(buf)), nil
}

func (textDispatch) ParseElement(s string) (Value, error) {
	return NewText(s), nil
}
