package basevalue

import (
	"io"
	"math"

	"github.com/temporalcore/tempo/endian"
)

// readUint64 and readFloat64 are the ReadWKB-side mirrors of the
// eng.PutUint64 calls WriteWKB makes across every Dispatch implementation.
func readUint64(r io.Reader, eng endian.EndianEngine) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return eng.Uint64(buf[:]), nil
}

func readFloat64(r io.Reader, eng endian.EndianEngine) (float64, error) {
	bits, err := readUint64(r, eng)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}
