package wkb

import (
	"io"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/temporal"
)

// writeBBox serializes box per the WithBBox extension: the Period always,
// then box.STBox's six floats for a spatial kind, or box.TBox's Min/Max
// for a numeric kind. Non-spatial, non-numeric kinds (Text, NPoint) carry
// only the Period.
func writeBBox(w io.Writer, box temporal.BBox, base format.BaseKind, eng endian.EndianEngine) error {
	var tsBuf [16]byte
	eng.PutUint64(tsBuf[0:8], uint64(box.Period.Lower))
	eng.PutUint64(tsBuf[8:16], uint64(box.Period.Upper))
	if err := writeBytes(w, tsBuf[:]); err != nil {
		return err
	}

	switch {
	case base.Spatial() && box.STBox != nil:
		var buf [48]byte
		floats := []float64{
			box.STBox.XMin, box.STBox.XMax,
			box.STBox.YMin, box.STBox.YMax,
			box.STBox.ZMin, box.STBox.ZMax,
		}
		for i, f := range floats {
			eng.PutUint64(buf[i*8:i*8+8], floatBits(f))
		}

		return writeBytes(w, buf[:])
	case base.Numeric() && box.TBox != nil:
		var buf [16]byte
		eng.PutUint64(buf[0:8], floatBits(box.TBox.Min))
		eng.PutUint64(buf[8:16], floatBits(box.TBox.Max))

		return writeBytes(w, buf[:])
	}

	return nil
}

// skipBBox consumes a bbox payload written by writeBBox without
// reconstructing it: Decode always recomputes bounds from the decoded
// instants via the usual constructors, so the embedded copy only needs
// its bytes consumed to keep the reader positioned at the subtype
// payload.
func skipBBox(r io.Reader, base format.BaseKind, _ endian.EndianEngine) error {
	var periodBuf [16]byte
	if _, err := io.ReadFull(r, periodBuf[:]); err != nil {
		return err
	}

	switch {
	case base.Spatial():
		var buf [48]byte
		_, err := io.ReadFull(r, buf[:])

		return err
	case base.Numeric():
		var buf [16]byte
		_, err := io.ReadFull(r, buf[:])

		return err
	}

	return nil
}
