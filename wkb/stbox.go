package wkb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/internal/pool"
	"github.com/temporalcore/tempo/stbox"
	"github.com/temporalcore/tempo/timeset"
)

// EncodeSTBox renders box as a WKB binary frame: a box is a value in its
// own right (§1.3/§2-C2), not just a Temporal accessory, so it gets its
// own frame rather than reusing Encode's Temporal-only layout. Layout:
// 1-byte endian marker; 1-byte flag byte (reusing flagX/flagZ/flagT/
// flagGeodetic/flagSRID from the Temporal frame); optional 4-byte SRID;
// the six X/Y/Z bounds when HasX; the period (lower, upper, inclusivity
// byte) when HasT.
func EncodeSTBox(box stbox.STBox, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	marker := byte(1)
	if cfg.Engine == endian.GetBigEndianEngine() {
		marker = 0
	}
	buf.MustWrite([]byte{marker})

	var flags uint8
	if box.HasX {
		flags |= flagX
	}
	if box.HasZ {
		flags |= flagZ
	}
	if box.HasT {
		flags |= flagT
	}
	if box.Geodetic {
		flags |= flagGeodetic
	}
	if box.SRID != 0 {
		flags |= flagSRID
	}
	buf.MustWrite([]byte{flags})

	if box.SRID != 0 {
		var sridBuf [4]byte
		cfg.Engine.PutUint32(sridBuf[:], uint32(box.SRID))
		buf.MustWrite(sridBuf[:])
	}

	if box.HasX {
		var coordBuf [48]byte
		floats := []float64{box.XMin, box.XMax, box.YMin, box.YMax, box.ZMin, box.ZMax}
		for i, f := range floats {
			cfg.Engine.PutUint64(coordBuf[i*8:i*8+8], floatBits(f))
		}
		buf.MustWrite(coordBuf[:])
	}

	if box.HasT {
		var periodBuf [17]byte
		cfg.Engine.PutUint64(periodBuf[0:8], uint64(box.Period.Lower))
		cfg.Engine.PutUint64(periodBuf[8:16], uint64(box.Period.Upper))
		var inc uint8
		if box.Period.LowerInc {
			inc |= incLower
		}
		if box.Period.UpperInc {
			inc |= incUpper
		}
		periodBuf[16] = inc
		buf.MustWrite(periodBuf[:])
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeSTBox is the inverse of EncodeSTBox.
func DecodeSTBox(b []byte, opts ...Option) (stbox.STBox, error) {
	if _, err := newConfig(opts); err != nil {
		return stbox.STBox{}, err
	}

	r := bytes.NewReader(b)

	var markerBuf [1]byte
	if _, err := io.ReadFull(r, markerBuf[:]); err != nil {
		return stbox.STBox{}, fmt.Errorf("%w: truncated STBox WKB endian marker: %v", errs.ErrBinaryInput, err)
	}

	var eng endian.EndianEngine
	switch markerBuf[0] {
	case 0:
		eng = endian.GetBigEndianEngine()
	case 1:
		eng = endian.GetLittleEndianEngine()
	default:
		return stbox.STBox{}, fmt.Errorf("%w: unrecognized STBox WKB endian marker %d", errs.ErrBinaryInput, markerBuf[0])
	}

	var flagsBuf [1]byte
	if _, err := io.ReadFull(r, flagsBuf[:]); err != nil {
		return stbox.STBox{}, fmt.Errorf("%w: truncated STBox WKB flag byte: %v", errs.ErrBinaryInput, err)
	}
	flags := flagsBuf[0]

	box := stbox.STBox{
		HasX:     flags&flagX != 0,
		HasZ:     flags&flagZ != 0,
		HasT:     flags&flagT != 0,
		Geodetic: flags&flagGeodetic != 0,
	}

	if flags&flagSRID != 0 {
		var sridBuf [4]byte
		if _, err := io.ReadFull(r, sridBuf[:]); err != nil {
			return stbox.STBox{}, fmt.Errorf("%w: truncated STBox WKB SRID: %v", errs.ErrBinaryInput, err)
		}
		box.SRID = int32(eng.Uint32(sridBuf[:]))
	}

	if box.HasX {
		var coordBuf [48]byte
		if _, err := io.ReadFull(r, coordBuf[:]); err != nil {
			return stbox.STBox{}, fmt.Errorf("%w: truncated STBox WKB coordinates: %v", errs.ErrBinaryInput, err)
		}
		floats := make([]float64, 6)
		for i := range floats {
			floats[i] = floatFromBits(eng.Uint64(coordBuf[i*8 : i*8+8]))
		}
		box.XMin, box.XMax = floats[0], floats[1]
		box.YMin, box.YMax = floats[2], floats[3]
		box.ZMin, box.ZMax = floats[4], floats[5]
	}

	if box.HasT {
		var periodBuf [17]byte
		if _, err := io.ReadFull(r, periodBuf[:]); err != nil {
			return stbox.STBox{}, fmt.Errorf("%w: truncated STBox WKB period: %v", errs.ErrBinaryInput, err)
		}
		box.Period = timeset.Period{
			Lower:    timeset.Timestamp(eng.Uint64(periodBuf[0:8])),
			Upper:    timeset.Timestamp(eng.Uint64(periodBuf[8:16])),
			LowerInc: periodBuf[16]&incLower != 0,
			UpperInc: periodBuf[16]&incUpper != 0,
		}
	}

	return box, nil
}
