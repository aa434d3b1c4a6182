package wkb

import (
	"fmt"
	"io"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/internal/pool"
	"github.com/temporalcore/tempo/temporal"
)

// Encode renders t as a WKB binary frame (§4.9).
func Encode(t temporal.Temporal, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	if err := writeFrame(buf, t, cfg); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func writeBytes(w io.Writer, b []byte) error {
	_, err := w.Write(b)

	return err
}

func sampleValue(t temporal.Temporal) (basevalue.Value, format.Interpolation, format.Subtype, error) {
	switch v := t.(type) {
	case temporal.TInstant:
		return v.V, 0, format.SubtypeInstant, nil
	case temporal.TSequence:
		if len(v.Instants) == 0 {
			return basevalue.Value{}, 0, 0, fmt.Errorf("%w: empty sequence", errs.ErrEmptyInput)
		}

		return v.Instants[0].V, v.Interp, format.SubtypeSequence, nil
	case temporal.TSequenceSet:
		if len(v.Sequences) == 0 || len(v.Sequences[0].Instants) == 0 {
			return basevalue.Value{}, 0, 0, fmt.Errorf("%w: empty sequence set", errs.ErrEmptyInput)
		}

		return v.Sequences[0].Instants[0].V, v.Interp, format.SubtypeSequenceSet, nil
	default:
		return basevalue.Value{}, 0, 0, fmt.Errorf("%w: unrecognized Temporal implementation %T", errs.ErrInternalType, t)
	}
}

func writeFrame(w io.Writer, t temporal.Temporal, cfg *Config) error {
	tt := t.Type()
	disp := basevalue.For(tt.Base)

	sample, interp, subtype, err := sampleValue(t)
	if err != nil {
		return err
	}

	srid, spatial := disp.SRID(sample)
	hasSRID := spatial && srid != 0

	var flags uint8
	flags |= flagT
	if tt.Base.Spatial() {
		flags |= flagX
	}
	if tt.Base == format.KindGeom || tt.Base == format.KindGeog {
		if sample.Pt.HasZ {
			flags |= flagZ
		}
		if sample.Pt.Geodetic {
			flags |= flagGeodetic
		}
	}
	if hasSRID {
		flags |= flagSRID
	}
	if cfg.IncludeBBox {
		flags |= flagBBox
	}
	switch interp {
	case format.InterpLinear:
		flags |= flagLinear
	case format.InterpDiscrete:
		flags |= flagDiscrete
	}

	marker := byte(1)
	if cfg.Engine == endian.GetBigEndianEngine() {
		marker = 0
	}
	if err := writeBytes(w, []byte{marker}); err != nil {
		return err
	}

	var codeBuf [2]byte
	cfg.Engine.PutUint16(codeBuf[:], tt.Code())
	if err := writeBytes(w, codeBuf[:]); err != nil {
		return err
	}

	if err := writeBytes(w, []byte{flags}); err != nil {
		return err
	}
	if err := writeBytes(w, []byte{byte(subtype)}); err != nil {
		return err
	}

	if hasSRID {
		var sridBuf [4]byte
		cfg.Engine.PutUint32(sridBuf[:], uint32(srid))
		if err := writeBytes(w, sridBuf[:]); err != nil {
			return err
		}
	}

	if cfg.IncludeBBox {
		if err := writeBBox(w, t.Bounds(), tt.Base, cfg.Engine); err != nil {
			return err
		}
	}

	switch v := t.(type) {
	case temporal.TInstant:
		return writeInstantBody(w, v, disp, cfg.Engine)
	case temporal.TSequence:
		return writeSequenceBody(w, v, disp, cfg.Engine)
	case temporal.TSequenceSet:
		return writeSequenceSetBody(w, v, disp, cfg.Engine)
	}

	return nil
}

func writeInstantBody(w io.Writer, inst temporal.TInstant, disp basevalue.Dispatch, eng endian.EndianEngine) error {
	var tsBuf [8]byte
	eng.PutUint64(tsBuf[:], uint64(inst.T))
	if err := writeBytes(w, tsBuf[:]); err != nil {
		return err
	}

	return disp.WriteWKB(w, inst.V, eng)
}

func writeSequenceBody(w io.Writer, seq temporal.TSequence, disp basevalue.Dispatch, eng endian.EndianEngine) error {
	var countBuf [4]byte
	eng.PutUint32(countBuf[:], uint32(len(seq.Instants)))
	if err := writeBytes(w, countBuf[:]); err != nil {
		return err
	}

	var inc uint8
	if seq.LowerInc {
		inc |= incLower
	}
	if seq.UpperInc {
		inc |= incUpper
	}
	if err := writeBytes(w, []byte{inc}); err != nil {
		return err
	}

	for _, inst := range seq.Instants {
		if err := writeInstantBody(w, inst, disp, eng); err != nil {
			return err
		}
	}

	return nil
}

func writeSequenceSetBody(w io.Writer, ss temporal.TSequenceSet, disp basevalue.Dispatch, eng endian.EndianEngine) error {
	var countBuf [4]byte
	eng.PutUint32(countBuf[:], uint32(len(ss.Sequences)))
	if err := writeBytes(w, countBuf[:]); err != nil {
		return err
	}

	for _, seq := range ss.Sequences {
		if err := writeSequenceBody(w, seq, disp, eng); err != nil {
			return err
		}
	}

	return nil
}
