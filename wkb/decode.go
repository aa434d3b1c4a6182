package wkb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

// Decode parses a WKB frame produced by Encode (§4.9). The frame
// self-describes its own byte order via the leading endian marker; any
// Option's Engine is ignored here.
func Decode(b []byte, opts ...Option) (temporal.Temporal, error) {
	if _, err := newConfig(opts); err != nil {
		return nil, err
	}

	r := bytes.NewReader(b)

	var markerBuf [1]byte
	if _, err := io.ReadFull(r, markerBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated WKB endian marker: %v", errs.ErrBinaryInput, err)
	}

	var eng endian.EndianEngine
	switch markerBuf[0] {
	case 0:
		eng = endian.GetBigEndianEngine()
	case 1:
		eng = endian.GetLittleEndianEngine()
	default:
		return nil, fmt.Errorf("%w: unrecognized endian marker %d", errs.ErrBinaryInput, markerBuf[0])
	}

	var codeBuf [2]byte
	if _, err := io.ReadFull(r, codeBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated WKB TempType code: %v", errs.ErrBinaryInput, err)
	}
	tt := format.TempTypeFromCode(eng.Uint16(codeBuf[:]))

	var flagsBuf [1]byte
	if _, err := io.ReadFull(r, flagsBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated WKB flag byte: %v", errs.ErrBinaryInput, err)
	}
	flags := flagsBuf[0]

	var subtypeBuf [1]byte
	if _, err := io.ReadFull(r, subtypeBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated WKB subtype byte: %v", errs.ErrBinaryInput, err)
	}
	subtype := format.Subtype(subtypeBuf[0])

	var srid int32
	if flags&flagSRID != 0 {
		var sridBuf [4]byte
		if _, err := io.ReadFull(r, sridBuf[:]); err != nil {
			return nil, fmt.Errorf("%w: truncated WKB SRID: %v", errs.ErrBinaryInput, err)
		}
		srid = int32(eng.Uint32(sridBuf[:]))
	}

	if flags&flagBBox != 0 {
		if err := skipBBox(r, tt.Base, eng); err != nil {
			return nil, fmt.Errorf("%w: truncated WKB bbox payload: %v", errs.ErrBinaryInput, err)
		}
	}

	hasZ := flags&flagZ != 0
	disp := basevalue.For(tt.Base)

	interp := format.InterpStep
	switch {
	case flags&flagDiscrete != 0:
		interp = format.InterpDiscrete
	case flags&flagLinear != 0:
		interp = format.InterpLinear
	}

	switch subtype {
	case format.SubtypeInstant:
		return readInstant(r, disp, eng, hasZ, srid)
	case format.SubtypeSequence:
		return readSequence(r, disp, eng, hasZ, srid, interp)
	case format.SubtypeSequenceSet:
		return readSequenceSet(r, disp, eng, hasZ, srid, interp)
	default:
		return nil, fmt.Errorf("%w: unrecognized WKB subtype %d", errs.ErrBinaryInput, subtype)
	}
}

func applyDecodedSRID(v basevalue.Value, disp basevalue.Dispatch, srid int32) basevalue.Value {
	if srid == 0 {
		return v
	}
	if _, ok := disp.SRID(v); !ok {
		return v
	}

	return disp.SetSRID(v, srid)
}

func readInstantValue(r io.Reader, disp basevalue.Dispatch, eng endian.EndianEngine, hasZ bool, srid int32) (temporal.TInstant, error) {
	var tsBuf [8]byte
	if _, err := io.ReadFull(r, tsBuf[:]); err != nil {
		return temporal.TInstant{}, fmt.Errorf("%w: truncated WKB timestamp: %v", errs.ErrBinaryInput, err)
	}
	ts := timeset.Timestamp(eng.Uint64(tsBuf[:]))

	v, err := disp.ReadWKB(r, eng, hasZ)
	if err != nil {
		return temporal.TInstant{}, fmt.Errorf("%w: truncated WKB base value: %v", errs.ErrBinaryInput, err)
	}
	v = applyDecodedSRID(v, disp, srid)

	return temporal.NewInstant(ts, v), nil
}

func readInstant(r io.Reader, disp basevalue.Dispatch, eng endian.EndianEngine, hasZ bool, srid int32) (temporal.TInstant, error) {
	return readInstantValue(r, disp, eng, hasZ, srid)
}

func readSequenceBody(r io.Reader, disp basevalue.Dispatch, eng endian.EndianEngine, hasZ bool, srid int32, interp format.Interpolation) (temporal.TSequence, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return temporal.TSequence{}, fmt.Errorf("%w: truncated WKB sequence count: %v", errs.ErrBinaryInput, err)
	}
	count := eng.Uint32(countBuf[:])

	var incBuf [1]byte
	if _, err := io.ReadFull(r, incBuf[:]); err != nil {
		return temporal.TSequence{}, fmt.Errorf("%w: truncated WKB inclusivity byte: %v", errs.ErrBinaryInput, err)
	}
	lowerInc := incBuf[0]&incLower != 0
	upperInc := incBuf[0]&incUpper != 0

	instants := make([]temporal.TInstant, count)
	for i := range instants {
		inst, err := readInstantValue(r, disp, eng, hasZ, srid)
		if err != nil {
			return temporal.TSequence{}, err
		}
		instants[i] = inst
	}

	return temporal.NewSequence(instants, interp, lowerInc, upperInc, true)
}

func readSequence(r io.Reader, disp basevalue.Dispatch, eng endian.EndianEngine, hasZ bool, srid int32, interp format.Interpolation) (temporal.TSequence, error) {
	return readSequenceBody(r, disp, eng, hasZ, srid, interp)
}

func readSequenceSet(r io.Reader, disp basevalue.Dispatch, eng endian.EndianEngine, hasZ bool, srid int32, interp format.Interpolation) (temporal.TSequenceSet, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return temporal.TSequenceSet{}, fmt.Errorf("%w: truncated WKB sequence-set count: %v", errs.ErrBinaryInput, err)
	}
	count := eng.Uint32(countBuf[:])

	seqs := make([]temporal.TSequence, count)
	for i := range seqs {
		seq, err := readSequenceBody(r, disp, eng, hasZ, srid, interp)
		if err != nil {
			return temporal.TSequenceSet{}, err
		}
		seqs[i] = seq
	}

	return temporal.NewSequenceSet(seqs)
}
