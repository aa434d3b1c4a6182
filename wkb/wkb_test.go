package wkb

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

func ts(t *testing.T, y, mo, d int) timeset.Timestamp {
	t.Helper()
	return timeset.FromTime(time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC))
}

func TestEncodeDecodeInstantFloat(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewFloat(1.5))

	b, err := Encode(inst)
	require.NoError(t, err)
	require.Equal(t, byte(1), b[0]) // little-endian marker

	out, err := Decode(b)
	require.NoError(t, err)

	got, ok := out.(temporal.TInstant)
	require.True(t, ok)
	require.Equal(t, inst.T, got.T)
	require.Equal(t, inst.V.F, got.V.F)
}

func TestEncodeDecodeBigEndian(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewInt(42))

	b, err := Encode(inst, WithEngine(endian.GetBigEndianEngine()))
	require.NoError(t, err)
	require.Equal(t, byte(0), b[0])

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, int64(42), got.V.I)
}

func TestEncodeDecodeSequenceDiscrete(t *testing.T) {
	instants := []temporal.TInstant{
		temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewInt(1)),
		temporal.NewInstant(ts(t, 2024, 1, 2), basevalue.NewInt(2)),
		temporal.NewInstant(ts(t, 2024, 1, 3), basevalue.NewInt(3)),
	}
	seq, err := temporal.NewSequence(instants, format.InterpDiscrete, true, true, true)
	require.NoError(t, err)

	b, err := Encode(seq)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TSequence)
	require.Equal(t, format.InterpDiscrete, got.Interp)
	require.Len(t, got.Instants, 3)
	require.Equal(t, int64(2), got.Instants[1].V.I)
}

func TestEncodeDecodeSequenceLinearOpenUpper(t *testing.T) {
	instants := []temporal.TInstant{
		temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewFloat(1.0)),
		temporal.NewInstant(ts(t, 2024, 1, 2), basevalue.NewFloat(2.0)),
	}
	seq, err := temporal.NewSequence(instants, format.InterpLinear, true, false, true)
	require.NoError(t, err)

	b, err := Encode(seq)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TSequence)
	require.Equal(t, format.InterpLinear, got.Interp)
	require.True(t, got.LowerInc)
	require.False(t, got.UpperInc)
}

func TestEncodeDecodeSequenceSet(t *testing.T) {
	s1, err := temporal.NewSequence([]temporal.TInstant{
		temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewFloat(1.0)),
		temporal.NewInstant(ts(t, 2024, 1, 2), basevalue.NewFloat(2.0)),
	}, format.InterpLinear, true, true, true)
	require.NoError(t, err)

	s2, err := temporal.NewSequence([]temporal.TInstant{
		temporal.NewInstant(ts(t, 2024, 1, 5), basevalue.NewFloat(5.0)),
		temporal.NewInstant(ts(t, 2024, 1, 6), basevalue.NewFloat(6.0)),
	}, format.InterpLinear, true, true, true)
	require.NoError(t, err)

	ss, err := temporal.NewSequenceSet([]temporal.TSequence{s1, s2})
	require.NoError(t, err)

	b, err := Encode(ss)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TSequenceSet)
	require.Len(t, got.Sequences, 2)
}

func TestEncodeDecodeGeogPointWithSRID(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewGeog(geom.NewGeodeticPoint(1, 2, 3, true, 4326)))

	b, err := Encode(inst)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, format.KindGeog, got.V.Kind)
	require.True(t, got.V.Pt.HasZ)
	require.Equal(t, int32(4326), got.V.Pt.SRID)
	require.Equal(t, 3.0, got.V.Pt.Z)
}

func TestEncodeDecodeTextInstant(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewText("idle"))

	b, err := Encode(inst)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, "idle", got.V.S)
}

func TestEncodeDecodeWithBBox(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewGeom(geom.NewPoint2D(1, 2, 0)))

	b, err := Encode(inst, WithBBox())
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, 1.0, got.V.Pt.X)
}

func TestEncodeHexDecodeHex(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewInt(7))

	s, err := EncodeHex(inst)
	require.NoError(t, err)

	out, err := DecodeHex(s)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, int64(7), got.V.I)
}

func TestWriteReadCompressedBelowThreshold(t *testing.T) {
	inst := temporal.NewInstant(ts(t, 2024, 1, 1), basevalue.NewInt(7))

	b, err := WriteCompressed(inst, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.NotEqual(t, compressedMagic, b[0])

	out, err := ReadCompressed(b)
	require.NoError(t, err)
	got := out.(temporal.TInstant)
	require.Equal(t, int64(7), got.V.I)
}

func TestWriteReadCompressedAboveThreshold(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	instants := make([]temporal.TInstant, 0, 2000)
	for i := 0; i < 2000; i++ {
		instants = append(instants, temporal.NewInstant(
			timeset.FromTime(base.Add(time.Duration(i)*time.Second)),
			basevalue.NewFloat(math.Sin(float64(i)))))
	}
	seq, err := temporal.NewSequence(instants, format.InterpLinear, true, true, true)
	require.NoError(t, err)

	b, err := WriteCompressed(seq, WithCompression(format.CompressionZstd), WithCompressionThreshold(128))
	require.NoError(t, err)
	require.Equal(t, compressedMagic, b[0])

	out, err := ReadCompressed(b)
	require.NoError(t, err)
	got := out.(temporal.TSequence)
	require.Equal(t, len(seq.Instants), len(got.Instants))
	require.InDelta(t, seq.Instants[len(seq.Instants)-1].V.F, got.Instants[len(got.Instants)-1].V.F, 1e-9)
}

func TestDecodeRejectsBadEndianMarker(t *testing.T) {
	_, err := Decode([]byte{9, 0, 0, 0, 0})
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedFrame(t *testing.T) {
	_, err := Decode([]byte{1, 0})
	require.Error(t, err)
}
