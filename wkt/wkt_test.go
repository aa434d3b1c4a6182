package wkt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temporalcore/tempo/basevalue"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/stbox"
	"github.com/temporalcore/tempo/temporal"
	"github.com/temporalcore/tempo/timeset"
)

func mustTS(t *testing.T, y, mo, d, h, mi, s int) timeset.Timestamp {
	t.Helper()
	return timeset.FromTime(time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC))
}

func TestParseFormatInstantFloat(t *testing.T) {
	v, err := Parse("1.5@2024-01-01")
	require.NoError(t, err)

	inst, ok := v.(temporal.TInstant)
	require.True(t, ok)
	require.Equal(t, format.KindFloat, inst.V.Kind)
	require.Equal(t, 1.5, inst.V.F)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "1.5@2024-01-01", out)
}

func TestParseFormatInstantIntRoundTrip(t *testing.T) {
	v, err := Parse("42@2024-01-01")
	require.NoError(t, err)

	inst := v.(temporal.TInstant)
	require.Equal(t, format.KindInt, inst.V.Kind)
	require.Equal(t, int64(42), inst.V.I)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "42@2024-01-01", out)
}

func TestFloatWholeNumberKeepsDecimalPoint(t *testing.T) {
	out := formatBaseValueLiteral(basevalue.NewFloat(2))
	require.Equal(t, "2.0", out)

	v, err := parseBaseValueLiteral(out)
	require.NoError(t, err)
	require.Equal(t, format.KindFloat, v.Kind)
}

func TestParseFormatText(t *testing.T) {
	v, err := Parse("'idle'@2024-01-01")
	require.NoError(t, err)

	inst := v.(temporal.TInstant)
	require.Equal(t, format.KindText, inst.V.Kind)
	require.Equal(t, "idle", inst.V.S)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "'idle'@2024-01-01", out)
}

func TestParseFormatPointLiteral(t *testing.T) {
	v, err := Parse("Point(1 2)@2024-01-01")
	require.NoError(t, err)

	inst := v.(temporal.TInstant)
	require.Equal(t, format.KindGeom, inst.V.Kind)
	require.Equal(t, 1.0, inst.V.Pt.X)
	require.Equal(t, 2.0, inst.V.Pt.Y)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "Point(1.0 2.0)@2024-01-01", out)
}

func TestParseFormatGeogPointWithSRID(t *testing.T) {
	v, err := Parse("SRID=4326;GeogPoint(1 2)@2024-01-01")
	require.NoError(t, err)

	inst := v.(temporal.TInstant)
	require.Equal(t, format.KindGeog, inst.V.Kind)
	require.Equal(t, int32(4326), inst.V.Pt.SRID)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "SRID=4326;GeogPoint(1.0 2.0)@2024-01-01", out)
}

func TestParseCBufferAndPose(t *testing.T) {
	v, err := Parse("CBuffer(1 2,3)@2024-01-01")
	require.NoError(t, err)
	inst := v.(temporal.TInstant)
	require.Equal(t, format.KindCBuffer, inst.V.Kind)
	require.Equal(t, 3.0, inst.V.CB.Radius)

	v2, err := Parse("Pose(1,2,3)@2024-01-01")
	require.NoError(t, err)
	inst2 := v2.(temporal.TInstant)
	require.Equal(t, format.KindPose, inst2.V.Kind)
	require.Equal(t, 3.0, inst2.V.Ps.Theta)
}

func TestParseFormatDiscreteSequence(t *testing.T) {
	v, err := Parse("{1@2024-01-01, 2@2024-01-02, 3@2024-01-03}")
	require.NoError(t, err)

	seq, ok := v.(temporal.TSequence)
	require.True(t, ok)
	require.Equal(t, format.InterpDiscrete, seq.Interp)
	require.Len(t, seq.Instants, 3)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "{1@2024-01-01, 2@2024-01-02, 3@2024-01-03}", out)
}

func TestParseFormatContinuousSequenceDefaultLinear(t *testing.T) {
	v, err := Parse("[1.0@2024-01-01, 2.0@2024-01-02)")
	require.NoError(t, err)

	seq := v.(temporal.TSequence)
	require.Equal(t, format.InterpLinear, seq.Interp)
	require.True(t, seq.LowerInc)
	require.False(t, seq.UpperInc)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "[1.0@2024-01-01, 2.0@2024-01-02)", out)
}

func TestParseContinuousSequenceDefaultStepForNonContinuousKind(t *testing.T) {
	v, err := Parse("['idle'@2024-01-01, 'busy'@2024-01-02]")
	require.NoError(t, err)

	seq := v.(temporal.TSequence)
	require.Equal(t, format.InterpStep, seq.Interp)
}

func TestParseFormatSequenceSet(t *testing.T) {
	v, err := Parse("{[1.0@2024-01-01, 2.0@2024-01-02], [5.0@2024-01-05, 6.0@2024-01-06]}")
	require.NoError(t, err)

	ss, ok := v.(temporal.TSequenceSet)
	require.True(t, ok)
	require.Len(t, ss.Sequences, 2)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "{[1.0@2024-01-01, 2.0@2024-01-02], [5.0@2024-01-05, 6.0@2024-01-06]}", out)
}

func TestParseExplicitStepInterpolation(t *testing.T) {
	v, err := Parse("Interp=Step;[1.0@2024-01-01, 2.0@2024-01-02]")
	require.NoError(t, err)

	seq := v.(temporal.TSequence)
	require.Equal(t, format.InterpStep, seq.Interp)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "Interp=Step;[1.0@2024-01-01, 2.0@2024-01-02]", out)
}

func TestParseSRIDMismatchOnNonSpatialKind(t *testing.T) {
	_, err := Parse("SRID=4326;1.0@2024-01-01")
	require.Error(t, err)
}

func TestParseMissingAtSeparator(t *testing.T) {
	_, err := Parse("1.0 2024-01-01")
	require.Error(t, err)
}

func TestParseEmptySequenceSet(t *testing.T) {
	_, err := Parse("{}")
	require.Error(t, err)
}

func TestParseFormatTimestampMidnightVsFullTime(t *testing.T) {
	v, err := Parse("1@2024-01-01 08:30:00")
	require.NoError(t, err)

	out, err := Format(v)
	require.NoError(t, err)
	require.Equal(t, "1@2024-01-01 08:30:00", out)
}

func TestParseFormatSTBoxCombinedZT(t *testing.T) {
	b, err := ParseSTBox("SRID=4326;STBOX ZT(((1,2,3),(4,5,6)),[2020-01-01,2020-01-02])")
	require.NoError(t, err)

	require.True(t, b.HasX)
	require.True(t, b.HasZ)
	require.True(t, b.HasT)
	require.Equal(t, int32(4326), b.SRID)
	require.Equal(t, 1.0, b.XMin)
	require.Equal(t, 4.0, b.XMax)
	require.Equal(t, 3.0, b.ZMin)

	out := FormatSTBox(b)
	back, err := ParseSTBox(out)
	require.NoError(t, err)
	require.Equal(t, b, back)
}

func TestParseFormatSTBoxSpatialOnly(t *testing.T) {
	b, err := ParseSTBox("STBOX X((1,2),(4,5))")
	require.NoError(t, err)
	require.True(t, b.HasX)
	require.False(t, b.HasZ)
	require.False(t, b.HasT)

	out := FormatSTBox(b)
	require.Equal(t, "STBOX X((1,2),(4,5))", out)
}

func TestParseFormatSTBoxTemporalOnly(t *testing.T) {
	b, err := ParseSTBox("STBOX T[2020-01-01,2020-01-02]")
	require.NoError(t, err)
	require.False(t, b.HasX)
	require.True(t, b.HasT)

	out := FormatSTBox(b)
	require.Equal(t, "STBOX T[2020-01-01,2020-01-02]", out)
}

func TestParseGeodSTBox(t *testing.T) {
	b, err := ParseSTBox("GEODSTBOX XT((1,2),(4,5),[2020-01-01,2020-01-02])")
	require.NoError(t, err)
	require.True(t, b.Geodetic)
	require.Equal(t, int32(geom.WGS84SRID), b.SRID)
}

func TestParseSTBoxOpenPeriodBound(t *testing.T) {
	b, err := ParseSTBox("STBOX T(2020-01-01,2020-01-02]")
	require.NoError(t, err)
	require.False(t, b.Period.LowerInc)
	require.True(t, b.Period.UpperInc)
}

func TestFormatInternalTypeError(t *testing.T) {
	_, err := Format(nil)
	require.Error(t, err)
}

func TestWithSRIDDefaultOption(t *testing.T) {
	v, err := Parse("GeogPoint(1 2)@2024-01-01", WithSRID(4326))
	require.NoError(t, err)
	inst := v.(temporal.TInstant)
	require.Equal(t, int32(4326), inst.V.Pt.SRID)
}

func TestStBoxBuilderStillUsable(t *testing.T) {
	p, err := timeset.NewPeriod(mustTS(t, 2020, 1, 1, 0, 0, 0), mustTS(t, 2020, 1, 2, 0, 0, 0), true, true)
	require.NoError(t, err)

	b, err := stbox.NewSTBox(true, false, false, 0, 1, 4, 2, 5, 0, 0, &p)
	require.NoError(t, err)

	out := FormatSTBox(b)
	back, err := ParseSTBox(out)
	require.NoError(t, err)
	require.Equal(t, b, back)
}
