package tempo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temporalcore/tempo/temporal"
)

func TestParseFormatWKTRoundTrip(t *testing.T) {
	lit := "{1@2020-01-01, 2@2020-01-02, 3@2020-01-03}"

	v, err := ParseWKT(lit)
	require.NoError(t, err)

	out, err := FormatWKT(v)
	require.NoError(t, err)
	require.Equal(t, lit, out)
}

func TestEncodeDecodeWKBRoundTrip(t *testing.T) {
	v, err := ParseWKT("1.5@2020-01-01")
	require.NoError(t, err)

	b, err := EncodeWKB(v)
	require.NoError(t, err)

	got, err := DecodeWKB(b)
	require.NoError(t, err)

	inst, ok := got.(temporal.TInstant)
	require.True(t, ok)
	require.Equal(t, 1.5, inst.V.F)
}

func TestEncodeDecodeHexWKBRoundTrip(t *testing.T) {
	v, err := ParseWKT("42@2020-01-01")
	require.NoError(t, err)

	s, err := EncodeHexWKB(v)
	require.NoError(t, err)

	got, err := DecodeHexWKB(s)
	require.NoError(t, err)

	inst, ok := got.(temporal.TInstant)
	require.True(t, ok)
	require.Equal(t, int64(42), inst.V.I)
}

func TestParseFormatSTBoxRoundTrip(t *testing.T) {
	lit := "STBOX XT((0,0),(10,10),[2020-01-01,2020-01-02])"

	b, err := ParseSTBox(lit)
	require.NoError(t, err)

	out := FormatSTBox(b)
	require.NotEmpty(t, out)
}

func TestEncodeDecodeSTBoxWKBRoundTrip(t *testing.T) {
	box, err := ParseSTBox("SRID=4326;GEODSTBOX ZT(((0,0,0),(1,1,1)),[2020-01-01,2020-01-02])")
	require.NoError(t, err)

	b, err := EncodeSTBoxWKB(box)
	require.NoError(t, err)

	got, err := DecodeSTBoxWKB(b)
	require.NoError(t, err)
	require.Equal(t, box, got)
}
