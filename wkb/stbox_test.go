package wkb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/wkt"
)

// TestEncodeDecodeSTBoxRoundTrip is scenario 6: a geodetic XYZT box with
// an explicit SRID round-trips byte-for-byte through WKB.
func TestEncodeDecodeSTBoxRoundTrip(t *testing.T) {
	box, err := wkt.ParseSTBox("SRID=4326;GEODSTBOX ZT(((0,0,0),(1,1,1)),[2020-01-01,2020-01-02])")
	require.NoError(t, err)

	b, err := EncodeSTBox(box)
	require.NoError(t, err)

	got, err := DecodeSTBox(b)
	require.NoError(t, err)
	require.Equal(t, box, got)

	again, err := EncodeSTBox(got)
	require.NoError(t, err)
	require.Equal(t, b, again)
}

func TestEncodeDecodeSTBoxBigEndian(t *testing.T) {
	box, err := wkt.ParseSTBox("STBOX XT((0,0),(10,10),[2020-01-01,2020-01-02])")
	require.NoError(t, err)

	b, err := EncodeSTBox(box, WithEngine(endian.GetBigEndianEngine()))
	require.NoError(t, err)
	require.Equal(t, byte(0), b[0])

	got, err := DecodeSTBox(b)
	require.NoError(t, err)
	require.Equal(t, box, got)
}

func TestEncodeDecodeSTBoxNoSpatial(t *testing.T) {
	box, err := wkt.ParseSTBox("STBOX T([2020-01-01,2020-01-02])")
	require.NoError(t, err)

	b, err := EncodeSTBox(box)
	require.NoError(t, err)

	got, err := DecodeSTBox(b)
	require.NoError(t, err)
	require.Equal(t, box, got)
	require.False(t, got.HasX)
}
