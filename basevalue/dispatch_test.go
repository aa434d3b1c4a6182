package basevalue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temporalcore/tempo/endian"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/geom"
	"github.com/temporalcore/tempo/stbox"
)

func TestIntDispatch(t *testing.T) {
	d := For(format.KindInt)
	a, b := NewInt(5), NewInt(9)
	require.False(t, d.Equal(a, b))
	require.True(t, d.Less(a, b))
	require.Equal(t, 8, d.Size(a))

	var buf bytes.Buffer
	require.NoError(t, d.WriteWKB(&buf, a, endian.GetLittleEndianEngine()))
	require.Equal(t, 8, buf.Len())

	v, err := d.ParseElement("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), v.I)

	_, err = d.ParseElement("not a number")
	require.Error(t, err)
}

func TestFloatDispatchInterpolate(t *testing.T) {
	d := For(format.KindFloat)
	a, b := NewFloat(0), NewFloat(10)
	mid := d.InterpolateAt(a, b, 0.5)
	require.Equal(t, 5.0, mid.F)
}

func TestTextDispatch(t *testing.T) {
	d := For(format.KindText)
	a, b := NewText("apple"), NewText("banana")
	require.True(t, d.Less(a, b))
	require.False(t, d.Equal(a, b))
}

func TestGeomDispatchSRID(t *testing.T) {
	d := For(format.KindGeom)
	v := NewGeom(geom.NewPoint2D(1, 2, 4326))
	srid, ok := d.SRID(v)
	require.True(t, ok)
	require.Equal(t, int32(4326), srid)

	moved := d.SetSRID(v, 3857)
	require.Equal(t, int32(3857), moved.Pt.SRID)

	var box stbox.STBox
	d.SetSTBox(v, &box)
	require.True(t, box.HasX)
	require.Equal(t, 1.0, box.XMin)
}

func TestGeomDispatchParseElement(t *testing.T) {
	d := For(format.KindGeom)
	v, err := d.ParseElement("1.5 2.5")
	require.NoError(t, err)
	require.Equal(t, 1.5, v.Pt.X)
	require.Equal(t, 2.5, v.Pt.Y)

	v3, err := d.ParseElement("1 2 3")
	require.NoError(t, err)
	require.True(t, v3.Pt.HasZ)
}

func TestCBufferDispatch(t *testing.T) {
	d := For(format.KindCBuffer)
	v, err := d.ParseElement("(1, 2), 3")
	require.NoError(t, err)
	require.Equal(t, 1.0, v.CB.Center.X)
	require.Equal(t, 3.0, v.CB.Radius)
}

func TestNPointDispatch(t *testing.T) {
	d := For(format.KindNPoint)
	v, err := d.ParseElement("7, 0.5")
	require.NoError(t, err)
	require.Equal(t, int64(7), v.NP.RouteID)
	require.Equal(t, 0.5, v.NP.Position)
}

func TestPoseDispatch(t *testing.T) {
	d := For(format.KindPose)
	v, err := d.ParseElement("1 2 0.5")
	require.NoError(t, err)
	require.Equal(t, 1.0, v.Ps.X)
}

func TestWriteReadWKBRoundTrip(t *testing.T) {
	eng := endian.GetLittleEndianEngine()
	cases := []struct {
		name string
		kind format.BaseKind
		v    Value
		hasZ bool
	}{
		{"int", format.KindInt, NewInt(-7), false},
		{"float", format.KindFloat, NewFloat(3.25), false},
		{"text", format.KindText, NewText("hello"), false},
		{"geom2d", format.KindGeom, NewGeom(geom.NewPoint2D(1, 2, 0)), false},
		{"geom3d", format.KindGeom, NewGeom(geom.NewPoint3D(1, 2, 3, 0)), true},
		{"geog", format.KindGeog, NewGeog(geom.NewGeodeticPoint(1, 2, 0, false, 4326)), false},
		{"cbuffer", format.KindCBuffer, NewCBuffer(geom.NewCBuffer(geom.NewPoint2D(1, 2, 0), 5)), false},
		{"npoint", format.KindNPoint, NewNPoint(geom.NewNPoint(3, 0.5)), false},
		{"pose", format.KindPose, NewPose(geom.NewPose(1, 2, 0.5, 0)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := For(c.kind)
			var buf bytes.Buffer
			require.NoError(t, d.WriteWKB(&buf, c.v, eng))

			got, err := d.ReadWKB(&buf, eng, c.hasZ)
			require.NoError(t, err)
			require.True(t, d.Equal(c.v, got))
		})
	}
}

func TestForPanicsOnUnregistered(t *testing.T) {
	defer func() {
		require.NotNil(t, recover())
	}()
	For(format.KindDouble2)
}
