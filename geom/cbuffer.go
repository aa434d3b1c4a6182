package geom

// CBuffer is a circular buffer base value: a planar centre point plus a
// radius, e.g. representing an uncertainty disk around a GPS fix.
type CBuffer struct {
	Center Point
	Radius float64
}

// NewCBuffer builds a CBuffer.
func NewCBuffer(center Point, radius float64) CBuffer {
	return CBuffer{Center: center, Radius: radius}
}

// Equal reports exact equality of centre and radius.
func (c CBuffer) Equal(o CBuffer) bool {
	return c.Center.EqualsExact(o.Center) && c.Radius == o.Radius
}

// InterpolateCBuffer interpolates the centre and radius linearly (§4.5:
// "centre linearly interpolated, radius linearly interpolated").
func InterpolateCBuffer(a, b CBuffer, r float64) CBuffer {
	return CBuffer{
		Center: Interpolate(a.Center, b.Center, r),
		Radius: a.Radius + (b.Radius-a.Radius)*r,
	}
}

// BoundingBox returns the axis-aligned box enclosing the disk.
func (c CBuffer) BoundingBox() BBox {
	return BBox{
		XMin: c.Center.X - c.Radius, XMax: c.Center.X + c.Radius,
		YMin: c.Center.Y - c.Radius, YMax: c.Center.Y + c.Radius,
		HasZ: false,
	}
}
