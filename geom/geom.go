// Package geom provides the minimal planar/geographic point and shape
// primitives tempo needs from its external geometry collaborator (§6).
//
// A real deployment wires a full-featured geometry engine (geometry
// parsing, spherical/geodetic math, SRID catalogs, boolean operations) in
// behind the Projector interface below; tempo's core only ever consumes
// that narrow surface. This package is intentionally thin — it is NOT a
// geometry library, it is the consumed-interface stand-in spec.md §1
// explicitly places out of scope for the core.
package geom

import "math"

// Point is a 2D or 3D coordinate, optionally geodetic (longitude/latitude
// on WGS-84 rather than planar X/Y), carrying its own SRID.
type Point struct {
	X, Y, Z  float64
	HasZ     bool
	Geodetic bool
	SRID     int32
}

// NewPoint2D builds a planar 2D point (point_make, hasz=false).
func NewPoint2D(x, y float64, srid int32) Point {
	return Point{X: x, Y: y, SRID: srid}
}

// NewPoint3D builds a planar 3D point (point_make, hasz=true).
func NewPoint3D(x, y, z float64, srid int32) Point {
	return Point{X: x, Y: y, Z: z, HasZ: true, SRID: srid}
}

// NewGeodeticPoint builds a geodetic point on the given SRID (typically
// WGS84SRID).
func NewGeodeticPoint(x, y, z float64, hasZ bool, srid int32) Point {
	return Point{X: x, Y: y, Z: z, HasZ: hasZ, Geodetic: true, SRID: srid}
}

// WGS84SRID is the default SRID for geodetic values (§3 STBox invariant).
const WGS84SRID int32 = 4326

// Coords returns the point's coordinates (point_get_coords).
func (p Point) Coords() (x, y, z float64, hasZ bool) {
	return p.X, p.Y, p.Z, p.HasZ
}

// GetSRID returns the point's SRID (point_srid get).
func (p Point) GetSRID() int32 { return p.SRID }

// WithSRID returns a copy of p with its SRID set (point_srid set).
func (p Point) WithSRID(srid int32) Point {
	p.SRID = srid

	return p
}

// EqualsExact reports bit-for-bit coordinate equality (geom_equals_exact).
func (p Point) EqualsExact(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z && p.HasZ == q.HasZ
}

// IsEmpty always reports false for a Point (geom_is_empty); Point never
// represents the empty-geometry case that a full geometry engine would
// need to track for polygons/linestrings.
func (p Point) IsEmpty() bool { return false }

// IsPoint reports whether the underlying geometry is a point
// (geom_type_is_point); always true for this minimal stand-in, since tempo
// only ever carries point base values through the core algebra.
func (p Point) IsPoint() bool { return true }

// Distance2D returns the planar Euclidean distance between two points,
// ignoring Z.
func Distance2D(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Distance3D returns the Euclidean distance between two points including Z.
func Distance3D(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Interpolate returns the point on the straight segment a->b at ratio r
// (0<=r<=1). For geodetic points this is a chord-linear approximation
// used only when the real spherical interpolator is unavailable; a full
// geometry engine would instead follow the great-circle arc.
func Interpolate(a, b Point, r float64) Point {
	return Point{
		X:        a.X + (b.X-a.X)*r,
		Y:        a.Y + (b.Y-a.Y)*r,
		Z:        a.Z + (b.Z-a.Z)*r,
		HasZ:     a.HasZ,
		Geodetic: a.Geodetic,
		SRID:     a.SRID,
	}
}

// BBox is an axis-aligned bounding box over a set of points, the geometry
// side of the external collaborator's geom_bounding_box.
type BBox struct {
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	HasZ                               bool
}

// BoundingBox computes the bounding box of a single point (the fast path
// geo_set_stbox takes for point geometries per §4.2).
func BoundingBox(p Point) BBox {
	return BBox{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y, ZMin: p.Z, ZMax: p.Z, HasZ: p.HasZ}
}

// Union returns the bounding box covering both boxes.
func (b BBox) Union(o BBox) BBox {
	r := BBox{
		XMin: math.Min(b.XMin, o.XMin), XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin), YMax: math.Max(b.YMax, o.YMax),
		HasZ: b.HasZ || o.HasZ,
	}
	if r.HasZ {
		r.ZMin = math.Min(b.ZMin, o.ZMin)
		r.ZMax = math.Max(b.ZMax, o.ZMax)
	}

	return r
}

// Circle is a minimum bounding circle approximation of a geometry
// (geom_minimum_bounding_circle), the base shape of a CBuffer value.
type Circle struct {
	Center Point
	Radius float64
}

// MinimumBoundingCircle approximates the geometry made of pts by its
// centroid and the farthest-point radius. A real geometry engine computes
// the exact Welzl minimum enclosing circle; this centroid approximation is
// sufficient for tempo's own use (approximating a geometry as a CBuffer
// value, §4.10) and keeps the external-collaborator surface narrow.
func MinimumBoundingCircle(pts []Point) Circle {
	if len(pts) == 0 {
		return Circle{}
	}

	var cx, cy, cz float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(pts))
	center := Point{X: cx / n, Y: cy / n, Z: cz / n, HasZ: pts[0].HasZ, SRID: pts[0].SRID, Geodetic: pts[0].Geodetic}

	var radius float64
	for _, p := range pts {
		if d := Distance3D(center, p); d > radius {
			radius = d
		}
	}

	return Circle{Center: center, Radius: radius}
}

// Area and Perimeter stand in for geom_area/geom_perimeter on a Circle,
// giving a scalar "size" of a CBuffer.
func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
