package geom

import "math"

// Pose is a rigid 2D pose: a planar position plus a heading angle in
// radians.
type Pose struct {
	X, Y  float64
	Theta float64 // heading, radians
	SRID  int32
}

// NewPose builds a Pose.
func NewPose(x, y, theta float64, srid int32) Pose {
	return Pose{X: x, Y: y, Theta: normalizeAngle(theta), SRID: srid}
}

func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta > math.Pi {
		theta -= twoPi
	} else if theta < -math.Pi {
		theta += twoPi
	}

	return theta
}

// Equal reports exact equality of position and heading.
func (p Pose) Equal(o Pose) bool {
	return p.X == o.X && p.Y == o.Y && p.Theta == o.Theta
}

// Point returns the positional component of the pose as a Point.
func (p Pose) Point() Point {
	return Point{X: p.X, Y: p.Y, SRID: p.SRID}
}

// InterpolatePose interpolates the positional component linearly and the
// rotational component via shortest-arc SLERP (§4.5: "rotational component
// SLERP/shortest-arc"). For a scalar 2D heading, shortest-arc SLERP
// reduces to interpolating along the shortest angular distance.
func InterpolatePose(a, b Pose, r float64) Pose {
	x := a.X + (b.X-a.X)*r
	y := a.Y + (b.Y-a.Y)*r

	diff := normalizeAngle(b.Theta - a.Theta)
	theta := normalizeAngle(a.Theta + diff*r)

	return Pose{X: x, Y: y, Theta: theta, SRID: a.SRID}
}
