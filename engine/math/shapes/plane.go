package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

/**
 * @brief The set of points p with dot(normal, p) + distance = 0. Queries
 * assume a unit normal.
 */
type Plane struct {
	normal   math.Vec3
	distance float32
}

func NewPlane(normal math.Vec3, distance float32) Plane {
	return Plane{normal: normal, distance: distance}
}

// NewPlaneFromNormalAndPoint normalizes normal.
func NewPlaneFromNormalAndPoint(normal, point math.Vec3) Plane {
	n := normal.Normalize()
	return Plane{normal: n, distance: -n.Dot(point)}
}

// NewPlaneFromTriangle orients the normal by the counter clockwise winding
// a, b, c. The triangle must not be degenerate.
func NewPlaneFromTriangle(a, b, c math.Vec3) Plane {
	return NewPlaneFromNormalAndPoint(b.Sub(a).Cross(c.Sub(a)), a)
}

func (p Plane) Normal() math.Vec3 { return p.normal }
func (p Plane) Distance() float32 { return p.distance }

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(point math.Vec3) float32 {
	return p.normal.Dot(point) + p.distance
}

func (p Plane) IsClose(other Plane, tolerance float32) bool {
	return p.normal.IsClose(other.normal, tolerance) && scalar.IsClose(p.distance, other.distance, tolerance)
}
