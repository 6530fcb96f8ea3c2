package intersect

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

// PointSphere reports whether p lies inside or on the sphere given by its
// center and squared radius.
func PointSphere(center math.Vec3, radiusSq float32, p math.Vec3) bool {
	return center.DistanceSquared(p) <= radiusSq
}

/**
 * @brief Reports whether p lies inside the finite cylinder starting at base
 * and extending along axis.
 *
 * @param base The center of the bottom cap.
 * @param axis The vector from the bottom to the top cap center.
 * @param axisLenSq The squared length of axis.
 * @param radiusSq The squared radius.
 * @param p The point to test.
 * @return false for a degenerate cylinder (axisLenSq <= 0 or radiusSq <= 0).
 */
func PointCylinder(base, axis math.Vec3, axisLenSq, radiusSq float32, p math.Vec3) bool {
	if axisLenSq <= 0 || radiusSq <= 0 {
		return false
	}

	d := p.Sub(base)
	proj := d.Dot(axis)
	if proj < 0 || proj > axisLenSq {
		return false
	}

	distSq := d.LengthSquared() - proj*proj/axisLenSq
	return distSq <= radiusSq
}

/**
 * @brief Projects p onto plane. Returns the signed distance from p to the
 * plane and the projected point p - normal * distance. The plane normal is
 * expected to be unit length.
 */
func ClosestPointPlane(p math.Vec3, plane shapes.Plane) (float32, math.Vec3) {
	distance := plane.SignedDistance(p)
	return distance, p.Sub(plane.Normal().MulScalar(distance))
}

func PointAabb(box shapes.Aabb, p math.Vec3) bool {
	return box.Contains(p)
}

func PointCapsule(capsule shapes.Capsule, p math.Vec3) bool {
	return capsule.Contains(p)
}

func ClosestPointSegment(p math.Vec3, segment shapes.LineSegment) math.Vec3 {
	return segment.ClosestPoint(p)
}

// ClosestPointAabb returns p itself when p is inside the box.
func ClosestPointAabb(p math.Vec3, box shapes.Aabb) math.Vec3 {
	return box.ClosestPoint(p)
}

// ClosestPointSphere treats the sphere as solid: p itself is returned when it
// is inside, otherwise the surface point in the direction of p.
func ClosestPointSphere(p math.Vec3, sphere shapes.Sphere) math.Vec3 {
	d := p.Sub(sphere.Center())
	lenSq := d.LengthSquared()
	r := sphere.Radius()
	if lenSq <= r*r {
		return p
	}
	return d.Normalize().MulScalar(r).Add(sphere.Center())
}

// ClosestPointCapsule treats the capsule as solid, like ClosestPointSphere.
func ClosestPointCapsule(p math.Vec3, capsule shapes.Capsule) math.Vec3 {
	onAxis := capsule.Segment().ClosestPoint(p)
	return ClosestPointSphere(p, shapes.NewSphere(onAxis, capsule.Radius()))
}

// ClosestPointCylinder treats the cylinder as solid. It is undefined for a
// degenerate cylinder.
func ClosestPointCylinder(p, base, axis math.Vec3, radius float32) math.Vec3 {
	axisLenSq := axis.LengthSquared()
	d := p.Sub(base)
	along := d.Dot(axis) / axisLenSq
	onAxis := axis.MulScalar(scalar.Clamp(along, 0, 1)).Add(base)

	radial := d.Sub(axis.MulScalar(along))
	if radial.LengthSquared() > radius*radius {
		radial = radial.Normalize().MulScalar(radius)
	}
	return onAxis.Add(radial)
}
