package intersect

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

/**
 * @brief Computes the closest points between two segments.
 *
 * @return c1 on the first segment at parameter s, c2 on the second at
 * parameter t. Degenerate segments are handled as points.
 */
func SegmentSegmentClosestPoints(first, second shapes.LineSegment) (c1, c2 math.Vec3, s, t float32) {
	d1 := first.Direction()
	d2 := second.Direction()
	r := first.Start().Sub(second.Start())
	a := d1.LengthSquared()
	e := d2.LengthSquared()
	f := d2.Dot(r)

	switch {
	case a <= scalar.K_FLOAT_EPSILON && e <= scalar.K_FLOAT_EPSILON:
		return first.Start(), second.Start(), 0, 0
	case a <= scalar.K_FLOAT_EPSILON:
		s = 0
		t = scalar.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= scalar.K_FLOAT_EPSILON {
			t = 0
			s = scalar.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = scalar.Clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = scalar.Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = scalar.Clamp((b-c)/a, 0, 1)
			}
		}
	}

	return first.PointAt(s), second.PointAt(t), s, t
}

func SphereSphere(a, b shapes.Sphere) bool {
	return a.Overlaps(b)
}

func AabbAabb(a, b shapes.Aabb) bool {
	return a.Overlaps(b)
}

func SphereAabb(sphere shapes.Sphere, box shapes.Aabb) bool {
	r := sphere.Radius()
	return box.DistanceSquared(sphere.Center()) <= r*r
}

// CapsuleCapsule reports whether the capsules touch.
func CapsuleCapsule(a, b shapes.Capsule) bool {
	c1, c2, _, _ := SegmentSegmentClosestPoints(a.Segment(), b.Segment())
	r := a.Radius() + b.Radius()
	return c1.DistanceSquared(c2) <= r*r
}
