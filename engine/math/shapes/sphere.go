package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

type Sphere struct {
	center math.Vec3
	radius float32
}

// NewSphere expects radius >= 0.
func NewSphere(center math.Vec3, radius float32) Sphere {
	return Sphere{center: center, radius: radius}
}

func NewUnitSphere() Sphere {
	return Sphere{center: math.NewVec3Zero(), radius: 1}
}

/**
 * @brief Returns a sphere enclosing the whole box. The center is the box
 * center and the radius is half the largest extent scaled by sqrt(3), which
 * reaches every corner. The radius is then raised ulp by ulp until Contains
 * holds for every corner under float32 rounding. It is not the minimal
 * bounding sphere.
 *
 * @param box A valid box.
 */
func NewSphereFromAabb(box Aabb) Sphere {
	center := box.Center()
	radius := box.HalfExtents().GetMaxElement() * scalar.K_SQRT_THREE

	var farthest float32
	for i := 0; i < 8; i++ {
		farthest = scalar.Max(farthest, center.DistanceSquared(box.Corner(i)))
	}
	if radius*radius < farthest {
		radius = scalar.Sqrt(farthest)
	}
	inf := scalar.Inf(1)
	for radius*radius < farthest && radius < inf {
		radius = scalar.NextAfter(radius, inf)
	}
	return Sphere{center: center, radius: radius}
}

func (s Sphere) Center() math.Vec3 { return s.center }
func (s Sphere) Radius() float32   { return s.radius }

// Contains reports whether p is inside or on the surface.
func (s Sphere) Contains(p math.Vec3) bool {
	return s.center.DistanceSquared(p) <= s.radius*s.radius
}

// ContainsSphere reports whether other lies entirely inside s.
func (s Sphere) ContainsSphere(other Sphere) bool {
	return s.center.Distance(other.center)+other.radius <= s.radius
}

func (s Sphere) Overlaps(other Sphere) bool {
	r := s.radius + other.radius
	return s.center.DistanceSquared(other.center) <= r*r
}

func (s Sphere) Translated(offset math.Vec3) Sphere {
	return Sphere{center: s.center.Add(offset), radius: s.radius}
}

// Bounds returns the box tightly enclosing the sphere.
func (s Sphere) Bounds() Aabb {
	return NewAabbFromCenterHalfExtents(s.center, math.NewVec3Splat(s.radius))
}

func (s Sphere) IsClose(other Sphere, tolerance float32) bool {
	return s.center.IsClose(other.center, tolerance) && scalar.IsClose(s.radius, other.radius, tolerance)
}
