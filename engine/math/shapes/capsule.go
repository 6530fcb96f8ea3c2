package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

/**
 * @brief A capsule: every point within radius of the segment joining the two
 * hemisphere centers. The order of the centers carries no meaning.
 */
type Capsule struct {
	first  math.Vec3
	second math.Vec3
	radius float32
}

func NewCapsule(firstHemisphereCenter, secondHemisphereCenter math.Vec3, radius float32) Capsule {
	return Capsule{first: firstHemisphereCenter, second: secondHemisphereCenter, radius: radius}
}

func (c Capsule) FirstHemisphereCenter() math.Vec3  { return c.first }
func (c Capsule) SecondHemisphereCenter() math.Vec3 { return c.second }
func (c Capsule) Radius() float32                   { return c.radius }

// Segment is the core line segment between the hemisphere centers.
func (c Capsule) Segment() LineSegment {
	return NewLineSegment(c.first, c.second)
}

func (c Capsule) Center() math.Vec3 {
	return c.first.Add(c.second).MulScalar(0.5)
}

// CylinderHeight is the distance between the hemisphere centers.
func (c Capsule) CylinderHeight() float32 {
	return c.first.Distance(c.second)
}

// Contains holds when the squared distance from p to the core segment is at
// most radius squared.
func (c Capsule) Contains(p math.Vec3) bool {
	return c.Segment().DistanceSquared(p) <= c.radius*c.radius
}

func (c Capsule) Translated(offset math.Vec3) Capsule {
	return Capsule{first: c.first.Add(offset), second: c.second.Add(offset), radius: c.radius}
}

func (c Capsule) Bounds() Aabb {
	r := math.NewVec3Splat(c.radius)
	return NewAabbFromMinMax(c.first.Min(c.second).Sub(r), c.first.Max(c.second).Add(r))
}

/**
 * @brief Reports whether both capsules match within tolerance. The
 * hemisphere centers are compared as an unordered pair.
 */
func (c Capsule) IsClose(other Capsule, tolerance float32) bool {
	if !scalar.IsClose(c.radius, other.radius, tolerance) {
		return false
	}
	straight := c.first.IsClose(other.first, tolerance) && c.second.IsClose(other.second, tolerance)
	swapped := c.first.IsClose(other.second, tolerance) && c.second.IsClose(other.first, tolerance)
	return straight || swapped
}
