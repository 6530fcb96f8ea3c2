package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
)

// Ray starts at origin and extends along direction. The direction is usually
// unit length but that is left to the caller.
type Ray struct {
	origin    math.Vec3
	direction math.Vec3
}

func NewRay(origin, direction math.Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

func (r Ray) Origin() math.Vec3    { return r.origin }
func (r Ray) Direction() math.Vec3 { return r.direction }

// PointAt returns origin + direction * t.
func (r Ray) PointAt(t float32) math.Vec3 {
	return r.direction.MulAdd(math.NewVec3Splat(t), r.origin)
}

func (r Ray) IsClose(other Ray, tolerance float32) bool {
	return r.origin.IsClose(other.origin, tolerance) && r.direction.IsClose(other.direction, tolerance)
}
