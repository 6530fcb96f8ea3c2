package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

// LineSegment is the set of points between start and end. It is degenerate
// when both ends are equal.
type LineSegment struct {
	start math.Vec3
	end   math.Vec3
}

func NewLineSegment(start, end math.Vec3) LineSegment {
	return LineSegment{start: start, end: end}
}

func (s LineSegment) Start() math.Vec3 { return s.start }
func (s LineSegment) End() math.Vec3   { return s.end }

// Direction is end - start, not normalized.
func (s LineSegment) Direction() math.Vec3 {
	return s.end.Sub(s.start)
}

func (s LineSegment) Length() float32 {
	return s.Direction().Length()
}

func (s LineSegment) LengthSquared() float32 {
	return s.Direction().LengthSquared()
}

func (s LineSegment) IsDegenerate() bool {
	return s.start.IsClose(s.end, 0)
}

// PointAt returns start + (end - start) * t. t is not clamped.
func (s LineSegment) PointAt(t float32) math.Vec3 {
	return s.start.Lerp(s.end, t)
}

/**
 * @brief Returns the parameter in [0, 1] of the point on the segment closest
 * to p. A degenerate segment returns 0.
 */
func (s LineSegment) ClosestParameter(p math.Vec3) float32 {
	d := s.Direction()
	lenSq := d.LengthSquared()
	if lenSq <= 0 {
		return 0
	}
	return scalar.Clamp(p.Sub(s.start).Dot(d)/lenSq, 0, 1)
}

func (s LineSegment) ClosestPoint(p math.Vec3) math.Vec3 {
	return s.PointAt(s.ClosestParameter(p))
}

// DistanceSquared from p to the closest point on the segment.
func (s LineSegment) DistanceSquared(p math.Vec3) float32 {
	return p.DistanceSquared(s.ClosestPoint(p))
}

// IsClose compares the endpoints in order.
func (s LineSegment) IsClose(other LineSegment, tolerance float32) bool {
	return s.start.IsClose(other.start, tolerance) && s.end.IsClose(other.end, tolerance)
}
