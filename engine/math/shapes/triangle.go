package shapes

import (
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

type Triangle struct {
	a, b, c math.Vec3
}

func NewTriangle(a, b, c math.Vec3) Triangle {
	return Triangle{a: a, b: b, c: c}
}

func (t Triangle) A() math.Vec3 { return t.a }
func (t Triangle) B() math.Vec3 { return t.b }
func (t Triangle) C() math.Vec3 { return t.c }

// Normal is the unit normal of the counter clockwise winding a, b, c, or zero
// for a degenerate triangle.
func (t Triangle) Normal() math.Vec3 {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)).NormalizeSafe(scalar.K_FLOAT_EPSILON)
}

func (t Triangle) Area() float32 {
	return 0.5 * t.b.Sub(t.a).Cross(t.c.Sub(t.a)).Length()
}

func (t Triangle) Centroid() math.Vec3 {
	return t.a.Add(t.b).Add(t.c).DivScalar(3)
}

func (t Triangle) Bounds() Aabb {
	return NewAabbFromMinMax(t.a.Min(t.b).Min(t.c), t.a.Max(t.b).Max(t.c))
}

func (t Triangle) IsDegenerate() bool {
	return t.b.Sub(t.a).Cross(t.c.Sub(t.a)).LengthSquared() <= 0
}

func (t Triangle) IsClose(other Triangle, tolerance float32) bool {
	return t.a.IsClose(other.a, tolerance) && t.b.IsClose(other.b, tolerance) && t.c.IsClose(other.c, tolerance)
}
