package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

// Vec2 is a 2-component vector. The z and w lanes of its register are zero.
type Vec2 struct {
	v simd.Float4
}

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{simd.LoadFloat4(x, y, 0, 0)}
}

func NewVec2FromSlice(src []float32) Vec2 {
	return Vec2{simd.LoadFromFloat2(src)}
}

func NewVec2Zero() Vec2  { return Vec2{simd.ZeroFloat4()} }
func NewVec2One() Vec2   { return NewVec2(1, 1) }
func NewVec2Up() Vec2    { return NewVec2(0, 1) }
func NewVec2Down() Vec2  { return NewVec2(0, -1) }
func NewVec2Left() Vec2  { return NewVec2(-1, 0) }
func NewVec2Right() Vec2 { return NewVec2(1, 0) }

func (v Vec2) X() float32 { return v.v.X() }
func (v Vec2) Y() float32 { return v.v.Y() }

func (v Vec2) WithX(x float32) Vec2 { return Vec2{v.v.WithX(x)} }
func (v Vec2) WithY(y float32) Vec2 { return Vec2{v.v.WithY(y)} }

func (v Vec2) Float4() simd.Float4 { return v.v }

func (v Vec2) Store(dst []float32) { v.v.StoreToFloat2(dst) }

func (v Vec2) Array() [2]float32 { return [2]float32{v.v.X(), v.v.Y()} }

func (v Vec2) Add(other Vec2) Vec2 { return Vec2{v.v.Add(other.v)} }
func (v Vec2) Sub(other Vec2) Vec2 { return Vec2{v.v.Sub(other.v)} }
func (v Vec2) Mul(other Vec2) Vec2 { return Vec2{v.v.Mul(other.v)} }

func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.v.Div(other.v).WithZ(0).WithW(0)}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.v.MulScalar(s).WithZ(0).WithW(0)}
}

func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.v.DivScalar(s).WithZ(0).WithW(0)}
}

func (v Vec2) Neg() Vec2 { return NewVec2(-v.X(), -v.Y()) }
func (v Vec2) Abs() Vec2 { return Vec2{v.v.Abs()} }

func (v Vec2) Min(other Vec2) Vec2 { return Vec2{v.v.Min(other.v)} }
func (v Vec2) Max(other Vec2) Vec2 { return Vec2{v.v.Max(other.v)} }

func (v Vec2) Clamp(low, high Vec2) Vec2 {
	return Vec2{clampLanes(v.v, low.v, high.v)}
}

func (v Vec2) Dot(other Vec2) float32 { return v.v.Dot2(other.v) }

// PerpDot is the z component of the 3-D cross product of v and other.
func (v Vec2) PerpDot(other Vec2) float32 {
	return v.X()*other.Y() - v.Y()*other.X()
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 { return v.v.Dot2(v.v) }

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }

func (v Vec2) LengthEstimate() float32 {
	return simd.SplatFloat4(v.LengthSquared()).SqrtEstimate().X()
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec2) Normalize() Vec2 {
	return Vec2{normalizeExact(v.v, v.LengthSquared()).WithZ(0).WithW(0)}
}

func (v Vec2) NormalizeEstimate() Vec2 {
	return Vec2{normalizeEstimate(v.v, v.LengthSquared()).WithZ(0).WithW(0)}
}

// NormalizeSafe returns the zero vector when the squared length is below
// tolerance squared.
func (v Vec2) NormalizeSafe(tolerance float32) Vec2 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec2Zero()
	}
	return Vec2{normalizeExact(v.v, lengthSq).WithZ(0).WithW(0)}
}

func (v Vec2) NormalizeSafeEstimate(tolerance float32) Vec2 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec2Zero()
	}
	return Vec2{normalizeEstimate(v.v, lengthSq).WithZ(0).WithW(0)}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 { return v.Sub(other).Length() }

func (v Vec2) DistanceSquared(other Vec2) float32 { return v.Sub(other).LengthSquared() }

// Lerp returns v + (other - v) * t without clamping t.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{lerp(v.v, other.v, t).WithZ(0).WithW(0)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than or equal to tolerance.
 */
func (v Vec2) IsClose(other Vec2, tolerance float32) bool {
	return isClose(v.v, other.v, tolerance, simd.Lanes2)
}

func (v Vec2) IsZero(tolerance float32) bool {
	return isClose(v.v, simd.ZeroFloat4(), tolerance, simd.Lanes2)
}

func (v Vec2) IsNormalized(tolerance float32) bool {
	return scalar.Fabs(v.LengthSquared()-1) <= tolerance
}

func (v Vec2) IsLessThan(other Vec2) bool { return simd.CmpAllLt(v.v, other.v, simd.Lanes2) }

func (v Vec2) IsLessEqualThan(other Vec2) bool {
	return simd.CmpAllLtEq(v.v, other.v, simd.Lanes2)
}

func (v Vec2) IsGreaterThan(other Vec2) bool { return simd.CmpAllGt(v.v, other.v, simd.Lanes2) }

func (v Vec2) IsGreaterEqualThan(other Vec2) bool {
	return simd.CmpAllGtEq(v.v, other.v, simd.Lanes2)
}

func (v Vec2) GetMaxElement() float32 { return scalar.Max(v.X(), v.Y()) }
func (v Vec2) GetMinElement() float32 { return scalar.Min(v.X(), v.Y()) }
