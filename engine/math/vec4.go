package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

// Vec4 is a 4-component vector backed by a full register.
type Vec4 struct {
	v simd.Float4
}

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{simd.LoadFloat4(x, y, z, w)}
}

/**
 * @brief Returns a new Vec4 using v as the x, y and z components and w for w.
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return v.ToVec4(w)
}

func NewVec4FromSlice(src []float32) Vec4 {
	return Vec4{simd.LoadFromFloat4(src)}
}

func NewVec4FromFloat4(f simd.Float4) Vec4 {
	return Vec4{f}
}

func NewVec4Zero() Vec4 { return Vec4{simd.ZeroFloat4()} }
func NewVec4One() Vec4  { return Vec4{simd.SplatFloat4(1)} }

func (v Vec4) X() float32 { return v.v.X() }
func (v Vec4) Y() float32 { return v.v.Y() }
func (v Vec4) Z() float32 { return v.v.Z() }
func (v Vec4) W() float32 { return v.v.W() }

func (v Vec4) WithX(x float32) Vec4 { return Vec4{v.v.WithX(x)} }
func (v Vec4) WithY(y float32) Vec4 { return Vec4{v.v.WithY(y)} }
func (v Vec4) WithZ(z float32) Vec4 { return Vec4{v.v.WithZ(z)} }
func (v Vec4) WithW(w float32) Vec4 { return Vec4{v.v.WithW(w)} }

func (v Vec4) Float4() simd.Float4 { return v.v }

/**
 * @brief Returns a new Vec3 containing the x, y and z components of v.
 */
func (v Vec4) ToVec3() Vec3 {
	return NewVec3FromVec4(v)
}

func (v Vec4) Store(dst []float32) { v.v.StoreToFloat4(dst) }

func (v Vec4) Array() [4]float32 { return v.v.Array() }

func (v Vec4) Add(other Vec4) Vec4 { return Vec4{v.v.Add(other.v)} }
func (v Vec4) Sub(other Vec4) Vec4 { return Vec4{v.v.Sub(other.v)} }
func (v Vec4) Mul(other Vec4) Vec4 { return Vec4{v.v.Mul(other.v)} }
func (v Vec4) Div(other Vec4) Vec4 { return Vec4{v.v.Div(other.v)} }

func (v Vec4) MulScalar(s float32) Vec4 { return Vec4{v.v.MulScalar(s)} }
func (v Vec4) DivScalar(s float32) Vec4 { return Vec4{v.v.DivScalar(s)} }

func (v Vec4) MulAdd(b, c Vec4) Vec4 { return Vec4{v.v.MulAdd(b.v, c.v)} }

func (v Vec4) Neg() Vec4 { return Vec4{v.v.Neg()} }
func (v Vec4) Abs() Vec4 { return Vec4{v.v.Abs()} }

func (v Vec4) Min(other Vec4) Vec4 { return Vec4{v.v.Min(other.v)} }
func (v Vec4) Max(other Vec4) Vec4 { return Vec4{v.v.Max(other.v)} }

func (v Vec4) Clamp(low, high Vec4) Vec4 {
	return Vec4{clampLanes(v.v, low.v, high.v)}
}

/**
 * @brief Calculates the dot product of v and other. Lanes are summed as
 * (x + y) + (z + w).
 */
func (v Vec4) Dot(other Vec4) float32 { return v.v.Dot4(other.v) }

func (v Vec4) LengthSquared() float32 { return v.v.Dot4(v.v) }

func (v Vec4) Length() float32 { return scalar.Sqrt(v.LengthSquared()) }

func (v Vec4) LengthEstimate() float32 {
	return simd.SplatFloat4(v.LengthSquared()).SqrtEstimate().X()
}

func (v Vec4) Normalize() Vec4 {
	return Vec4{normalizeExact(v.v, v.LengthSquared())}
}

func (v Vec4) NormalizeEstimate() Vec4 {
	return Vec4{normalizeEstimate(v.v, v.LengthSquared())}
}

// NormalizeSafe returns the zero vector when the squared length is below
// tolerance squared.
func (v Vec4) NormalizeSafe(tolerance float32) Vec4 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec4Zero()
	}
	return Vec4{normalizeExact(v.v, lengthSq)}
}

func (v Vec4) NormalizeSafeEstimate(tolerance float32) Vec4 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec4Zero()
	}
	return Vec4{normalizeEstimate(v.v, lengthSq)}
}

func (v Vec4) Distance(other Vec4) float32 { return v.Sub(other).Length() }

func (v Vec4) DistanceSquared(other Vec4) float32 { return v.Sub(other).LengthSquared() }

func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{lerp(v.v, other.v, t)}
}

func (v Vec4) IsClose(other Vec4, tolerance float32) bool {
	return isClose(v.v, other.v, tolerance, simd.Lanes4)
}

func (v Vec4) IsZero(tolerance float32) bool {
	return isClose(v.v, simd.ZeroFloat4(), tolerance, simd.Lanes4)
}

func (v Vec4) IsNormalized(tolerance float32) bool {
	return scalar.Fabs(v.LengthSquared()-1) <= tolerance
}

func (v Vec4) IsLessThan(other Vec4) bool { return simd.CmpAllLt(v.v, other.v, simd.Lanes4) }

func (v Vec4) IsLessEqualThan(other Vec4) bool {
	return simd.CmpAllLtEq(v.v, other.v, simd.Lanes4)
}

func (v Vec4) IsGreaterThan(other Vec4) bool { return simd.CmpAllGt(v.v, other.v, simd.Lanes4) }

func (v Vec4) IsGreaterEqualThan(other Vec4) bool {
	return simd.CmpAllGtEq(v.v, other.v, simd.Lanes4)
}

func (v Vec4) GetMaxElement() float32 {
	return scalar.Max(v.v.HorizontalMax3(), v.W())
}

func (v Vec4) GetMinElement() float32 {
	return scalar.Min(v.v.HorizontalMin3(), v.W())
}

// Transform multiplies v as a row vector by m.
func (v Vec4) Transform(m Mat4) Vec4 {
	return Vec4{m.transformRow(v.v)}
}
