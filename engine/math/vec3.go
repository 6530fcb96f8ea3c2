package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

/**
 * @brief A 3-component vector. The w lane of the underlying register is
 * always zero.
 */
type Vec3 struct {
	v simd.Float4
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{simd.LoadFloat4(x, y, z, 0)}
}

/**
 * @brief Returns a new Vec3 containing the x, y and z components of the
 * supplied Vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new Vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.v.WithW(0)}
}

/**
 * @brief Loads a vector from the first three elements of src.
 */
func NewVec3FromSlice(src []float32) Vec3 {
	return Vec3{simd.LoadFromFloat3(src)}
}

// NewVec3FromFloat4 wraps a register, discarding its w lane.
func NewVec3FromFloat4(f simd.Float4) Vec3 {
	return Vec3{f.WithW(0)}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{simd.ZeroFloat4()}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return NewVec3(1, 1, 1)
}

// NewVec3Splat sets x, y and z to f.
func NewVec3Splat(f float32) Vec3 {
	return NewVec3(f, f, f)
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return NewVec3(0, 1, 0)
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return NewVec3(0, -1, 0)
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return NewVec3(-1, 0, 0)
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return NewVec3(1, 0, 0)
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return NewVec3(0, 0, -1)
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return NewVec3(0, 0, 1)
}

func (v Vec3) X() float32 { return v.v.X() }
func (v Vec3) Y() float32 { return v.v.Y() }
func (v Vec3) Z() float32 { return v.v.Z() }

func (v Vec3) WithX(x float32) Vec3 { return Vec3{v.v.WithX(x)} }
func (v Vec3) WithY(y float32) Vec3 { return Vec3{v.v.WithY(y)} }
func (v Vec3) WithZ(z float32) Vec3 { return Vec3{v.v.WithZ(z)} }

// Component returns component i (0 = x, 1 = y, 2 = z).
func (v Vec3) Component(i int) float32 { return v.v.Lane(i) }

// Float4 returns the underlying register. Its w lane is zero.
func (v Vec3) Float4() simd.Float4 { return v.v }

/**
 * @brief Returns a new Vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new Vec4
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.v.WithW(w)}
}

// Store writes x, y and z into dst[0:3].
func (v Vec3) Store(dst []float32) {
	v.v.StoreToFloat3(dst)
}

// Array returns the components as an array.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.v.X(), v.v.Y(), v.v.Z()}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.v.Add(other.v)}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.v.Sub(other.v)}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.v.Mul(other.v)}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.v.MulScalar(scalar).WithW(0)}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.v.Div(other.v).WithW(0)}
}

// DivScalar divides every component by s.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.v.DivScalar(s).WithW(0)}
}

// MulAdd returns v*b + c with the product rounded before the add.
func (v Vec3) MulAdd(b, c Vec3) Vec3 {
	return Vec3{v.v.MulAdd(b.v, c.v)}
}

func (v Vec3) Neg() Vec3 { return Vec3{v.v.Neg().WithW(0)} }
func (v Vec3) Abs() Vec3 { return Vec3{v.v.Abs()} }

func (v Vec3) Min(other Vec3) Vec3 { return Vec3{v.v.Min(other.v)} }
func (v Vec3) Max(other Vec3) Vec3 { return Vec3{v.v.Max(other.v)} }

// Clamp limits every component to [low, high].
func (v Vec3) Clamp(low, high Vec3) Vec3 {
	return Vec3{clampLanes(v.v, low.v, high.v)}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.v.Dot3(v.v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return scalar.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns the length computed with the reduced precision square root.
 */
func (v Vec3) LengthEstimate() float32 {
	return simd.SplatFloat4(v.LengthSquared()).SqrtEstimate().X()
}

/**
 * @brief Returns a normalized copy of the supplied vector. A zero length
 * vector produces NaN components.
 *
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalize() Vec3 {
	return Vec3{normalizeExact(v.v, v.LengthSquared()).WithW(0)}
}

/**
 * @brief Returns a normalized copy computed with the reciprocal square root
 * estimate. The result is unit length within simd.EstimatePrecision.
 */
func (v Vec3) NormalizeEstimate() Vec3 {
	return Vec3{normalizeEstimate(v.v, v.LengthSquared()).WithW(0)}
}

/**
 * @brief Returns a normalized copy of the vector, or the zero vector when its
 * squared length is below tolerance squared.
 *
 * @param tolerance The length under which the vector is considered zero.
 * @return A normalized copy or the zero vector.
 */
func (v Vec3) NormalizeSafe(tolerance float32) Vec3 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec3Zero()
	}
	return Vec3{normalizeExact(v.v, lengthSq).WithW(0)}
}

/**
 * @brief Same as NormalizeSafe but normalizes with the reciprocal square root
 * estimate. The zero threshold is still an exact comparison.
 */
func (v Vec3) NormalizeSafeEstimate(tolerance float32) Vec3 {
	lengthSq := v.LengthSquared()
	if lengthSq < tolerance*tolerance {
		return NewVec3Zero()
	}
	return Vec3{normalizeEstimate(v.v, lengthSq).WithW(0)}
}

/**
 * @brief Computes the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.v.Dot3(other.v)
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{v.v.Cross3(other.v)}
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The second vector.
 * @return The distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

/**
 * @brief Linearly interpolates between v and other as v + (other - v) * t.
 * t is not clamped, values outside [0, 1] extrapolate.
 */
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{lerp(v.v, other.v, t).WithW(0)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than or equal to tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) IsClose(other Vec3, tolerance float32) bool {
	return isClose(v.v, other.v, tolerance, simd.Lanes3)
}

// IsZero reports whether every component is within tolerance of zero.
func (v Vec3) IsZero(tolerance float32) bool {
	return isClose(v.v, simd.ZeroFloat4(), tolerance, simd.Lanes3)
}

// IsNormalized reports whether the squared length is within tolerance of one.
func (v Vec3) IsNormalized(tolerance float32) bool {
	return scalar.Fabs(v.LengthSquared()-1) <= tolerance
}

func (v Vec3) IsLessThan(other Vec3) bool {
	return simd.CmpAllLt(v.v, other.v, simd.Lanes3)
}

func (v Vec3) IsLessEqualThan(other Vec3) bool {
	return simd.CmpAllLtEq(v.v, other.v, simd.Lanes3)
}

func (v Vec3) IsGreaterThan(other Vec3) bool {
	return simd.CmpAllGt(v.v, other.v, simd.Lanes3)
}

func (v Vec3) IsGreaterEqualThan(other Vec3) bool {
	return simd.CmpAllGtEq(v.v, other.v, simd.Lanes3)
}

// GetMaxElement returns the largest of x, y and z.
func (v Vec3) GetMaxElement() float32 {
	return v.v.HorizontalMax3()
}

// GetMinElement returns the smallest of x, y and z.
func (v Vec3) GetMinElement() float32 {
	return v.v.HorizontalMin3()
}

// GetMaxElementIndex returns the index of the largest component, preferring
// the lowest index on ties.
func (v Vec3) GetMaxElementIndex() int {
	i := 0
	for k := 1; k < 3; k++ {
		if v.v.Lane(k) > v.v.Lane(i) {
			i = k
		}
	}
	return i
}

/**
 * @brief Transform v by m as a point (w = 1).
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return Vec3{m.transformRow(v.v.WithW(1)).WithW(0)}
}

/**
 * @brief Transform v by m as a direction (w = 0). Translation is ignored.
 */
func (v Vec3) TransformDirection(m Mat4) Vec3 {
	return Vec3{m.transformRow(v.v).WithW(0)}
}

/**
 * @brief Projects v onto other. other must not be zero length.
 */
func (v Vec3) Project(other Vec3) Vec3 {
	return other.MulScalar(v.Dot(other) / other.LengthSquared())
}

/**
 * @brief Returns the angle in radians between v and other. Both vectors must
 * be non zero.
 */
func (v Vec3) Angle(other Vec3) float32 {
	c := v.Dot(other) / scalar.Sqrt(v.LengthSquared()*other.LengthSquared())
	return scalar.Acos(scalar.Clamp(c, -1, 1))
}

// GetNormalizedPerpendicular returns a unit vector perpendicular to v, which
// must be non zero.
func (v Vec3) GetNormalizedPerpendicular() Vec3 {
	if scalar.Fabs(v.X()) > scalar.Fabs(v.Y()) {
		l := scalar.Sqrt(v.X()*v.X() + v.Z()*v.Z())
		return NewVec3(v.Z(), 0, -v.X()).DivScalar(l)
	}
	l := scalar.Sqrt(v.Y()*v.Y() + v.Z()*v.Z())
	return NewVec3(0, v.Z(), -v.Y()).DivScalar(l)
}
