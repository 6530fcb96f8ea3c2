package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

/** @brief A quaternion, used to represent rotational orientation. Lanes are x, y, z, w. */
type Quaternion struct {
	v simd.Float4
}

// SlerpDotThreshold is the cosine above which Slerp falls back to a
// normalized linear interpolation.
const SlerpDotThreshold float32 = 0.9995

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{simd.LoadFloat4(0, 0, 0, 1)}
}

// NewQuaternion stores the components as given. Use Normalize when they do
// not already describe a unit rotation.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{simd.LoadFloat4(x, y, z, w)}
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis does not
 * need to be unit length and the result is always normalized. A zero axis
 * yields the identity.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	s, c := scalar.SinCos(0.5 * angle)
	a := axis.NormalizeSafe(scalar.K_FLOAT_EPSILON)
	if a.IsZero(0) {
		return NewQuatIdentity()
	}
	q := Quaternion{a.v.MulScalar(s).WithW(c)}
	return q.Normalize()
}

/**
 * @brief Creates a quaternion from euler angles in radians. X is applied
 * first, then Y, then Z, matching NewMat4EulerXYZ.
 */
func NewQuatFromEuler(xRadians, yRadians, zRadians float32) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3Right(), xRadians)
	qy := NewQuatFromAxisAngle(NewVec3Up(), yRadians)
	qz := NewQuatFromAxisAngle(NewVec3Back(), zRadians)
	return qz.Mul(qy).Mul(qx).Normalize()
}

/**
 * @brief Creates a quaternion from a rotation matrix. The matrix must be
 * orthonormal; scale is not removed.
 */
func NewQuatFromMat3(m Mat3) Quaternion {
	// r(i, j) is the column-vector rotation matrix, the transpose of m.
	r := func(i, j int) float32 { return m.rows[j].Lane(i) }

	trace := r(0, 0) + r(1, 1) + r(2, 2)
	var q Quaternion
	switch {
	case trace > 0:
		s := scalar.Sqrt(trace+1) * 2
		q = NewQuaternion((r(2, 1)-r(1, 2))/s, (r(0, 2)-r(2, 0))/s, (r(1, 0)-r(0, 1))/s, 0.25*s)
	case r(0, 0) > r(1, 1) && r(0, 0) > r(2, 2):
		s := scalar.Sqrt(1+r(0, 0)-r(1, 1)-r(2, 2)) * 2
		q = NewQuaternion(0.25*s, (r(0, 1)+r(1, 0))/s, (r(0, 2)+r(2, 0))/s, (r(2, 1)-r(1, 2))/s)
	case r(1, 1) > r(2, 2):
		s := scalar.Sqrt(1+r(1, 1)-r(0, 0)-r(2, 2)) * 2
		q = NewQuaternion((r(0, 1)+r(1, 0))/s, 0.25*s, (r(1, 2)+r(2, 1))/s, (r(0, 2)-r(2, 0))/s)
	default:
		s := scalar.Sqrt(1+r(2, 2)-r(0, 0)-r(1, 1)) * 2
		q = NewQuaternion((r(0, 2)+r(2, 0))/s, (r(1, 2)+r(2, 1))/s, 0.25*s, (r(1, 0)-r(0, 1))/s)
	}
	return q.Normalize()
}

func (q Quaternion) X() float32 { return q.v.X() }
func (q Quaternion) Y() float32 { return q.v.Y() }
func (q Quaternion) Z() float32 { return q.v.Z() }
func (q Quaternion) W() float32 { return q.v.W() }

func (q Quaternion) Float4() simd.Float4 { return q.v }

// Xyz returns the vector part.
func (q Quaternion) Xyz() Vec3 { return NewVec3FromFloat4(q.v) }

func (q Quaternion) LengthSquared() float32 { return q.v.Dot4(q.v) }

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Length() float32 { return scalar.Sqrt(q.LengthSquared()) }

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	return Quaternion{normalizeExact(q.v, q.LengthSquared())}
}

func (q Quaternion) NormalizeEstimate() Quaternion {
	return Quaternion{normalizeEstimate(q.v, q.LengthSquared())}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.v.Neg().WithW(q.v.W())}
}

/**
 * @brief Returns the inverse of q. Works for non unit quaternions.
 */
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{q.Conjugate().v.DivScalar(q.LengthSquared())}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The result
 * applies other first, then q.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	o := other.v
	r := q.v.SplatW().Mul(o)
	r = q.v.SplatX().Mul(o.Shuffle(simd.W, simd.Z, simd.Y, simd.X)).MulAdd(simd.LoadFloat4(1, -1, 1, -1), r)
	r = q.v.SplatY().Mul(o.Shuffle(simd.Z, simd.W, simd.X, simd.Y)).MulAdd(simd.LoadFloat4(1, 1, -1, -1), r)
	r = q.v.SplatZ().Mul(o.Shuffle(simd.Y, simd.X, simd.W, simd.Z)).MulAdd(simd.LoadFloat4(-1, 1, 1, -1), r)
	return Quaternion{r}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.v.Dot4(other.v)
}

/**
 * @brief Rotates v by q. q must be normalized.
 */
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	u := q.Xyz()
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W())).Add(u.Cross(t))
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions. The shorter arc is always taken.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 describe the same rotation; flip to stay on the short arc.
	if dot < 0.0 {
		v1 = Quaternion{v1.v.Neg()}
		dot = -dot
	}

	if dot > SlerpDotThreshold {
		return Quaternion{lerp(v0.v, v1.v, percentage)}.Normalize()
	}

	theta0 := scalar.Acos(dot)
	theta := theta0 * percentage
	sinTheta := scalar.Sin(theta)
	sinTheta0 := scalar.Sin(theta0)

	s0 := scalar.Cos(theta) - dot*sinTheta/sinTheta0 // sin(theta0 - theta) / sin(theta0)
	s1 := sinTheta / sinTheta0

	return Quaternion{v0.v.MulScalar(s0).Add(v1.v.MulScalar(s1))}
}

// Lerp interpolates the components and renormalizes, taking the short arc.
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	if q.Dot(other) < 0 {
		other = Quaternion{other.v.Neg()}
	}
	return Quaternion{lerp(q.v, other.v, t)}.Normalize()
}

func (q Quaternion) IsClose(other Quaternion, tolerance float32) bool {
	return isClose(q.v, other.v, tolerance, simd.Lanes4)
}

// IsIdentity reports whether q is within tolerance of the identity.
func (q Quaternion) IsIdentity(tolerance float32) bool {
	return q.IsClose(NewQuatIdentity(), tolerance)
}

func (q Quaternion) IsNormalized(tolerance float32) bool {
	return scalar.Fabs(q.LengthSquared()-1) <= tolerance
}

// ToAxisAngle returns the rotation axis and angle in radians. The identity
// returns the x axis and a zero angle.
func (q Quaternion) ToAxisAngle() (Vec3, float32) {
	n := q.Normalize()
	if n.W() < 0 {
		n = Quaternion{n.v.Neg()}
	}
	w := scalar.Clamp(n.W(), -1, 1)
	angle := 2 * scalar.Acos(w)
	s := scalar.Sqrt(1 - w*w)
	if s < scalar.K_FLOAT_EPSILON {
		return NewVec3Right(), 0
	}
	return n.Xyz().DivScalar(s), angle
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The rows are the
 * rotated basis vectors, so v.Transform(q.ToMat4()) equals q.RotateVector(v).
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	r := q.ToMat3()
	return Mat4{rows: [4]simd.Float4{r.rows[0], r.rows[1], r.rows[2], simd.LoadFloat4(0, 0, 0, 1)}}
}

// ToMat3 is ToMat4 without translation. q is normalized first.
func (q Quaternion) ToMat3() Mat3 {
	n := q.Normalize()
	x, y, z, w := n.X(), n.Y(), n.Z(), n.W()

	return Mat3{rows: [3]simd.Float4{
		simd.LoadFloat4(1-2*(y*y+z*z), 2*(x*y+z*w), 2*(x*z-y*w), 0),
		simd.LoadFloat4(2*(x*y-z*w), 1-2*(x*x+z*z), 2*(y*z+x*w), 0),
		simd.LoadFloat4(2*(x*z+y*w), 2*(y*z-x*w), 1-2*(x*x+y*y), 0),
	}}
}

/**
 * @brief Calculates a rotation matrix based on the quaternion and the passed in
 * center point. Points are rotated about center instead of the origin.
 *
 * @param center The center point.
 * @return A rotation matrix.
 */
func (q Quaternion) ToRotationMatrix(center Vec3) Mat4 {
	m := q.ToMat4()
	offset := center.Sub(center.TransformDirection(m))
	return m.WithTranslation(offset)
}
