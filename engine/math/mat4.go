package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Storage is row-major and points are row vectors (p' = p * M), so the
 * translation lives in the fourth row.
 */
type Mat4 struct {
	rows [4]simd.Float4
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return Mat4{rows: [4]simd.Float4{
		simd.LoadFloat4(1, 0, 0, 0),
		simd.LoadFloat4(0, 1, 0, 0),
		simd.LoadFloat4(0, 0, 1, 0),
		simd.LoadFloat4(0, 0, 0, 1),
	}}
}

func NewMat4Zero() Mat4 {
	return Mat4{}
}

// NewMat4FromRows builds a matrix from its four rows.
func NewMat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{rows: [4]simd.Float4{r0.v, r1.v, r2.v, r3.v}}
}

// NewMat4FromData builds a matrix from 16 row-major elements.
func NewMat4FromData(data [16]float32) Mat4 {
	var m Mat4
	for i := range m.rows {
		m.rows[i] = simd.LoadFromFloat4(data[i*4 : i*4+4])
	}
	return m
}

// Data returns the 16 elements in row-major order.
func (mt Mat4) Data() [16]float32 {
	var out [16]float32
	for i, r := range mt.rows {
		r.StoreToFloat4(out[i*4 : i*4+4])
	}
	return out
}

func (mt Mat4) Row(i int) Vec4 { return Vec4{mt.rows[i]} }

func (mt Mat4) Column(i int) Vec4 {
	return NewVec4(mt.rows[0].Lane(i), mt.rows[1].Lane(i), mt.rows[2].Lane(i), mt.rows[3].Lane(i))
}

func (mt Mat4) Get(row, col int) float32 { return mt.rows[row].Lane(col) }

// Set returns a copy of mt with element (row, col) replaced.
func (mt Mat4) Set(row, col int, value float32) Mat4 {
	mt.rows[row] = mt.rows[row].WithLane(col, value)
	return mt
}

// Translation returns the translation stored in the fourth row.
func (mt Mat4) Translation() Vec3 { return NewVec3FromFloat4(mt.rows[3]) }

// WithTranslation returns a copy of mt with the translation replaced.
func (mt Mat4) WithTranslation(t Vec3) Mat4 {
	mt.rows[3] = t.v.WithW(mt.rows[3].W())
	return mt
}

// transformRow computes v * mt as ((x*r0 + y*r1) + z*r2) + w*r3.
func (mt Mat4) transformRow(v simd.Float4) simd.Float4 {
	r := mt.rows[0].Mul(v.SplatX())
	r = mt.rows[1].MulAdd(v.SplatY(), r)
	r = mt.rows[2].MulAdd(v.SplatZ(), r)
	return mt.rows[3].MulAdd(v.SplatW(), r)
}

// TransformPoint transforms p with w = 1, without the perspective divide.
func (mt Mat4) TransformPoint(p Vec3) Vec3 { return p.Transform(mt) }

// TransformVector transforms v with w = 0.
func (mt Mat4) TransformVector(v Vec3) Vec3 { return v.TransformDirection(mt) }

/**
 * @brief Returns the result of multiplying mt and other. Transforming by the
 * result applies mt first, then other.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i, r := range mt.rows {
		out.rows[i] = other.transformRow(r)
	}
	return out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	return NewMat4FromRows(mt.Column(0), mt.Column(1), mt.Column(2), mt.Column(3))
}

/**
 * @brief Returns the determinant of the matrix.
 */
func (mt Mat4) Determinant() float32 {
	m := mt.Data()
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix produces Inf or NaN elements.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]float32

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return NewMat4FromData(o)
}

/**
 * @brief Inverts a matrix made only of a rotation and a translation by
 * transposing the rotation. Scaled or projective matrices must use Inverse.
 */
func (mt Mat4) InverseFast() Mat4 {
	r := mt.ToMat3().Transpose()
	t := mt.Translation().Neg().TransformDirection(r.ToMat4())
	out := r.ToMat4()
	out.rows[3] = t.v.WithW(1)
	return out
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	return Mat4{rows: [4]simd.Float4{
		simd.LoadFloat4(-2.0*lr, 0, 0, 0),
		simd.LoadFloat4(0, -2.0*bt, 0, 0),
		simd.LoadFloat4(0, 0, 2.0*nf, 0),
		simd.LoadFloat4((left+right)*lr, (top+bottom)*bt, (farClip+nearClip)*nf, 1),
	}}
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fovRadians The field of view in radians.
 * @param aspectRatio The aspect ratio.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := scalar.Tan(fovRadians * 0.5)
	return Mat4{rows: [4]simd.Float4{
		simd.LoadFloat4(1.0/(aspectRatio*halfTanFov), 0, 0, 0),
		simd.LoadFloat4(0, 1.0/halfTanFov, 0, 0),
		simd.LoadFloat4(0, 0, -((farClip + nearClip) / (farClip - nearClip)), -1.0),
		simd.LoadFloat4(0, 0, -((2.0 * farClip * nearClip) / (farClip - nearClip)), 0),
	}}
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. The result maps world space
 * into a view space looking down -z.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	f := target.Sub(position).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{rows: [4]simd.Float4{
		simd.LoadFloat4(s.X(), u.X(), -f.X(), 0),
		simd.LoadFloat4(s.Y(), u.Y(), -f.Y(), 0),
		simd.LoadFloat4(s.Z(), u.Z(), -f.Z(), 0),
		simd.LoadFloat4(-s.Dot(position), -u.Dot(position), f.Dot(position), 1),
	}}
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	return NewMat4Identity().WithTranslation(position)
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	return Mat4{rows: [4]simd.Float4{
		simd.LoadFloat4(scale.X(), 0, 0, 0),
		simd.LoadFloat4(0, scale.Y(), 0, 0),
		simd.LoadFloat4(0, 0, scale.Z(), 0),
		simd.LoadFloat4(0, 0, 0, 1),
	}}
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 */
func NewMat4EulerX(angleRadians float32) Mat4 {
	s, c := scalar.SinCos(angleRadians)
	return NewMat4Identity().Set(1, 1, c).Set(1, 2, s).Set(2, 1, -s).Set(2, 2, c)
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 */
func NewMat4EulerY(angleRadians float32) Mat4 {
	s, c := scalar.SinCos(angleRadians)
	return NewMat4Identity().Set(0, 0, c).Set(0, 2, -s).Set(2, 0, s).Set(2, 2, c)
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 */
func NewMat4EulerZ(angleRadians float32) Mat4 {
	s, c := scalar.SinCos(angleRadians)
	return NewMat4Identity().Set(0, 0, c).Set(0, 1, s).Set(1, 0, -s).Set(1, 1, c)
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * X is applied first, then Y, then Z.
 */
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	rx := NewMat4EulerX(xRadians)
	ry := NewMat4EulerY(yRadians)
	rz := NewMat4EulerZ(zRadians)
	return rx.Mul(ry).Mul(rz)
}

// NewMat4FromQuat is q.ToMat4().
func NewMat4FromQuat(q Quaternion) Mat4 {
	return q.ToMat4()
}

// NewMat4FromTRS composes scale, then rotation, then translation.
func NewMat4FromTRS(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	return NewMat4Scale(scale).Mul(rotation.ToMat4()).WithTranslation(translation)
}

// ToMat3 drops the translation row and the fourth column.
func (mt Mat4) ToMat3() Mat3 {
	return Mat3{rows: [3]simd.Float4{mt.rows[0].WithW(0), mt.rows[1].WithW(0), mt.rows[2].WithW(0)}}
}

func (mt Mat4) IsClose(other Mat4, tolerance float32) bool {
	for i := range mt.rows {
		if !isClose(mt.rows[i], other.rows[i], tolerance, simd.Lanes4) {
			return false
		}
	}
	return true
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 *
 * @return A normalized 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	return mt.Backward().Neg()
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 */
func (mt Mat4) Backward() Vec3 {
	return NewVec3FromVec4(mt.Column(2)).Normalize()
}

/**
 * @brief Returns a upward vector relative to the provided matrix.
 */
func (mt Mat4) Up() Vec3 {
	return NewVec3FromVec4(mt.Column(1)).Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 */
func (mt Mat4) Down() Vec3 {
	return mt.Up().Neg()
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 */
func (mt Mat4) Left() Vec3 {
	return mt.Right().Neg()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (mt Mat4) Right() Vec3 {
	return NewVec3FromVec4(mt.Column(0)).Normalize()
}
