package math

import (
	"github.com/spaghettifunk/animath/engine/math/simd"
)

/**
 * @brief A 3x4 affine transform. Unlike Mat4 it transforms column vectors
 * (p' = M * p): each row holds one output axis and the translation sits in
 * the w lane of each row. The implicit fourth row is (0, 0, 0, 1).
 */
type Mat34 struct {
	rows [3]simd.Float4
}

func NewMat34Identity() Mat34 {
	return Mat34{rows: [3]simd.Float4{
		simd.LoadFloat4(1, 0, 0, 0),
		simd.LoadFloat4(0, 1, 0, 0),
		simd.LoadFloat4(0, 0, 1, 0),
	}}
}

// NewMat34FromRows builds a transform from three (r0, r1, r2, t) rows.
func NewMat34FromRows(r0, r1, r2 Vec4) Mat34 {
	return Mat34{rows: [3]simd.Float4{r0.v, r1.v, r2.v}}
}

/**
 * @brief Converts a row-vector Mat4 to a column-vector affine transform. The
 * projective column of m is dropped.
 */
func NewMat34FromMat4(m Mat4) Mat34 {
	var out Mat34
	for i := range out.rows {
		out.rows[i] = m.Column(i).v
	}
	return out
}

// NewMat34FromRotationTranslation rotates by q, then translates by t.
func NewMat34FromRotationTranslation(q Quaternion, t Vec3) Mat34 {
	r := q.ToMat3()
	return Mat34{rows: [3]simd.Float4{
		r.Column(0).v.WithW(t.X()),
		r.Column(1).v.WithW(t.Y()),
		r.Column(2).v.WithW(t.Z()),
	}}
}

// ToMat4 converts back to the row-vector convention.
func (m Mat34) ToMat4() Mat4 {
	return NewMat4FromRows(Vec4{m.rows[0]}, Vec4{m.rows[1]}, Vec4{m.rows[2]}, NewVec4(0, 0, 0, 1)).Transpose()
}

func (m Mat34) Row(i int) Vec4 { return Vec4{m.rows[i]} }

func (m Mat34) Get(row, col int) float32 { return m.rows[row].Lane(col) }

func (m Mat34) Translation() Vec3 {
	return NewVec3(m.rows[0].W(), m.rows[1].W(), m.rows[2].W())
}

func (m Mat34) WithTranslation(t Vec3) Mat34 {
	m.rows[0] = m.rows[0].WithW(t.X())
	m.rows[1] = m.rows[1].WithW(t.Y())
	m.rows[2] = m.rows[2].WithW(t.Z())
	return m
}

// Rotation returns the linear part in the row-vector convention used by Mat3.
func (m Mat34) Rotation() Mat3 {
	return Mat3{rows: [3]simd.Float4{m.rows[0].WithW(0), m.rows[1].WithW(0), m.rows[2].WithW(0)}}.Transpose()
}

// TransformPoint returns M * (p, 1).
func (m Mat34) TransformPoint(p Vec3) Vec3 {
	h := p.v.WithW(1)
	return NewVec3(m.rows[0].Dot4(h), m.rows[1].Dot4(h), m.rows[2].Dot4(h))
}

// TransformVector returns M * (v, 0).
func (m Mat34) TransformVector(v Vec3) Vec3 {
	return NewVec3(m.rows[0].Dot4(v.v), m.rows[1].Dot4(v.v), m.rows[2].Dot4(v.v))
}

/**
 * @brief Composes two transforms. The result applies other first, then m,
 * as usual for column vectors.
 */
func (m Mat34) Mul(other Mat34) Mat34 {
	var out Mat34
	for i, r := range m.rows {
		acc := simd.LoadFloat4(0, 0, 0, r.W())
		acc = other.rows[0].MulAdd(r.SplatX(), acc)
		acc = other.rows[1].MulAdd(r.SplatY(), acc)
		out.rows[i] = other.rows[2].MulAdd(r.SplatZ(), acc)
	}
	return out
}

// Inverse inverts the linear part and the translation. A singular linear
// part produces Inf or NaN elements.
func (m Mat34) Inverse() Mat34 {
	inv := m.Rotation().Inverse().Transpose()
	return inverseWithLinear(inv, m.Translation())
}

// InverseFast assumes the linear part is a pure rotation and transposes it.
func (m Mat34) InverseFast() Mat34 {
	return inverseWithLinear(m.Rotation(), m.Translation())
}

// inverseWithLinear builds (L, -L*t) where L is already in column form.
func inverseWithLinear(linear Mat3, t Vec3) Mat34 {
	out := Mat34{rows: linear.rows}
	nt := out.TransformVector(t).Neg()
	return out.WithTranslation(nt)
}

func (m Mat34) IsClose(other Mat34, tolerance float32) bool {
	for i := range m.rows {
		if !isClose(m.rows[i], other.rows[i], tolerance, simd.Lanes4) {
			return false
		}
	}
	return true
}
