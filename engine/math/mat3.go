package math

import (
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/simd"
)

// Mat3 is a 3x3 matrix stored as three rows with a zero w lane. Like Mat4
// it transforms row vectors (v' = v * M).
type Mat3 struct {
	rows [3]simd.Float4
}

func NewMat3Identity() Mat3 {
	return Mat3{rows: [3]simd.Float4{
		simd.LoadFloat4(1, 0, 0, 0),
		simd.LoadFloat4(0, 1, 0, 0),
		simd.LoadFloat4(0, 0, 1, 0),
	}}
}

func NewMat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{rows: [3]simd.Float4{r0.v, r1.v, r2.v}}
}

func NewMat3Scale(scale Vec3) Mat3 {
	return Mat3{rows: [3]simd.Float4{
		simd.LoadFloat4(scale.X(), 0, 0, 0),
		simd.LoadFloat4(0, scale.Y(), 0, 0),
		simd.LoadFloat4(0, 0, scale.Z(), 0),
	}}
}

// NewMat3FromQuat is q.ToMat3().
func NewMat3FromQuat(q Quaternion) Mat3 {
	return q.ToMat3()
}

func (m Mat3) Row(i int) Vec3 { return Vec3{m.rows[i]} }

func (m Mat3) Column(i int) Vec3 {
	return NewVec3(m.rows[0].Lane(i), m.rows[1].Lane(i), m.rows[2].Lane(i))
}

func (m Mat3) Get(row, col int) float32 { return m.rows[row].Lane(col) }

func (m Mat3) Set(row, col int, value float32) Mat3 {
	m.rows[row] = m.rows[row].WithLane(col, value)
	return m
}

func (m Mat3) transformRow(v simd.Float4) simd.Float4 {
	r := m.rows[0].Mul(v.SplatX())
	r = m.rows[1].MulAdd(v.SplatY(), r)
	return m.rows[2].MulAdd(v.SplatZ(), r)
}

// TransformVector returns v * m.
func (m Mat3) TransformVector(v Vec3) Vec3 {
	return Vec3{m.transformRow(v.v).WithW(0)}
}

// Mul returns m * other; transforming by the result applies m first.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for i, r := range m.rows {
		out.rows[i] = other.transformRow(r).WithW(0)
	}
	return out
}

func (m Mat3) Transpose() Mat3 {
	return NewMat3FromRows(m.Column(0), m.Column(1), m.Column(2))
}

// Determinant is the scalar triple product of the rows.
func (m Mat3) Determinant() float32 {
	return m.Row(0).Dot(m.Row(1).Cross(m.Row(2)))
}

// Inverse returns the adjugate divided by the determinant. A singular matrix
// produces Inf or NaN elements.
func (m Mat3) Inverse() Mat3 {
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	c0 := r1.Cross(r2)
	c1 := r2.Cross(r0)
	c2 := r0.Cross(r1)
	invDet := 1.0 / r0.Dot(c0)
	// The cross products are the columns of the inverse.
	return NewMat3FromRows(c0, c1, c2).Transpose().mulScalar(invDet)
}

func (m Mat3) mulScalar(s float32) Mat3 {
	for i := range m.rows {
		m.rows[i] = m.rows[i].MulScalar(s).WithW(0)
	}
	return m
}

func (m Mat3) ToMat4() Mat4 {
	return Mat4{rows: [4]simd.Float4{m.rows[0], m.rows[1], m.rows[2], simd.LoadFloat4(0, 0, 0, 1)}}
}

func (m Mat3) IsClose(other Mat3, tolerance float32) bool {
	for i := range m.rows {
		if !isClose(m.rows[i], other.rows[i], tolerance, simd.Lanes3) {
			return false
		}
	}
	return true
}

// IsOrthonormal reports whether the rows are unit length and mutually
// perpendicular within tolerance.
func (m Mat3) IsOrthonormal(tolerance float32) bool {
	return m.Mul(m.Transpose()).IsClose(NewMat3Identity(), tolerance) &&
		scalar.Fabs(m.Determinant()-1) <= tolerance
}
