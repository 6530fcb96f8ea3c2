package math

import "golang.org/x/image/math/f32"

// Conversions to and from the plain array types of golang.org/x/image/math/f32.
// Matrices are copied element for element in row-major order.

func (v Vec2) ToF32() f32.Vec2 { return f32.Vec2(v.Array()) }
func (v Vec3) ToF32() f32.Vec3 { return f32.Vec3(v.Array()) }
func (v Vec4) ToF32() f32.Vec4 { return f32.Vec4(v.Array()) }

func Vec2FromF32(v f32.Vec2) Vec2 { return NewVec2(v[0], v[1]) }
func Vec3FromF32(v f32.Vec3) Vec3 { return NewVec3(v[0], v[1], v[2]) }
func Vec4FromF32(v f32.Vec4) Vec4 { return NewVec4(v[0], v[1], v[2], v[3]) }

func (mt Mat4) ToF32() f32.Mat4 { return f32.Mat4(mt.Data()) }

func Mat4FromF32(m f32.Mat4) Mat4 { return NewMat4FromData(m) }

func (m Mat3) ToF32() f32.Mat3 {
	var out f32.Mat3
	for i, r := range m.rows {
		r.StoreToFloat3(out[i*3 : i*3+3])
	}
	return out
}

func Mat3FromF32(m f32.Mat3) Mat3 {
	return NewMat3FromRows(
		NewVec3FromSlice(m[0:3]),
		NewVec3FromSlice(m[3:6]),
		NewVec3FromSlice(m[6:9]),
	)
}
