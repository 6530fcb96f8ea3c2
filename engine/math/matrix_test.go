package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/animath/engine/math/scalar"
)

func testRigid() Mat4 {
	return NewMat4FromTRS(NewVec3(3, -1, 2), NewQuatFromAxisAngle(NewVec3(1, 2, -1), 0.9), NewVec3One())
}

func testAffine() Mat4 {
	return NewMat4FromTRS(NewVec3(-4, 0.5, 7), NewQuatFromEuler(0.3, 1.1, -0.4), NewVec3(2, 0.5, 3))
}

func TestMat4DataRoundTrip(t *testing.T) {
	var data [16]float32
	for i := range data {
		data[i] = float32(i) - 4.5
	}
	m := NewMat4FromData(data)
	assert.Equal(t, data, m.Data())
	assert.Equal(t, float32(data[6]), m.Get(1, 2))
	assert.Equal(t, NewVec4(data[4], data[5], data[6], data[7]), m.Row(1))
	assert.Equal(t, NewVec4(data[2], data[6], data[10], data[14]), m.Column(2))

	s := m.Set(3, 3, 99)
	assert.Equal(t, float32(99), s.Get(3, 3))
	assert.Equal(t, data[15], m.Get(3, 3), "Set must return a copy")
}

func TestMat4Identity(t *testing.T) {
	m := testAffine()
	assert.Equal(t, m, m.Mul(NewMat4Identity()))
	assert.Equal(t, m, NewMat4Identity().Mul(m))
	assert.Equal(t, float32(1), NewMat4Identity().Determinant())
}

func TestMat4MulOrder(t *testing.T) {
	tr := NewMat4Translation(NewVec3(5, 0, 0))
	sc := NewMat4Scale(NewVec3(2, 2, 2))
	p := NewVec3(1, 1, 1)

	// Row vectors: the left matrix is applied first.
	assert.Equal(t, NewVec3(12, 2, 2), p.Transform(tr.Mul(sc)))
	assert.Equal(t, NewVec3(7, 2, 2), p.Transform(sc.Mul(tr)))
}

func TestMat4TransformPointAndVector(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))
	assert.Equal(t, NewVec3(2, 3, 4), m.TransformPoint(NewVec3One()))
	assert.Equal(t, NewVec3One(), m.TransformVector(NewVec3One()))
	assert.Equal(t, NewVec3(1, 2, 3), m.Translation())
	assert.Equal(t, NewVec4(2, 3, 4, 1), NewVec4(1, 1, 1, 1).Transform(m))
}

func TestMat4Transpose(t *testing.T) {
	m := testAffine()
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m.Row(2), m.Transpose().Column(2))
}

func TestMat4Determinant(t *testing.T) {
	assert.Equal(t, float32(24), NewMat4Scale(NewVec3(2, 3, 4)).Determinant())
	assert.InDelta(t, 1, testRigid().Determinant(), 1e-5)
	assert.InDelta(t, 3, testAffine().Determinant(), 1e-4)
}

func TestMat4Inverse(t *testing.T) {
	for name, m := range map[string]Mat4{
		"rigid":      testRigid(),
		"affine":     testAffine(),
		"projection": NewMat4Perspective(scalar.DegToRad(60), 16.0/9.0, 0.1, 100),
		"look at":    NewMat4LookAt(NewVec3(1, 5, 10), NewVec3Zero(), NewVec3Up()),
	} {
		t.Run(name, func(t *testing.T) {
			inv := m.Inverse()
			assert.True(t, m.Mul(inv).IsClose(NewMat4Identity(), 1e-3))
			assert.True(t, inv.Mul(m).IsClose(NewMat4Identity(), 1e-3))
		})
	}
}

func TestMat4InverseFast(t *testing.T) {
	m := testRigid()
	require.True(t, m.ToMat3().IsOrthonormal(testTolerance))
	assert.True(t, m.InverseFast().IsClose(m.Inverse(), 1e-5))
}

func TestMat4EulerAxes(t *testing.T) {
	assertVec3Close(t, NewVec3Back(), NewVec3Up().TransformDirection(NewMat4EulerX(scalar.K_HALF_PI)), testTolerance)
	assertVec3Close(t, NewVec3Forward(), NewVec3Right().TransformDirection(NewMat4EulerY(scalar.K_HALF_PI)), testTolerance)
	assertVec3Close(t, NewVec3Up(), NewVec3Right().TransformDirection(NewMat4EulerZ(scalar.K_HALF_PI)), testTolerance)

	// X, then Y, then Z.
	xyz := NewMat4EulerXYZ(scalar.K_HALF_PI, scalar.K_HALF_PI, 0)
	assertVec3Close(t, NewVec3Right(), NewVec3Up().TransformDirection(xyz), testTolerance)
}

func TestMat4LookAt(t *testing.T) {
	position := NewVec3(0, 0, 5)
	view := NewMat4LookAt(position, NewVec3Zero(), NewVec3Up())

	assertVec3Close(t, NewVec3Zero(), position.Transform(view), testTolerance)
	assertVec3Close(t, NewVec3(0, 0, -5), NewVec3Zero().Transform(view), testTolerance)
	assertVec3Close(t, NewVec3(1, 0, -5), NewVec3Right().Transform(view), testTolerance)

	assertVec3Close(t, NewVec3Forward(), view.Forward(), testTolerance)
	assertVec3Close(t, NewVec3Back(), view.Backward(), testTolerance)
	assertVec3Close(t, NewVec3Up(), view.Up(), testTolerance)
	assertVec3Close(t, NewVec3Down(), view.Down(), testTolerance)
	assertVec3Close(t, NewVec3Right(), view.Right(), testTolerance)
	assertVec3Close(t, NewVec3Left(), view.Left(), testTolerance)
}

func TestMat4DirectionsAreNormalized(t *testing.T) {
	m := NewMat4Scale(NewVec3(3, 4, 5))
	assert.InDelta(t, 1, m.Forward().Length(), 1e-6)
	assert.InDelta(t, 1, m.Up().Length(), 1e-6)
	assert.InDelta(t, 1, m.Right().Length(), 1e-6)
}

func TestMat4Perspective(t *testing.T) {
	m := NewMat4Perspective(scalar.K_HALF_PI, 1, 1, 10)

	near := NewVec4(0, 0, -1, 1).Transform(m)
	assert.InDelta(t, -1, near.Z()/near.W(), 1e-5)

	far := NewVec4(0, 0, -10, 1).Transform(m)
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-5)

	edge := NewVec4(1, 0, -1, 1).Transform(m)
	assert.InDelta(t, 1, edge.X()/edge.W(), 1e-5)
}

func TestMat4Orthographic(t *testing.T) {
	m := NewMat4Orthographic(0, 800, 0, 600, -1, 1)
	assertVec3Close(t, NewVec3(-1, -1, 0), NewVec3Zero().Transform(m), testTolerance)
	assertVec3Close(t, NewVec3(1, 1, 0), NewVec3(800, 600, 0).Transform(m), testTolerance)
}

func TestMat3(t *testing.T) {
	m := testAffine().ToMat3()
	assert.True(t, m.Mul(m.Inverse()).IsClose(NewMat3Identity(), 1e-5))
	assert.InDelta(t, 3, m.Determinant(), 1e-4)
	assert.Equal(t, float32(24), NewMat3Scale(NewVec3(2, 3, 4)).Determinant())
	assert.Equal(t, m, m.Transpose().Transpose())

	v := NewVec3(1, -2, 0.5)
	assertVec3Close(t, v.TransformDirection(testAffine()), m.TransformVector(v), testTolerance)
	assert.False(t, m.IsOrthonormal(testTolerance))
	assert.True(t, NewMat3FromQuat(NewQuatFromEuler(1, 2, 3)).IsOrthonormal(testTolerance))
}

func TestMat34MatchesMat4(t *testing.T) {
	m4 := testAffine()
	m34 := NewMat34FromMat4(m4)
	p := NewVec3(1.5, -2, 0.25)

	assertVec3Close(t, p.Transform(m4), m34.TransformPoint(p), testTolerance)
	assertVec3Close(t, p.TransformDirection(m4), m34.TransformVector(p), testTolerance)
	assert.Equal(t, m4.Translation(), m34.Translation())
	assert.Equal(t, m4, m34.ToMat4())
	assert.True(t, m34.Rotation().IsClose(m4.ToMat3(), 0))
}

func TestMat34MulAppliesRightFirst(t *testing.T) {
	a := NewMat34FromMat4(testRigid())
	b := NewMat34FromMat4(testAffine())
	p := NewVec3(-1, 2, 3)

	assertVec3Close(t, a.TransformPoint(b.TransformPoint(p)), a.Mul(b).TransformPoint(p), 1e-4)

	// The same composition in the row-vector convention.
	assert.True(t, a.Mul(b).IsClose(NewMat34FromMat4(testAffine().Mul(testRigid())), 1e-4))
}

func TestMat34Inverse(t *testing.T) {
	rigid := NewMat34FromRotationTranslation(NewQuatFromAxisAngle(NewVec3Up(), 1.2), NewVec3(1, 2, 3))
	assert.True(t, rigid.Mul(rigid.InverseFast()).IsClose(NewMat34Identity(), 1e-5))
	assert.True(t, rigid.InverseFast().IsClose(rigid.Inverse(), 1e-5))

	affine := NewMat34FromMat4(testAffine())
	assert.True(t, affine.Mul(affine.Inverse()).IsClose(NewMat34Identity(), 1e-4))
	assert.True(t, affine.Inverse().Mul(affine).IsClose(NewMat34Identity(), 1e-4))
}

func TestMat34FromRotationTranslation(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI)
	m := NewMat34FromRotationTranslation(q, NewVec3(0, 0, 1))
	assertVec3Close(t, NewVec3(0, 1, 1), m.TransformPoint(NewVec3Right()), testTolerance)
	assertVec3Close(t, NewVec3(0, 1, 0), m.TransformVector(NewVec3Right()), testTolerance)
	assert.Equal(t, NewVec3(7, 8, 9), m.WithTranslation(NewVec3(7, 8, 9)).Translation())
}
