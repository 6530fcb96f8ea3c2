package math

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/animath/engine/math/scalar"
)

func assertVec3Close(t *testing.T, want, got Vec3, tolerance float32) {
	t.Helper()
	assert.True(t, want.IsClose(got, tolerance), "want %v, got %v", want.Array(), got.Array())
}

func assertQuatSameRotation(t *testing.T, want, got Quaternion) {
	t.Helper()
	assert.InDelta(t, 1, scalar.Fabs(want.Dot(got)), 1e-5, "want %v, got %v", want.Float4().Array(), got.Float4().Array())
}

func TestQuatFromAxisAngleIsNormalized(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
	}{
		{"unit axis", NewVec3Up(), 1.0},
		{"long axis", NewVec3(0, 0, 10), scalar.K_HALF_PI},
		{"skewed axis", NewVec3(1, -2, 0.5), 2.5},
		{"zero angle", NewVec3Right(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuatFromAxisAngle(tt.axis, tt.angle)
			assert.True(t, q.IsNormalized(1e-6))
		})
	}
	assert.True(t, NewQuatFromAxisAngle(NewVec3Zero(), 1).IsIdentity(0))
}

func TestQuatRotateVector(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI)
	assertVec3Close(t, NewVec3Up(), q.RotateVector(NewVec3Right()), testTolerance)
	assertVec3Close(t, NewVec3Left(), q.RotateVector(NewVec3Up()), testTolerance)
	assertVec3Close(t, NewVec3Back(), q.RotateVector(NewVec3Back()), testTolerance)

	// A non unit length axis describes the same rotation.
	q2 := NewQuatFromAxisAngle(NewVec3(0, 0, 3), scalar.K_HALF_PI)
	assertVec3Close(t, NewVec3Up(), q2.RotateVector(NewVec3Right()), testTolerance)
}

func TestQuatMulComposes(t *testing.T) {
	q1 := NewQuatFromAxisAngle(NewVec3Right(), 0.7)
	q2 := NewQuatFromAxisAngle(NewVec3Up(), -1.2)
	v := NewVec3(0.3, -2, 1.5)

	want := q2.RotateVector(q1.RotateVector(v))
	assertVec3Close(t, want, q2.Mul(q1).RotateVector(v), testTolerance)

	assert.True(t, q1.Mul(NewQuatIdentity()).IsClose(q1, 0))
	assert.True(t, NewQuatIdentity().Mul(q1).IsClose(q1, 0))
}

func TestQuatHamiltonBasis(t *testing.T) {
	i := NewQuaternion(1, 0, 0, 0)
	j := NewQuaternion(0, 1, 0, 0)
	k := NewQuaternion(0, 0, 1, 0)
	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, NewQuaternion(0, 0, -1, 0), j.Mul(i))
	assert.Equal(t, NewQuaternion(0, 0, 0, -1), i.Mul(i))
}

func TestQuatConjugateInverse(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	assert.Equal(t, NewQuaternion(-1, -2, -3, 4), q.Conjugate())
	assert.True(t, q.Mul(q.Inverse()).IsIdentity(testTolerance))
	assert.True(t, q.Inverse().Mul(q).IsIdentity(testTolerance))

	u := q.Normalize()
	assert.True(t, u.Inverse().IsClose(u.Conjugate(), testTolerance))
}

func TestQuatToMat4MatchesRotateVector(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(1, 1, -0.5), 1.3)
	m := q.ToMat4()
	for _, v := range []Vec3{NewVec3Right(), NewVec3Up(), NewVec3Back(), NewVec3(2, -3, 0.25)} {
		assertVec3Close(t, q.RotateVector(v), v.Transform(m), testTolerance)
	}
	assert.InDelta(t, 1, m.Determinant(), 1e-5)
	assert.True(t, q.ToMat3().IsOrthonormal(testTolerance))
}

func TestQuatFromEulerMatchesMatrix(t *testing.T) {
	angles := [][3]float32{
		{0.3, 0, 0},
		{0, -1.1, 0},
		{0, 0, 2.0},
		{0.4, -0.9, 1.7},
	}
	for _, a := range angles {
		q := NewQuatFromEuler(a[0], a[1], a[2])
		m := NewMat4EulerXYZ(a[0], a[1], a[2])
		assert.True(t, q.ToMat4().IsClose(m, testTolerance), "angles %v", a)
	}
}

func TestQuatFromMat3RoundTrip(t *testing.T) {
	// Angles past 2pi/3 drive the trace negative and exercise every branch.
	rotations := []Quaternion{
		NewQuatIdentity(),
		NewQuatFromAxisAngle(NewVec3Right(), 3.0),
		NewQuatFromAxisAngle(NewVec3Up(), 3.0),
		NewQuatFromAxisAngle(NewVec3Back(), 3.0),
		NewQuatFromAxisAngle(NewVec3(1, 2, 3), 0.8),
		NewQuatFromAxisAngle(NewVec3(-1, 0.5, 0.2), 2.9),
	}
	for _, q := range rotations {
		assertQuatSameRotation(t, q, NewQuatFromMat3(q.ToMat3()))
	}
}

func TestQuatSlerp(t *testing.T) {
	q0 := NewQuatIdentity()
	q1 := NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI)

	assert.True(t, q0.Slerp(q1, 0).IsClose(q0, testTolerance))
	assert.True(t, q0.Slerp(q1, 1).IsClose(q1, testTolerance))

	half := q0.Slerp(q1, 0.5)
	assert.True(t, half.IsClose(NewQuatFromAxisAngle(NewVec3Back(), scalar.K_QUARTER_PI), testTolerance))
	assert.True(t, half.IsNormalized(1e-5))
}

func TestQuatSlerpTakesShorterArc(t *testing.T) {
	q0 := NewQuatFromAxisAngle(NewVec3Up(), 0.2)
	q1 := NewQuatFromAxisAngle(NewVec3Up(), 1.4)
	negated := NewQuaternion(-q1.X(), -q1.Y(), -q1.Z(), -q1.W())

	want := q0.Slerp(q1, 0.3)
	got := q0.Slerp(negated, 0.3)
	assert.True(t, want.IsClose(got, testTolerance))
	assert.True(t, got.IsClose(NewQuatFromAxisAngle(NewVec3Up(), 0.56), testTolerance))
}

func TestQuatSlerpNearlyParallel(t *testing.T) {
	q0 := NewQuatFromAxisAngle(NewVec3Right(), 0.5)
	q1 := NewQuatFromAxisAngle(NewVec3Right(), 0.5001)
	is := assert.New(t)
	is.Greater(q0.Dot(q1), SlerpDotThreshold)

	r := q0.Slerp(q1, 0.5)
	is.True(r.IsNormalized(1e-6))
	is.True(r.IsClose(q0, 1e-4))
	is.False(scalar.IsNaN(r.W()))
}

func TestQuatToAxisAngle(t *testing.T) {
	axis := NewVec3(1, -1, 2).Normalize()
	q := NewQuatFromAxisAngle(axis, 1.25)
	gotAxis, gotAngle := q.ToAxisAngle()
	assertVec3Close(t, axis, gotAxis, testTolerance)
	assert.InDelta(t, 1.25, gotAngle, 1e-5)

	_, zero := NewQuatIdentity().ToAxisAngle()
	assert.Equal(t, float32(0), zero)
}

func TestQuatToRotationMatrix(t *testing.T) {
	center := NewVec3(1, 1, 0)
	q := NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI)
	m := q.ToRotationMatrix(center)

	assertVec3Close(t, center, center.Transform(m), testTolerance)
	assertVec3Close(t, NewVec3(1, 2, 0), NewVec3(2, 1, 0).Transform(m), testTolerance)
}
