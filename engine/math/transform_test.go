package math

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/animath/engine/math/scalar"
)

func TestTransformDirtyFlag(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.IsDirty())
	assert.Equal(t, NewMat4Identity(), tr.Local())
	assert.False(t, tr.IsDirty())

	tr.SetPosition(NewVec3(1, 2, 3))
	assert.True(t, tr.IsDirty())
	assert.Equal(t, NewVec3(1, 2, 3), tr.Local().Translation())
	assert.False(t, tr.IsDirty())
}

func TestTransformLocalIsScaleRotateTranslate(t *testing.T) {
	rotation := NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI)
	tr := NewTransformFromPositionRotationScale(NewVec3(10, 0, 0), rotation, NewVec3(2, 2, 2))

	// (1,0,0) scaled to (2,0,0), rotated to (0,2,0), moved to (10,2,0).
	assertVec3Close(t, NewVec3(10, 2, 0), NewVec3Right().Transform(tr.Local()), testTolerance)
}

func TestTransformMutators(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(1, 0, 0))
	tr.Translate(NewVec3(0, 1, 0))
	assert.Equal(t, NewVec3(1, 1, 0), tr.Position())

	tr.ScaleBy(NewVec3(2, 3, 4))
	tr.ScaleBy(NewVec3(2, 1, 0.5))
	assert.Equal(t, NewVec3(4, 3, 2), tr.Scale())

	q := NewQuatFromAxisAngle(NewVec3Up(), 0.5)
	tr.Rotate(q)
	tr.Rotate(q)
	assert.True(t, tr.Rotation().IsClose(NewQuatFromAxisAngle(NewVec3Up(), 1.0), testTolerance))

	tr.TranslateRotate(NewVec3(0, 0, 1), q.Inverse())
	assert.Equal(t, NewVec3(1, 1, 1), tr.Position())
	assert.True(t, tr.Rotation().IsClose(q, testTolerance))

	tr.SetPositionRotation(NewVec3Zero(), NewQuatIdentity())
	tr.SetScale(NewVec3One())
	assert.Equal(t, NewMat4Identity(), tr.Local())
}

func TestTransformWorldFollowsParent(t *testing.T) {
	parent := NewTransformFromPositionRotation(NewVec3(0, 5, 0), NewQuatFromAxisAngle(NewVec3Back(), scalar.K_HALF_PI))
	child := NewTransformFromPosition(NewVec3(1, 0, 0))
	child.SetParent(parent)
	assert.Same(t, parent, child.Parent())

	assertVec3Close(t, NewVec3(0, 6, 0), NewVec3Zero().Transform(child.World()), testTolerance)

	parent.Translate(NewVec3(1, 0, 0))
	assertVec3Close(t, NewVec3(1, 6, 0), NewVec3Zero().Transform(child.World()), testTolerance)

	child.SetParent(nil)
	assert.Equal(t, child.Local(), child.World())
}

func TestTransformNilIsIdentity(t *testing.T) {
	var tr *Transform
	assert.Equal(t, NewMat4Identity(), tr.Local())
	assert.Equal(t, NewMat4Identity(), tr.World())
}
