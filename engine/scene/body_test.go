package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/mesh"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

func TestBodyContains(t *testing.T) {
	info := bodyInfo{id: "b"}
	cylinder := &cylinderBody{bodyInfo: info, base: math.NewVec3Zero(), axis: math.NewVec3(0, 2, 0), radius: 1}
	capsule := &capsuleBody{bodyInfo: info, capsule: shapes.NewCapsule(math.NewVec3Zero(), math.NewVec3(0, 2, 0), 1)}
	plane := &planeBody{bodyInfo: info, plane: shapes.NewPlaneFromNormalAndPoint(math.NewVec3Up(), math.NewVec3Zero())}
	triangle := newTriangleBody(info, shapes.NewTriangle(math.NewVec3Zero(), math.NewVec3(2, 0, 0), math.NewVec3(0, 2, 0)))

	tests := []struct {
		name string
		body Body
		p    math.Vec3
		want bool
	}{
		{"cylinder axis", cylinder, math.NewVec3(0, 1, 0), true},
		{"cylinder rim", cylinder, math.NewVec3(1, 2, 0), true},
		{"cylinder above cap", cylinder, math.NewVec3(0, 2.5, 0), false},
		{"capsule above cap", capsule, math.NewVec3(0, 2.5, 0), true},
		{"capsule beside", capsule, math.NewVec3(1.5, 1, 0), false},
		{"plane below", plane, math.NewVec3(3, -1, 3), true},
		{"plane on", plane, math.NewVec3(3, 0, 3), true},
		{"plane above", plane, math.NewVec3(3, 0.1, 3), false},
		{"triangle on", triangle, math.NewVec3(0.5, 0.5, 0), true},
		{"triangle within tolerance", triangle, math.NewVec3(0.5, 0.5, surfaceTolerance/2), true},
		{"triangle off", triangle, math.NewVec3(0.5, 0.5, 0.1), false},
		{"triangle outside edge", triangle, math.NewVec3(1.5, 1.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.body.Contains(tt.p))
		})
	}
}

func TestBodyClosestPoint(t *testing.T) {
	info := bodyInfo{id: "b"}
	cylinder := &cylinderBody{bodyInfo: info, base: math.NewVec3Zero(), axis: math.NewVec3(0, 2, 0), radius: 1}
	plane := &planeBody{bodyInfo: info, plane: shapes.NewPlaneFromNormalAndPoint(math.NewVec3Up(), math.NewVec3Zero())}

	assert.True(t, cylinder.ClosestPoint(math.NewVec3(3, 1, 0)).IsClose(math.NewVec3(1, 1, 0), tolerance))
	assert.True(t, cylinder.ClosestPoint(math.NewVec3(0, 5, 0)).IsClose(math.NewVec3(0, 2, 0), tolerance))

	// Points inside the half space are their own closest point.
	below := math.NewVec3(1, -4, 2)
	assert.True(t, plane.ClosestPoint(below).IsClose(below, 0))
	assert.True(t, plane.ClosestPoint(math.NewVec3(1, 4, 2)).IsClose(math.NewVec3(1, 0, 2), tolerance))
	assert.True(t, plane.Bounds().Contains(math.NewVec3(1e30, 0, 0)))
}

func TestCylinderBounds(t *testing.T) {
	cylinder := &cylinderBody{base: math.NewVec3(1, 0, 0), axis: math.NewVec3(0, 2, 0), radius: 0.5}
	box := cylinder.Bounds()
	assert.True(t, box.Min().IsClose(math.NewVec3(0.5, -0.5, -0.5), tolerance))
	assert.True(t, box.Max().IsClose(math.NewVec3(1.5, 2.5, 0.5), tolerance))
}

func TestAabbBodyRaycastFromInside(t *testing.T) {
	box := newAabbBody(bodyInfo{id: "b"}, shapes.NewAabbFromMinMax(math.NewVec3Zero(), math.NewVec3One()), math.NewMat4Identity())
	tHit, hit := box.Raycast(shapes.NewRay(math.NewVec3Splat(0.5), math.NewVec3Up()))
	require.True(t, hit)
	assert.InDelta(t, 0, tHit, tolerance)
}

func TestMeshBody(t *testing.T) {
	vertices := []mesh.Vertex3D{
		{Position: math.NewVec3(0, 0, 0)},
		{Position: math.NewVec3(1, 0, 0)},
		{Position: math.NewVec3(0, 1, 0)},
		{Position: math.NewVec3(0, 0, 2)},
		{Position: math.NewVec3(1, 0, 2)},
		{Position: math.NewVec3(0, 1, 2)},
		// Degenerate face, skipped.
		{Position: math.NewVec3(5, 5, 5)},
	}
	body := newMeshBody(bodyInfo{id: "m", kind: KindMesh}, vertices, []uint32{0, 1, 2, 3, 4, 5, 6, 6, 6})
	require.Len(t, body.triangles, 2)

	assert.True(t, body.Contains(math.NewVec3(0.25, 0.25, 2)))
	assert.False(t, body.Contains(math.NewVec3(0.25, 0.25, 1)))

	// The nearer of the two faces wins.
	assert.True(t, body.ClosestPoint(math.NewVec3(0.25, 0.25, 1.5)).IsClose(math.NewVec3(0.25, 0.25, 2), tolerance))

	tHit, hit := body.Raycast(shapes.NewRay(math.NewVec3(0.25, 0.25, 5), math.NewVec3(0, 0, -1)))
	require.True(t, hit)
	assert.InDelta(t, 3, tHit, tolerance)

	_, hit = body.Raycast(shapes.NewRay(math.NewVec3(3, 3, 5), math.NewVec3(0, 0, -1)))
	assert.False(t, hit)

	assert.True(t, body.Bounds().Max().IsClose(math.NewVec3(5, 5, 5), 0))

	empty := newMeshBody(bodyInfo{id: "e"}, nil, nil)
	p := math.NewVec3(1, 2, 3)
	assert.True(t, empty.ClosestPoint(p).IsClose(p, 0))
	assert.False(t, empty.Contains(p))
}

func TestRotatedAabbKeepsItsShape(t *testing.T) {
	s, err := Decode([]byte(`
shapes:
  - id: turned
    kind: aabb
    min: [-1, -1, -1]
    max: [1, 1, 1]
    transform: {rotate: [0, 0, 45]}
`), FormatYAML)
	require.NoError(t, err)
	w, err := s.Compile()
	require.NoError(t, err)
	body, ok := w.Body("turned")
	require.True(t, ok)

	sqrt2 := scalar.K_SQRT_TWO
	tests := []struct {
		name string
		p    math.Vec3
		want bool
	}{
		{"center", math.NewVec3Zero(), true},
		{"along a diagonal of the box", math.NewVec3(1.3, 0, 0), true},
		{"beyond a rotated face", math.NewVec3(1.2, 1.2, 0), false},
		{"old corner", math.NewVec3(0.95, 0.95, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, body.Contains(tt.p))
		})
	}

	inside := math.NewVec3(0.5, 0, 0.5)
	assert.True(t, body.ClosestPoint(inside).IsClose(inside, 0))
	assert.True(t, body.ClosestPoint(math.NewVec3(3, 0, 0)).IsClose(math.NewVec3(sqrt2, 0, 0), tolerance))
	assert.InDelta(t, 1.697056-1, body.ClosestPoint(math.NewVec3(1.2, 1.2, 0)).Distance(math.NewVec3(1.2, 1.2, 0)), tolerance)

	tHit, hit := body.(Raycaster).Raycast(shapes.NewRay(math.NewVec3(-5, 0.2, 0), math.NewVec3(1, 0, 0)))
	require.True(t, hit)
	assert.InDelta(t, 5-sqrt2+0.2, tHit, tolerance)

	bounds := body.Bounds()
	assert.True(t, bounds.Max().IsClose(math.NewVec3(sqrt2, sqrt2, 1), tolerance))
	assert.True(t, bounds.Min().IsClose(math.NewVec3(-sqrt2, -sqrt2, -1), tolerance))
}
