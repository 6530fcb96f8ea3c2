package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/animath/engine/math"
)

// quad returns two triangles spanning the unit square in the XY plane, with
// the shared corners duplicated.
func quad() ([]Vertex3D, []uint32) {
	v := func(x, y float32) Vertex3D {
		return Vertex3D{
			Position: math.NewVec3(x, y, 0),
			Texcoord: math.NewVec2(x, y),
			Colour:   math.NewVec4One(),
		}
	}
	vertices := []Vertex3D{
		v(0, 0), v(1, 0), v(1, 1),
		v(0, 0), v(1, 1), v(0, 1),
	}
	return vertices, []uint32{0, 1, 2, 3, 4, 5}
}

func TestGenerateNormals(t *testing.T) {
	vertices, indices := quad()
	GenerateNormals(vertices, indices)
	for i, v := range vertices {
		assert.True(t, v.Normal.IsClose(math.NewVec3(0, 0, 1), 1e-6), "vertex %d", i)
	}
}

func TestGenerateNormalsDegenerateFace(t *testing.T) {
	vertices := []Vertex3D{
		{Position: math.NewVec3(0, 0, 0)},
		{Position: math.NewVec3(1, 1, 1)},
		{Position: math.NewVec3(2, 2, 2)},
	}
	GenerateNormals(vertices, []uint32{0, 1, 2})
	assert.True(t, vertices[0].Normal.IsZero(0))
}

func TestGenerateTangents(t *testing.T) {
	vertices, indices := quad()
	GenerateTangents(vertices, indices)
	for i, v := range vertices {
		assert.True(t, v.Tangent.IsClose(math.NewVec4(1, 0, 0, 1), 1e-6), "vertex %d", i)
	}

	// Mirroring U flips the tangent and its handedness.
	for i := range vertices {
		vertices[i].Texcoord = vertices[i].Texcoord.WithX(1 - vertices[i].Texcoord.X())
	}
	GenerateTangents(vertices, indices)
	assert.True(t, vertices[0].Tangent.IsClose(math.NewVec4(-1, 0, 0, -1), 1e-6))
}

func TestGenerateTangentsDegenerateUV(t *testing.T) {
	vertices, indices := quad()
	for i := range vertices {
		vertices[i].Texcoord = math.NewVec2Zero()
	}
	GenerateTangents(vertices, indices)
	assert.True(t, vertices[0].Tangent.IsClose(math.NewVec4Zero(), 0))
}

func TestDeduplicateVertices(t *testing.T) {
	vertices, indices := quad()
	unique := DeduplicateVertices(vertices, indices)

	require.Len(t, unique, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, indices)
	assert.True(t, unique[3].Position.IsClose(math.NewVec3(0, 1, 0), 0))
}

func TestVerticesEqual(t *testing.T) {
	a := Vertex3D{Position: math.NewVec3(1, 2, 3)}
	b := a
	b.Position = b.Position.WithZ(3.0001)
	assert.False(t, VerticesEqual(a, b, 1e-6))
	assert.True(t, VerticesEqual(a, b, 1e-3))
}

func TestVertex2DFromVertex3D(t *testing.T) {
	vertices, _ := quad()
	flat := Flatten(vertices)
	require.Len(t, flat, len(vertices))
	assert.True(t, flat[2].Position.IsClose(math.NewVec2(1, 1), 0))
	assert.True(t, flat[5].Texcoord.IsClose(math.NewVec2(0, 1), 0))
}
