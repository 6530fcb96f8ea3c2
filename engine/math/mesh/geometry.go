// Package mesh holds indexed triangle geometry helpers: per-face normals,
// tangents and vertex deduplication.
package mesh

import (
	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/scalar"
)

type Vertex3D struct {
	Position math.Vec3
	Normal   math.Vec3
	Texcoord math.Vec2
	Colour   math.Vec4
	// Tangent xyz is the tangent direction, w the bitangent sign (+1 or -1).
	Tangent math.Vec4
}

type Vertex2D struct {
	Position math.Vec2
	Texcoord math.Vec2
}

// GenerateNormals writes the face normal of every indexed triangle into its
// three vertices. Vertices shared between faces keep the last face written.
func GenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := edge1.Cross(edge2).NormalizeSafe(scalar.K_FLOAT_EPSILON)
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GenerateTangents derives a tangent per face from positions and texture
// coordinates. Faces with a degenerate UV mapping get a zero tangent.
func GenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		duv1 := vertices[i1].Texcoord.Sub(vertices[i0].Texcoord)
		duv2 := vertices[i2].Texcoord.Sub(vertices[i0].Texcoord)

		dividend := duv1.PerpDot(duv2)
		var tangent math.Vec4
		if scalar.Fabs(dividend) > scalar.K_FLOAT_EPSILON {
			fc := 1.0 / dividend
			t := edge1.MulScalar(duv2.Y()).Sub(edge2.MulScalar(duv1.Y())).MulScalar(fc)

			handedness := float32(1.0)
			if dividend < 0 {
				handedness = -1.0
			}
			tangent = math.NewVec4FromVec3(t.NormalizeSafe(scalar.K_FLOAT_EPSILON), handedness)
		}

		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
}

func VerticesEqual(a, b Vertex3D, tolerance float32) bool {
	return a.Position.IsClose(b.Position, tolerance) &&
		a.Normal.IsClose(b.Normal, tolerance) &&
		a.Texcoord.IsClose(b.Texcoord, tolerance) &&
		a.Colour.IsClose(b.Colour, tolerance) &&
		a.Tangent.IsClose(b.Tangent, tolerance)
}

// DeduplicateVertices merges vertices equal within K_FLOAT_EPSILON and
// rewrites indices in place to point at the merged set. The first occurrence
// of each vertex wins and keeps its relative order.
func DeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	remap := make([]uint32, len(vertices))

	for v := range vertices {
		found := false
		for u := range unique {
			if VerticesEqual(vertices[v], unique[u], scalar.K_FLOAT_EPSILON) {
				remap[v] = uint32(u)
				found = true
				break
			}
		}
		if !found {
			remap[v] = uint32(len(unique))
			unique = append(unique, vertices[v])
		}
	}

	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("deduplicate vertices: removed %d vertices, orig/now %d/%d", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}

// Flatten drops the Z coordinate of every vertex position, keeping texture
// coordinates.
func Flatten(vertices []Vertex3D) []Vertex2D {
	out := make([]Vertex2D, len(vertices))
	for i, v := range vertices {
		out[i] = Vertex2D{
			Position: math.NewVec2(v.Position.X(), v.Position.Y()),
			Texcoord: v.Texcoord,
		}
	}
	return out
}
