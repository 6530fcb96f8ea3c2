package scene

import (
	"fmt"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
	"github.com/spaghettifunk/animath/engine/math/mesh"
	"github.com/spaghettifunk/animath/engine/math/scalar"
	"github.com/spaghettifunk/animath/engine/math/shapes"
)

// World holds the bodies of a compiled scene in file order.
type World struct {
	bodies []Body
	byID   map[string]Body
}

func (w *World) Bodies() []Body { return w.bodies }

func (w *World) Body(id string) (Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Bounds is the union of every body's bounds, or the null box when empty.
func (w *World) Bounds() shapes.Aabb {
	box := shapes.NewAabbNull()
	for _, b := range w.bodies {
		box = box.AddAabb(b.Bounds())
	}
	return box
}

// Targets resolves a query's target list. Empty means every body.
func (w *World) Targets(ids []string) ([]Body, error) {
	if len(ids) == 0 {
		return w.bodies, nil
	}
	out := make([]Body, 0, len(ids))
	for _, id := range ids {
		b, ok := w.byID[id]
		if !ok {
			return nil, fmt.Errorf("target %q: %w", id, core.ErrUnknownShape)
		}
		out = append(out, b)
	}
	return out, nil
}

func vecOf(v []float32) math.Vec3 {
	return math.NewVec3FromSlice(v)
}

func triangleOf(a, b, c []float32) shapes.Triangle {
	return shapes.NewTriangle(vecOf(a), vecOf(b), vecOf(c))
}

/**
 * @brief Places every shape in world space. The scene must have been
 * validated, which Load and Decode do.
 */
func (s *Scene) Compile() (*World, error) {
	transforms := s.transforms()

	w := &World{byID: make(map[string]Body, len(s.Shapes))}
	for _, shape := range s.Shapes {
		m := math.NewMat4Identity()
		if t, ok := transforms[shape.ID]; ok {
			m = t.World()
		}
		body, err := shape.place(m)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", shape.ID, err)
		}
		w.bodies = append(w.bodies, body)
		w.byID[shape.ID] = body
	}
	return w, nil
}

// transforms builds the transform of every shape that declares one and links
// parents.
func (s *Scene) transforms() map[string]*math.Transform {
	out := make(map[string]*math.Transform)
	for _, shape := range s.Shapes {
		if shape.Transform == nil {
			continue
		}
		t := math.NewTransform()
		if shape.Transform.Translate != nil {
			t.SetPosition(vecOf(shape.Transform.Translate))
		}
		if r := shape.Transform.Rotate; r != nil {
			t.SetRotation(math.NewQuatFromEuler(scalar.DegToRad(r[0]), scalar.DegToRad(r[1]), scalar.DegToRad(r[2])))
		}
		out[shape.ID] = t
	}
	for _, shape := range s.Shapes {
		if shape.Transform == nil || shape.Transform.Parent == "" {
			continue
		}
		parent, ok := out[shape.Transform.Parent]
		if !ok {
			// A parent without a transform of its own sits at the origin.
			continue
		}
		out[shape.ID].SetParent(parent)
	}
	return out
}

func (shape Shape) place(m math.Mat4) (Body, error) {
	info := bodyInfo{id: shape.ID, kind: shape.Kind}
	point := func(v []float32) math.Vec3 { return vecOf(v).Transform(m) }

	switch shape.Kind {
	case KindAabb:
		return newAabbBody(info, shapes.NewAabbFromMinMax(vecOf(shape.Min), vecOf(shape.Max)), m), nil
	case KindSphere:
		return &sphereBody{bodyInfo: info, sphere: shapes.NewSphere(point(shape.Center), shape.Radius)}, nil
	case KindCapsule:
		return &capsuleBody{bodyInfo: info, capsule: shapes.NewCapsule(point(shape.First), point(shape.Second), shape.Radius)}, nil
	case KindCylinder:
		base := point(shape.First)
		return &cylinderBody{bodyInfo: info, base: base, axis: point(shape.Second).Sub(base), radius: shape.Radius}, nil
	case KindTriangle:
		v := shape.Vertices
		return newTriangleBody(info, shapes.NewTriangle(point(v[0]), point(v[1]), point(v[2]))), nil
	case KindPlane:
		normal := vecOf(shape.Normal).TransformDirection(m)
		return &planeBody{bodyInfo: info, plane: shapes.NewPlaneFromNormalAndPoint(normal, point(shape.Point))}, nil
	case KindMesh:
		vertices := make([]mesh.Vertex3D, len(shape.Vertices))
		for i, v := range shape.Vertices {
			vertices[i] = mesh.Vertex3D{Position: point(v)}
		}
		indices := append([]uint32(nil), shape.Indices...)
		vertices = mesh.DeduplicateVertices(vertices, indices)
		return newMeshBody(info, vertices, indices), nil
	default:
		return nil, fmt.Errorf("kind %q: %w", shape.Kind, core.ErrUnknownShape)
	}
}
