// Package scene loads shape scenes from TOML or YAML files and evaluates
// their point queries on a pool of workers.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/animath/engine/core"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Shape kinds understood by the loader.
const (
	KindAabb     = "aabb"
	KindSphere   = "sphere"
	KindCapsule  = "capsule"
	KindCylinder = "cylinder"
	KindTriangle = "triangle"
	KindPlane    = "plane"
	KindMesh     = "mesh"
)

// Scene is the file model. Vectors are three element lists.
type Scene struct {
	Name      string     `toml:"name" yaml:"name"`
	Shapes    []Shape    `toml:"shapes" yaml:"shapes"`
	Queries   []Query    `toml:"queries" yaml:"queries"`
	Estimates []Estimate `toml:"estimates,omitempty" yaml:"estimates,omitempty"`

	path string
}

/**
 * @brief One shape. Which fields are read depends on Kind:
 * aabb: Min, Max. sphere: Center, Radius. capsule: First, Second, Radius.
 * cylinder: First (base center), Second (top center), Radius.
 * triangle: Vertices (three). plane: Normal, Point. mesh: Vertices, Indices.
 */
type Shape struct {
	ID   string `toml:"id" yaml:"id"`
	Kind string `toml:"kind" yaml:"kind"`

	Min      []float32   `toml:"min,omitempty" yaml:"min,omitempty"`
	Max      []float32   `toml:"max,omitempty" yaml:"max,omitempty"`
	Center   []float32   `toml:"center,omitempty" yaml:"center,omitempty"`
	Radius   float32     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	First    []float32   `toml:"first,omitempty" yaml:"first,omitempty"`
	Second   []float32   `toml:"second,omitempty" yaml:"second,omitempty"`
	Normal   []float32   `toml:"normal,omitempty" yaml:"normal,omitempty"`
	Point    []float32   `toml:"point,omitempty" yaml:"point,omitempty"`
	Vertices [][]float32 `toml:"vertices,omitempty" yaml:"vertices,omitempty"`
	Indices  []uint32    `toml:"indices,omitempty" yaml:"indices,omitempty"`

	Transform *ShapeTransform `toml:"transform,omitempty" yaml:"transform,omitempty"`
}

// ShapeTransform places a shape rigidly. Rotation is XYZ Euler angles in
// degrees. A parent shape's transform is applied after this one.
type ShapeTransform struct {
	Translate []float32 `toml:"translate,omitempty" yaml:"translate,omitempty"`
	Rotate    []float32 `toml:"rotate,omitempty" yaml:"rotate,omitempty"`
	Parent    string    `toml:"parent,omitempty" yaml:"parent,omitempty"`
}

// Query asks, for every target shape, whether Point is inside and where the
// closest point is. With a Direction it also casts a ray from Point.
type Query struct {
	Name      string    `toml:"name" yaml:"name"`
	Point     []float32 `toml:"point" yaml:"point"`
	Direction []float32 `toml:"direction,omitempty" yaml:"direction,omitempty"`
	// Targets lists shape ids. Empty means every shape.
	Targets []string `toml:"targets,omitempty" yaml:"targets,omitempty"`
}

// Estimate asks for a Monte Carlo volume estimate of one shape.
type Estimate struct {
	Shape   string `toml:"shape" yaml:"shape"`
	Samples int    `toml:"samples" yaml:"samples"`
	Seed    uint64 `toml:"seed" yaml:"seed"`
}

// Path is the file the scene was loaded from, if any.
func (s *Scene) Path() string { return s.path }

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, core.ErrUnsupportedSceneFormat)
	}
}

// Load reads, decodes and validates a scene file.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	core.LogDebug("loaded scene %q from %s: %d shapes, %d queries", s.Name, path, len(s.Shapes), len(s.Queries))
	return s, nil
}

// Decode parses and validates a scene. Unknown fields are rejected.
func Decode(data []byte, format Format) (*Scene, error) {
	s := &Scene{}
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to an empty scene.
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, core.ErrUnsupportedSceneFormat)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes the scene back out, ids included.
func (s *Scene) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(s)
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("format %q: %w", format, core.ErrUnsupportedSceneFormat)
	}
}

/**
 * @brief Checks the scene and fills in missing shape ids with random UUIDs.
 * Errors wrap ErrUnknownShape, ErrInvalidShape, ErrDuplicateShapeID or
 * ErrInvalidQuery.
 */
func (s *Scene) Validate() error {
	ids := make(map[string]*Shape, len(s.Shapes))
	for i := range s.Shapes {
		shape := &s.Shapes[i]
		if shape.ID == "" {
			shape.ID = uuid.NewString()
		}
		if _, ok := ids[shape.ID]; ok {
			return fmt.Errorf("shape %q: %w", shape.ID, core.ErrDuplicateShapeID)
		}
		ids[shape.ID] = shape

		if err := shape.validate(); err != nil {
			return fmt.Errorf("shape %q: %w", shape.ID, err)
		}
	}

	for _, shape := range s.Shapes {
		if err := checkParents(shape, ids); err != nil {
			return fmt.Errorf("shape %q: %w", shape.ID, err)
		}
	}

	for i, q := range s.Queries {
		name := q.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			s.Queries[i].Name = name
		}
		if len(q.Point) != 3 {
			return fmt.Errorf("query %q: point needs 3 components: %w", name, core.ErrInvalidQuery)
		}
		if q.Direction != nil && len(q.Direction) != 3 {
			return fmt.Errorf("query %q: direction needs 3 components: %w", name, core.ErrInvalidQuery)
		}
		for _, target := range q.Targets {
			if _, ok := ids[target]; !ok {
				return fmt.Errorf("query %q: target %q: %w", name, target, core.ErrUnknownShape)
			}
		}
	}

	for _, e := range s.Estimates {
		shape, ok := ids[e.Shape]
		if !ok {
			return fmt.Errorf("estimate: shape %q: %w", e.Shape, core.ErrUnknownShape)
		}
		if e.Samples <= 0 {
			return fmt.Errorf("estimate %q: samples must be positive: %w", e.Shape, core.ErrInvalidQuery)
		}
		if shape.Kind == KindPlane {
			return fmt.Errorf("estimate %q: a plane has no finite volume: %w", e.Shape, core.ErrInvalidQuery)
		}
	}
	return nil
}

func checkParents(shape Shape, ids map[string]*Shape) error {
	seen := map[string]bool{shape.ID: true}
	for t := shape.Transform; t != nil && t.Parent != ""; {
		parent, ok := ids[t.Parent]
		if !ok {
			return fmt.Errorf("parent %q: %w", t.Parent, core.ErrUnknownShape)
		}
		if seen[parent.ID] {
			return fmt.Errorf("parent cycle through %q: %w", parent.ID, core.ErrInvalidShape)
		}
		seen[parent.ID] = true
		t = parent.Transform
	}
	return nil
}

func (shape *Shape) validate() error {
	need := func(name string, v []float32) error {
		if len(v) != 3 {
			return fmt.Errorf("%s needs 3 components, got %d: %w", name, len(v), core.ErrInvalidShape)
		}
		return nil
	}
	radius := func() error {
		if shape.Radius < 0 {
			return fmt.Errorf("negative radius %v: %w", shape.Radius, core.ErrInvalidShape)
		}
		return nil
	}

	if t := shape.Transform; t != nil {
		if t.Translate != nil {
			if err := need("transform.translate", t.Translate); err != nil {
				return err
			}
		}
		if t.Rotate != nil {
			if err := need("transform.rotate", t.Rotate); err != nil {
				return err
			}
		}
	}

	switch shape.Kind {
	case KindAabb:
		if err := errors.Join(need("min", shape.Min), need("max", shape.Max)); err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			if shape.Min[i] > shape.Max[i] {
				return fmt.Errorf("min %v exceeds max %v: %w", shape.Min, shape.Max, core.ErrInvalidShape)
			}
		}
		return nil
	case KindSphere:
		return errors.Join(need("center", shape.Center), radius())
	case KindCapsule, KindCylinder:
		if err := errors.Join(need("first", shape.First), need("second", shape.Second), radius()); err != nil {
			return err
		}
		if shape.Kind == KindCylinder && vecOf(shape.First).IsClose(vecOf(shape.Second), 0) {
			return fmt.Errorf("cylinder axis has zero length: %w", core.ErrInvalidShape)
		}
		return nil
	case KindTriangle:
		if len(shape.Vertices) != 3 {
			return fmt.Errorf("triangle needs 3 vertices, got %d: %w", len(shape.Vertices), core.ErrInvalidShape)
		}
		for i, v := range shape.Vertices {
			if err := need(fmt.Sprintf("vertices[%d]", i), v); err != nil {
				return err
			}
		}
		if triangleOf(shape.Vertices[0], shape.Vertices[1], shape.Vertices[2]).IsDegenerate() {
			return fmt.Errorf("triangle has zero area: %w", core.ErrInvalidShape)
		}
		return nil
	case KindPlane:
		if err := errors.Join(need("normal", shape.Normal), need("point", shape.Point)); err != nil {
			return err
		}
		if vecOf(shape.Normal).IsZero(0) {
			return fmt.Errorf("plane normal is zero: %w", core.ErrInvalidShape)
		}
		return nil
	case KindMesh:
		if len(shape.Indices) == 0 || len(shape.Indices)%3 != 0 {
			return fmt.Errorf("mesh needs a multiple of 3 indices, got %d: %w", len(shape.Indices), core.ErrInvalidShape)
		}
		for i, v := range shape.Vertices {
			if err := need(fmt.Sprintf("vertices[%d]", i), v); err != nil {
				return err
			}
		}
		for _, idx := range shape.Indices {
			if int(idx) >= len(shape.Vertices) {
				return fmt.Errorf("index %d out of range for %d vertices: %w", idx, len(shape.Vertices), core.ErrInvalidShape)
			}
		}
		return nil
	default:
		return fmt.Errorf("kind %q: %w", shape.Kind, core.ErrUnknownShape)
	}
}
