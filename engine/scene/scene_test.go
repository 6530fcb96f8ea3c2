package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/animath/engine/core"
	"github.com/spaghettifunk/animath/engine/math"
)

const tolerance = 1e-4

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"dir/b.YAML", FormatYAML},
		{"c.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("scene.json")
	assert.ErrorIs(t, err, core.ErrUnsupportedSceneFormat)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join("testdata", "basic.toml")
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, path, s.Path())
	require.Len(t, s.Shapes, 9)
	assert.Equal(t, KindMesh, s.Shapes[6].Kind)
	assert.Len(t, s.Shapes[6].Indices, 6)

	moon := s.Shapes[8]
	require.NotNil(t, moon.Transform)
	assert.Equal(t, "pivot", moon.Transform.Parent)

	require.Len(t, s.Queries, 5)
	assert.Equal(t, "#4", s.Queries[4].Name)
	assert.Nil(t, s.Queries[0].Direction)
	assert.Equal(t, []string{"ball"}, s.Queries[2].Targets)

	require.Len(t, s.Estimates, 2)
	assert.Equal(t, uint64(7), s.Estimates[0].Seed)
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic-yaml", s.Name)
	require.Len(t, s.Shapes, 3)
	// Missing ids are generated.
	assert.NotEmpty(t, s.Shapes[1].ID)
	assert.NotEqual(t, s.Shapes[0].ID, s.Shapes[1].ID)
	assert.Equal(t, []float32{90, 0, 0}, s.Shapes[2].Transform.Rotate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "broken.toml"))
	assert.ErrorIs(t, err, core.ErrInvalidShape)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Shapes)

	s, err = Decode([]byte(""), FormatTOML)
	require.NoError(t, err)
	assert.Empty(t, s.Queries)

	_, err = Decode(nil, Format("ini"))
	assert.ErrorIs(t, err, core.ErrUnsupportedSceneFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown kind",
			doc:  "shapes:\n  - {id: a, kind: cone}\n",
			want: core.ErrUnknownShape,
		},
		{
			name: "duplicate id",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: 1}\n  - {id: a, kind: sphere, center: [1, 0, 0], radius: 1}\n",
			want: core.ErrDuplicateShapeID,
		},
		{
			name: "negative radius",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: -1}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "inverted box",
			doc:  "shapes:\n  - {id: a, kind: aabb, min: [1, 0, 0], max: [0, 1, 1]}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "zero cylinder axis",
			doc:  "shapes:\n  - {id: a, kind: cylinder, first: [1, 1, 1], second: [1, 1, 1], radius: 1}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "degenerate triangle",
			doc:  "shapes:\n  - {id: a, kind: triangle, vertices: [[0, 0, 0], [1, 1, 1], [2, 2, 2]]}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "zero plane normal",
			doc:  "shapes:\n  - {id: a, kind: plane, normal: [0, 0, 0], point: [0, 0, 0]}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "mesh index out of range",
			doc:  "shapes:\n  - {id: a, kind: mesh, vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]], indices: [0, 1, 3]}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "mesh index count",
			doc:  "shapes:\n  - {id: a, kind: mesh, vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]], indices: [0, 1]}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "bad translate",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: 1, transform: {translate: [1, 2]}}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "unknown parent",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: 1, transform: {parent: b}}\n",
			want: core.ErrUnknownShape,
		},
		{
			name: "parent cycle",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: 1, transform: {parent: b}}\n  - {id: b, kind: sphere, center: [0, 0, 0], radius: 1, transform: {parent: a}}\n",
			want: core.ErrInvalidShape,
		},
		{
			name: "short query point",
			doc:  "queries:\n  - {name: q, point: [0, 0]}\n",
			want: core.ErrInvalidQuery,
		},
		{
			name: "short query direction",
			doc:  "queries:\n  - {name: q, point: [0, 0, 0], direction: [1]}\n",
			want: core.ErrInvalidQuery,
		},
		{
			name: "unknown target",
			doc:  "queries:\n  - {name: q, point: [0, 0, 0], targets: [nope]}\n",
			want: core.ErrUnknownShape,
		},
		{
			name: "estimate of unknown shape",
			doc:  "estimates:\n  - {shape: nope, samples: 10}\n",
			want: core.ErrUnknownShape,
		},
		{
			name: "estimate without samples",
			doc:  "shapes:\n  - {id: a, kind: sphere, center: [0, 0, 0], radius: 1}\nestimates:\n  - {shape: a, samples: 0}\n",
			want: core.ErrInvalidQuery,
		},
		{
			name: "estimate of a plane",
			doc:  "shapes:\n  - {id: a, kind: plane, normal: [0, 1, 0], point: [0, 0, 0]}\nestimates:\n  - {shape: a, samples: 10}\n",
			want: core.ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), FormatYAML)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte("shapes:\n  - {id: a, kind: sphere, centre: [0, 0, 0]}\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("name = \"x\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	for _, format := range []Format{FormatTOML, FormatYAML} {
		data, err := s.Encode(format)
		require.NoError(t, err)

		back, err := Decode(data, format)
		require.NoError(t, err, string(data))
		assert.Equal(t, s.Name, back.Name)
		require.Len(t, back.Shapes, len(s.Shapes))
		for i := range s.Shapes {
			// Generated ids survive the trip.
			assert.Equal(t, s.Shapes[i].ID, back.Shapes[i].ID)
		}
		assert.Equal(t, s.Queries, back.Queries)
	}

	_, err = s.Encode(Format("ini"))
	assert.ErrorIs(t, err, core.ErrUnsupportedSceneFormat)
}

func TestCompilePlacesShapes(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.toml"))
	require.NoError(t, err)

	w, err := s.Compile()
	require.NoError(t, err)
	require.Len(t, w.Bodies(), len(s.Shapes))

	pivot, ok := w.Body("pivot")
	require.True(t, ok)
	assert.True(t, pivot.(*sphereBody).sphere.Center().IsClose(math.NewVec3(0, 0, 20), tolerance))

	// The parent's rotation turns the child's offset from +x to +y.
	moon, ok := w.Body("moon")
	require.True(t, ok)
	assert.True(t, moon.(*sphereBody).sphere.Center().IsClose(math.NewVec3(0, 3, 20), tolerance))
	assert.InDelta(t, 0.5, moon.(*sphereBody).sphere.Radius(), tolerance)

	quad, ok := w.Body("quad")
	require.True(t, ok)
	assert.Len(t, quad.(*meshBody).triangles, 2)
	assert.True(t, quad.Bounds().Min().IsClose(math.NewVec3(0, 0, -5), 0))
	assert.True(t, quad.Bounds().Max().IsClose(math.NewVec3(1, 1, -5), 0))

	_, ok = w.Body("nope")
	assert.False(t, ok)

	bodies, err := w.Targets(nil)
	require.NoError(t, err)
	assert.Len(t, bodies, 9)
	_, err = w.Targets([]string{"box", "nope"})
	assert.ErrorIs(t, err, core.ErrUnknownShape)
}

func TestCompileRotatedCapsule(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	w, err := s.Compile()
	require.NoError(t, err)

	body, ok := w.Body("slanted")
	require.True(t, ok)
	capsule := body.(*capsuleBody).capsule

	// A quarter turn about x takes up to back.
	offset := math.NewVec3(0, 0, 10)
	assert.True(t, capsule.FirstHemisphereCenter().IsClose(offset, tolerance))
	assert.True(t, capsule.SecondHemisphereCenter().IsClose(math.NewVec3Back().MulScalar(2).Add(offset), tolerance))
}

func TestWorldBounds(t *testing.T) {
	s, err := Decode([]byte(`
shapes:
  - {id: a, kind: aabb, min: [0, 0, 0], max: [1, 1, 1]}
  - {id: b, kind: sphere, center: [5, 5, 5], radius: 1}
`), FormatYAML)
	require.NoError(t, err)

	w, err := s.Compile()
	require.NoError(t, err)
	box := w.Bounds()
	assert.True(t, box.Min().IsClose(math.NewVec3Zero(), 0))
	assert.True(t, box.Max().IsClose(math.NewVec3(6, 6, 6), 0))

	empty, err := (&Scene{}).Compile()
	require.NoError(t, err)
	assert.False(t, empty.Bounds().IsValid())
}
