// SPDX-License-Identifier: MIT

package chamber_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weylchamber/chamber"
	"github.com/katalvlaran/weylchamber/coordinates"
)

func TestVerticesAreInChamber(t *testing.T) {
	for _, name := range chamber.VertexNames() {
		p, ok := chamber.Vertex(name)
		require.True(t, ok, name)
		assert.True(t, coordinates.PointInWeylChamber(p.Coords()), name)
	}
	_, ok := chamber.Vertex("Z")
	assert.False(t, ok)
}

func TestVertexAccessorsReturnCopies(t *testing.T) {
	a := chamber.L()
	a[0] = 42
	assert.Equal(t, chamber.Point{0.5, 0, 0}, chamber.L())
}

func TestEdgesReferenceKnownVertices(t *testing.T) {
	for _, e := range append(chamber.WeylEdges(), chamber.PEEdges()...) {
		_, ok := chamber.Vertex(e.From)
		assert.True(t, ok, e.From)
		_, ok = chamber.Vertex(e.To)
		assert.True(t, ok, e.To)
	}
	assert.Len(t, chamber.WeylEdges(), 6)
	assert.Len(t, chamber.PEEdges(), 9)
}

func TestFacesContainPEVertices(t *testing.T) {
	cases := []struct {
		region coordinates.Region
		onFace []string
	}{
		{coordinates.RegionW0, []string{"L", "P", "Q"}},
		{coordinates.RegionW0Star, []string{"L", "N", "M"}},
		{coordinates.RegionW1, []string{"A2", "N", "P"}},
	}
	for _, tc := range cases {
		f, err := chamber.FaceOf(tc.region)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, f.Normal.Dot(f.Normal), 1e-15)
		for _, name := range tc.onFace {
			p, _ := chamber.Vertex(name)
			assert.InDelta(t, 0, f.SignedDistance(p), 1e-15, "%s on %s", name, tc.region)
		}
	}
}

func TestFaceNormalsPointOutOfPE(t *testing.T) {
	// (0.5, 0.25, 0.125) is interior to the PE polyhedron.
	inside := chamber.Point{0.5, 0.25, 0.125}
	for _, r := range []coordinates.Region{coordinates.RegionW0, coordinates.RegionW0Star, coordinates.RegionW1} {
		f, err := chamber.FaceOf(r)
		require.NoError(t, err)
		assert.Less(t, f.SignedDistance(inside), 0.0, string(r))
	}
}

func TestProjectLandsOnFace(t *testing.T) {
	f, err := chamber.FaceOf(coordinates.RegionW1)
	require.NoError(t, err)
	got := f.Project(chamber.Point{0.5, 0.5, 0.25})
	assert.InDelta(t, 0.5, got[0], 1e-15)
	assert.InDelta(t, 0.375, got[1], 1e-15)
	assert.InDelta(t, 0.125, got[2], 1e-15)
	assert.InDelta(t, 0, f.SignedDistance(got), 1e-15)
}

func TestFaceOfUnknownRegion(t *testing.T) {
	_, err := chamber.FaceOf(coordinates.RegionPE)
	require.ErrorIs(t, err, chamber.ErrNoFace)
}

func TestDefaultRenderer(t *testing.T) {
	r := chamber.DefaultRenderer()
	assert.Equal(t, -50.0, r.Azim)
	assert.Equal(t, 20.0, r.Elev)
	assert.Equal(t, 300, r.DPI)
	w, h := r.FigSize()
	assert.InDelta(t, 8.5*0.39370079, w, 1e-12)
	assert.InDelta(t, 6.0*0.39370079, h, 1e-12)
	pos := r.AxesPosition()
	assert.InDelta(t, 8.2/8.5, pos[2], 1e-12)
	assert.InDelta(t, 1.0, pos[3], 1e-12)
	assert.Equal(t, "--", r.WeylEdgeBG["linestyle"])
	assert.InDelta(t, 0.97, r.Labels["A_1"][0], 1e-12)
}

func TestScatterAndAddPoint(t *testing.T) {
	r := chamber.DefaultRenderer()
	require.NoError(t, r.Scatter([]float64{0.5}, []float64{0}, []float64{0}, chamber.Style{"c": "red"}))
	r.AddPoint(0.25, 0.25, 0, 0, chamber.Style{"marker": "x"})
	r.AddPoint(0.5, 0.5, 0.5, 7, chamber.Style{"c": "blue"})
	require.Equal(t, 2, r.ScatterSets())

	s := r.Scene()
	assert.Equal(t, []float64{0.5, 0.25}, s.Scatter[0].C1)
	assert.Equal(t, "red", s.Scatter[0].Style["c"])
	assert.Equal(t, "x", s.Scatter[0].Style["marker"])
	assert.Equal(t, []float64{0.5}, s.Scatter[1].C3)

	err := r.Scatter([]float64{1, 2}, []float64{1}, []float64{1}, nil)
	require.ErrorIs(t, err, chamber.ErrLengthMismatch)
}

func TestSceneIsSnapshot(t *testing.T) {
	r := chamber.DefaultRenderer()
	r.AddPoint(0.5, 0, 0, 0, nil)
	s := r.Scene()
	r.AddPoint(0.6, 0, 0, 0, nil)
	assert.Len(t, s.Scatter[0].C1, 1)
	require.Len(t, s.WeylLines, 6)
	assert.Equal(t, chamber.A1(), s.WeylLines[0].To)
	assert.Equal(t, "-", s.WeylLines[0].Style["linestyle"])
	assert.Equal(t, "--", s.WeylLines[5].Style["linestyle"])
}

func TestWriteYAML(t *testing.T) {
	r := chamber.DefaultRenderer()
	r.AddPoint(0.5, 0, 0, 0, chamber.Style{"c": "red"})
	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	renderer, ok := decoded["renderer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 300, renderer["dpi"])
	assert.Equal(t, "None", renderer["facecolor"])
	scatter, ok := decoded["scatter"].([]any)
	require.True(t, ok)
	assert.Len(t, scatter, 1)
}
