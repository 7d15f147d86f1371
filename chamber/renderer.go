// SPDX-License-Identifier: MIT

package chamber

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrLengthMismatch is returned by Scatter when the coordinate slices differ in length.
var ErrLengthMismatch = errors.New("chamber: coordinate slices differ in length")

// cm2inch converts centimetres to inches.
const cm2inch = 0.39370079

// Style holds plotting keyword arguments passed through to the plotter
// (color, linestyle, lw, marker, ...).
type Style map[string]any

func (s Style) clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ScatterSet is one group of points drawn with a common style.
type ScatterSet struct {
	C1    []float64 `yaml:"c1"`
	C2    []float64 `yaml:"c2"`
	C3    []float64 `yaml:"c3"`
	Style Style     `yaml:"style,omitempty"`
}

// Renderer collects everything an external 3D plotter needs to draw the
// Weyl chamber. Figure sizes and margins are in centimetres.
type Renderer struct {
	Azim float64 `yaml:"azim"`
	Elev float64 `yaml:"elev"`
	DPI  int     `yaml:"dpi"`

	FigWidth     float64 `yaml:"fig_width"`
	FigHeight    float64 `yaml:"fig_height"`
	LeftMargin   float64 `yaml:"left_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	RightMargin  float64 `yaml:"right_margin"`
	TopMargin    float64 `yaml:"top_margin"`

	LineColor     string  `yaml:"linecolor"`
	ShowC1Label   bool    `yaml:"show_c1_label"`
	ShowC2Label   bool    `yaml:"show_c2_label"`
	ShowC3Label   bool    `yaml:"show_c3_label"`
	C1Labelpad    float64 `yaml:"c1_labelpad"`
	C2Labelpad    float64 `yaml:"c2_labelpad"`
	C3Labelpad    float64 `yaml:"c3_labelpad"`
	C1Tickspad    float64 `yaml:"c1_tickspad"`
	C2Tickspad    float64 `yaml:"c2_tickspad"`
	C3Tickspad    float64 `yaml:"c3_tickspad"`

	WeylEdgeFG Style `yaml:"weyl_edge_fg"`
	WeylEdgeBG Style `yaml:"weyl_edge_bg"`
	PEEdgeFG   Style `yaml:"pe_edge_fg"`
	PEEdgeBG   Style `yaml:"pe_edge_bg"`

	// Labels maps a label text to its anchor in chamber coordinates.
	Labels          map[string]Point `yaml:"labels"`
	LabelProperties Style            `yaml:"label_properties"`

	TexLabels     bool       `yaml:"tex_labels"`
	ZAxisLeft     bool       `yaml:"z_axis_left"`
	Grid          bool       `yaml:"grid"`
	PaneColor     [4]float64 `yaml:"panecolor"`
	FaceColor     string     `yaml:"facecolor"`
	TickLabelSize float64    `yaml:"ticklabelsize"`
	FullCube      bool       `yaml:"full_cube"`

	scatter []ScatterSet
}

func edgeStyle(linestyle string) Style {
	return Style{"color": "black", "linestyle": linestyle, "lw": 0.5}
}

func offset(name string, d1, d2, d3 float64) Point {
	p := points[name]
	return Point{p[0] + d1, p[1] + d2, p[2] + d3}
}

// DefaultRenderer returns the standard view of the chamber.
func DefaultRenderer() *Renderer {
	return &Renderer{
		Azim:          -50,
		Elev:          20,
		DPI:           300,
		FigWidth:      8.5,
		FigHeight:     6.0,
		RightMargin:   0.3,
		LineColor:     "black",
		ShowC1Label:   true,
		ShowC2Label:   true,
		ShowC3Label:   true,
		C1Labelpad:    -9,
		C2Labelpad:    -14,
		C3Labelpad:    -14,
		C1Tickspad:    -6,
		C2Tickspad:    -4,
		C3Tickspad:    -6,
		WeylEdgeFG:    edgeStyle("-"),
		WeylEdgeBG:    edgeStyle("--"),
		PEEdgeFG:      edgeStyle("-"),
		PEEdgeBG:      edgeStyle("--"),
		Labels: map[string]Point{
			"A_1": offset("A1", -0.03, 0.04, 0),
			"A_2": offset("A2", 0.01, 0, -0.01),
			"A_3": offset("A3", -0.01, 0, 0),
			"O":   offset("O", -0.025, 0, 0.02),
			"L":   offset("L", -0.075, 0, 0.01),
			"M":   offset("M", 0.05, -0.01, 0),
			"N":   offset("N", -0.075, 0, 0.009),
			"P":   offset("P", -0.05, 0, 0.008),
			"Q":   offset("Q", 0, 0.01, 0.03),
		},
		LabelProperties: Style{"color": "black", "fontsize": "small"},
		TexLabels:       true,
		ZAxisLeft:       true,
		PaneColor:       [4]float64{1, 1, 1, 0},
		FaceColor:       "None",
		TickLabelSize:   7,
	}
}

// FigSize returns (width, height) of the figure in inches.
func (r *Renderer) FigSize() (w, h float64) {
	return r.FigWidth * cm2inch, r.FigHeight * cm2inch
}

// AxesPosition returns [left, bottom, width, height] of the 3D axes as
// fractions of the figure size.
func (r *Renderer) AxesPosition() [4]float64 {
	w := r.FigWidth - (r.LeftMargin + r.RightMargin)
	h := r.FigHeight - (r.BottomMargin + r.TopMargin)
	return [4]float64{
		r.LeftMargin / r.FigWidth,
		r.BottomMargin / r.FigHeight,
		w / r.FigWidth,
		h / r.FigHeight,
	}
}

// Scatter adds a new scatter set. Slices are copied.
func (r *Renderer) Scatter(c1s, c2s, c3s []float64, style Style) error {
	if len(c1s) != len(c2s) || len(c1s) != len(c3s) {
		return fmt.Errorf("Scatter: %w (%d, %d, %d)", ErrLengthMismatch, len(c1s), len(c2s), len(c3s))
	}
	r.scatter = append(r.scatter, ScatterSet{
		C1:    append([]float64(nil), c1s...),
		C2:    append([]float64(nil), c2s...),
		C3:    append([]float64(nil), c3s...),
		Style: style.clone(),
	})
	return nil
}

// AddPoint appends a point to the scatter set at index and merges style
// into that set's style. An index past the end starts a new set.
func (r *Renderer) AddPoint(c1, c2, c3 float64, index int, style Style) {
	if index < 0 || index >= len(r.scatter) {
		r.scatter = append(r.scatter, ScatterSet{
			C1: []float64{c1}, C2: []float64{c2}, C3: []float64{c3},
			Style: style.clone(),
		})
		return
	}
	s := &r.scatter[index]
	s.C1 = append(s.C1, c1)
	s.C2 = append(s.C2, c2)
	s.C3 = append(s.C3, c3)
	if s.Style == nil {
		s.Style = Style{}
	}
	for k, v := range style {
		s.Style[k] = v
	}
}

// ScatterSets returns the number of scatter sets.
func (r *Renderer) ScatterSets() int { return len(r.scatter) }

// Line is a drawable segment with resolved endpoints.
type Line struct {
	From  Point `yaml:"from"`
	To    Point `yaml:"to"`
	Style Style `yaml:"style"`
}

// Scene is the flattened, plotter-ready description of a Renderer.
type Scene struct {
	Renderer  *Renderer    `yaml:"renderer"`
	FigSize   [2]float64   `yaml:"figsize"`
	Axes      [4]float64   `yaml:"axes"`
	WeylLines []Line       `yaml:"weyl_lines"`
	PELines   []Line       `yaml:"pe_lines"`
	Scatter   []ScatterSet `yaml:"scatter"`
}

func lines(edges []Edge, fg, bg Style) []Line {
	out := make([]Line, 0, len(edges))
	for _, e := range edges {
		st := bg
		if e.Foreground {
			st = fg
		}
		out = append(out, Line{From: points[e.From], To: points[e.To], Style: st.clone()})
	}
	return out
}

// Scene resolves edges to coordinates and snapshots the scatter sets.
func (r *Renderer) Scene() Scene {
	w, h := r.FigSize()
	sets := make([]ScatterSet, len(r.scatter))
	for i, s := range r.scatter {
		sets[i] = ScatterSet{
			C1:    append([]float64(nil), s.C1...),
			C2:    append([]float64(nil), s.C2...),
			C3:    append([]float64(nil), s.C3...),
			Style: s.Style.clone(),
		}
	}
	return Scene{
		Renderer:  r,
		FigSize:   [2]float64{w, h},
		Axes:      r.AxesPosition(),
		WeylLines: lines(WeylEdges(), r.WeylEdgeFG, r.WeylEdgeBG),
		PELines:   lines(PEEdges(), r.PEEdgeFG, r.PEEdgeBG),
		Scatter:   sets,
	}
}

// WriteYAML encodes the scene to w.
func (r *Renderer) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Scene()); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	return enc.Close()
}
