// SPDX-License-Identifier: MIT

package chamber

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/weylchamber/coordinates"
)

// ErrNoFace is returned by FaceOf for a region without a PE boundary face.
var ErrNoFace = errors.New("chamber: region has no PE boundary face")

// Point is a coordinate triple (c1, c2, c3) in units of π.
type Point [3]float64

// Coords unpacks the point.
func (p Point) Coords() (c1, c2, c3 float64) { return p[0], p[1], p[2] }

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	var out Point
	floats.SubTo(out[:], p[:], q[:])
	return out
}

// Dot returns p·q.
func (p Point) Dot(q Point) float64 { return floats.Dot(p[:], q[:]) }

// Named points of the chamber.
var points = map[string]Point{
	"O":  {0, 0, 0},
	"A1": {1, 0, 0},
	"A2": {0.5, 0.5, 0},
	"A3": {0.5, 0.5, 0.5},
	"L":  {0.5, 0, 0},
	"M":  {0.75, 0.25, 0},
	"N":  {0.75, 0.25, 0.25},
	"P":  {0.25, 0.25, 0.25},
	"Q":  {0.25, 0.25, 0},
}

// Vertex returns the named point and whether the name is known.
func Vertex(name string) (Point, bool) {
	p, ok := points[name]
	return p, ok
}

// VertexNames lists the named points in sorted order.
func VertexNames() []string {
	out := make([]string, 0, len(points))
	for k := range points {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// O is the identity class, (0, 0, 0).
func O() Point { return points["O"] }

// A1 is (1, 0, 0), locally equivalent to the identity.
func A1() Point { return points["A1"] }

// A2 is the iSWAP class, (½, ½, 0).
func A2() Point { return points["A2"] }

// A3 is the SWAP class, (½, ½, ½).
func A3() Point { return points["A3"] }

// L is the CNOT class, (½, 0, 0).
func L() Point { return points["L"] }

// M is (¾, ¼, 0).
func M() Point { return points["M"] }

// N is (¾, ¼, ¼).
func N() Point { return points["N"] }

// P is (¼, ¼, ¼).
func P() Point { return points["P"] }

// Q is the √iSWAP class, (¼, ¼, 0).
func Q() Point { return points["Q"] }

// Edge connects two named points; background edges are hidden behind the
// chamber in the default view and usually drawn dashed.
type Edge struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	Foreground bool   `yaml:"foreground"`
}

// WeylEdges returns the edges of the chamber tetrahedron.
func WeylEdges() []Edge {
	return []Edge{
		{"O", "A1", true},
		{"A1", "A2", true},
		{"A2", "A3", true},
		{"A3", "A1", true},
		{"A3", "O", true},
		{"O", "A2", false},
	}
}

// PEEdges returns the edges of the perfect-entangler polyhedron.
func PEEdges() []Edge {
	return []Edge{
		{"L", "N", true},
		{"L", "P", true},
		{"N", "P", true},
		{"N", "A2", true},
		{"N", "M", true},
		{"M", "L", false},
		{"Q", "L", false},
		{"P", "Q", false},
		{"P", "A2", false},
	}
}

// Plane is a face of the PE polyhedron: a unit normal pointing out of the
// PE polyhedron into the adjacent region, and an anchor point on the face.
type Plane struct {
	Normal Point `yaml:"normal"`
	Anchor Point `yaml:"anchor"`
}

// SignedDistance returns (p − anchor)·normal.
func (f Plane) SignedDistance(p Point) float64 {
	return p.Sub(f.Anchor).Dot(f.Normal)
}

// Project returns the orthogonal projection p − ((p − anchor)·n)·n.
func (f Plane) Project(p Point) Point {
	out := p
	floats.AddScaled(out[:], -f.SignedDistance(p), f.Normal[:])
	return out
}

var (
	h = math.Sqrt2 / 2

	faces = map[coordinates.Region]Plane{
		coordinates.RegionW0:     {Normal: Point{-h, -h, 0}, Anchor: Point{0.5, 0, 0}},
		coordinates.RegionW0Star: {Normal: Point{h, -h, 0}, Anchor: Point{0.5, 0, 0}},
		coordinates.RegionW1:     {Normal: Point{0, h, h}, Anchor: Point{0.5, 0.5, 0}},
	}
)

// FaceOf returns the PE boundary plane adjacent to region (W0, W0* or W1).
//
// Errors: ErrNoFace for PE and any other region.
func FaceOf(region coordinates.Region) (Plane, error) {
	f, ok := faces[region]
	if !ok {
		return Plane{}, fmt.Errorf("%w: %q", ErrNoFace, string(region))
	}
	return f, nil
}
