// SPDX-License-Identifier: MIT

package entanglers

import (
	"math"

	"github.com/katalvlaran/weylchamber/chamber"
	"github.com/katalvlaran/weylchamber/coordinates"
)

// snapTol snaps concurrence values to exactly 0 or 1.
const snapTol = 1e-15

// Concurrence returns the concurrence of the Weyl point (c1, c2, c3).
//
// Inside the PE polyhedron the value is 1 by definition. Elsewhere it is
// max |sin(π·m)| over m ∈ {c − roll(c), c + roll(c)}, roll(c) = (c3, c1, c2),
// snapped to 0 or 1 within 1e-15.
func Concurrence(c1, c2, c3 float64) float64 {
	if coordinates.InPEPolyhedron(c1, c2, c3) {
		return 1
	}
	c := [3]float64{c1, c2, c3}
	r := [3]float64{c3, c1, c2}
	var res float64
	for i := range c {
		res = math.Max(res, math.Abs(math.Sin(math.Pi*(c[i]-r[i]))))
		res = math.Max(res, math.Abs(math.Sin(math.Pi*(c[i]+r[i]))))
	}
	switch {
	case res < snapTol:
		return 0
	case math.Abs(res-1) < snapTol:
		return 1
	}
	return res
}

// FPE evaluates the perfect-entangler functional g3·√(g1²+g2²) − g1.
func FPE(g1, g2, g3 float64) float64 {
	f := g3*math.Hypot(g1, g2) - g1
	if f == 0 {
		return 0
	}
	return f
}

// ProjectToPE projects (c1, c2, c3) onto the boundary face of the PE
// polyhedron adjacent to its region: p' = p − ((p − anchor)·n)·n.
// A perfect entangler is returned unchanged. Without checkWeyl, a point
// outside the chamber that satisfies the PE inequalities is also returned
// unchanged.
//
// Errors: coordinates.ErrNotInWeylChamber (only with checkWeyl).
func ProjectToPE(c1, c2, c3 float64, checkWeyl bool) (float64, float64, float64, error) {
	in, _ := coordinates.PointInPE(c1, c2, c3, false)
	if in {
		return c1, c2, c3, nil
	}
	region, err := coordinates.WeylRegion(c1, c2, c3, checkWeyl)
	if err != nil {
		return 0, 0, 0, entanglersErrorf(opProject, err)
	}
	face, err := chamber.FaceOf(region)
	if err != nil {
		return c1, c2, c3, nil
	}
	c1, c2, c3 = face.Project(chamber.Point{c1, c2, c3}).Coords()

	return c1, c2, c3, nil
}
