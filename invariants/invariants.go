// SPDX-License-Identifier: MIT

package invariants

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
	"github.com/katalvlaran/weylchamber/prec"
)

// Form selects the shape of the JTLI functional.
type Form string

const (
	// FormG is Σ|g_i(O) − g_i(U)|².
	FormG Form = "g"
	// FormC is Π cos(π·(c_i(O) − c_i(U))/2).
	FormC Form = "c"
)

// G1G2G3 returns the local invariants of the two-qubit gate u:
//
//	g1 + i·g2 = tr(m)² / (16·det UB),  g3 = Re[(tr(m)² − tr(m²)) / (4·det UB)],
//
// with UB = Q†·u·Q and m = UBᵀ·UB. Each value is rounded per opts (8 digits
// by default, −0 normalised to +0). The determinant is taken of UB, which is
// numerically better conditioned than det u.
//
// Errors: matrix.ErrBadShape (u not 4×4), matrix.ErrSingular.
func G1G2G3(u mat.CMatrix, opts ...prec.Option) (g1, g2, g3 float64, err error) {
	ub, err := gates.ToMagic(u)
	if err != nil {
		return 0, 0, 0, invariantsErrorf(opG1G2G3, err)
	}
	g, h, err := gh(ub)
	if err != nil {
		return 0, 0, 0, invariantsErrorf(opG1G2G3, err)
	}

	o := prec.Gather(opts...)
	return o.Apply(real(g)), o.Apply(imag(g)), o.Apply(real(h)), nil
}

// gh returns G = tr(m)²/(16 d) and H = (tr(m)² − tr(m²))/(4 d) for a gate
// already in the magic basis.
func gh(ub *mat.CDense) (g, h complex128, err error) {
	det, err := matrix.Det(ub)
	if err != nil {
		return 0, 0, err
	}
	if det == 0 {
		return 0, 0, matrix.ErrSingular
	}
	m, err := matrix.Mul(matrix.Transpose(ub), ub)
	if err != nil {
		return 0, 0, err
	}
	m2, err := matrix.Mul(m, m)
	if err != nil {
		return 0, 0, err
	}
	tm, _ := matrix.Trace(m)
	tm2, _ := matrix.Trace(m2)

	return tm * tm / (16 * det), (tm*tm - tm2) / (4 * det), nil
}

// G1G2G3FromC1C2C3 returns the local invariants of the Weyl point
// (c1, c2, c3), given in units of π:
//
//	g1 = cos²c1·cos²c2·cos²c3 − sin²c1·sin²c2·sin²c3
//	g2 = ¼·sin 2c1·sin 2c2·sin 2c3
//	g3 = 4·g1 − cos 2c1·cos 2c2·cos 2c3
//
// g3 is computed from the rounded g1.
func G1G2G3FromC1C2C3(c1, c2, c3 float64, opts ...prec.Option) (g1, g2, g3 float64) {
	o := prec.Gather(opts...)
	c1, c2, c3 = c1*math.Pi, c2*math.Pi, c3*math.Pi
	sq := func(x float64) float64 { return x * x }

	g1 = o.Apply(sq(math.Cos(c1))*sq(math.Cos(c2))*sq(math.Cos(c3)) -
		sq(math.Sin(c1))*sq(math.Sin(c2))*sq(math.Sin(c3)))
	g2 = o.Apply(0.25 * math.Sin(2*c1) * math.Sin(2*c2) * math.Sin(2*c3))
	g3 = o.Apply(4*g1 - math.Cos(2*c1)*math.Cos(2*c2)*math.Cos(2*c3))

	return g1, g2, g3
}

// JTLI evaluates the local-invariants functional between the optimal gate o
// and the achieved gate u.
//
// Errors: ErrUnknownForm, plus any error from G1G2G3 or C1C2C3.
func JTLI(o, u mat.CMatrix, form Form) (float64, error) {
	switch form {
	case FormG:
		a1, a2, a3, err := G1G2G3(o)
		if err != nil {
			return 0, invariantsErrorf(opJTLI, err)
		}
		b1, b2, b3, err := G1G2G3(u)
		if err != nil {
			return 0, invariantsErrorf(opJTLI, err)
		}
		d1, d2, d3 := a1-b1, a2-b2, a3-b3
		return d1*d1 + d2*d2 + d3*d3, nil

	case FormC:
		a1, a2, a3, err := coordinates.C1C2C3(o)
		if err != nil {
			return 0, invariantsErrorf(opJTLI, err)
		}
		b1, b2, b3, err := coordinates.C1C2C3(u)
		if err != nil {
			return 0, invariantsErrorf(opJTLI, err)
		}
		f := func(d float64) float64 { return math.Cos(math.Pi * d / 2) }
		return f(a1-b1) * f(a2-b2) * f(a3-b3), nil

	default:
		return 0, invariantsErrorf(opJTLI, fmt.Errorf("%w: %q", ErrUnknownForm, string(form)))
	}
}
