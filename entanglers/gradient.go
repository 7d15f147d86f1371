// SPDX-License-Identifier: MIT

package entanglers

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
)

// zeroG is the |G| below which the g3 term of the gradient is dropped.
const zeroG = 1e-14

// GradientAKl returns a_kl = ∂F/∂α_kl + i·∂F/∂β_kl, the gradient of the
// perfect-entangler functional F = g3·|G| − Re G with respect to the real
// (α) and imaginary (β) parts of the magic-basis gate UB.
//
// With m = UBᵀ·UB, T = tr m, S = tr m², d = det UB and C the cofactor
// matrix of UB:
//
//	G  = T²/(16d)                G' = T·UB_kl/(4d) − G·C_kl/d
//	H  = (T² − S)/(4d)           H' = (T·UB_kl − (UB·m)_kl)/d − H·C_kl/d
//	a_kl = |G|·conj(H') + Re H·G·conj(G')/|G| − conj(G')
//
// The result is negated when UB lies in W1, where F changes sign relative
// to its distance from the PE polyhedron.
//
// Errors: matrix.ErrBadShape (UB not 4×4), matrix.ErrSingular.
func GradientAKl(ub mat.CMatrix) (*mat.CDense, error) {
	if err := matrix.ValidateShape(ub, gates.Dim, gates.Dim); err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	u := matrix.Clone(ub)
	det, err := matrix.Det(u)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	if det == 0 {
		return nil, entanglersErrorf(opGradient, matrix.ErrSingular)
	}
	cof, err := matrix.Cofactors(u)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	m, err := matrix.Mul(matrix.Transpose(u), u)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	um, err := matrix.Mul(u, m)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	m2, err := matrix.Mul(m, m)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	t, _ := matrix.Trace(m)
	s, _ := matrix.Trace(m2)

	g := t * t / (16 * det)
	h := (t*t - s) / (4 * det)
	absG := cmplx.Abs(g)
	g3 := complex(real(h), 0)

	sign := complex128(1)
	canon, err := gates.FromMagic(u)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	c1, c2, c3, err := coordinates.C1C2C3(canon)
	if err != nil {
		return nil, entanglersErrorf(opGradient, err)
	}
	if region, _ := coordinates.WeylRegion(c1, c2, c3, false); region == coordinates.RegionW1 {
		sign = -1
	}

	a := mat.NewCDense(gates.Dim, gates.Dim, nil)
	var (
		k, l       int
		dG, dH, cv complex128
		val        complex128
	)
	for k = 0; k < gates.Dim; k++ {
		for l = 0; l < gates.Dim; l++ {
			cv = cof.At(k, l) / det
			dG = t*u.At(k, l)/(4*det) - g*cv
			dH = (t*u.At(k, l)-um.At(k, l))/det - h*cv
			val = complex(absG, 0)*cmplx.Conj(dH) - cmplx.Conj(dG)
			if absG > zeroG {
				val += g3 * g * cmplx.Conj(dG) / complex(absG, 0)
			}
			a.Set(k, l, sign*val)
		}
	}

	return a, nil
}
