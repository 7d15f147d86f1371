// SPDX-License-Identifier: MIT

package coordinates

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
	"github.com/katalvlaran/weylchamber/prec"
)

// C1C2C3 returns the Weyl-chamber coordinates of the two-qubit gate u, in
// units of π.
//
// Implementation:
//   - Stage 1: Ũ = (σy⊗σy)·uᵀ·(σy⊗σy); λ = eig(u·Ũ / √det u).
//   - Stage 2: 2S_k = arg(λ_k)/π, shifted by +2 when ≤ −½; S sorted
//     descending; n = round(ΣS); subtract 1 from the first n entries and
//     rotate S left by n.
//   - Stage 3: (c1, c2, c3) = (S0+S1, S0+S2, S1+S2); if c3 < 0 reflect
//     c1 → 1−c1, c3 → −c3.
//   - Stage 4: round each coordinate per opts (default 8 digits, -0 → +0).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadShape (u not 4×4), and
// eigen-solver failures (matrix.ErrEigenFailed).
//
// Notes:
//   - u should be unitary; callers unitarize non-unitary input themselves.
//     Non-unitary input still yields numbers (used for leaky gates), but
//     they carry no chamber guarantee.
func C1C2C3(u mat.CMatrix, opts ...prec.Option) (c1, c2, c3 float64, err error) {
	if err = matrix.ValidateShape(u, gates.Dim, gates.Dim); err != nil {
		return 0, 0, 0, coordinatesErrorf(opC1C2C3, err)
	}
	sysy := gates.SySy()
	var (
		ut, prod *mat.CDense
		det      complex128
		ev       []complex128
	)
	if ut, err = matrix.MulAll(sysy, matrix.Transpose(u), sysy); err != nil {
		return 0, 0, 0, coordinatesErrorf(opC1C2C3, err)
	}
	if prod, err = matrix.Mul(u, ut); err != nil {
		return 0, 0, 0, coordinatesErrorf(opC1C2C3, err)
	}
	if det, err = matrix.Det(u); err != nil {
		return 0, 0, 0, coordinatesErrorf(opC1C2C3, err)
	}
	if ev, err = matrix.Eigvals(matrix.Scale(1/cmplx.Sqrt(det), prod)); err != nil {
		return 0, 0, 0, coordinatesErrorf(opC1C2C3, err)
	}

	c1, c2, c3 = coordinatesFromEigvals(ev)

	o := prec.Gather(opts...)
	return o.Apply(c1), o.Apply(c2), o.Apply(c3), nil
}

// coordinatesFromEigvals maps the four spectral phases of u·Ũ onto the chamber.
func coordinatesFromEigvals(ev []complex128) (c1, c2, c3 float64) {
	s := make([]float64, len(ev))
	var twoS float64
	for i, v := range ev {
		twoS = cmplx.Phase(v) / math.Pi
		if twoS <= -0.5 {
			twoS += 2.0
		}
		s[i] = twoS / 2.0
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))

	var sum float64
	for _, v := range s {
		sum += v
	}
	// n = round(ΣS) removes the overall phase ambiguity: the n largest
	// values drop by one (or, for n < 0, the |n| smallest rise by one) and
	// the rotation restores descending order.
	k := len(s)
	n := int(math.RoundToEven(sum))
	if n > k {
		n = k
	}
	if n < -k {
		n = -k
	}
	for i := 0; i < n; i++ {
		s[i] -= 1
	}
	for i := k + n; i < k; i++ {
		s[i] += 1
	}
	rot := make([]float64, k)
	for i := range s {
		rot[i] = s[((i+n)%k+k)%k]
	}

	c1 = rot[0] + rot[1]
	c2 = rot[0] + rot[2]
	c3 = rot[1] + rot[2]
	if c3 < 0 {
		c1 = 1 - c1
		c3 = -c3
	}

	return c1, c2, c3
}
