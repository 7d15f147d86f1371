// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/matrix"
)

// ToMagic returns Q†·a·Q, the gate a expressed in the Bell basis.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadShape (a is not 4×4).
func ToMagic(a mat.CMatrix) (*mat.CDense, error) {
	if err := matrix.ValidateShape(a, Dim, Dim); err != nil {
		return nil, gatesErrorf(opToMagic, err)
	}

	return matrix.MulAll(matrix.ConjTranspose(qmagic), a, qmagic)
}

// FromMagic returns Q·a·Q†, the inverse of ToMagic.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadShape (a is not 4×4).
func FromMagic(a mat.CMatrix) (*mat.CDense, error) {
	if err := matrix.ValidateShape(a, Dim, Dim); err != nil {
		return nil, gatesErrorf(opFromMagic, err)
	}

	return matrix.MulAll(qmagic, a, matrix.ConjTranspose(qmagic))
}

// CanonicalGate returns exp(iπ/2·(c1·XX + c2·YY + c3·ZZ)), the nonlocal
// representative of the Weyl coordinates (c1, c2, c3) given in units of π.
//
// Errors: matrix.ErrNaNInf for non-finite coordinates.
func CanonicalGate(c1, c2, c3 float64) (*mat.CDense, error) {
	h := mat.NewCDense(Dim, Dim, nil)
	var (
		i, j int
		f    = complex(0, math.Pi/2)
	)
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			h.Set(i, j, f*(complex(c1, 0)*sxsx.At(i, j)+
				complex(c2, 0)*sysy.At(i, j)+
				complex(c3, 0)*szsz.At(i, j)))
		}
	}
	a, err := matrix.Expm(h)
	if err != nil {
		return nil, gatesErrorf(opCanonical, err)
	}

	return a, nil
}

// U2 returns the single-qubit unitary
//
//	e^{iφ}·[[cos θ·e^{iφ1}, sin θ·e^{iφ2}], [−sin θ·e^{−iφ2}, cos θ·e^{−iφ1}]].
//
// Every element of U(2) has this form.
func U2(phi, theta, phi1, phi2 float64) *mat.CDense {
	g := cmplx.Exp(complex(0, phi))
	ct, st := complex(math.Cos(theta), 0), complex(math.Sin(theta), 0)
	e1, e2 := cmplx.Exp(complex(0, phi1)), cmplx.Exp(complex(0, phi2))

	return mat.NewCDense(2, 2, []complex128{
		g * ct * e1, g * st * e2,
		-g * st * cmplx.Conj(e2), g * ct * cmplx.Conj(e1),
	})
}

// SQUnitary returns the local gate (U2(p[0:4])⊗I)·(I⊗U2(p[4:8])).
//
// Errors: ErrParams unless len(p) == 8 with finite entries.
func SQUnitary(p []float64) (*mat.CDense, error) {
	if len(p) != 8 {
		return nil, gatesErrorf(opSQ, fmt.Errorf("%w: want 8 values, got %d", ErrParams, len(p)))
	}
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, gatesErrorf(opSQ, fmt.Errorf("%w: non-finite value", ErrParams))
		}
	}
	id2 := matrix.Identity(2)
	left, err := matrix.Kron(U2(p[0], p[1], p[2], p[3]), id2)
	if err != nil {
		return nil, gatesErrorf(opSQ, err)
	}
	right, err := matrix.Kron(id2, U2(p[4], p[5], p[6], p[7]))
	if err != nil {
		return nil, gatesErrorf(opSQ, err)
	}

	return matrix.Mul(left, right)
}

// CanonicalBasis returns |00⟩, |01⟩, |10⟩, |11⟩ embedded in a space of
// dimension dim ≥ 4 (components beyond 4 are leakage levels).
//
// Errors: ErrStateDim if dim < 4.
func CanonicalBasis(dim int) ([][]complex128, error) {
	if dim < Dim {
		return nil, fmt.Errorf("%w: dimension %d < %d", ErrStateDim, dim, Dim)
	}
	out := make([][]complex128, Dim)
	for i := range out {
		out[i] = make([]complex128, dim)
		out[i][i] = 1
	}

	return out, nil
}

// stateDim validates a 4-state list and returns the common dimension.
func stateDim(states [][]complex128) (int, error) {
	if len(states) != Dim {
		return 0, fmt.Errorf("%w: got %d", ErrBasisSize, len(states))
	}
	n := len(states[0])
	if n < Dim {
		return 0, fmt.Errorf("%w: dimension %d < %d", ErrStateDim, n, Dim)
	}
	for i, s := range states {
		if len(s) != n {
			return 0, fmt.Errorf("%w: state %d has dimension %d, want %d", ErrStateDim, i, len(s), n)
		}
	}

	return n, nil
}

// MappedBasis returns the image of basis under g: out[j] = Σ_i g[i,j]·basis[i].
//
// Errors: matrix.ErrBadShape (g not 4×4), ErrBasisSize, ErrStateDim.
func MappedBasis(g mat.CMatrix, basis [][]complex128) ([][]complex128, error) {
	if err := matrix.ValidateShape(g, Dim, Dim); err != nil {
		return nil, gatesErrorf(opMapped, err)
	}
	n, err := stateDim(basis)
	if err != nil {
		return nil, gatesErrorf(opMapped, err)
	}
	out := make([][]complex128, Dim)
	var (
		i, j, k int
		gij     complex128
	)
	for j = 0; j < Dim; j++ {
		out[j] = make([]complex128, n)
		for i = 0; i < Dim; i++ {
			gij = g.At(i, j)
			if gij == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				out[j][k] += gij * basis[i][k]
			}
		}
	}

	return out, nil
}

// Gate reconstructs the 4×4 matrix U[i,j] = ⟨basis_i|states_j⟩ from a basis
// and the images of its states.
//
// Errors: ErrBasisSize (either list), ErrStateDim (unequal dimensions).
func Gate(basis, states [][]complex128) (*mat.CDense, error) {
	nb, err := stateDim(basis)
	if err != nil {
		return nil, gatesErrorf(opGate, err)
	}
	ns, err := stateDim(states)
	if err != nil {
		return nil, gatesErrorf(opGate, err)
	}
	if nb != ns {
		return nil, gatesErrorf(opGate, fmt.Errorf("%w: basis %d vs states %d", ErrStateDim, nb, ns))
	}
	u := mat.NewCDense(Dim, Dim, nil)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			u.Set(i, j, Inner(basis[i], states[j]))
		}
	}

	return u, nil
}

// Inner returns ⟨a|b⟩ = Σ conj(a_k)·b_k over the common length.
func Inner(a, b []complex128) complex128 {
	var sum complex128
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		sum += cmplx.Conj(a[k]) * b[k]
	}

	return sum
}

// BellBasis returns the Bell states built on the given canonical basis,
// MappedBasis(Qmagic, canonical).
func BellBasis(canonical [][]complex128) ([][]complex128, error) {
	return MappedBasis(qmagic, canonical)
}
