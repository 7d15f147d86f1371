// SPDX-License-Identifier: MIT

package cartan

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
	"github.com/katalvlaran/weylchamber/prec"
)

const (
	// MatchTol bounds |F_i² − λ_j| when pairing expected and computed
	// eigenvalues of m.
	MatchTol = 1e-12

	// CheckTol bounds the orthogonality and reconstruction self-checks.
	CheckTol = 1e-12

	// UnitaryTol is the input unitarity tolerance.
	UnitaryTol = 1e-8

	branches = 4
)

// Decomposition is the result of Decompose: U = Phase·K1·A·K2.
type Decomposition struct {
	K1, A, K2  *mat.CDense
	Phase      complex128
	C1, C2, C3 float64
}

// branch holds the per-candidate data of one fourth-root branch.
type branch struct {
	ub    *mat.CDense
	f     []complex128
	vecs  *mat.Dense
	order []int
	c     [3]float64
}

// Decompose returns the Cartan decomposition of the unitary two-qubit gate u.
//
// Implementation:
//   - Stage 1: Û = u / det(u)^{1/4}.
//   - Stage 2: for k = 0..3 try Û·i^k: UB = Q†·Û·i^k·Q, m = UBᵀ·UB,
//     (c1, c2, c3) from the candidate, F_j = exp(iπ/2·(±c1±c2±c3)), and the
//     real orthogonal eigenbasis of m. Accept the first candidate whose F²
//     matches eig(m) as a multiset.
//   - Stage 3: order the eigenvectors to align with F (first unused match
//     wins); O2 is the transpose of the reordered eigenvectors, with one
//     row negated when needed so that det O2 = +1.
//   - Stage 4: O1 = UB·O2ᵀ·F*, K1 = Q·O1·Q†, K2 = Q·O2·Q†, A = CanonicalGate(c).
//   - Stage 5: check O1, O2 ∈ SO(4) and ‖K1·A·K2 − Û·i^k‖ < 1e-12.
//
// Errors: matrix.ErrBadShape, ErrNotUnitary, and ErrConsistency (through
// ErrBranchNotFound, ErrOrdering, ErrNotOrthogonal, ErrReconstruction).
//
// Complexity: a constant number of 4×4 products and eigen-solves per branch.
func Decompose(u mat.CMatrix) (Decomposition, error) {
	if err := matrix.ValidateShape(u, gates.Dim, gates.Dim); err != nil {
		return Decomposition{}, cartanErrorf(opDecompose, err)
	}
	if !matrix.IsUnitary(u, UnitaryTol) {
		return Decomposition{}, cartanErrorf(opDecompose, ErrNotUnitary)
	}
	det, err := matrix.Det(u)
	if err != nil {
		return Decomposition{}, cartanErrorf(opDecompose, err)
	}
	root := cmplx.Pow(det, 0.25)
	candidate := matrix.Scale(1/root, u)

	var (
		b     *branch
		k     int
		shift = complex128(1)
	)
	for k = 0; k < branches; k++ {
		if b, err = tryBranch(candidate); err != nil {
			return Decomposition{}, cartanErrorf(opDecompose, err)
		}
		if b != nil {
			break
		}
		candidate = matrix.Scale(1i, candidate)
		shift *= -1i
	}
	if b == nil {
		return Decomposition{}, cartanErrorf(opDecompose, ErrBranchNotFound)
	}

	d, err := assemble(b, candidate)
	if err != nil {
		return Decomposition{}, cartanErrorf(opDecompose, err)
	}
	d.Phase = root * shift

	return d, nil
}

// tryBranch returns nil (and no error) when the candidate's F² does not
// match the spectrum of m.
func tryBranch(candidate *mat.CDense) (*branch, error) {
	ub, err := gates.ToMagic(candidate)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Mul(matrix.Transpose(ub), ub)
	if err != nil {
		return nil, err
	}
	c1, c2, c3, err := coordinates.C1C2C3(candidate, prec.Exact())
	if err != nil {
		return nil, err
	}
	vals, vecs, err := matrix.EigSymmetricUnitary(m)
	if err != nil {
		return nil, err
	}

	f := expectedDiagonal(c1, c2, c3)
	order, ok := claim(f, vals)
	if !ok {
		return nil, nil
	}

	return &branch{
		ub:    ub,
		f:     f,
		vecs:  vecs,
		order: order,
		c:     [3]float64{c1, c2, c3},
	}, nil
}

// expectedDiagonal returns the diagonal of the canonical gate in the magic
// basis, F = (e^{iπ/2(c1−c2+c3)}, e^{iπ/2(c1+c2−c3)}, e^{iπ/2(−c1−c2−c3)},
// e^{iπ/2(−c1+c2+c3)}).
func expectedDiagonal(c1, c2, c3 float64) []complex128 {
	e := func(x float64) complex128 { return cmplx.Exp(complex(0, math.Pi/2*x)) }
	return []complex128{
		e(c1 - c2 + c3),
		e(c1 + c2 - c3),
		e(-c1 - c2 - c3),
		e(-c1 + c2 + c3),
	}
}

// claim pairs every F_i² with a distinct eigenvalue within MatchTol; the
// first unused match wins. order[i] is the eigenvalue index for F_i.
func claim(f, vals []complex128) ([]int, bool) {
	used := make([]bool, len(vals))
	order := make([]int, 0, len(f))
	for _, fi := range f {
		sq := fi * fi
		for j, v := range vals {
			if !used[j] && cmplx.Abs(sq-v) < MatchTol {
				used[j] = true
				order = append(order, j)
				break
			}
		}
	}
	return order, len(order) == len(f)
}

// assemble builds K1, A, K2 from an accepted branch and verifies them.
func assemble(b *branch, candidate *mat.CDense) (Decomposition, error) {
	n := len(b.f)
	if len(b.order) != n {
		return Decomposition{}, ErrOrdering
	}
	// Row i of O2 is the eigenvector matched to F_i.
	o2 := mat.NewCDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			o2.Set(i, j, complex(b.vecs.At(j, b.order[i]), 0))
		}
	}
	// The eigenbasis has an arbitrary orientation; flipping one row keeps it
	// an eigenbasis and puts O2 (and then O1, as det UB = det F = 1) in SO(4).
	det, err := matrix.Det(o2)
	if err != nil {
		return Decomposition{}, err
	}
	if real(det) < 0 {
		for j = 0; j < n; j++ {
			o2.Set(0, j, -o2.At(0, j))
		}
	}
	fConj := make([]complex128, n)
	for i, v := range b.f {
		fConj[i] = cmplx.Conj(v)
	}
	o1, err := matrix.MulAll(b.ub, matrix.Transpose(o2), matrix.Diag(fConj))
	if err != nil {
		return Decomposition{}, err
	}
	for _, o := range []*mat.CDense{o1, o2} {
		if err = checkOrthogonal(o); err != nil {
			return Decomposition{}, err
		}
	}

	k1, err := gates.FromMagic(o1)
	if err != nil {
		return Decomposition{}, err
	}
	k2, err := gates.FromMagic(o2)
	if err != nil {
		return Decomposition{}, err
	}
	a, err := gates.CanonicalGate(b.c[0], b.c[1], b.c[2])
	if err != nil {
		return Decomposition{}, err
	}
	rec, err := matrix.MulAll(k1, a, k2)
	if err != nil {
		return Decomposition{}, err
	}
	dist, err := matrix.Distance(rec, candidate)
	if err != nil {
		return Decomposition{}, err
	}
	if dist >= CheckTol {
		return Decomposition{}, fmt.Errorf("%w (‖K1·A·K2 − U‖ = %.3g)", ErrReconstruction, dist)
	}

	return Decomposition{K1: k1, A: a, K2: k2, C1: b.c[0], C2: b.c[1], C3: b.c[2]}, nil
}

// checkOrthogonal verifies max|o·oᵀ − I| < CheckTol and det o = +1, so that
// the factor is local in the standard basis.
func checkOrthogonal(o *mat.CDense) error {
	n, _ := o.Dims()
	g, err := matrix.Mul(o, matrix.Transpose(o))
	if err != nil {
		return err
	}
	dev, err := matrix.MaxAbsDiff(g, matrix.Identity(n))
	if err != nil {
		return err
	}
	if dev >= CheckTol {
		return fmt.Errorf("%w (max deviation %.3g)", ErrNotOrthogonal, dev)
	}
	det, err := matrix.Det(o)
	if err != nil {
		return err
	}
	if cmplx.Abs(det-1) >= UnitaryTol {
		return fmt.Errorf("%w (det = %.3g)", ErrNotOrthogonal, det)
	}
	return nil
}
