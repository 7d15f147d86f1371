// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Complex spectral routines on top of gonum's real solvers (mat.Eigen,
//     mat.EigenSym), which is all the two-qubit invariants need:
//     eigenvalues of a general complex matrix and a real orthogonal
//     eigenbasis of a complex-symmetric unitary.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// maxEigvalsDim bounds Eigvals: the subset search visits C(2n, n) sets.
	maxEigvalsDim = 10

	// symmetryTol is the relative tolerance of the complex-symmetry guard.
	symmetryTol = 1e-10

	// eigResidualTol is the largest accepted off-diagonal residual of OᵀmO.
	eigResidualTol = 1e-9

	// goldenAngle spreads the mixing angles of EigSymmetricUnitary.
	goldenAngle = 2.399963229728653
	mixingTries = 8
)

// Eigvals returns the eigenvalues of a general square complex matrix.
//
// Implementation:
//   - Stage 1: the real embedding E = [[Re a, −Im a], [Im a, Re a]] has
//     spectrum spec(a) ∪ conj(spec(a)); factorise it with mat.Eigen. If the
//     solver fails or panics (LAPACK's balancing can trip on nearly
//     permutation-structured inputs), retry on H·E·H for fixed dense
//     Householder reflections H, which leaves the spectrum unchanged.
//   - Stage 2: pick the n of the 2n candidates whose power sums Σμ^k best
//     match tr(a^k) for k = 1..n. By Newton's identities the power sums fix
//     the multiset, so the true spectrum is the unique exact match.
//
// Returns: eigenvalues in the solver's order (no sorting is implied).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrBadShape (n > 10),
// ErrEigenFailed.
//
// Complexity: O(n³) for the factorisation plus O(C(2n, n)·n) for the search.
func Eigvals(a mat.CMatrix) ([]complex128, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opEigvals, err)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, matrixErrorf(opEigvals, err)
	}
	n, _ := a.Dims()
	if n > maxEigvalsDim {
		return nil, matrixErrorf(opEigvals, fmt.Errorf("%w: %dx%d exceeds %d", ErrBadShape, n, n, maxEigvalsDim))
	}

	cand, ok := embeddedValues(embed(a), 0)
	if !ok {
		return nil, matrixErrorf(opEigvals, ErrEigenFailed)
	}

	// target power sums p[k] = tr(a^(k+1))
	target := make([]complex128, n)
	pow := Clone(a)
	var (
		k   int
		err error
	)
	for k = 0; k < n; k++ {
		if target[k], err = Trace(pow); err != nil {
			return nil, matrixErrorf(opEigvals, err)
		}
		if k+1 < n {
			if pow, err = Mul(pow, a); err != nil {
				return nil, matrixErrorf(opEigvals, err)
			}
		}
	}

	// powers[j][k] = cand[j]^(k+1)
	powers := make([][]complex128, len(cand))
	for j, mu := range cand {
		powers[j] = make([]complex128, n)
		acc := complex(1, 0)
		for k = 0; k < n; k++ {
			acc *= mu
			powers[j][k] = acc
		}
	}

	s := subsetSearch{n: n, target: target, powers: powers, best: math.Inf(1)}
	s.sums = make([]complex128, n)
	s.pick = make([]int, 0, n)
	s.walk(0)
	if s.bestPick == nil {
		return nil, matrixErrorf(opEigvals, ErrEigenFailed)
	}

	out := make([]complex128, n)
	for i, j := range s.bestPick {
		out[i] = cand[j]
	}

	return out, nil
}

// embeddedValues returns the eigenvalues of the real matrix e, trying e
// itself when first == 0 and then H_t·e·H_t for t = max(first, 1)..mixingTries.
func embeddedValues(e *mat.Dense, first int) ([]complex128, bool) {
	n, _ := e.Dims()
	for t := first; t <= mixingTries; t++ {
		m := e
		if t > 0 {
			h := householder(n, t)
			var tmp mat.Dense
			tmp.Mul(e, h)
			m = &mat.Dense{}
			m.Mul(h, &tmp)
		}
		if vals, ok := realEigenvalues(m); ok {
			return vals, true
		}
	}
	return nil, false
}

// realEigenvalues factorises m, turning a solver panic into a failure.
func realEigenvalues(m mat.Matrix) (vals []complex128, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			vals, ok = nil, false
		}
	}()
	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenNone) {
		return nil, false
	}
	return eig.Values(nil), true
}

// householder returns the symmetric orthogonal reflection I − 2vvᵀ/(vᵀv)
// for a dense, strictly positive v that depends on t.
func householder(n, t int) *mat.Dense {
	v := make([]float64, n)
	var norm2 float64
	for i := range v {
		v[i] = 1.25 + math.Cos(float64(t)*goldenAngle*float64(i+1))
		norm2 += v[i] * v[i]
	}
	h := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -2 * v[i] * v[j] / norm2
			if i == j {
				x++
			}
			h.Set(i, j, x)
		}
	}
	return h
}

// subsetSearch enumerates n-subsets of candidates keeping running power sums.
type subsetSearch struct {
	n        int
	target   []complex128
	powers   [][]complex128
	sums     []complex128
	pick     []int
	best     float64
	bestPick []int
}

func (s *subsetSearch) walk(start int) {
	if len(s.pick) == s.n {
		score := 0.0
		for k := 0; k < s.n; k++ {
			score += cmplx.Abs(s.sums[k]-s.target[k]) / (1 + cmplx.Abs(s.target[k]))
		}
		if score < s.best {
			s.best = score
			s.bestPick = append(s.bestPick[:0], s.pick...)
		}
		return
	}
	// not enough candidates left to complete the subset
	if len(s.powers)-start < s.n-len(s.pick) {
		return
	}
	for j := start; j < len(s.powers); j++ {
		s.pick = append(s.pick, j)
		for k := 0; k < s.n; k++ {
			s.sums[k] += s.powers[j][k]
		}
		s.walk(j + 1)
		for k := 0; k < s.n; k++ {
			s.sums[k] -= s.powers[j][k]
		}
		s.pick = s.pick[:len(s.pick)-1]
	}
}

// EigSymmetricUnitary diagonalises a complex-symmetric unitary m by a real
// orthogonal matrix: m = O·diag(λ)·Oᵀ, with the columns of O the eigenvectors.
//
// Implementation:
//   - Stage 1: for m = A + iB symmetric and unitary, A and B are real
//     symmetric and commute, so they share a real orthonormal eigenbasis.
//   - Stage 2: factorise S(θ) = cos θ·A + sin θ·B with mat.EigenSym for a
//     fixed sequence of angles; a generic θ separates every eigenspace of m.
//   - Stage 3: keep the θ with the smallest off-diagonal residual of OᵀmO and
//     read λ from its diagonal.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrEigenFailed
// (no angle reached the residual tolerance, e.g. m is not normal).
//
// Determinism: the angle sequence is fixed; no randomness is involved.
func EigSymmetricUnitary(m mat.CMatrix) ([]complex128, *mat.Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigSym, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigSym, err)
	}
	n, _ := m.Dims()
	scale := math.Max(1, FrobeniusNorm(m))
	re := mat.NewSymDense(n, nil)
	im := mat.NewSymDense(n, nil)
	var (
		i, j int
		v, w complex128
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, w = m.At(i, j), m.At(j, i)
			if cmplx.Abs(v-w) > symmetryTol*scale {
				return nil, nil, matrixErrorf(opEigSym, ErrAsymmetry)
			}
			v = (v + w) / 2
			re.SetSym(i, j, real(v))
			im.SetSym(i, j, imag(v))
		}
	}

	var (
		bestOff  = math.Inf(1)
		bestVecs *mat.Dense
		bestVals []complex128
	)
	for t := 1; t <= mixingTries; t++ {
		theta := math.Mod(float64(t)*goldenAngle, math.Pi)
		s := mat.NewSymDense(n, nil)
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				s.SetSym(i, j, math.Cos(theta)*re.At(i, j)+math.Sin(theta)*im.At(i, j))
			}
		}
		var es mat.EigenSym
		if ok := es.Factorize(s, true); !ok {
			continue
		}
		vecs := &mat.Dense{}
		es.VectorsTo(vecs)

		vals, off := projectDiagonal(re, im, vecs)
		if off < bestOff {
			bestOff, bestVecs, bestVals = off, vecs, vals
		}
		if off <= eigResidualTol*1e-4 {
			break
		}
	}
	if bestVecs == nil || bestOff > eigResidualTol*scale {
		return nil, nil, matrixErrorf(opEigSym,
			fmt.Errorf("%w: off-diagonal residual %.3g", ErrEigenFailed, bestOff))
	}

	return bestVals, bestVecs, nil
}

// projectDiagonal computes D = Oᵀ(A + iB)O and returns its diagonal and the
// largest off-diagonal modulus.
func projectDiagonal(re, im mat.Matrix, o *mat.Dense) ([]complex128, float64) {
	var da, db, tmp mat.Dense
	tmp.Mul(re, o)
	da.Mul(o.T(), &tmp)
	tmp.Reset()
	tmp.Mul(im, o)
	db.Mul(o.T(), &tmp)

	n, _ := o.Dims()
	vals := make([]complex128, n)
	var (
		i, j int
		off  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				vals[i] = complex(da.At(i, i), db.At(i, i))
				continue
			}
			off = math.Max(off, math.Hypot(da.At(i, j), db.At(i, j)))
		}
	}

	return vals, off
}
