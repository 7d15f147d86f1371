// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - LU factorisation with partial pivoting over complex128, and the
//     determinant, inverse and cofactor matrix derived from it.
//
// Determinism:
//   - Pivot choice is the first row of maximal modulus; ties keep the lower
//     index, so results are reproducible bit-for-bit.

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// zeroPivot is the sentinel modulus for an exactly zero pivot column.
const zeroPivot = 0.0

// LUFactors holds P·A = L·U packed in a single row-major slice: the strict
// lower triangle is L (unit diagonal implied), the upper triangle is U.
type LUFactors struct {
	n        int
	lu       []complex128
	perm     []int // perm[i] is the source row of row i
	sign     float64
	singular bool
}

// LU factorises the square matrix a.
//
// Implementation:
//   - Stage 1: ValidateSquare(a); copy a into a packed row-major buffer.
//   - Stage 2: for each column k pick the row of largest |a_ik| (i ≥ k),
//     swap, then eliminate below the pivot (Doolittle update in place).
//   - A zero pivot column marks the factorisation singular instead of failing;
//     Det reports 0 and Inverse reports ErrSingular.
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n³) time, O(n²) space.
func LU(a mat.CMatrix) (*LUFactors, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n, _ := a.Dims()
	f := &LUFactors{n: n, lu: make([]complex128, n*n), perm: make([]int, n), sign: 1}
	var i, j, k, p int
	for i = 0; i < n; i++ {
		f.perm[i] = i
		for j = 0; j < n; j++ {
			f.lu[i*n+j] = a.At(i, j)
		}
	}

	var (
		best, cur float64
		pivot, l  complex128
	)
	for k = 0; k < n; k++ {
		p = k
		best = cmplx.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if cur = cmplx.Abs(f.lu[i*n+k]); cur > best {
				best, p = cur, i
			}
		}
		if best == zeroPivot {
			f.singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}
		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			l = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= l * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Det returns det(A) = sign(P)·Π U_ii; 0 for a singular factorisation.
func (f *LUFactors) Det() complex128 {
	if f.singular {
		return 0
	}
	d := complex(f.sign, 0)
	for i := 0; i < f.n; i++ {
		d *= f.lu[i*f.n+i]
	}

	return d
}

// solveInto solves A·x = b for one right-hand side, writing into x.
func (f *LUFactors) solveInto(x, b []complex128) {
	n := f.n
	var (
		i, j int
		sum  complex128
	)
	// forward substitution on the permuted rhs (L has unit diagonal)
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// backward substitution with U
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}
}

// Inverse returns A⁻¹ column by column from the factors.
//
// Errors: ErrSingular.
func (f *LUFactors) Inverse() (*mat.CDense, error) {
	if f.singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	n := f.n
	out := mat.NewCDense(n, n, nil)
	var (
		e   = make([]complex128, n)
		x   = make([]complex128, n)
		i   int
		col int
	)
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		f.solveInto(x, e)
		for i = 0; i < n; i++ {
			out.Set(i, col, x[i])
		}
	}

	return out, nil
}

// Det returns the determinant of the square matrix a.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Det(a mat.CMatrix) (complex128, error) {
	f, err := LU(a)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns a⁻¹.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse(a mat.CMatrix) (*mat.CDense, error) {
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Cofactors returns the cofactor matrix C with C_kl = (−1)^(k+l)·det(minor_kl),
// so that ∂det(a)/∂a_kl = C_kl. Each minor is factorised on its own, which
// keeps the result exact for singular a (where det·a⁻ᵀ is undefined).
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n⁵); intended for the 4×4 gates of this module.
func Cofactors(a mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n, _ := a.Dims()
	out := mat.NewCDense(n, n, nil)
	if n == 1 {
		out.Set(0, 0, 1)
		return out, nil
	}
	minor := mat.NewCDense(n-1, n-1, nil)
	var (
		k, l, i, j, mi, mj int
		f                  *LUFactors
		err                error
		sign               complex128
	)
	for k = 0; k < n; k++ {
		for l = 0; l < n; l++ {
			mi = 0
			for i = 0; i < n; i++ {
				if i == k {
					continue
				}
				mj = 0
				for j = 0; j < n; j++ {
					if j == l {
						continue
					}
					minor.Set(mi, mj, a.At(i, j))
					mj++
				}
				mi++
			}
			if f, err = LU(minor); err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			sign = 1
			if (k+l)%2 == 1 {
				sign = -1
			}
			out.Set(k, l, sign*f.Det())
		}
	}

	return out, nil
}
