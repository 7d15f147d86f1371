// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Products, Kronecker product and trace.
//   - Mul delegates to the complex GEMM of gonum's cblas128.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: view both operands as cblas128.General and run Gemm into a
//     freshly allocated result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r·k·c).
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1,
		asDense(a).RawCMatrix(), asDense(b).RawCMatrix(),
		0, out.RawCMatrix())

	return out, nil
}

// MulAll returns the left-to-right product ms[0]·ms[1]·…·ms[n-1].
//
// Errors: ErrNilMatrix (also for an empty list), ErrDimensionMismatch.
func MulAll(ms ...mat.CMatrix) (*mat.CDense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		acc = Clone(ms[0])
		err error
	)
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Kron returns the Kronecker product a⊗b.
//
// Errors: ErrNilMatrix.
func Kron(a, b mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	var (
		i, j, k, l int
		av         complex128
	)
	for i = 0; i < ar; i++ {
		for j = 0; j < ac; j++ {
			av = a.At(i, j)
			if av == 0 {
				continue
			}
			for k = 0; k < br; k++ {
				for l = 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, av*b.At(k, l))
				}
			}
		}
	}

	return out, nil
}

// Trace returns Σ a_ii.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(a mat.CMatrix) (complex128, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n, _ := a.Dims()
	var sum complex128
	for i := 0; i < n; i++ {
		sum += a.At(i, i)
	}

	return sum, nil
}

// IsUnitary reports whether ‖a†a − I‖_max ≤ tol. Non-square input is not unitary.
func IsUnitary(a mat.CMatrix, tol float64) bool {
	if ValidateSquare(a) != nil {
		return false
	}
	n, _ := a.Dims()
	p, err := Mul(ConjTranspose(a), a)
	if err != nil {
		return false
	}
	d, err := MaxAbsDiff(p, Identity(n))

	return err == nil && d <= tol
}
