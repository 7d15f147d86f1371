// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on caller input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape is invalid (r<=0 or c<=0), or when
	// an operation requires a fixed shape (4×4 for two-qubit gates) and the
	// input has another one.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be (complex) symmetric
	// violated symmetry beyond tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the underlying eigen-solver did not
	// converge, or that its output failed the residual check.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSingular is returned when LU meets an exactly zero pivot column.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opKron      = "Kron"
	opTrace     = "Trace"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
	opCofactors = "Cofactors"
	opEigvals   = "Eigvals"
	opEigSym    = "EigSymmetricUnitary"
	opExpm      = "Expm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so that errors.Is keeps matching the sentinel.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
