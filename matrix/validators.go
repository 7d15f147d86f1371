// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape/nil/finiteness checks.
//   - Keep kernels minimal by delegating guards here.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).
//   - Errors are wrapped with the validator name; match them with errors.Is.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil *mat.CDense.
func isNil(m mat.CMatrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*mat.CDense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m mat.CMatrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m mat.CMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateShape checks that m is non-nil and exactly r×c.
// The error message names the observed shape.
//
// Errors: ErrNilMatrix, ErrBadShape.
func ValidateShape(m mat.CMatrix, r, c int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	mr, mc := m.Dims()
	if mr != r || mc != c {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%w: want %dx%d, got %dx%d", ErrBadShape, r, c, mr, mc))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b mat.CMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
func ValidateMulCompatible(a, b mat.CMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects matrices holding NaN or ±Inf in either component.
func ValidateFinite(m mat.CMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if cmplx.IsNaN(v) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("%w at (%d,%d)", ErrNaNInf, i, j))
			}
		}
	}

	return nil
}
