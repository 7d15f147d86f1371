// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Expm returns the matrix exponential of a square complex matrix.
//
// The exponential is taken on the real embedding [[Re, −Im], [Im, Re]]
// with mat.Dense.Exp (scaling and squaring with Padé approximants); the
// embedding commutes with exp, so the complex result is read back from the
// left block column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf.
func Expm(a mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	var e mat.Dense
	e.Exp(embed(a))

	return unembed(&e), nil
}
