// SPDX-License-Identifier: MIT

// Package matrix provides the complex dense linear algebra used by the
// two-qubit gate invariants, as thin adapters over gonum.
//
// The package provides:
//
//   - Validators (ValidateShape, ValidateSquare, ...) returning sentinel
//     errors wrapped with the validator name.
//   - Constructors and element-wise helpers over *mat.CDense (FromRows,
//     Identity, Diag, Transpose, ConjTranspose, Add, Sub, Scale, ...).
//   - Products: Mul (cblas128 GEMM), MulAll, Kron, Trace, FrobeniusNorm.
//   - LU with partial pivoting: Det, Inverse, Cofactors.
//   - Spectral routines: Eigvals for general complex matrices and
//     EigSymmetricUnitary for complex-symmetric unitaries, both reduced to
//     gonum's real solvers.
//   - Expm, the matrix exponential, via gonum's mat.Dense.Exp.
//
// All functions accept mat.CMatrix and return freshly allocated
// *mat.CDense values; inputs are never mutated.
//
// Errors are package sentinels (ErrBadShape, ErrNonSquare, ErrSingular,
// ErrEigenFailed, ...) wrapped with an operation tag; match them with
// errors.Is.
package matrix
