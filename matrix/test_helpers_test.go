// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (seeded random unitaries, Paulis).
//   - A wrapper hiding *mat.CDense to exercise the generic At-based paths.

package matrix_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/matrix"
)

const tol = 1e-12

// hide wraps a CMatrix so type assertions to *mat.CDense fail.
type hide struct{ mat.CMatrix }

func pauliX() *mat.CDense { return matrix.MustFromRows([][]complex128{{0, 1}, {1, 0}}) }
func pauliZ() *mat.CDense { return matrix.MustFromRows([][]complex128{{1, 0}, {0, -1}}) }

// randomComplex fills an r×c matrix with standard normal entries.
func randomComplex(rng *rand.Rand, r, c int) *mat.CDense {
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	return m
}

// randomUnitary orthonormalises a random complex matrix (Gram-Schmidt on columns).
func randomUnitary(rng *rand.Rand, n int) *mat.CDense {
	a := randomComplex(rng, n, n)
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			var dot complex128
			for i := 0; i < n; i++ {
				dot += cmplx.Conj(a.At(i, k)) * a.At(i, j)
			}
			for i := 0; i < n; i++ {
				a.Set(i, j, a.At(i, j)-dot*a.At(i, k))
			}
		}
		var norm float64
		for i := 0; i < n; i++ {
			norm += real(a.At(i, j) * cmplx.Conj(a.At(i, j)))
		}
		norm = math.Sqrt(norm)
		for i := 0; i < n; i++ {
			a.Set(i, j, a.At(i, j)/complex(norm, 0))
		}
	}
	return a
}

// randomOrthogonal returns the real part of a unitary-like construction: a
// real orthonormal basis from Gram-Schmidt on a real normal matrix.
func randomOrthogonal(rng *rand.Rand, n int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)
	return &q
}

func requireClose(t *testing.T, want, got mat.CMatrix, eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqual(t, d, eps, msgAndArgs...)
}
