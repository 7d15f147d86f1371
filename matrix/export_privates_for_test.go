// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Test bridge: exposes the real embedding to matrix_test.

// EmbedForTest returns the real 2n×2n embedding of a.
func EmbedForTest(a mat.CMatrix) *mat.Dense { return embed(a) }

// UnembedForTest reads a complex matrix back from an embedding.
func UnembedForTest(e mat.Matrix) *mat.CDense { return unembed(e) }

// ConjugatedEigvalsForTest returns the eigenvalues of the real embedding of
// a, skipping the direct factorisation and starting with the reflected retry.
func ConjugatedEigvalsForTest(a mat.CMatrix) ([]complex128, bool) {
	return embeddedValues(embed(a), 1)
}
