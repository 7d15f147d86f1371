// SPDX-License-Identifier: MIT

// Package cartan computes the Cartan (KAK) decomposition of a two-qubit gate,
//
//	U = Phase · K1 · A · K2,
//
// where K1, K2 are local gates in SU(2)⊗SU(2), A is the canonical gate of
// the Weyl coordinates of U, and Phase is a global phase.
//
// The construction follows Zhang et al., PRA 67, 042313 (2003) and
// D. Reich, diploma thesis (FU Berlin, 2010), appendix E: in the magic basis
// the local gates are real orthogonal matrices O1, O2 and A is diagonal, so
// m = UBᵀ·UB = O2ᵀ·F²·O2 is diagonalised by a real orthogonal matrix.
//
// Decompose verifies its own result (orthogonality of O1 and O2,
// reconstruction of U within 1e-12). A failed self-check is reported as an
// error wrapping ErrConsistency; it signals a non-unitary input or a
// numerical defect, never a partially valid answer.
package cartan
