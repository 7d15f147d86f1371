// SPDX-License-Identifier: MIT

// Package gates is the two-qubit gate algebra: fixed reference gates, the
// magic (Bell) basis transform, canonical gates generated by Weyl
// coordinates, and basis-mapping utilities between states and gates.
//
// Gates are 4×4 *mat.CDense values in the computational basis
// |00⟩, |01⟩, |10⟩, |11⟩. The reference gates are process-wide read-only
// tables; the exported constructors (CNOT, Qmagic, ...) return fresh copies
// that callers may modify.
//
// States are plain []complex128 kets of any dimension ≥ 4; the first four
// components span the logical two-qubit subspace, extra components model
// leakage levels.
//
// Usage:
//
//	a, _ := gates.CanonicalGate(0.5, 0.25, 0)   // B-gate class
//	ub, _ := gates.ToMagic(a)                   // diagonal in the Bell basis
//	bell, _ := gates.BellBasis(gates.CanonicalBasis(4))
package gates
