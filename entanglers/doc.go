// SPDX-License-Identifier: MIT

// Package entanglers implements the perfect-entangler functional and its
// helpers.
//
// A two-qubit gate is a perfect entangler when its Weyl coordinates lie in
// the polyhedron {c1+c2 ≥ ½, c1−c2 ≤ ½, c2+c3 ≤ ½} inside the chamber.
//
//   - Concurrence: the entangling power of a Weyl point.
//   - FPE: the perfect-entangler functional F = g3·√(g1²+g2²) − g1, zero on
//     the polyhedron boundary.
//   - ProjectToPE: orthogonal projection onto the nearest polyhedron face.
//   - GradientAKl: ∂F/∂Re UB + i·∂F/∂Im UB for a gate UB in the magic basis.
//   - ChiConstructor: backward boundary states for Krotov optimisation of F.
package entanglers
