// SPDX-License-Identifier: MIT

// Package invariants computes the Makhlin local invariants (g1, g2, g3) of
// two-qubit gates and searches for the locally equivalent gate closest to a
// target.
//
// What:
//   - G1G2G3: invariants from the gate matrix in the magic basis.
//   - G1G2G3FromC1C2C3: closed-form invariants from Weyl coordinates.
//   - JTLI: the local-invariants distance functional in "g" or "c" form.
//   - ClosestLI: random-restart minimisation of ‖U − k1·A(c)·k2‖ over the
//     16 parameters of the local gates k1, k2.
//
// ClosestLI is a global-optimisation heuristic. Its convergence is
// probabilistic: it returns once two successful local runs agree on the
// distance within a tolerance that is relaxed tenfold every 100 restarts.
// By default there is no restart cap; WithMaxRestarts adds one.
//
// Local solvers come from gonum: optimize.Minimize for the named methods,
// and a Levenberg-Marquardt loop over diff/fd Jacobians and mat.Cholesky for
// "leastsq".
package invariants
