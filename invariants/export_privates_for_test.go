// SPDX-License-Identifier: MIT

package invariants

// Test bridge: exposes the least-squares solver to invariants_test.

// LevenbergMarquardtForTest runs the solver with default stopping rules.
func LevenbergMarquardtForTest(r func(dst, p []float64), p0 []float64, m int) ([]float64, bool) {
	return levenbergMarquardt(r, p0, m, defaultLM())
}
