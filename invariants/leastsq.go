// SPDX-License-Identifier: MIT

package invariants

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// lmSettings are the Levenberg-Marquardt stopping rules.
type lmSettings struct {
	ftol, xtol, gtol float64
	lambda0          float64
	maxIter          int
}

func defaultLM() lmSettings {
	return lmSettings{
		ftol:    1.49012e-8,
		xtol:    1.49012e-8,
		gtol:    0,
		lambda0: 1e-3,
		maxIter: 200 * (paramCount + 1),
	}
}

// levenbergMarquardt minimises ½‖r(p)‖² for r: ℝⁿ → ℝᵐ from p0.
//
// Implementation:
//   - Jacobian by central differences (diff/fd).
//   - Step from (JᵀJ + λ·diag(JᵀJ))·δ = −Jᵀr via Cholesky; λ shrinks ×10
//     after an accepted step and grows ×10 after a rejected one.
//   - Success when the relative cost reduction is below ftol, the relative
//     step is below xtol, or the gradient is below gtol.
//
// Returns the final parameters and false when maxIter is reached or the
// residual stops being finite.
func levenbergMarquardt(r func(dst, p []float64), p0 []float64, m int, set lmSettings) ([]float64, bool) {
	n := len(p0)
	p := append([]float64(nil), p0...)
	res := make([]float64, m)
	trialRes := make([]float64, m)
	trial := make([]float64, n)
	jac := mat.NewDense(m, n, nil)
	jset := &fd.JacobianSettings{Formula: fd.Central}

	r(res, p)
	cost := 0.5 * floats.Dot(res, res)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return p, false
	}
	lambda := set.lambda0

	var (
		jtj  mat.SymDense
		g    = mat.NewVecDense(n, nil)
		step = mat.NewVecDense(n, nil)
		a    = mat.NewSymDense(n, nil)
		chol mat.Cholesky
	)
	for iter := 0; iter < set.maxIter; iter++ {
		if cost == 0 {
			return p, true
		}
		fd.Jacobian(jac, r, p, jset)
		jtj.SymOuterK(1, jac.T())
		g.MulVec(jac.T(), mat.NewVecDense(m, res))
		if set.gtol > 0 && mat.Norm(g, math.Inf(1)) <= set.gtol {
			return p, true
		}

		for {
			a.CopySym(&jtj)
			for i := 0; i < n; i++ {
				d := jtj.At(i, i)
				if d == 0 {
					d = 1
				}
				a.SetSym(i, i, jtj.At(i, i)+lambda*d)
			}
			if ok := chol.Factorize(a); !ok {
				lambda *= 10
				if lambda > 1e16 {
					return p, false
				}
				continue
			}
			if err := chol.SolveVecTo(step, g); err != nil {
				lambda *= 10
				continue
			}
			step.ScaleVec(-1, step)
			floats.AddTo(trial, p, step.RawVector().Data)
			r(trialRes, trial)
			trialCost := 0.5 * floats.Dot(trialRes, trialRes)

			if !math.IsNaN(trialCost) && trialCost < cost {
				stepNorm := floats.Norm(step.RawVector().Data, 2)
				reduction := (cost - trialCost) / cost
				copy(p, trial)
				copy(res, trialRes)
				cost = trialCost
				lambda = math.Max(lambda/10, 1e-12)
				if reduction <= set.ftol || stepNorm <= set.xtol*(floats.Norm(p, 2)+set.xtol) {
					return p, true
				}
				break
			}
			lambda *= 10
			if lambda > 1e16 {
				// No descent direction left at machine precision.
				return p, true
			}
		}
	}
	return p, false
}
