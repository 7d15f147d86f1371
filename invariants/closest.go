// SPDX-License-Identifier: MIT

package invariants

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
)

// problem is the parametrised family k1(p[:8])·A·k2(p[8:]) and its target.
type problem struct {
	target *mat.CDense
	a      *mat.CDense
}

// gate returns SQ(p[:8])·A·SQ(p[8:]).
func (pr problem) gate(p []float64) (*mat.CDense, error) {
	left, err := gates.SQUnitary(p[:8])
	if err != nil {
		return nil, err
	}
	right, err := gates.SQUnitary(p[8:])
	if err != nil {
		return nil, err
	}
	return matrix.MulAll(left, pr.a, right)
}

// residual writes vec(gate(p) − target) into dst: column-major, real parts
// first, then imaginary parts. len(dst) must be 32.
func (pr problem) residual(dst, p []float64) {
	g, err := pr.gate(p)
	if err != nil {
		for i := range dst {
			dst[i] = math.NaN()
		}
		return
	}
	n := gates.Dim * gates.Dim
	var i, j, k int
	for j = 0; j < gates.Dim; j++ {
		for i = 0; i < gates.Dim; i++ {
			d := g.At(i, j) - pr.target.At(i, j)
			dst[k] = real(d)
			dst[k+n] = imag(d)
			k++
		}
	}
}

// distance is ‖target − gate(p)‖_F.
func (pr problem) distance(p []float64) float64 {
	g, err := pr.gate(p)
	if err != nil {
		return math.Inf(1)
	}
	d, err := matrix.Distance(pr.target, g)
	if err != nil {
		return math.Inf(1)
	}
	return d
}

// ClosestLI returns the gate k1·A(c1, c2, c3)·k2 closest to u in the
// Frobenius norm, where A is the canonical gate and k1, k2 are local.
//
// Implementation:
//   - Stage 1: draw 16 starting parameters uniformly in [0, 2π).
//   - Stage 2: run the configured local minimiser (WithMethod).
//   - Stage 3: on success compare the distance to the best one so far; if
//     they agree within the limit, return the current gate, otherwise keep
//     the smaller distance and restart.
//   - Every RelaxEvery restarts the limit grows tenfold.
//
// Convergence is probabilistic and, by default, unbounded. With
// WithMaxRestarts(n) the loop stops after n restarts and returns the best
// gate seen together with ErrNotConverged (ErrNoSuccess if no local run
// succeeded).
//
// Errors: matrix.ErrBadShape, matrix.ErrNaNInf (u or coordinates not
// finite), ErrNotConverged, ErrNoSuccess.
func ClosestLI(u mat.CMatrix, c1, c2, c3 float64, opts ...Option) (*mat.CDense, error) {
	if err := matrix.ValidateShape(u, gates.Dim, gates.Dim); err != nil {
		return nil, invariantsErrorf(opClosestLI, err)
	}
	if err := matrix.ValidateFinite(u); err != nil {
		return nil, invariantsErrorf(opClosestLI, err)
	}
	a, err := gates.CanonicalGate(c1, c2, c3)
	if err != nil {
		return nil, invariantsErrorf(opClosestLI, err)
	}
	o := gatherOptions(opts...)
	pr := problem{target: matrix.Clone(u), a: a}
	log := o.log.WithFields(logrus.Fields{"method": string(o.method)})
	log.Debug("closest local-invariants gate search")

	var (
		limit    = o.limit
		distMin  = math.Inf(1)
		haveMin  bool
		best     *mat.CDense
		restarts int
		sinceLim int
	)
	for {
		if o.maxRestarts > 0 && restarts >= o.maxRestarts {
			if best == nil {
				return nil, invariantsErrorf(opClosestLI, ErrNoSuccess)
			}
			log.WithFields(logrus.Fields{"restart": restarts, "distance": distMin}).Debug("restart budget exhausted")
			return best, invariantsErrorf(opClosestLI,
				fmt.Errorf("%w after %d restarts (best distance %.3g)", ErrNotConverged, restarts, distMin))
		}
		restarts++
		sinceLim++
		if sinceLim > RelaxEvery {
			sinceLim = 0
			limit *= 10
			log.WithField("limit", limit).Debug("limit relaxed")
		}

		p0 := make([]float64, paramCount)
		for i := range p0 {
			p0[i] = 2 * math.Pi * o.uniform()
		}
		p, ok := localMinimise(pr, o.method, p0)
		if !ok {
			continue
		}
		uMin, err := pr.gate(p)
		if err != nil {
			continue
		}
		dist := pr.distance(p)
		entry := log.WithFields(logrus.Fields{"restart": restarts, "distance": dist, "limit": limit})
		if !haveMin {
			haveMin, distMin, best = true, dist, uMin
			entry.Debug("first successful run")
			continue
		}
		entry.WithField("delta", math.Abs(dist-distMin)).Debug("successful run")
		if math.Abs(dist-distMin) < limit {
			return uMin, nil
		}
		if dist < distMin {
			distMin, best = dist, uMin
		}
	}
}

// localMinimise runs one local search from p0 and reports success.
func localMinimise(pr problem, method Method, p0 []float64) ([]float64, bool) {
	if method == MethodLeastSq {
		return levenbergMarquardt(pr.residual, p0, 2*gates.Dim*gates.Dim, defaultLM())
	}

	prob := optimize.Problem{Func: pr.distance}
	var m optimize.Method
	switch method {
	case MethodNelderMead:
		m = &optimize.NelderMead{}
	case MethodBFGS:
		m = &optimize.BFGS{}
	case MethodLBFGS:
		m = &optimize.LBFGS{}
	case MethodCG:
		m = &optimize.CG{}
	case MethodGradientDescent:
		m = &optimize.GradientDescent{}
	default:
		return nil, false
	}
	if method != MethodNelderMead {
		prob.Grad = func(grad, x []float64) {
			fd.Gradient(grad, pr.distance, x, &fd.Settings{Formula: fd.Central})
		}
	}
	res, err := optimize.Minimize(prob, p0, nil, m)
	if err != nil || res == nil || !converged(res.Status) {
		return nil, false
	}
	return res.X, true
}

// converged reports whether a gonum status means the method stopped at a
// local minimum rather than on a resource limit.
func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
		return true
	default:
		return false
	}
}
