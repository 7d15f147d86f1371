// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/cartan"
	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/invariants"
	"github.com/katalvlaran/weylchamber/matrix"
	"github.com/katalvlaran/weylchamber/prec"
)

// complexRows renders a matrix as rows of "re+imi" strings for YAML.
func complexRows(m mat.CMatrix, p prec.Options) [][]string {
	rows := matrix.Rows(m)
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = make([]string, len(r))
		for j, v := range r {
			out[i][j] = fmt.Sprint(complex(p.Apply(real(v)), p.Apply(imag(v))))
		}
	}
	return out
}

type cartanReport struct {
	Gate  string     `yaml:"gate"`
	C     [3]float64 `yaml:"c1c2c3"`
	Phase string     `yaml:"phase"`
	K1    [][]string `yaml:"k1"`
	A     [][]string `yaml:"a"`
	K2    [][]string `yaml:"k2"`
}

func (a *app) cartanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cartan",
		Short: "Cartan decomposition U = phase·K1·A·K2 of a gate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, u, err := a.resolveGate()
			if err != nil {
				return err
			}
			d, err := cartan.Decompose(u)
			if err != nil {
				return err
			}
			p := prec.Gather(a.precision())
			r := cartanReport{
				Gate:  name,
				C:     [3]float64{p.Apply(d.C1), p.Apply(d.C2), p.Apply(d.C3)},
				Phase: fmt.Sprint(complex(p.Apply(real(d.Phase)), p.Apply(imag(d.Phase)))),
				K1:    complexRows(d.K1, p),
				A:     complexRows(d.A, p),
				K2:    complexRows(d.K2, p),
			}
			return a.emit(r, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "gate:   %s\nc1c2c3: (%g, %g, %g)\nphase:  %s\nK1:     %v\nA:      %v\nK2:     %v\n",
					r.Gate, r.C[0], r.C[1], r.C[2], r.Phase, r.K1, r.A, r.K2)
				return err
			})
		},
	}
}

var errBadClosest = errors.New("weylchamber: limit must be positive and finite, max-restarts non-negative")

type closestReport struct {
	Gate      string     `yaml:"gate"`
	Target    [3]float64 `yaml:"target_c1c2c3"`
	Distance  float64    `yaml:"distance"`
	Converged bool       `yaml:"converged"`
	U         [][]string `yaml:"u"`
}

func (a *app) closestCmd() *cobra.Command {
	var c [3]float64
	cmd := &cobra.Command{
		Use:   "closest",
		Short: "Closest gate to --gate with the Weyl coordinates --c1 --c2 --c3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, u, err := a.resolveGate()
			if err != nil {
				return err
			}
			method, err := invariants.ParseMethod(a.v.GetString("closest.method"))
			if err != nil {
				return err
			}
			if err = coordinates.ValidateWeylChamber(c[0], c[1], c[2]); err != nil {
				return err
			}
			limit, restarts := a.v.GetFloat64("closest.limit"), a.v.GetInt("closest.max_restarts")
			if !(limit > 0) || math.IsInf(limit, 1) || restarts < 0 {
				return fmt.Errorf("%w (limit=%g, max-restarts=%d)", errBadClosest, limit, restarts)
			}
			got, err := invariants.ClosestLI(u, c[0], c[1], c[2],
				invariants.WithMethod(method),
				invariants.WithLimit(limit),
				invariants.WithMaxRestarts(restarts),
				invariants.WithRand(coordinates.NewRand(a.v.GetInt64("seed"))),
				invariants.WithLogger(a.log.WithField("cmd", "closest")),
			)
			converged := err == nil
			if err != nil && !errors.Is(err, invariants.ErrNotConverged) {
				return err
			}
			if !converged {
				a.log.WithError(err).Warn("returning best gate found")
			}
			dist, err := matrix.Distance(u, got)
			if err != nil {
				return err
			}
			r := closestReport{
				Gate: name, Target: c, Distance: dist, Converged: converged,
				U: complexRows(got, prec.Gather(a.precision())),
			}
			a.log.WithFields(logrus.Fields{"distance": dist, "method": method}).Info("closest gate found")
			return a.emit(r, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "gate:      %s\ntarget:    (%g, %g, %g)\ndistance:  %.3e\nconverged: %t\nU:         %v\n",
					r.Gate, c[0], c[1], c[2], r.Distance, r.Converged, r.U)
				return err
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&c[0], "c1", 0.5, "target c1 (units of π)")
	f.Float64Var(&c[1], "c2", 0, "target c2 (units of π)")
	f.Float64Var(&c[2], "c3", 0, "target c3 (units of π)")
	f.String("method", "leastsq", "local minimiser: leastsq, nelder-mead, bfgs, lbfgs, cg, gradient-descent")
	f.Float64("limit", 1e-6, "initial distance agreement tolerance")
	f.Int("max-restarts", 1000, "restart cap, 0 for none")
	a.bind("closest.method", f.Lookup("method"))
	a.bind("closest.limit", f.Lookup("limit"))
	a.bind("closest.max_restarts", f.Lookup("max-restarts"))
	return cmd
}
