// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/entanglers"
	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/invariants"
	"github.com/katalvlaran/weylchamber/prec"
)

const randomGate = "random"

// resolveGate returns the gate selected by --gate, --region and --seed.
func (a *app) resolveGate() (string, *mat.CDense, error) {
	name := a.v.GetString("gate")
	if name != randomGate {
		g, err := gates.ByName(name)
		return name, g, err
	}
	region, err := coordinates.ParseRegion(a.v.GetString("region"))
	if err != nil {
		return "", nil, err
	}
	rng := coordinates.NewRand(a.v.GetInt64("seed"))
	g, err := coordinates.RandomGate(rng, region)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("random(%s, seed=%d)", region, a.v.GetInt64("seed")), g, nil
}

// gateReport summarises the nonlocal content of one gate.
type gateReport struct {
	Gate             string     `yaml:"gate"`
	C                [3]float64 `yaml:"c1c2c3"`
	G                [3]float64 `yaml:"g1g2g3"`
	Region           string     `yaml:"region"`
	Concurrence      float64    `yaml:"concurrence"`
	FPE              float64    `yaml:"f_pe"`
	PerfectEntangler bool       `yaml:"perfect_entangler"`
}

func report(name string, u mat.CMatrix, p prec.Option) (gateReport, error) {
	c1, c2, c3, err := coordinates.C1C2C3(u, p)
	if err != nil {
		return gateReport{}, err
	}
	g1, g2, g3, err := invariants.G1G2G3(u, p)
	if err != nil {
		return gateReport{}, err
	}
	region, err := coordinates.WeylRegion(c1, c2, c3, false)
	if err != nil {
		return gateReport{}, err
	}
	pe, err := coordinates.PointInPE(c1, c2, c3, false)
	if err != nil {
		return gateReport{}, err
	}
	return gateReport{
		Gate:             name,
		C:                [3]float64{c1, c2, c3},
		G:                [3]float64{g1, g2, g3},
		Region:           string(region),
		Concurrence:      entanglers.Concurrence(c1, c2, c3),
		FPE:              entanglers.FPE(g1, g2, g3),
		PerfectEntangler: pe,
	}, nil
}

func (a *app) coordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coords",
		Short: "Weyl coordinates, local invariants, region and concurrence of a gate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, u, err := a.resolveGate()
			if err != nil {
				return err
			}
			r, err := report(name, u, a.precision())
			if err != nil {
				return err
			}
			a.log.WithField("gate", name).Debug("coordinates computed")
			return a.emit(r, func(w io.Writer) error {
				_, err := fmt.Fprintf(w,
					"gate:        %s\nc1c2c3:      (%g, %g, %g)\ng1g2g3:      (%g, %g, %g)\nregion:      %s\nconcurrence: %g\nF_PE:        %g\n",
					r.Gate, r.C[0], r.C[1], r.C[2], r.G[0], r.G[1], r.G[2], r.Region, r.Concurrence, r.FPE)
				return err
			})
		},
	}
}

func (a *app) gatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the named gates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := gates.Names()
			return a.emit(names, func(w io.Writer) error {
				for _, n := range names {
					if _, err := fmt.Fprintln(w, n); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
