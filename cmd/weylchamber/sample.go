// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/weylchamber/chamber"
	"github.com/katalvlaran/weylchamber/coordinates"
)

var errBadCount = errors.New("weylchamber: count and workers must be positive")

// sampleRow is one random gate reduced to its chamber data.
type sampleRow struct {
	C           [3]float64 `yaml:"c1c2c3"`
	Region      string     `yaml:"region"`
	Concurrence float64    `yaml:"concurrence"`
}

// sample draws count random gates in region on workers goroutines.
// Worker w owns the indices w, w+workers, ... and its own derived stream,
// so the result depends on seed and workers only.
func (a *app) sample(ctx context.Context, region coordinates.Region, count, workers int, seed int64) ([]sampleRow, error) {
	if count <= 0 || workers <= 0 {
		return nil, fmt.Errorf("%w (count=%d, workers=%d)", errBadCount, count, workers)
	}
	if workers > count {
		workers = count
	}
	base := coordinates.NewRand(seed)
	streams := make([]*rand.Rand, workers)
	for w := range streams {
		streams[w] = coordinates.DeriveRand(base, uint64(w))
	}

	p := a.precision()
	rows := make([]sampleRow, count)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < count; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				u, err := coordinates.RandomGate(streams[w], region)
				if err != nil {
					return err
				}
				r, err := report("", u, p)
				if err != nil {
					return fmt.Errorf("sample %d: %w", i, err)
				}
				rows[i] = sampleRow{C: r.C, Region: r.Region, Concurrence: r.Concurrence}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"count":   count,
		"workers": workers,
		"region":  string(region),
	}).Debug("sampling done")
	return rows, nil
}

func (a *app) sampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Weyl coordinates of random gates drawn in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			region, err := coordinates.ParseRegion(a.v.GetString("region"))
			if err != nil {
				return err
			}
			rows, err := a.sample(cmd.Context(), region,
				a.v.GetInt("sample.count"), a.v.GetInt("sample.workers"), a.v.GetInt64("seed"))
			if err != nil {
				return err
			}
			return a.emit(rows, func(w io.Writer) error {
				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%g %g %g %s %g\n",
						r.C[0], r.C[1], r.C[2], r.Region, r.Concurrence); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addSampleFlags(a, cmd)
	return cmd
}

// addSampleFlags registers --count and --workers on cmd. sample and scene
// share the viper keys, so the binding happens when cmd runs.
func addSampleFlags(a *app, cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("count", 100, "number of random gates")
	f.Int("workers", 4, "parallel workers")
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		a.bind("sample.count", cmd.Flags().Lookup("count"))
		a.bind("sample.workers", cmd.Flags().Lookup("workers"))
	}
}

func (a *app) sceneCmd() *cobra.Command {
	var points bool
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Weyl chamber scene (geometry, renderer settings, scatter points) as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := chamber.DefaultRenderer()
			if points {
				region, err := coordinates.ParseRegion(a.v.GetString("region"))
				if err != nil {
					return err
				}
				rows, err := a.sample(cmd.Context(), region,
					a.v.GetInt("sample.count"), a.v.GetInt("sample.workers"), a.v.GetInt64("seed"))
				if err != nil {
					return err
				}
				c1s := make([]float64, len(rows))
				c2s := make([]float64, len(rows))
				c3s := make([]float64, len(rows))
				for i, row := range rows {
					c1s[i], c2s[i], c3s[i] = row.C[0], row.C[1], row.C[2]
				}
				if err = r.Scatter(c1s, c2s, c3s, chamber.Style{"c": "blue", "marker": "o"}); err != nil {
					return err
				}
			}
			return r.WriteYAML(a.out)
		},
	}
	cmd.Flags().BoolVar(&points, "points", false, "add random gates (see --region, --count, --seed) as a scatter set")
	addSampleFlags(a, cmd)
	return cmd
}
