// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weylchamber/chamber"
	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/gates"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestGatesListsNames(t *testing.T) {
	out, _, err := run(t, "gates")
	require.NoError(t, err)
	assert.Equal(t, gates.Names(), strings.Fields(out))
}

func TestCoordsCNOT(t *testing.T) {
	out, _, err := run(t, "coords", "--gate", "cnot", "-o", "yaml")
	require.NoError(t, err)

	var r gateReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "cnot", r.Gate)
	assert.Equal(t, [3]float64{0.5, 0, 0}, r.C)
	assert.Equal(t, [3]float64{0, 0, 1}, r.G)
	assert.Equal(t, string(coordinates.RegionPE), r.Region)
	assert.Equal(t, 1.0, r.Concurrence)
	assert.True(t, r.PerfectEntangler)
}

func TestCoordsText(t *testing.T) {
	out, _, err := run(t, "coords", "--gate", "identity")
	require.NoError(t, err)
	assert.Contains(t, out, "c1c2c3:      (0, 0, 0)")
	assert.Contains(t, out, "region:      W0")
}

func TestCoordsGateFromEnvironment(t *testing.T) {
	t.Setenv("WEYLCHAMBER_GATE", "swap")
	out, _, err := run(t, "coords", "-o", "yaml")
	require.NoError(t, err)

	var r gateReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "swap", r.Gate)
	assert.Equal(t, 0.0, r.Concurrence)
}

func TestCoordsGateFromConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "weylchamber.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("gate: iswap\noutput: yaml\nprecision: 4\n"), 0o600))

	out, _, err := run(t, "coords", "--config", cfg)
	require.NoError(t, err)
	var r gateReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "iswap", r.Gate)
	assert.Equal(t, [3]float64{0.5, 0.5, 0}, r.C)
}

func TestCoordsRandomGateRegion(t *testing.T) {
	out, _, err := run(t, "coords", "--gate", "random", "--region", "W1", "--seed", "7", "-o", "yaml")
	require.NoError(t, err)
	var r gateReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, string(coordinates.RegionW1), r.Region)
	assert.Contains(t, r.Gate, "random")
}

func TestCoordsErrors(t *testing.T) {
	_, _, err := run(t, "coords", "--gate", "nope")
	require.ErrorIs(t, err, gates.ErrUnknownGate)

	_, _, err = run(t, "coords", "--gate", "random", "--region", "W9")
	require.ErrorIs(t, err, coordinates.ErrUnknownRegion)

	_, _, err = run(t, "coords", "-o", "json")
	require.ErrorIs(t, err, errBadFormat)

	_, _, err = run(t, "coords", "--precision=-1")
	require.ErrorIs(t, err, errBadPrecision)

	_, _, err = run(t, "coords", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, "coords", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNegativePrecisionFromEnvironment(t *testing.T) {
	t.Setenv("WEYLCHAMBER_PRECISION", "-3")
	for _, cmd := range []string{"coords", "cartan", "sample"} {
		_, _, err := run(t, cmd)
		require.ErrorIs(t, err, errBadPrecision, cmd)
	}
}

func TestCartanCNOT(t *testing.T) {
	out, _, err := run(t, "cartan", "--gate", "cnot", "-o", "yaml")
	require.NoError(t, err)

	var r cartanReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, [3]float64{0.5, 0, 0}, r.C)
	for _, m := range [][][]string{r.K1, r.A, r.K2} {
		require.Len(t, m, gates.Dim)
		for _, row := range m {
			require.Len(t, row, gates.Dim)
		}
	}
}

func TestClosestFindsTarget(t *testing.T) {
	out, _, err := run(t, "closest", "--gate", "cnot", "--c1", "0.5", "--c2", "0", "--c3", "0",
		"--max-restarts", "500", "-o", "yaml")
	require.NoError(t, err)

	var r closestReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.True(t, r.Converged)
	assert.Less(t, r.Distance, 1e-5)
	assert.Len(t, r.U, gates.Dim)
}

func TestClosestRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "closest", "--c1", "0.9", "--c2", "0.4", "--c3", "0")
	require.ErrorIs(t, err, coordinates.ErrNotInWeylChamber)

	_, _, err = run(t, "closest", "--limit", "0")
	require.ErrorIs(t, err, errBadClosest)

	_, _, err = run(t, "closest", "--max-restarts", "-1")
	require.ErrorIs(t, err, errBadClosest)

	_, _, err = run(t, "closest", "--method", "newton")
	require.Error(t, err)
}

func TestSampleDeterministic(t *testing.T) {
	args := []string{"sample", "--region", "W0", "--count", "12", "--workers", "3", "--seed", "5", "-o", "yaml"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var rows []sampleRow
	require.NoError(t, yaml.Unmarshal([]byte(first), &rows))
	require.Len(t, rows, 12)
	for i, r := range rows {
		assert.Equal(t, string(coordinates.RegionW0), r.Region, "row %d", i)
		assert.True(t, coordinates.PointInWeylChamber(r.C[0], r.C[1], r.C[2]), "row %d", i)
	}
}

func TestSampleMoreWorkersThanGates(t *testing.T) {
	out, _, err := run(t, "sample", "--count", "2", "--workers", "8")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestSampleRejectsBadCount(t *testing.T) {
	_, _, err := run(t, "sample", "--count", "0")
	require.ErrorIs(t, err, errBadCount)
}

func TestSceneWithPoints(t *testing.T) {
	out, _, err := run(t, "scene", "--points", "--count", "5", "--region", "PE")
	require.NoError(t, err)

	var sc struct {
		WeylLines []chamber.Line       `yaml:"weyl_lines"`
		PELines   []chamber.Line       `yaml:"pe_lines"`
		Scatter   []chamber.ScatterSet `yaml:"scatter"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &sc))
	assert.Len(t, sc.WeylLines, len(chamber.WeylEdges()))
	assert.Len(t, sc.PELines, len(chamber.PEEdges()))
	require.Len(t, sc.Scatter, 1)
	assert.Len(t, sc.Scatter[0].C1, 5)
	for i := range sc.Scatter[0].C1 {
		in, err := coordinates.PointInPE(sc.Scatter[0].C1[i], sc.Scatter[0].C2[i], sc.Scatter[0].C3[i], false)
		require.NoError(t, err)
		assert.True(t, in)
	}
}

func TestSceneWithoutPoints(t *testing.T) {
	out, _, err := run(t, "scene")
	require.NoError(t, err)
	var sc chamber.Scene
	require.NoError(t, yaml.Unmarshal([]byte(out), &sc))
	assert.Len(t, sc.WeylLines, len(chamber.WeylEdges()))
	assert.Empty(t, sc.Scatter)
}
