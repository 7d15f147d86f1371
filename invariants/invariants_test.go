// SPDX-License-Identifier: MIT

package invariants_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/invariants"
	"github.com/katalvlaran/weylchamber/matrix"
	"github.com/katalvlaran/weylchamber/prec"
)

func TestG1G2G3ReferenceGates(t *testing.T) {
	cases := []struct {
		name string
		gate *mat.CDense
		want [3]float64
	}{
		{"identity", gates.Identity(), [3]float64{1, 0, 3}},
		{"cnot", gates.CNOT(), [3]float64{0, 0, 1}},
		{"cphase", gates.CPhase(), [3]float64{0, 0, 1}},
		{"iswap", gates.ISWAP(), [3]float64{0, 0, -1}},
		{"swap", gates.SWAP(), [3]float64{-1, 0, -3}},
		{"bgate", gates.BGate(), [3]float64{0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g1, g2, g3, err := invariants.G1G2G3(tc.gate)
			require.NoError(t, err)
			assert.Equal(t, tc.want, [3]float64{g1, g2, g3})
			assert.False(t, math.Signbit(g1) && g1 == 0, "no negative zero")
			assert.False(t, math.Signbit(g2) && g2 == 0, "no negative zero")
		})
	}
}

func TestG1G2G3MatchesClosedForm(t *testing.T) {
	rng := coordinates.NewRand(11)
	for _, region := range coordinates.Regions() {
		for trial := 0; trial < 20; trial++ {
			c1, c2, c3, err := coordinates.RandomWeylPoint(rng, region)
			require.NoError(t, err)
			a, err := gates.CanonicalGate(c1, c2, c3)
			require.NoError(t, err)

			m1, m2, m3, err := invariants.G1G2G3(a)
			require.NoError(t, err)
			f1, f2, f3 := invariants.G1G2G3FromC1C2C3(c1, c2, c3)
			assert.InDelta(t, f1, m1, 2e-8)
			assert.InDelta(t, f2, m2, 2e-8)
			assert.InDelta(t, f3, m3, 1e-7)
		}
	}
}

func TestG1G2G3LocalInvariance(t *testing.T) {
	rng := coordinates.NewRand(12)
	u, err := coordinates.RandomGate(rng, coordinates.RegionPE)
	require.NoError(t, err)
	k1, err := coordinates.RandomGate(rng, coordinates.RegionSQ)
	require.NoError(t, err)
	k2, err := coordinates.RandomGate(rng, coordinates.RegionSQ)
	require.NoError(t, err)
	v, err := matrix.MulAll(k1, u, k2)
	require.NoError(t, err)

	a1, a2, a3, err := invariants.G1G2G3(u, prec.Exact())
	require.NoError(t, err)
	b1, b2, b3, err := invariants.G1G2G3(v, prec.Exact())
	require.NoError(t, err)
	assert.InDelta(t, a1, b1, 1e-12)
	assert.InDelta(t, a2, b2, 1e-12)
	assert.InDelta(t, a3, b3, 1e-12)
}

func TestG1G2G3Errors(t *testing.T) {
	_, _, _, err := invariants.G1G2G3(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, _, _, err = invariants.G1G2G3(mat.NewCDense(4, 4, nil))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestG1G2G3FromC1C2C3Digits(t *testing.T) {
	g1, _, _ := invariants.G1G2G3FromC1C2C3(0.3, 0.1, 0.05, prec.WithDigits(2))
	assert.InDelta(t, math.Round(g1*100)/100, g1, 1e-15)
}

func TestJTLI(t *testing.T) {
	cnot, id := gates.CNOT(), gates.Identity()

	v, err := invariants.JTLI(cnot, cnot, invariants.FormG)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = invariants.JTLI(cnot, id, invariants.FormG)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12)

	v, err = invariants.JTLI(id, id, invariants.FormC)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)

	v, err = invariants.JTLI(cnot, id, invariants.FormC)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, v, 1e-12)

	_, err = invariants.JTLI(cnot, id, invariants.Form("x"))
	require.ErrorIs(t, err, invariants.ErrUnknownForm)
}

func TestLevenbergMarquardtRosenbrock(t *testing.T) {
	r := func(dst, p []float64) {
		dst[0] = 10 * (p[1] - p[0]*p[0])
		dst[1] = 1 - p[0]
	}
	p, ok := invariants.LevenbergMarquardtForTest(r, []float64{-1.2, 1}, 2)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p[0], 1e-6)
	assert.InDelta(t, 1.0, p[1], 1e-6)
}
