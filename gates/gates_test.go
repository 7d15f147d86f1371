// SPDX-License-Identifier: MIT

package gates_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/gates"
	"github.com/katalvlaran/weylchamber/matrix"
)

func requireClose(t *testing.T, want, got mat.CMatrix, eps float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqual(t, d, eps)
}

func randomComplex(rng *rand.Rand) *mat.CDense {
	m := mat.NewCDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	return m
}

func randomParams(rng *rand.Rand, n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 2 * math.Pi * rng.Float64()
	}
	return p
}

func TestReferenceGatesAreUnitary(t *testing.T) {
	for _, name := range gates.Names() {
		g, err := gates.ByName(name)
		require.NoError(t, err, name)
		assert.True(t, matrix.IsUnitary(g, 1e-14), name)
	}
	for _, g := range []*mat.CDense{gates.SxSx(), gates.SySy(), gates.SzSz(), gates.Identity()} {
		assert.True(t, matrix.IsUnitary(g, 0))
	}
}

func TestByName(t *testing.T) {
	g, err := gates.ByName("cnot")
	require.NoError(t, err)
	requireClose(t, gates.CNOT(), g, 0)

	// callers get copies
	g.Set(0, 0, 42)
	requireClose(t, gates.CNOT(), mustByName(t, "cnot"), 0)

	_, err = gates.ByName("toffoli")
	require.ErrorIs(t, err, gates.ErrUnknownGate)
}

func mustByName(t *testing.T, name string) *mat.CDense {
	g, err := gates.ByName(name)
	require.NoError(t, err)
	return g
}

func TestMagicRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		a := randomComplex(rng)
		ub, err := gates.ToMagic(a)
		require.NoError(t, err)
		back, err := gates.FromMagic(ub)
		require.NoError(t, err)
		requireClose(t, a, back, 1e-14)

		ub2, err := gates.ToMagic(back)
		require.NoError(t, err)
		requireClose(t, ub, ub2, 1e-14)
	}
}

func TestMagicRejectsShape(t *testing.T) {
	_, err := gates.ToMagic(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = gates.FromMagic(mat.NewCDense(4, 2, nil))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = gates.ToMagic(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLocalGatesAreRealInMagicBasis(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 10; trial++ {
		k, err := gates.SQUnitary(randomParams(rng, 8))
		require.NoError(t, err)
		require.True(t, matrix.IsUnitary(k, 1e-13))

		// strip the global phase so the magic-basis image lies in SO(4)
		det, err := matrix.Det(k)
		require.NoError(t, err)
		kb, err := gates.ToMagic(matrix.Scale(1/cmplx.Pow(det, 0.25), k))
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				// entries are real up to the ±1, ±i branch of the fourth root
				v := kb.At(i, j)
				assert.InDelta(t, 0, math.Min(math.Abs(imag(v)), math.Abs(real(v))), 1e-12)
			}
		}
	}
}

func TestCanonicalGate(t *testing.T) {
	id, err := gates.CanonicalGate(0, 0, 0)
	require.NoError(t, err)
	requireClose(t, gates.Identity(), id, 1e-15)

	// exp(iπ/4(XX+YY+ZZ)) = e^{iπ/4}·SWAP
	sw, err := gates.CanonicalGate(0.5, 0.5, 0.5)
	require.NoError(t, err)
	requireClose(t, matrix.Scale(cmplx.Exp(complex(0, math.Pi/4)), gates.SWAP()), sw, 1e-14)

	c1, c2, c3 := 0.3, 0.2, -0.1
	a, err := gates.CanonicalGate(c1, c2, c3)
	require.NoError(t, err)
	ab, err := gates.ToMagic(a)
	require.NoError(t, err)
	f := []complex128{
		cmplx.Exp(complex(0, math.Pi/2*(c1-c2+c3))),
		cmplx.Exp(complex(0, math.Pi/2*(c1+c2-c3))),
		cmplx.Exp(complex(0, math.Pi/2*(-c1-c2-c3))),
		cmplx.Exp(complex(0, math.Pi/2*(-c1+c2+c3))),
	}
	requireClose(t, matrix.Diag(f), ab, 1e-14)

	_, err = gates.CanonicalGate(math.NaN(), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestSQUnitaryErrors(t *testing.T) {
	_, err := gates.SQUnitary(make([]float64, 7))
	require.ErrorIs(t, err, gates.ErrParams)
	p := make([]float64, 8)
	p[3] = math.Inf(1)
	_, err = gates.SQUnitary(p)
	require.ErrorIs(t, err, gates.ErrParams)
}

func TestU2IsUnitary(t *testing.T) {
	u := gates.U2(0.1, 0.7, -1.3, 2.2)
	assert.True(t, matrix.IsUnitary(u, 1e-15))
}

func TestMappedBasisAndGate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, dim := range []int{4, 6} {
		basis, err := gates.CanonicalBasis(dim)
		require.NoError(t, err)
		g := randomComplex(rng)

		images, err := gates.MappedBasis(g, basis)
		require.NoError(t, err)
		require.Len(t, images, 4)
		for _, s := range images {
			require.Len(t, s, dim)
		}

		back, err := gates.Gate(basis, images)
		require.NoError(t, err)
		requireClose(t, g, back, 1e-15)
	}
}

func TestBellBasisMatchesQmagicColumns(t *testing.T) {
	basis, err := gates.CanonicalBasis(4)
	require.NoError(t, err)
	bell, err := gates.BellBasis(basis)
	require.NoError(t, err)
	q := gates.Qmagic()
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			assert.Equal(t, q.At(i, j), bell[j][i])
		}
		assert.InDelta(t, 1, real(gates.Inner(bell[j], bell[j])), 1e-15)
	}
}

func TestBasisValidation(t *testing.T) {
	basis, err := gates.CanonicalBasis(4)
	require.NoError(t, err)

	_, err = gates.Gate(basis[:3], basis)
	require.ErrorIs(t, err, gates.ErrBasisSize)
	_, err = gates.Gate(basis, append(basis, basis[0]))
	require.ErrorIs(t, err, gates.ErrBasisSize)
	_, err = gates.MappedBasis(gates.CNOT(), basis[:2])
	require.ErrorIs(t, err, gates.ErrBasisSize)

	wide, err := gates.CanonicalBasis(5)
	require.NoError(t, err)
	_, err = gates.Gate(basis, wide)
	require.ErrorIs(t, err, gates.ErrStateDim)

	ragged := [][]complex128{basis[0], basis[1], basis[2], {1, 0}}
	_, err = gates.MappedBasis(gates.CNOT(), ragged)
	require.ErrorIs(t, err, gates.ErrStateDim)

	_, err = gates.CanonicalBasis(3)
	require.ErrorIs(t, err, gates.ErrStateDim)
}
