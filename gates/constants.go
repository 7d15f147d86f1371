// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/weylchamber/matrix"
)

// Dim is the dimension of the two-qubit Hilbert space.
const Dim = 4

var (
	s2 = complex(1/math.Sqrt2, 0)

	identity = matrix.Identity(Dim)

	sxsx = matrix.MustFromRows([][]complex128{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	})

	sysy = matrix.MustFromRows([][]complex128{
		{0, 0, 0, -1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
	})

	szsz = matrix.Diag([]complex128{1, -1, -1, 1})

	// qmagic maps the computational basis onto the magic Bell basis.
	qmagic = matrix.Scale(s2, matrix.MustFromRows([][]complex128{
		{1, 0, 0, 1i},
		{0, 1i, 1, 0},
		{0, 1i, -1, 0},
		{1, 0, 0, -1i},
	}))

	bgate = func() *mat.CDense {
		c1, s1 := complex(math.Cos(math.Pi/8), 0), complex(0, math.Sin(math.Pi/8))
		c3, s3 := complex(math.Cos(3*math.Pi/8), 0), complex(0, math.Sin(3*math.Pi/8))
		return matrix.MustFromRows([][]complex128{
			{c1, 0, 0, s1},
			{0, c3, s3, 0},
			{0, s3, c3, 0},
			{s1, 0, 0, c1},
		})
	}()

	cnot = matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})

	cphase = matrix.Diag([]complex128{1, 1, 1, -1})

	swap = matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})

	iswap = matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 1},
	})

	sqrtSwap = matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, (1 + 1i) / 2, (1 - 1i) / 2, 0},
		{0, (1 - 1i) / 2, (1 + 1i) / 2, 0},
		{0, 0, 0, 1},
	})

	sqrtISwap = matrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, s2, 1i * s2, 0},
		{0, 1i * s2, s2, 0},
		{0, 0, 0, 1},
	})

	named = map[string]*mat.CDense{
		"identity":   identity,
		"cnot":       cnot,
		"cphase":     cphase,
		"swap":       swap,
		"iswap":      iswap,
		"sqrt-swap":  sqrtSwap,
		"sqrt-iswap": sqrtISwap,
		"bgate":      bgate,
		"magic":      qmagic,
	}
)

// Identity returns the 4×4 identity.
func Identity() *mat.CDense { return matrix.Clone(identity) }

// SxSx returns σx⊗σx.
func SxSx() *mat.CDense { return matrix.Clone(sxsx) }

// SySy returns σy⊗σy.
func SySy() *mat.CDense { return matrix.Clone(sysy) }

// SzSz returns σz⊗σz.
func SzSz() *mat.CDense { return matrix.Clone(szsz) }

// Qmagic returns the magic-basis transform Q; its columns are the Bell
// states in the computational basis.
func Qmagic() *mat.CDense { return matrix.Clone(qmagic) }

// BGate returns the Berkeley B-gate, Weyl coordinates (0.5, 0.25, 0).
func BGate() *mat.CDense { return matrix.Clone(bgate) }

// CNOT returns the controlled-NOT, control on the first qubit.
func CNOT() *mat.CDense { return matrix.Clone(cnot) }

// CPhase returns the controlled-Z gate.
func CPhase() *mat.CDense { return matrix.Clone(cphase) }

// SWAP returns the swap gate.
func SWAP() *mat.CDense { return matrix.Clone(swap) }

// ISWAP returns the iSWAP gate.
func ISWAP() *mat.CDense { return matrix.Clone(iswap) }

// SqrtSWAP returns √SWAP.
func SqrtSWAP() *mat.CDense { return matrix.Clone(sqrtSwap) }

// SqrtISWAP returns √iSWAP.
func SqrtISWAP() *mat.CDense { return matrix.Clone(sqrtISwap) }

// ByName looks up a reference gate by its lower-case name (see Names).
//
// Errors: ErrUnknownGate.
func ByName(name string) (*mat.CDense, error) {
	g, ok := named[name]
	if !ok {
		return nil, gatesErrorf(opByName, fmt.Errorf("%w: %q", ErrUnknownGate, name))
	}

	return matrix.Clone(g), nil
}

// Names lists the names accepted by ByName in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
