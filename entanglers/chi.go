// SPDX-License-Identifier: MIT

package entanglers

import (
	"math"

	"github.com/katalvlaran/weylchamber/gates"
)

// ChiConstructor builds the backward boundary states χ for Krotov
// optimisation towards a perfect entangler. It holds only immutable basis
// data; Chis is safe for concurrent use.
type ChiConstructor struct {
	canonical [][]complex128
	bell      [][]complex128
	weight    float64
	dim       int
}

// NewChiConstructor binds the constructor to the logical basis |00⟩, |01⟩,
// |10⟩, |11⟩ (canonical, possibly embedded in a larger space with leakage
// levels) and a unitarity weight w, clamped to [0, 1].
//
// Errors: gates.ErrBasisSize, gates.ErrStateDim.
func NewChiConstructor(canonical [][]complex128, unitarityWeight float64) (*ChiConstructor, error) {
	bell, err := gates.BellBasis(canonical)
	if err != nil {
		return nil, entanglersErrorf(opNewChi, err)
	}
	w := unitarityWeight
	if math.IsNaN(w) || w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}

	return &ChiConstructor{
		canonical: copyStates(canonical),
		bell:      bell,
		weight:    w,
		dim:       len(canonical[0]),
	}, nil
}

// Weight returns the clamped unitarity weight.
func (c *ChiConstructor) Weight() float64 { return c.weight }

// Chis returns the four boundary states for the forward-propagated states
// fw.
//
// Input convention: fw[j] is the propagated image U|canonical_j⟩ of the
// j-th LOGICAL basis state (|00⟩, |01⟩, |10⟩, |11⟩), not of the j-th Bell
// state; gates.MappedBasis(u, canonical) builds exactly this list. The Bell
// images U|bell_j⟩ are formed internally from fw. The returned χ_j pair
// with fw[j] in the same order.
//
// Implementation:
//   - Stage 1: UB = Q†·U·Q from ⟨bell_i| applied to the images of the Bell
//     states, which also works for leaky (non-unitary) propagation.
//   - Stage 2: a = GradientAKl(UB); raw_j = −½·Σ_i (Q·a·Q†)_ij·canonical_i,
//     i.e. χ = −∂F/∂⟨φ|.
//   - Stage 3: χ_i = (1−w)·raw_i + (w/4)·Σ_j ⟨bell_j|fw_i⟩·bell_j.
//
// Errors: gates.ErrBasisSize, gates.ErrStateDim (fw dimension differs from
// the basis), matrix.ErrSingular.
func (c *ChiConstructor) Chis(fw [][]complex128) ([][]complex128, error) {
	if len(fw) != gates.Dim {
		return nil, entanglersErrorf(opChis, gates.ErrBasisSize)
	}
	for _, s := range fw {
		if len(s) != c.dim {
			return nil, entanglersErrorf(opChis, gates.ErrStateDim)
		}
	}
	mapped, err := gates.MappedBasis(gates.Qmagic(), fw)
	if err != nil {
		return nil, entanglersErrorf(opChis, err)
	}
	ub, err := gates.Gate(c.bell, mapped)
	if err != nil {
		return nil, entanglersErrorf(opChis, err)
	}
	a, err := GradientAKl(ub)
	if err != nil {
		return nil, entanglersErrorf(opChis, err)
	}
	aCan, err := gates.FromMagic(a)
	if err != nil {
		return nil, entanglersErrorf(opChis, err)
	}
	raw, err := gates.MappedBasis(aCan, c.canonical)
	if err != nil {
		return nil, entanglersErrorf(opChis, err)
	}

	w := complex(c.weight, 0)
	out := make([][]complex128, gates.Dim)
	var (
		i, j, k int
		ov      complex128
	)
	for i = 0; i < gates.Dim; i++ {
		out[i] = make([]complex128, c.dim)
		for k = 0; k < c.dim; k++ {
			out[i][k] = (1 - w) * (-0.5) * raw[i][k]
		}
		if c.weight == 0 {
			continue
		}
		for j = 0; j < gates.Dim; j++ {
			ov = w / 4 * gates.Inner(c.bell[j], fw[i])
			for k = 0; k < c.dim; k++ {
				out[i][k] += ov * c.bell[j][k]
			}
		}
	}

	return out, nil
}

func copyStates(in [][]complex128) [][]complex128 {
	out := make([][]complex128, len(in))
	for i, s := range in {
		out[i] = append([]complex128(nil), s...)
	}
	return out
}
