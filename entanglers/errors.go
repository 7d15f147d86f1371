// SPDX-License-Identifier: MIT

package entanglers

import "fmt"

// Basis and state validation reuses gates.ErrBasisSize and gates.ErrStateDim.

const (
	opProject  = "ProjectToPE"
	opGradient = "GradientAKl"
	opNewChi   = "NewChiConstructor"
	opChis     = "Chis"
)

func entanglersErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
