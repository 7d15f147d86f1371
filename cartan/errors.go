// SPDX-License-Identifier: MIT

package cartan

import (
	"errors"
	"fmt"
)

var (
	// ErrNotUnitary is returned when the input is not unitary within tolerance.
	ErrNotUnitary = errors.New("cartan: gate is not unitary")

	// ErrConsistency is the parent of every failed self-check.
	ErrConsistency = errors.New("cartan: decomposition self-check failed")

	// ErrBranchNotFound: no fourth-root branch matched eig(m).
	ErrBranchNotFound = fmt.Errorf("%w: couldn't find correct branch of fourth root in mapping U(4) -> SU(4)", ErrConsistency)

	// ErrOrdering: eigenvectors of m could not be aligned with F.
	ErrOrdering = fmt.Errorf("%w: couldn't order O2", ErrConsistency)

	// ErrNotOrthogonal: O1 or O2 is not in SO(4).
	ErrNotOrthogonal = fmt.Errorf("%w: O1 or O2 not special orthogonal", ErrConsistency)

	// ErrReconstruction: K1·A·K2 does not reproduce the input.
	ErrReconstruction = fmt.Errorf("%w: K1·A·K2 does not reconstruct U", ErrConsistency)
)

const opDecompose = "Decompose"

func cartanErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
