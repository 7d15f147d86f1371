// SPDX-License-Identifier: MIT

package gates

import (
	"errors"
	"fmt"
)

var (
	// ErrBasisSize is returned when a basis or state list does not hold
	// exactly four states.
	ErrBasisSize = errors.New("gates: basis must contain exactly 4 states")

	// ErrStateDim is returned for empty states, states of unequal dimension,
	// or states shorter than the 4-dimensional logical subspace.
	ErrStateDim = errors.New("gates: invalid state dimension")

	// ErrParams is returned when a parameter vector has the wrong length or
	// holds a non-finite value.
	ErrParams = errors.New("gates: invalid parameters")

	// ErrUnknownGate is returned by ByName for an unregistered name.
	ErrUnknownGate = errors.New("gates: unknown gate")
)

const (
	opToMagic   = "ToMagic"
	opFromMagic = "FromMagic"
	opCanonical = "CanonicalGate"
	opMapped    = "MappedBasis"
	opGate      = "Gate"
	opSQ        = "SQUnitary"
	opByName    = "ByName"
)

func gatesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
