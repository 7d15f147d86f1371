// SPDX-License-Identifier: MIT

package coordinates

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInWeylChamber is returned when a checked point lies outside the
	// Weyl chamber. The wrapping message names the coordinates.
	ErrNotInWeylChamber = errors.New("coordinates: not in the Weyl chamber")

	// ErrUnknownRegion is returned for a region name outside W0, W0*, W1, PE
	// (and SQ, for RandomGate).
	ErrUnknownRegion = errors.New("coordinates: unknown region")

	// ErrLengthMismatch is returned when coordinate slices differ in length.
	ErrLengthMismatch = errors.New("coordinates: coordinate slices differ in length")
)

const (
	opC1C2C3      = "C1C2C3"
	opInRegion    = "PointInRegion"
	opWeylRegion  = "WeylRegion"
	opRandomPoint = "RandomWeylPoint"
	opRandomGate  = "RandomGate"
)

func coordinatesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
