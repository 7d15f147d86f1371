// SPDX-License-Identifier: MIT

package invariants

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownForm is returned by JTLI for a form other than "g" or "c".
	ErrUnknownForm = errors.New("invariants: illegal value for form")

	// ErrUnknownMethod is returned by ParseMethod for an unregistered name.
	ErrUnknownMethod = errors.New("invariants: unknown minimisation method")

	// ErrNotConverged is returned by ClosestLI when WithMaxRestarts is set
	// and the restart budget ran out. The best gate found is still returned.
	ErrNotConverged = errors.New("invariants: restart budget exhausted")

	// ErrNoSuccess is returned by ClosestLI when the restart budget ran out
	// before any local run succeeded.
	ErrNoSuccess = errors.New("invariants: no successful local minimisation")
)

const (
	opG1G2G3    = "G1G2G3"
	opJTLI      = "JTLI"
	opClosestLI = "ClosestLI"
)

func invariantsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
