// SPDX-License-Identifier: MIT

package coordinates

import "fmt"

// Region labels a part of the Weyl chamber.
type Region string

const (
	// RegionAny places no constraint beyond chamber membership.
	RegionAny Region = ""
	// RegionW0 is the part between the identity O and the PE polyhedron.
	RegionW0 Region = "W0"
	// RegionW0Star is the part between A1 and the PE polyhedron.
	RegionW0Star Region = "W0*"
	// RegionW1 is the part between A3 (SWAP) and the PE polyhedron.
	RegionW1 Region = "W1"
	// RegionPE is the perfect-entangler polyhedron.
	RegionPE Region = "PE"
	// RegionSQ selects non-entangling local gates; RandomGate only.
	RegionSQ Region = "SQ"
)

// Regions lists the four labels of the chamber partition in classification
// priority order.
func Regions() []Region {
	return []Region{RegionW0, RegionW0Star, RegionW1, RegionPE}
}

// ParseRegion validates a region name. The empty string maps to RegionAny.
//
// Errors: ErrUnknownRegion.
func ParseRegion(s string) (Region, error) {
	switch r := Region(s); r {
	case RegionAny, RegionW0, RegionW0Star, RegionW1, RegionPE, RegionSQ:
		return r, nil
	default:
		return RegionAny, fmt.Errorf("%w: %q is not in %v", ErrUnknownRegion, s, Regions())
	}
}

// PointInWeylChamber reports whether (c1, c2, c3) lies in the Weyl chamber.
func PointInWeylChamber(c1, c2, c3 float64) bool {
	if c1 < 0.5 {
		return c2 <= c1 && c3 <= c2
	}
	return c1 >= 0.5 && c2 <= 1.0-c1 && c3 <= c2
}

// ValidateWeylChamber returns an error naming the coordinates when
// (c1, c2, c3) is outside the Weyl chamber, e.g.
// "(1, 0.5, 0) is not in the Weyl chamber".
func ValidateWeylChamber(c1, c2, c3 float64) error {
	if PointInWeylChamber(c1, c2, c3) {
		return nil
	}
	return &chamberError{c1: c1, c2: c2, c3: c3}
}

// chamberError formats the offending point; it matches ErrNotInWeylChamber.
type chamberError struct{ c1, c2, c3 float64 }

func (e *chamberError) Error() string {
	return fmt.Sprintf("(%g, %g, %g) is not in the Weyl chamber", e.c1, e.c2, e.c3)
}

func (e *chamberError) Unwrap() error { return ErrNotInWeylChamber }

// PointsInWeylChamber is the element-wise form of PointInWeylChamber.
// With raise set, any point outside the chamber yields ErrNotInWeylChamber
// (with a generic message) alongside the full result slice.
//
// Errors: ErrLengthMismatch, ErrNotInWeylChamber.
func PointsInWeylChamber(c1s, c2s, c3s []float64, raise bool) ([]bool, error) {
	if len(c1s) != len(c2s) || len(c1s) != len(c3s) {
		return nil, ErrLengthMismatch
	}
	out := make([]bool, len(c1s))
	all := true
	for i := range c1s {
		out[i] = PointInWeylChamber(c1s[i], c2s[i], c3s[i])
		all = all && out[i]
	}
	if raise && !all {
		return out, fmt.Errorf("%w: not all values (c1, c2, c3) are in the Weyl chamber", ErrNotInWeylChamber)
	}

	return out, nil
}

// InPEPolyhedron tests the perfect-entangler inequalities c1+c2 ≥ ½,
// c1−c2 ≤ ½, c2+c3 ≤ ½ without checking chamber membership.
func InPEPolyhedron(c1, c2, c3 float64) bool {
	return c1+c2 >= 0.5 && c1-c2 <= 0.5 && c2+c3 <= 0.5
}

// checkChamber returns (inChamber, error) where the error is only produced
// when raise is set.
func checkChamber(c1, c2, c3 float64, raise bool) (bool, error) {
	if PointInWeylChamber(c1, c2, c3) {
		return true, nil
	}
	if raise {
		return false, ValidateWeylChamber(c1, c2, c3)
	}
	return false, nil
}

// PointInPE reports whether (c1, c2, c3) is a perfect entangler: inside the
// chamber and inside the PE polyhedron. With checkWeyl, a point outside the
// chamber is an error instead of false.
//
// Errors: ErrNotInWeylChamber (only with checkWeyl).
func PointInPE(c1, c2, c3 float64, checkWeyl bool) (bool, error) {
	in, err := checkChamber(c1, c2, c3, checkWeyl)
	if err != nil {
		return false, err
	}
	return in && InPEPolyhedron(c1, c2, c3), nil
}

// PointInRegion reports whether (c1, c2, c3) lies in the given region
// (which always requires chamber membership). With checkWeyl, a point
// outside the chamber is an error instead of false.
//
// Errors: ErrUnknownRegion, ErrNotInWeylChamber (only with checkWeyl).
func PointInRegion(region Region, c1, c2, c3 float64, checkWeyl bool) (bool, error) {
	switch region {
	case RegionPE:
		in, err := PointInPE(c1, c2, c3, checkWeyl)
		if err != nil {
			return false, coordinatesErrorf(opInRegion, err)
		}
		return in, nil
	case RegionW0, RegionW0Star, RegionW1:
	default:
		return false, coordinatesErrorf(opInRegion,
			fmt.Errorf("%w: %q is not in %v", ErrUnknownRegion, string(region), Regions()))
	}

	in, err := checkChamber(c1, c2, c3, checkWeyl)
	if err != nil {
		return false, coordinatesErrorf(opInRegion, err)
	}
	if !in {
		return false, nil
	}
	switch region {
	case RegionW0:
		return c1+c2 < 0.5, nil
	case RegionW0Star:
		return c1-c2 > 0.5, nil
	default:
		return c2+c3 > 0.5, nil
	}
}

// PointsInRegion is the element-wise form of PointInRegion. With checkWeyl,
// any point outside the chamber yields ErrNotInWeylChamber.
//
// Errors: ErrLengthMismatch, ErrUnknownRegion, ErrNotInWeylChamber.
func PointsInRegion(region Region, c1s, c2s, c3s []float64, checkWeyl bool) ([]bool, error) {
	if len(c1s) != len(c2s) || len(c1s) != len(c3s) {
		return nil, coordinatesErrorf(opInRegion, ErrLengthMismatch)
	}
	if checkWeyl {
		if _, err := PointsInWeylChamber(c1s, c2s, c3s, true); err != nil {
			return nil, coordinatesErrorf(opInRegion, err)
		}
	}
	out := make([]bool, len(c1s))
	var err error
	for i := range c1s {
		if out[i], err = PointInRegion(region, c1s[i], c2s[i], c3s[i], false); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// WeylRegion classifies (c1, c2, c3) as the first match of W0, W0*, W1,
// else PE. With checkWeyl (the usual choice), a point outside the chamber
// is an error; without it, the inequalities are applied as they stand.
//
// Errors: ErrNotInWeylChamber (only with checkWeyl).
func WeylRegion(c1, c2, c3 float64, checkWeyl bool) (Region, error) {
	if checkWeyl {
		if err := ValidateWeylChamber(c1, c2, c3); err != nil {
			return RegionAny, coordinatesErrorf(opWeylRegion, err)
		}
	}
	switch {
	case c1+c2 < 0.5:
		return RegionW0, nil
	case c1-c2 > 0.5:
		return RegionW0Star, nil
	case c2+c3 > 0.5:
		return RegionW1, nil
	default:
		return RegionPE, nil
	}
}
