// SPDX-License-Identifier: MIT

// Package prec holds the numeric precision policy shared by the coordinate
// and invariant extractors.
//
// Weyl coordinates and local invariants are reported rounded to a fixed
// number of decimal digits (DefaultWeylPrecision). Rounding removes the
// floating-point noise that would otherwise push points on a chamber face
// just outside the canonical domain. Negative zero is normalised to +0.
//
// Usage:
//
//	c1, c2, c3, err := coordinates.C1C2C3(u)                    // 8 digits
//	c1, c2, c3, err := coordinates.C1C2C3(u, prec.WithDigits(4)) // 4 digits
//	c1, c2, c3, err := coordinates.C1C2C3(u, prec.Exact())       // unrounded
package prec
