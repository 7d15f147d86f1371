// SPDX-License-Identifier: MIT

// Package coordinates extracts Weyl-chamber coordinates (c1, c2, c3) from
// two-qubit gates, classifies points into the regions of the chamber, and
// samples random points and gates.
//
// Coordinates are in units of π. A triple lies in the Weyl chamber iff
//
//	(c1 < ½ and c2 ≤ c1 and c3 ≤ c2) or (c1 ≥ ½ and c2 ≤ 1 − c1 and c3 ≤ c2).
//
// The chamber is split by entangling power into
//
//	W0  : c1 + c2 < ½           (next to the identity O)
//	W0* : c1 − c2 > ½           (next to A1)
//	W1  : c2 + c3 > ½           (next to SWAP, A3)
//	PE  : the perfect-entangler polyhedron
//	      c1 + c2 ≥ ½, c1 − c2 ≤ ½, c2 + c3 ≤ ½
//
// C1C2C3 follows Childs et al., PRA 68, 052311 (2003) and rounds the result
// to prec.DefaultWeylPrecision digits unless told otherwise.
//
// Randomness: functions take a *rand.Rand. A nil source falls back to the
// goroutine-safe top-level math/rand functions; for reproducible runs pass
// NewRand(seed), and DeriveRand for independent per-worker streams.
// A *rand.Rand must not be shared across goroutines.
package coordinates
