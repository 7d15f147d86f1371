// SPDX-License-Identifier: MIT

// Package chamber holds the fixed geometry of the Weyl chamber and the
// configuration of an external 3D renderer.
//
// Geometry: the named points (O, A1, A2, A3 and the PE-polyhedron corners
// L, M, N, P, Q), the chamber and PE edges, and the planes separating the
// PE polyhedron from W0, W0* and W1 (unit normal plus anchor point).
//
// Rendering: this package draws nothing. A Renderer collects view settings,
// edge styles, labels and scatter sets; Scene flattens them into plain data
// and WriteYAML serialises that for a plotting tool.
package chamber
