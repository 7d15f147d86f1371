// SPDX-License-Identifier: MIT

// Package weylchamber is a toolkit for the nonlocal content of two-qubit
// gates: Weyl chamber coordinates, local invariants, the Cartan (KAK)
// decomposition and the perfect-entangler functional used in optimal control.
//
// What is in the box?
//
//	• Gate algebra: reference gates, the magic basis, canonical gates
//	• Coordinates: (c1, c2, c3) in units of π, chamber and region tests,
//	  random sampling of gates per region
//	• Cartan decomposition U = phase·K1·A(c1, c2, c3)·K2
//	• Local invariants (g1, g2, g3), the joint test and the closest gate
//	  with prescribed coordinates
//	• Perfect entanglers: concurrence, F_PE, projection onto the PE
//	  polyhedron, the Krotov χ states
//	• Chamber geometry and a plotter-neutral scene description
//
// Everything is organised in subpackages:
//
//	prec/        decimal rounding of reported values
//	matrix/      complex 4×4 kernels on top of gonum
//	gates/       gate constants, magic basis, canonical gates, bases
//	coordinates/ Weyl coordinates, regions, random gates
//	cartan/      KAK decomposition
//	invariants/  g1g2g3, JTLI, ClosestLI
//	entanglers/  concurrence, F_PE, PE projection, χ constructor
//	chamber/     vertices, edges, faces, renderer configuration
//
// The command weylchamber (cmd/weylchamber) exposes the library:
//
//	weylchamber coords --gate cnot
//	weylchamber sample --region PE --count 1000 --workers 8 -o yaml
//	weylchamber scene --points --count 200 > scene.yaml
//
//	go install github.com/katalvlaran/weylchamber/cmd/weylchamber@latest
package weylchamber
