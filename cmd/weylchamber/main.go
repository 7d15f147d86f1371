// SPDX-License-Identifier: MIT

// Command weylchamber inspects two-qubit gates: Weyl coordinates, local
// invariants, Cartan decompositions, closest locally equivalent gates,
// random sampling of the chamber, and renderer scenes.
//
// Configuration is layered: defaults, an optional YAML file (--config),
// WEYLCHAMBER_* environment variables, then flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
