// SPDX-License-Identifier: MIT

package entanglers_test

import (
	"testing"

	"github.com/katalvlaran/weylchamber/coordinates"
	"github.com/katalvlaran/weylchamber/entanglers"
	"github.com/katalvlaran/weylchamber/gates"
)

func BenchmarkGradientAKl(b *testing.B) {
	u, err := coordinates.RandomGate(coordinates.NewRand(8), coordinates.RegionPE)
	if err != nil {
		b.Fatal(err)
	}
	ub, err := gates.ToMagic(u)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = entanglers.GradientAKl(ub); err != nil {
			b.Fatal(err)
		}
	}
}
