// SPDX-License-Identifier: MIT

package gates_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/weylchamber/gates"
)

// ExampleToMagic shows that CNOT's canonical class is diagonal in the Bell basis.
func ExampleToMagic() {
	a, err := gates.CanonicalGate(0.5, 0, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ub, err := gates.ToMagic(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 4; i++ {
		fmt.Printf("%.4f\n", cmplx.Phase(ub.At(i, i)))
	}
	// Output:
	// 0.7854
	// 0.7854
	// -0.7854
	// -0.7854
}
