// SPDX-License-Identifier: MIT

package chamber_test

import (
	"fmt"

	"github.com/katalvlaran/weylchamber/chamber"
	"github.com/katalvlaran/weylchamber/coordinates"
)

func ExamplePlane_Project() {
	f, _ := chamber.FaceOf(coordinates.RegionW0)
	p := f.Project(chamber.Point{0.25, 0, 0})
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	// Output: 0.375 0.125 0.000
}

func ExampleWeylEdges() {
	for _, e := range chamber.WeylEdges() {
		fmt.Println(e.From, e.To, e.Foreground)
	}
	// Output:
	// O A1 true
	// A1 A2 true
	// A2 A3 true
	// A3 A1 true
	// A3 O true
	// O A2 false
}
