// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/joycebyun/route-finder/core"
)

// ExampleGraph_Incident shows that parallel edges are addressed by key and that
// an edge is visible, re-oriented, from both of its endpoints.
func ExampleGraph_Incident() {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 100)
	_, _ = g.AddEdge(1, 2, 200)
	_, _ = g.AddEdge(3, 2, 110)

	inc, _ := g.Incident(2)
	for _, e := range inc {
		fmt.Println(e)
	}
	shortest, _ := core.ShortestEdge(inc)
	fmt.Println("shortest:", shortest, "total:", core.TotalLength(inc))
	// Output:
	// (2, 1, 0, 100)
	// (2, 1, 1, 200)
	// (2, 3, 0, 110)
	// shortest: (2, 1, 0, 100) total: 410
}
