// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ParseCostGrid
////////////////////////////////////////////////////////////////////////////////

// ExampleParseCostGrid parses a digit grid and looks up single cells.
// Out-of-grid lookups report ok=false rather than failing.
func ExampleParseCostGrid() {
	g, err := gridgraph.ParseCostGrid(strings.NewReader("241\n321\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := g.Cost(gridgraph.Pt(1, 1))
	_, ok := g.Cost(gridgraph.Pt(3, 0))
	fmt.Printf("%dx%d cost(1,1)=%d outside=%v\n", g.Width, g.Height, c, ok)
	// Output:
	// 3x2 cost(1,1)=2 outside=false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Boundary
////////////////////////////////////////////////////////////////////////////////

// ExampleBounds_Boundary lists every inward-facing edge entry of a 2×2 grid.
func ExampleBounds_Boundary() {
	b := gridgraph.Bounds{Width: 2, Height: 2}
	for _, e := range b.Boundary() {
		fmt.Print(e, " ")
	}
	fmt.Println()
	// Output:
	// (0,0)→S (0,1)→N (1,0)→S (1,1)→N (0,0)→E (1,0)→W (0,1)→E (1,1)→W
}
