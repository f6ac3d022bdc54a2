// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromStrings
////////////////////////////////////////////////////////////////////////////////

// ExampleFromStrings demonstrates building an occupancy grid from ASCII
// rows and querying walls, including the out-of-bounds rule.
// Scenario:
//
//   - '#' marks walls, '.' marks free cells
//   - (1,1) is a wall; (-1,0) is off-grid and therefore also blocked
//
// Complexity: O(W·H) build, O(1) per query.
func ExampleFromStrings() {
	g, _ := grid.FromStrings(
		"...",
		".#.",
		"...",
	)

	fmt.Println("size:", g.Width(), "x", g.Height())
	fmt.Println("wall at 1,1:", g.Blocked(1, 1))
	fmt.Println("free at 2,2:", !g.Blocked(2, 2))
	fmt.Println("off-grid blocked:", g.Blocked(-1, 0))

	// Output:
	// size: 3 x 3
	// wall at 1,1: true
	// free at 2,2: true
	// off-grid blocked: true
}
