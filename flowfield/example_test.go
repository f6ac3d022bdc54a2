package flowfield_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/flowfield"
	"github.com/katalvlaran/pathgrid/grid"
)

// glyphs maps each direction to a one-rune arrow for rendering.
var glyphs = map[flowfield.Direction]rune{
	{DX: 1, DY: 0}:   '>',
	{DX: -1, DY: 0}:  '<',
	{DX: 0, DY: 1}:   'v',
	{DX: 0, DY: -1}:  '^',
	{DX: 1, DY: 1}:   '\\',
	{DX: -1, DY: -1}: '\\',
	{DX: 1, DY: -1}:  '/',
	{DX: -1, DY: 1}:  '/',
}

// ExampleCompute builds a field toward the east edge of a small grid
// with one wall and renders every assigned direction as an arrow.
func ExampleCompute() {
	g, err := grid.FromStrings(
		".....",
		"..#..",
		".....",
	)
	if err != nil {
		fmt.Println("grid error:", err)
		return
	}

	target := grid.Cell{X: 4, Y: 1}
	f, err := flowfield.Compute(g, target)
	if err != nil {
		fmt.Println("compute error:", err)
		return
	}

	var row strings.Builder
	for y := 0; y < f.Height(); y++ {
		row.Reset()
		for x := 0; x < f.Width(); x++ {
			switch d, ok := f.At(x, y); {
			case g.Blocked(x, y):
				row.WriteRune('#')
			case (grid.Cell{X: x, Y: y}) == target:
				row.WriteRune('T')
			case ok:
				row.WriteRune(glyphs[d])
			default:
				row.WriteRune(' ')
			}
		}
		fmt.Println(row.String())
	}

	// Output:
	// >>>\v
	// >^#>T
	// >>>/^
}

// ExampleField_Step walks an agent along the field from the far corner
// until the target's (0,0) sentinel stops it.
func ExampleField_Step() {
	g, err := grid.FromStrings(
		".....",
		"..#..",
		".....",
	)
	if err != nil {
		fmt.Println("grid error:", err)
		return
	}

	f, err := flowfield.Compute(g, grid.Cell{X: 4, Y: 1})
	if err != nil {
		fmt.Println("compute error:", err)
		return
	}

	c := grid.Cell{X: 0, Y: 0}
	for c != f.Target() {
		fmt.Println(c)
		c, _ = f.Step(c)
	}
	fmt.Println(c)

	// Output:
	// 0,0
	// 1,0
	// 2,0
	// 3,0
	// 4,1
}
