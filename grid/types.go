// Package grid defines the core cell type and sentinel errors for the
// occupancy-grid model shared by all pathgrid algorithms.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Wall is the rune FromStrings interprets as a blocked cell.
const Wall = '#'

// Cell identifies a single grid position. X grows eastward, Y grows
// southward (row-major, matching [][]bool indexing as blocked[y][x]).
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Grid is a read-only occupancy map. It is immutable once built:
// construction deep-copies the wall matrix, and no mutation API exists.
// Width and Height define dimensions; blocked[y][x] marks walls.
type Grid struct {
	width, height int
	blocked       [][]bool
}
