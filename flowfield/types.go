// Package flowfield defines the direction/field types, sentinel errors,
// and configuration options for pressure-field generation.
package flowfield

import (
	"errors"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Compute.
	ErrNilGrid = errors.New("flowfield: grid is nil")

	// ErrCellOutOfBounds indicates that the target cell lies outside the
	// grid boundaries.
	ErrCellOutOfBounds = errors.New("flowfield: cell out of bounds")
)

// Direction is one step of agent movement; each component is -1, 0, or
// +1. The zero Direction on the target cell is the "arrived" sentinel.
type Direction struct {
	DX, DY int
}

// Field is a read-only per-cell direction map toward one target cell.
// Build it once with Compute, then share it among any number of agents.
type Field struct {
	width, height int
	target        grid.Cell
	dirs          []Direction // row-major assigned directions
	assigned      []bool      // distinguishes "no direction" from the (0,0) sentinel
}

// Width returns the number of columns covered by the field.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows covered by the field.
func (f *Field) Height() int { return f.height }

// Target returns the cell every assigned direction converges on.
func (f *Field) Target() grid.Cell { return f.target }

// At returns the direction assigned to (x,y) and whether one was
// assigned at all. Unassigned means the target is unreachable from
// here; out-of-bounds queries are unassigned as well.
// Complexity: O(1).
func (f *Field) At(x, y int) (Direction, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Direction{}, false
	}
	idx := y*f.width + x

	return f.dirs[idx], f.assigned[idx]
}

// Step applies c's assigned direction and returns the next cell. The
// second return mirrors At: false means no direction is assigned.
// Stepping from the target returns the target itself (the sentinel).
// Complexity: O(1).
func (f *Field) Step(c grid.Cell) (grid.Cell, bool) {
	d, ok := f.At(c.X, c.Y)
	if !ok {
		return c, false
	}

	return grid.Cell{X: c.X + d.DX, Y: c.Y + d.DY}, true
}

// Options configures the behavior of Compute.
//
// OnAssign – called as each cell's direction is fixed, in propagation
//
//	order (target first). Default no-op.
type Options struct {
	OnAssign func(grid.Cell, Direction) // Hook invoked per assigned cell
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithOnAssign registers a callback invoked for each assigned cell, in
// propagation order. Useful for overlay rendering or tracing; nil
// callbacks are ignored.
func WithOnAssign(fn func(grid.Cell, Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// no assignment hook.
func DefaultOptions() Options {
	return Options{
		OnAssign: func(grid.Cell, Direction) {},
	}
}
