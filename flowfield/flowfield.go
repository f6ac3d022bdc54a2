// Package flowfield implements single-target flow-field ("pressure")
// pathfinding: one FIFO propagation pass assigns every reachable cell a
// direction toward the target.
package flowfield

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// orthoOffsets lists the 4 orthogonal directions in the fixed priority
// order north, east, south, west. Propagation enqueues neighbors in
// this order and the fallback picks the first assigned one, so the
// order is part of the field's reproducibility contract.
var orthoOffsets = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Compute builds the direction field for target over g.
//
// Returns:
//
//   - field: directions for every cell reachable from target via
//     orthogonal moves; target holds the (0,0) sentinel; walled-off
//     cells stay unassigned.
//   - err:   ErrNilGrid or ErrCellOutOfBounds (wrapped with the cell);
//     nil on success.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. target must lie within g (ErrCellOutOfBounds).
//
// A blocked target is accepted: the sentinel is still placed, but no
// direction can route through the wall, so neighbors keep whatever the
// fallback yields.
//
// Options customization:
//
//   - WithOnAssign(fn): observe each assignment in propagation order.
//
// Complexity:
//
//   - Time:  O(W×H) — each reachable cell enqueued and processed once.
//   - Space: O(W×H) for the field, visited set, and worklist.
func Compute(g *grid.Grid, target grid.Cell, opts ...Option) (*Field, error) {
	// 1) Build Options from functional arguments.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate the target lies on the grid.
	if !g.InBounds(target.X, target.Y) {
		return nil, fmt.Errorf("%w: target %s", ErrCellOutOfBounds, target)
	}

	// 4) Prepare the field and per-call propagation state.
	n := g.Width() * g.Height()
	f := &Field{
		width:    g.Width(),
		height:   g.Height(),
		target:   target,
		dirs:     make([]Direction, n),
		assigned: make([]bool, n),
	}
	p := &propagator{
		g:       g,
		field:   f,
		target:  target,
		options: cfg,
		visited: make([]bool, n),
		work:    make([]grid.Cell, 0, n),
	}

	// 5) Seed the worklist with the target and run the pass.
	p.enqueue(target)
	p.run()

	// 6) Force the terminal sentinel, overwriting the placeholder the
	//    target received while the pass was still running.
	ti := g.Index(target)
	f.dirs[ti] = Direction{}
	f.assigned[ti] = true

	return f, nil
}

// propagator holds the mutable state for a single Compute execution.
type propagator struct {
	g       *grid.Grid  // the input grid; read-only during the pass
	field   *Field      // output under construction
	target  grid.Cell   // propagation source
	options Options     // configuration (hooks)
	visited []bool      // row-major enqueue guard
	work    []grid.Cell // append-only FIFO worklist
}

// enqueue marks c visited and appends it to the worklist tail.
func (p *propagator) enqueue(c grid.Cell) {
	p.visited[p.g.Index(c)] = true
	p.work = append(p.work, c)
}

// run processes the worklist by index — an explicit FIFO rather than
// recursion, so large grids never meet stack-depth limits and the
// breadth-first order stays observable. Because a cell is only treated
// as "assigned" once dequeued earlier in this order, every direction is
// derived from a neighbor strictly closer to the target in propagation
// order.
func (p *propagator) run() {
	for i := 0; i < len(p.work); i++ {
		c := p.work[i]
		p.assign(c)

		// Extend the frontier: unvisited, unblocked orthogonal neighbors
		// join the tail in the fixed N, E, S, W order.
		var nx, ny int
		for _, d := range orthoOffsets {
			nx, ny = c.X+d[0], c.Y+d[1]
			if p.g.Blocked(nx, ny) {
				continue
			}
			if nb := (grid.Cell{X: nx, Y: ny}); !p.visited[p.g.Index(nb)] {
				p.enqueue(nb)
			}
		}
	}
}

// assign fixes the direction for c. The target receives a placeholder
// (overwritten with the sentinel after the pass) that still counts as
// assigned, so its neighbors can point at it.
func (p *propagator) assign(c grid.Cell) {
	idx := p.g.Index(c)
	if c == p.target {
		p.field.dirs[idx] = Direction{}
		p.field.assigned[idx] = true
		p.options.OnAssign(c, Direction{})

		return
	}

	// Candidate vector from already-assigned orthogonal neighbors:
	// x leans toward an assigned east/west side, y toward south/north.
	// Each component lands in {-1, 0, 1}; both nonzero yields a diagonal.
	d := Direction{
		DX: p.assignedAt(c.X+1, c.Y) - p.assignedAt(c.X-1, c.Y),
		DY: p.assignedAt(c.X, c.Y+1) - p.assignedAt(c.X, c.Y-1),
	}

	// A zero candidate, or one pointing into a wall, falls back to the
	// first assigned neighbor in priority order north, east, south, west.
	if (d.DX == 0 && d.DY == 0) || p.g.Blocked(c.X+d.DX, c.Y+d.DY) {
		d = Direction{}
		for _, o := range orthoOffsets {
			if p.assignedAt(c.X+o[0], c.Y+o[1]) == 1 {
				d = Direction{DX: o[0], DY: o[1]}
				break
			}
		}
		// FIFO order guarantees the neighbor that enqueued c was
		// processed first, so an assigned neighbor exists; if the
		// invariant is ever broken, leave the cell unassigned.
		if d.DX == 0 && d.DY == 0 {
			return
		}
	}

	p.field.dirs[idx] = d
	p.field.assigned[idx] = true
	p.options.OnAssign(c, d)
}

// assignedAt reports 1 when (x,y) is on-grid and already carries an
// assigned direction, 0 otherwise. The int form keeps the candidate
// vector arithmetic branch-free.
func (p *propagator) assignedAt(x, y int) int {
	if !p.g.InBounds(x, y) {
		return 0
	}
	if p.field.assigned[y*p.g.Width()+x] {
		return 1
	}

	return 0
}
