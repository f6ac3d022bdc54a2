// Package astar implements A* shortest-path search over an occupancy
// grid with 8-directional movement, pooled search nodes, and a
// lazy-deletion min-heap open set.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// neighborOffsets enumerates the 8 move directions clockwise from
// north: N, NE, E, SE, S, SW, W, NW. Y grows southward.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// FindPath computes the minimum-cost route from start to goal over g.
//
// Returns:
//
//   - path: the ordered cell sequence from start to goal inclusive
//     (length 1 when start == goal).
//   - cost: total movement cost of the path under the 10/14 model.
//   - err:  ErrNilGrid, ErrCellOutOfBounds (wrapped with the cell), or
//     ErrNoPath when the goal is unreachable; nil on success.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must lie within g (ErrCellOutOfBounds).
//  3. goal must lie within g (ErrCellOutOfBounds).
//
// Blocked start or goal cells are not an error: the search simply
// exhausts and reports ErrNoPath, the normal absent-path outcome.
//
// Options customization:
//
//   - WithMaxCost(c): skip candidates whose accumulated cost exceeds c.
//   - WithOnExpand(fn): observe each expanded position.
//
// Complexity:
//
//   - Time:  O(C log C), C ≤ 8·W·H generated candidates.
//   - Space: O(W·H + C).
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) ([]grid.Cell, int, error) {
	// 1) Build Options from functional arguments.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, 0, ErrNilGrid
	}

	// 3) Validate both endpoints lie on the grid. Out-of-bounds cells are
	//    a caller bug, not an unreachable goal — fail fast with context.
	if !g.InBounds(start.X, start.Y) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrCellOutOfBounds, start)
	}
	if !g.InBounds(goal.X, goal.Y) {
		return nil, 0, fmt.Errorf("%w: goal %s", ErrCellOutOfBounds, goal)
	}

	// 4) Trivial route: already there.
	if start == goal {
		return []grid.Cell{start}, 0, nil
	}

	// 5) Prepare per-call state. Pool, heap, and closed set are private
	//    to this invocation; concurrent FindPath calls never share them.
	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		pool:    &nodePool{},
		open:    make(nodeHeap, 0, g.Width()+g.Height()),
		closed:  make([]bool, g.Width()*g.Height()),
	}

	// 6) Drain the pool on every exit path, success or exhaustion.
	defer r.pool.releaseAll()

	// 7) Seed the open set with the start node and run the main loop.
	heap.Init(&r.open)
	heap.Push(&r.open, r.pool.acquire(start, nil, 0, heuristic(start, goal)))

	return r.process()
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g       *grid.Grid // the input grid; read-only during the search
	goal    grid.Cell  // target cell
	options Options    // configuration (MaxCost, hooks)
	pool    *nodePool  // free-list arena owning all node storage
	open    nodeHeap   // min-heap frontier with lazy deletion
	closed  []bool     // row-major set of finalized positions
}

// process is the core A* loop: repeatedly pop the cheapest frontier
// node, finalize its position, and expand its neighbors. Termination is
// guaranteed because the closed set strictly grows over a finite grid.
func (r *runner) process() ([]grid.Cell, int, error) {
	for r.open.Len() > 0 {
		// 1) Pop the minimum-fCost node.
		n := heap.Pop(&r.open).(*searchNode)
		idx := r.g.Index(n.pos)

		// 2) Stale duplicate: this position was already finalized via a
		//    cheaper entry. Lazy deletion — recycle and move on.
		if r.closed[idx] {
			r.pool.release(n)
			continue
		}

		// 3) Mark the position closed; its cost is now final.
		r.closed[idx] = true
		r.options.OnExpand(n.pos)

		// 4) Goal reached: rebuild the route from the parent chain.
		if n.pos == r.goal {
			return reconstruct(n), n.gCost, nil
		}

		// 5) Generate candidates for up to 8 neighbors.
		r.expand(n)
	}

	// 6) Open set exhausted without reaching the goal.
	return nil, 0, ErrNoPath
}

// expand enumerates the walkable neighbors of n and pushes a pooled
// node for each onto the open set. Closed positions are skipped here;
// duplicates already in the heap are handled lazily on pop.
func (r *runner) expand(n *searchNode) {
	var dx, dy, nx, ny, step, tentative int
	for _, d := range neighborOffsets {
		dx, dy = d[0], d[1]
		nx, ny = n.pos.X+dx, n.pos.Y+dy

		// Walls and off-grid cells are uniformly non-traversable.
		if r.g.Blocked(nx, ny) {
			continue
		}
		// Corner-cutting rule: a diagonal move is valid only when both
		// orthogonal cells flanking it are free, even if the diagonal
		// target itself is free.
		if dx != 0 && dy != 0 &&
			(r.g.Blocked(n.pos.X+dx, n.pos.Y) || r.g.Blocked(n.pos.X, n.pos.Y+dy)) {
			continue
		}

		to := grid.Cell{X: nx, Y: ny}
		if r.closed[r.g.Index(to)] {
			continue
		}

		step = CostStraight
		if dx != 0 && dy != 0 {
			step = CostDiagonal
		}
		tentative = n.gCost + step
		if tentative > r.options.MaxCost {
			continue
		}

		heap.Push(&r.open, r.pool.acquire(to, n, tentative, heuristic(to, r.goal)))
	}
}

// reconstruct follows parent links from the goal node back to the start
// and reverses the sequence. Cell values are copied out, so the path
// stays valid after the pool is drained.
func reconstruct(n *searchNode) []grid.Cell {
	path := make([]grid.Cell, 0, 16)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// heuristic estimates the remaining cost from a to b as Chebyshev
// distance × CostStraight. Diagonal steps dominate axis-aligned
// distance under the 10/14 model, so the estimate never overstates the
// true cost and is consistent along edges — A* results are optimal.
func heuristic(a, b grid.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx * CostStraight
	}

	return dy * CostStraight
}
