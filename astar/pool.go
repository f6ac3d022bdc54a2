package astar

import (
	"github.com/katalvlaran/pathgrid/grid"
)

// searchNode is one entry in the open set: a candidate cell, the
// best-known step leading to it, and its cost bookkeeping. Node storage
// is owned by the pool, never by the reconstructed path.
type searchNode struct {
	pos    grid.Cell   // candidate cell
	parent *searchNode // previous step on the best-known route, nil for start
	gCost  int         // accumulated movement cost from start
	hCost  int         // heuristic estimate to goal
}

// fCost is the heap ordering key: accumulated plus estimated cost.
func (n *searchNode) fCost() int {
	return n.gCost + n.hCost
}

// nodePool is a free-list arena for searchNodes, scoped to a single
// FindPath call. Recycling nodes avoids per-candidate heap churn across
// the thousands of generations a search can produce. It must not be
// shared across concurrent searches.
type nodePool struct {
	free []*searchNode // recycled nodes ready for reuse
	all  []*searchNode // every node ever handed out, for bulk release
}

// acquire returns a node initialized with the given fields, recycling a
// released node when one is available and allocating otherwise.
// Complexity: O(1).
func (p *nodePool) acquire(pos grid.Cell, parent *searchNode, gCost, hCost int) *searchNode {
	if k := len(p.free); k > 0 {
		n := p.free[k-1]
		p.free = p.free[:k-1]
		n.pos, n.parent, n.gCost, n.hCost = pos, parent, gCost, hCost

		return n
	}
	n := &searchNode{pos: pos, parent: parent, gCost: gCost, hCost: hCost}
	p.all = append(p.all, n)

	return n
}

// release returns one node to the free list. The parent link is cleared
// so a recycled node cannot retain an ancestor chain.
// Complexity: O(1).
func (p *nodePool) release(n *searchNode) {
	n.parent = nil
	p.free = append(p.free, n)
}

// releaseAll clears every parent link and drops both lists, bounding
// memory growth across repeated searches. Called unconditionally at the
// end of every search, success or failure.
// Complexity: O(n) over all acquired nodes.
func (p *nodePool) releaseAll() {
	for _, n := range p.all {
		n.parent = nil
	}
	p.free = nil
	p.all = nil
}
