// In-package tests for the unexported node pool and open-set heap.
package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

//----------------------------------------------------------------------------//
// nodePool Tests
//----------------------------------------------------------------------------//

func TestNodePool_AcquireAllocatesAndRecycles(t *testing.T) {
	p := &nodePool{}

	a := p.acquire(grid.Cell{X: 1, Y: 2}, nil, 10, 30)
	require.NotNil(t, a)
	assert.Equal(t, grid.Cell{X: 1, Y: 2}, a.pos)
	assert.Equal(t, 10, a.gCost)
	assert.Equal(t, 30, a.hCost)
	assert.Equal(t, 40, a.fCost())

	b := p.acquire(grid.Cell{X: 2, Y: 2}, a, 24, 20)
	assert.Same(t, a, b.parent)

	// release returns b to the free list and severs its parent link.
	p.release(b)
	assert.Nil(t, b.parent)

	// Next acquire must recycle b, fully reset with the new fields.
	c := p.acquire(grid.Cell{X: 0, Y: 0}, nil, 0, 0)
	assert.Same(t, b, c)
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, c.pos)
	assert.Zero(t, c.gCost)
	assert.Zero(t, c.hCost)
	assert.Nil(t, c.parent)
}

func TestNodePool_ReleaseAllClearsChains(t *testing.T) {
	p := &nodePool{}
	root := p.acquire(grid.Cell{}, nil, 0, 0)
	mid := p.acquire(grid.Cell{X: 1}, root, 10, 10)
	tip := p.acquire(grid.Cell{X: 2}, mid, 20, 0)
	require.Same(t, mid, tip.parent)

	p.releaseAll()

	// Every parent link is severed so no ancestor chain survives, and
	// both lists are dropped to bound growth across repeated searches.
	assert.Nil(t, root.parent)
	assert.Nil(t, mid.parent)
	assert.Nil(t, tip.parent)
	assert.Empty(t, p.free)
	assert.Empty(t, p.all)
}

//----------------------------------------------------------------------------//
// nodeHeap Tests
//----------------------------------------------------------------------------//

func TestNodeHeap_PopsByFCostThenHCost(t *testing.T) {
	h := make(nodeHeap, 0, 8)
	heap.Init(&h)

	// Three distinct fCosts plus an fCost tie resolved by hCost.
	heap.Push(&h, &searchNode{pos: grid.Cell{X: 0}, gCost: 30, hCost: 20}) // f=50
	heap.Push(&h, &searchNode{pos: grid.Cell{X: 1}, gCost: 10, hCost: 30}) // f=40
	heap.Push(&h, &searchNode{pos: grid.Cell{X: 2}, gCost: 24, hCost: 20}) // f=44
	heap.Push(&h, &searchNode{pos: grid.Cell{X: 3}, gCost: 20, hCost: 20}) // f=40, smaller h

	wantOrder := []int{3, 1, 2, 0}
	for i, want := range wantOrder {
		n := heap.Pop(&h).(*searchNode)
		assert.Equal(t, want, n.pos.X, "pop %d", i)
	}
	assert.Zero(t, h.Len())
}

func TestNodeHeap_LazyDuplicatesTolerated(t *testing.T) {
	h := make(nodeHeap, 0, 4)
	heap.Init(&h)

	// Two entries for the same position with different costs: both live
	// in the heap, the cheaper one surfaces first and the stale twin is
	// the caller's to discard.
	pos := grid.Cell{X: 5, Y: 5}
	heap.Push(&h, &searchNode{pos: pos, gCost: 28, hCost: 20})
	heap.Push(&h, &searchNode{pos: pos, gCost: 20, hCost: 20})

	first := heap.Pop(&h).(*searchNode)
	second := heap.Pop(&h).(*searchNode)
	assert.Equal(t, 20, first.gCost)
	assert.Equal(t, 28, second.gCost)
	assert.Equal(t, first.pos, second.pos)
}
