package astar

// nodeHeap is a min-heap (priority queue) of *searchNode ordered by
// ascending fCost, ties broken by ascending hCost. The deterministic
// tie-break matters for path-shape reproducibility.
//
// We use the "lazy deletion" approach: when a position is rediscovered
// with a better cost we push a fresh node onto the heap. The outdated
// entry remains but is discarded when popped (checked against the
// closed set), so no decrease-key operation is needed.
type nodeHeap []*searchNode

// Len returns the number of items in the heap.
func (h nodeHeap) Len() int { return len(h) }

// Less defines the comparison: smaller fCost → higher priority,
// equal fCost falls back to smaller hCost.
func (h nodeHeap) Less(i, j int) bool {
	fi, fj := h[i].fCost(), h[j].fCost()
	if fi != fj {
		return fi < fj
	}

	return h[i].hCost < h[j].hCost
}

// Swap swaps two elements in the heap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *searchNode.
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*searchNode)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *searchNode.
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
