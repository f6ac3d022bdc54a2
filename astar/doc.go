// Package astar provides a precise, allocation-aware implementation of
// A* shortest-path search on 2D occupancy grids with 8-directional
// movement.
//
// Overview:
//
//   - FindPath computes the minimum-cost route between two cells under
//     an integer cost model: 10 per straight step, 14 per diagonal
//     (≈ 10·√2, integer-scaled to keep floats out of the hot path).
//   - The heuristic is Chebyshev distance × 10 — admissible and
//     consistent under this cost model, so returned paths are optimal.
//   - Diagonal moves never cut corners: a diagonal step is generated
//     only when both orthogonal cells flanking it are free, so paths
//     cannot clip through wall corners.
//
// Key features:
//
//   - Lazy-deletion min-heap open set: superseded entries stay in the
//     heap and are discarded when popped, trading a little heap churn
//     for a much simpler queue (no decrease-key).
//   - Pooled search nodes: a per-call free-list arena recycles node
//     records across the thousands of candidate generations a single
//     search can produce, and is drained on every exit path.
//   - Functional options: WithMaxCost caps exploration, WithOnExpand
//     lets benchmark or overlay harnesses observe expansions without
//     the core keeping counters.
//
// Performance and complexity:
//
//   - Time:  O(C log C) where C ≤ 8·W·H is the number of generated
//     candidates — each pop/push costs O(log C), each position is
//     expanded at most once.
//   - Space: O(W·H) for the closed set plus O(C) worst-case heap
//     entries under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid: a nil *grid.Grid was passed to FindPath.
//   - ErrCellOutOfBounds: start or goal lies outside the grid
//     (wrapped with the offending cell).
//   - ErrNoPath: the open set was exhausted before the goal was
//     reached. This is a normal outcome, not an exceptional one —
//     test for it with errors.Is.
//   - ErrBadMaxCost: WithMaxCost was given a negative cap (the option
//     panics when applied).
//
// Thread safety:
//
//   - Every FindPath call owns a fresh pool, heap, and closed set;
//     concurrent calls are safe as long as each grid snapshot is not
//     mutated while a search runs over it.
//
// See also:
//
//   - grid.Grid: the occupancy-grid contract (out-of-bounds ⇒ blocked).
//   - flowfield.Compute: the one-pass many-agents alternative.
package astar
