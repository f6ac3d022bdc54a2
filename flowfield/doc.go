// Package flowfield generates per-target direction fields ("pressure"
// pathfinding) over 2D occupancy grids: one propagation pass per
// target, then O(1) direction lookups for any number of agents.
//
// What:
//
//   - Compute floods outward from a single target cell along orthogonal
//     neighbors, assigning every reachable cell a direction with
//     components in {-1, 0, 1} that leads back toward the target.
//   - Field is the read-only result: At reports a cell's direction and
//     whether one was assigned at all; Step applies it.
//   - The target itself carries the (0,0) sentinel, meaning "arrived".
//     Cells walled off from the target stay unassigned — a distinct
//     state callers must treat as "unreachable from here".
//
// Why:
//
//   - A* answers one (start, goal) pair per search; a flow field
//     answers every start at once. When hundreds of agents chase one
//     target, a single Compute beats hundreds of searches.
//
// How directions are chosen:
//
//   - The worklist is an explicit append-only FIFO processed by index —
//     breadth-first order without recursion, so grid size never meets
//     stack depth.
//   - A cell's candidate direction is derived from orthogonal neighbors
//     that were already assigned earlier in the pass (x: east − west,
//     y: south − north), which can yield a diagonal.
//   - A zero candidate, or one pointing into a wall, falls back to the
//     first assigned neighbor in the fixed priority north, east, south,
//     west. That order is load-bearing: changing it changes fields.
//
// Convergence caveat:
//
//   - On most layouts every walk along the field terminates at the
//     target, but the diagonal candidate rule can pair up: two walls
//     flanking a diagonal let adjacent cells derive mutual diagonal
//     directions, forming a local two-cell cycle. Callers following a
//     field on arbitrary grids should bound their walks (W×H steps is
//     a safe cap) rather than assume termination.
//
// Complexity:
//
//   - Compute: O(W×H) time and memory — each reachable cell is
//     enqueued once and processed once.
//   - Field.At / Field.Step: O(1).
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed to Compute.
//   - ErrCellOutOfBounds: the target lies outside the grid.
//
// Thread safety:
//
//   - Compute keeps no cross-call state; concurrent calls over
//     read-only, unshared grid snapshots are safe. A returned Field is
//     immutable and may be read from any number of goroutines.
package flowfield
