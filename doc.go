// Package pathgrid is an in-memory toolkit for moving agents across 2D
// occupancy grids — one shortest-path searcher and one "pressure" field
// generator over the same grid model.
//
// 🚀 What is pathgrid?
//
//	A small, focused library that brings together:
//		• Occupancy grids: immutable boolean wall maps with bounds-safe queries
//		• A*: 8-directional shortest paths with integer 10/14 movement costs
//		• Flow fields: one pass per target, then O(1) direction lookups per agent
//		• Pooled search nodes & lazy-deletion min-heap in the A* hot path
//
// ✨ Why choose pathgrid?
//
//   - Deterministic – fixed tie-breaks reproduce identical paths and fields
//   - Allocation-aware – node pool and slice-backed state, no churn per step
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnExpand, OnAssign…) for benchmarks and overlays
//
// Everything is organized under three subpackages:
//
//	grid/      — the OccupancyGrid: Cell, bounds, walls, row-major indexing
//	astar/     — single-pair shortest paths with corner-cut-safe diagonals
//	flowfield/ — per-target direction fields for any number of agents
//
// Quick ASCII example:
//
//	    S . . #
//	    . # . #
//	    . # . T
//
//	'#' cells are walls; A* routes S→T, a flow field points every free
//	cell toward T.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/pathgrid
package pathgrid
