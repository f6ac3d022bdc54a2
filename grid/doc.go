// Package grid models a fixed-size 2D occupancy map, the shared input
// of every pathfinder in pathgrid.
//
// What:
//
//   - Grid wraps a rectangular [][]bool wall matrix, deep-copied on
//     construction so it stays immutable for the lifetime of a search.
//   - Blocked(x,y) answers "can an agent stand here?" and treats every
//     out-of-bounds position as a wall, never as free.
//   - Row-major Index/Coordinate helpers let algorithms keep their
//     per-cell state in flat slices instead of maps.
//   - FromStrings builds grids from ASCII art ('#' = wall), the natural
//     fixture format for tests and examples.
//
// Why:
//
//   - A* and flow-field generation share one read-only grid contract;
//     callers mutate their own wall data between calls, never through
//     this package.
//   - Folding the bounds check into Blocked removes an entire class of
//     off-by-one wall bugs from neighbor enumeration.
//
// Complexity:
//
//   - New / FromStrings: O(W×H) time and memory (deep copy).
//   - InBounds, Blocked, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
