// Package grid provides the occupancy-grid abstraction consumed by the
// astar and flowfield packages. It supports:
//
//   - Construction from a [][]bool wall matrix or ASCII rows
//   - Bounds-safe wall queries (out-of-bounds ⇒ blocked)
//   - Row-major index ↔ coordinate conversion for flat per-cell state
package grid

// New constructs a Grid from a non-empty, rectangular 2D wall matrix,
// where blocked[y][x] == true marks an impassable cell.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the matrix has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation mid-search
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], blocked[y])
	}

	return &Grid{width: w, height: h, blocked: cells}, nil
}

// FromStrings constructs a Grid from ASCII rows, one string per row.
// Cells equal to Wall ('#') are blocked; every other rune is free.
// Validation matches New: ErrEmptyGrid for no rows or empty rows,
// ErrNonRectangular for ragged rows.
// Complexity: O(W×H) time and memory.
func FromStrings(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	cells := make([][]bool, h)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]bool, w)
		for x, r := range runes {
			cells[y][x] = r == Wall
		}
	}

	return &Grid{width: w, height: h, blocked: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Blocked reports whether (x,y) is impassable. Out-of-bounds positions
// are always blocked, never free — the invariant every neighbor
// enumeration in this module relies on.
// Complexity: O(1).
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}

	return g.blocked[y][x]
}

// Index maps a cell to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}
