package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// randomGrid builds a deterministic n×n grid with the given wall
// density, keeping the two corner cells free.
func randomGrid(b *testing.B, n int, density float64) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	blocked := make([][]bool, n)
	for y := range blocked {
		blocked[y] = make([]bool, n)
		for x := range blocked[y] {
			blocked[y][x] = rng.Float64() < density
		}
	}
	blocked[0][0] = false
	blocked[n-1][n-1] = false
	g, err := grid.New(blocked)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	return g
}

// BenchmarkFindPath_Open measures corner-to-corner search on an empty
// 512×512 grid — the heuristic-guided best case.
func BenchmarkFindPath_Open(b *testing.B) {
	g := randomGrid(b, 512, 0)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 511, Y: 511}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := astar.FindPath(g, start, goal); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

// BenchmarkFindPath_Walls measures corner-to-corner search on a seeded
// 256×256 grid with 20% walls — heavy frontier churn and lazy deletes.
func BenchmarkFindPath_Walls(b *testing.B) {
	g := randomGrid(b, 256, 0.20)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 255, Y: 255}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = astar.FindPath(g, start, goal)
	}
}
