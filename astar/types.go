// Package astar defines cost constants, sentinel errors, and
// configuration options for the A* grid search.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// Movement costs. Straight steps cost 10 and diagonal steps 14 — an
// integer scaling of 1 and √2 that keeps the hot path in int math.
const (
	// CostStraight is the cost of one orthogonal step (N/E/S/W).
	CostStraight = 10
	// CostDiagonal is the cost of one diagonal step (≈ CostStraight·√2).
	CostDiagonal = 14
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCellOutOfBounds indicates that the start or goal cell lies
	// outside the grid boundaries.
	ErrCellOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrNoPath indicates the open set was exhausted before the goal was
	// reached: no route exists. A normal outcome, not a failure mode.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Options configures the behavior of FindPath.
//
// MaxCost  – cap on accumulated path cost; candidates whose tentative
//
//	cost exceeds it are never generated. Default math.MaxInt (no cap).
//
// OnExpand – called once per finalized (expanded) position, in
//
//	expansion order. Default no-op.
type Options struct {
	MaxCost  int             // Maximum accumulated gCost to explore
	OnExpand func(grid.Cell) // Hook invoked as each position is closed
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithMaxCost caps exploration: any candidate whose accumulated cost
// would exceed max is skipped, and a search whose every route exceeds
// the cap reports ErrNoPath.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxCost (invalid configuration is a programming error).
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnExpand registers a callback invoked for each expanded position.
// Useful for counting expansions in benchmarks or feeding debug
// overlays; nil callbacks are ignored.
func WithOnExpand(fn func(grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// no cost cap, no expansion hook.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.MaxInt,
		OnExpand: func(grid.Cell) {},
	}
}
