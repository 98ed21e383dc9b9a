// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.Heightmap.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/PierreGagelin/aor-2022/gridgraph"
)

// Sentinel errors for BFS execution. None of them means "unreachable":
// a search that finds no target succeeds with Result.Found == false.
var (
	// ErrGridNil is returned if a nil heightmap is passed.
	ErrGridNil = errors.New("bfs: heightmap is nil")

	// ErrOriginOutOfBounds is returned when the origin lies outside the grid.
	ErrOriginOutOfBounds = errors.New("bfs: origin out of bounds")

	// ErrTargetNil is returned when no target predicate is supplied.
	ErrTargetNil = errors.New("bfs: target predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo when the search found no target.
	ErrNoPath = errors.New("bfs: no path to a target")
)

// Target decides whether a coordinate satisfies the goal of a search.
type Target func(c gridgraph.Coordinate) bool

// At returns a Target matching exactly one cell.
func At(want gridgraph.Coordinate) Target {
	return func(c gridgraph.Coordinate) bool { return c == want }
}

// AtElevation returns a Target matching every cell of h at elevation e.
func AtElevation(h *gridgraph.Heightmap, e gridgraph.Elevation) Target {
	return func(c gridgraph.Coordinate) bool { return h.At(c) == e }
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a cell enters the frontier, with its cost
	// from the origin.
	OnEnqueue func(c gridgraph.Coordinate, cost int)

	// OnDequeue is called immediately before a cell is expanded.
	OnDequeue func(c gridgraph.Coordinate, cost int)

	// MaxDepth, if > 0, stops exploring beyond this cost.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Coordinate, int) {},
		OnDequeue: func(gridgraph.Coordinate, int) {},
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coordinate, cost int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coordinate, cost int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given cost (inclusive).
//
//	d > 0: no cell farther than d moves is discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of one ShortestPath call:
//   - Found: whether any target cell was reached.
//   - Steps: minimum number of moves to the nearest target; 0 when not Found.
//   - Target: the target cell reached first (only meaningful when Found).
//   - Explored: number of cells that entered the frontier.
type Result struct {
	Origin    gridgraph.Coordinate
	Direction gridgraph.Direction
	Found     bool
	Steps     int
	Target    gridgraph.Coordinate
	Explored  int

	grid   *gridgraph.Heightmap
	parent []int
}

// PathTo reconstructs the cells walked from Origin to Target, both included.
// Returns ErrNoPath if the search did not reach a target.
func (r *Result) PathTo() ([]gridgraph.Coordinate, error) {
	if !r.Found {
		return nil, fmt.Errorf("%w from %v (%v)", ErrNoPath, r.Origin, r.Direction)
	}
	// build reversed path
	path := make([]gridgraph.Coordinate, 0, r.Steps+1)
	for cur := r.grid.Index(r.Target); cur >= 0; cur = r.parent[cur] {
		path = append(path, r.grid.Coordinate(cur))
	}
	// reverse to get origin → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
