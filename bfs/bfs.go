// Package bfs provides level-order breadth-first search over a
// gridgraph.Heightmap, returning the fewest admissible moves from an origin
// to the nearest cell accepted by a Target predicate.
package bfs

import (
	"context"
	"fmt"

	"github.com/PierreGagelin/aor-2022/gridgraph"
)

// queueItem pairs a cell index with its cost from the origin.
type queueItem struct {
	idx  int
	cost int
}

// walker encapsulates mutable BFS state for exactly one search.
type walker struct {
	grid     *gridgraph.Heightmap
	dir      gridgraph.Direction
	isTarget Target
	opts     BFSOptions
	ctx      context.Context
	queue    []queueItem
	visited  []bool
	res      *Result
}

// ShortestPath runs breadth-first search on h from origin, moving only to
// orthogonal neighbors admissible under dir, and stops at the first cell
// for which isTarget holds. An origin that is itself a target costs 0.
//
// Reaching no target is not an error: the Result has Found == false.
// Returns ErrGridNil, ErrTargetNil or ErrOriginOutOfBounds for invalid
// input, ErrOptionViolation for bad options, or the context error when
// the search is cancelled.
// Complexity: O(R×C) time and memory; each cell is enqueued at most once.
func ShortestPath(h *gridgraph.Heightmap, origin gridgraph.Coordinate, dir gridgraph.Direction, isTarget Target, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrGridNil
	}
	if isTarget == nil {
		return nil, ErrTargetNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !h.InBounds(origin) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOriginOutOfBounds, origin, h.Rows, h.Cols)
	}

	// Prepare walker; frontier and visited set live only for this call
	n := h.Size()
	w := &walker{
		grid:     h,
		dir:      dir,
		isTarget: isTarget,
		opts:     o,
		ctx:      o.Ctx,
		queue:    make([]queueItem, 0, n),
		visited:  make([]bool, n),
		res: &Result{
			Origin:    origin,
			Direction: dir,
			grid:      h,
			parent:    make([]int, n),
		},
	}

	// Seed queue with origin (no parent)
	start := h.Index(origin)
	w.enqueue(start, 0, -1)
	if isTarget(origin) {
		w.found(start, 0)
		return w.res, nil
	}

	return w.res, w.loop()
}

// enqueue marks idx visited, records its parent, calls OnEnqueue and adds
// it to the back of the frontier.
func (w *walker) enqueue(idx, cost, parent int) {
	w.visited[idx] = true
	w.res.parent[idx] = parent
	w.res.Explored++
	w.opts.OnEnqueue(w.grid.Coordinate(idx), cost)
	w.queue = append(w.queue, queueItem{idx: idx, cost: cost})
}

// dequeue pops the earliest-enqueued item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.grid.Coordinate(item.idx), item.cost)
	return item
}

// found records a successful search ending at idx.
func (w *walker) found(idx, cost int) {
	w.res.Found = true
	w.res.Steps = cost
	w.res.Target = w.grid.Coordinate(idx)
}

// loop processes the frontier until a target is discovered, the frontier
// empties, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if done := w.expand(item); done {
			return nil
		}
	}
	return nil
}

// expand enqueues every unseen, in-bounds, admissible neighbor of item.
// It reports true as soon as a neighbor satisfies the target predicate;
// level order guarantees that neighbor is a nearest target.
func (w *walker) expand(item queueItem) bool {
	nextCost := item.cost + 1
	if w.opts.MaxDepth > 0 && nextCost > w.opts.MaxDepth {
		return false
	}
	pos := w.grid.Coordinate(item.idx)
	from := w.grid.AtIndex(item.idx)
	for _, d := range w.grid.NeighborOffsets() {
		nbr := pos.Add(d[0], d[1])
		if !w.grid.InBounds(nbr) {
			continue
		}
		ni := w.grid.Index(nbr)
		if w.visited[ni] {
			continue
		}
		if !gridgraph.Admissible(w.dir, from, w.grid.AtIndex(ni)) {
			continue
		}
		w.enqueue(ni, nextCost, item.idx)
		if w.isTarget(nbr) {
			w.found(ni, nextCost)
			return true
		}
	}
	return false
}
