// Package bfs provides breadth-first shortest-path search over a
// gridgraph.Heightmap, where every move between orthogonal neighbors costs 1
// and is gated by gridgraph.Admissible for the chosen direction.
//
// What
//
//   - ShortestPath finds the fewest moves from an origin to the nearest cell
//     accepted by a Target predicate (At for a single cell, AtElevation for a
//     whole elevation class).
//   - Returns a Result containing:
//   - Found: whether any target was reached ("unreachable" is Found == false,
//     never an error and never a sentinel distance)
//   - Steps: the minimum move count
//   - Target: the nearest target cell
//   - PathTo(): the cells walked, origin first
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a cell enters the frontier)
//   - OnDequeue (a cell is about to be expanded)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why level order is enough
//
//	All moves cost 1, so cells leave the FIFO frontier in non-decreasing cost
//	order and each cell is enqueued at most once. The first target discovered
//	is therefore a nearest one, and the search stops right there.
//
// Reversing a search
//
//	A Descending search from a cell X toward a set T reaches the same
//	distances as Ascending searches from each member of T toward X, because
//	the Descending rule is the Ascending rule on reversed edges. This only
//	holds while every move costs the same; weighted variants need a
//	different algorithm.
//
// Complexity (R×C = number of cells)
//
//   - Time:   O(R×C)   (each cell enqueued at most once, four neighbors each)
//   - Memory: O(R×C)   (dense visited and parent slices, frontier)
//
// Usage
//
//	res, err := bfs.ShortestPath(h, h.Start, gridgraph.Ascending, bfs.At(h.End))
//	if err != nil {
//		// ErrGridNil, ErrTargetNil, ErrOriginOutOfBounds, ErrOptionViolation or ctx error
//	}
//	if !res.Found {
//		// unreachable
//	}
//
//	// With functional options:
//	res, err := bfs.ShortestPath(
//		h, h.End, gridgraph.Descending, bfs.AtElevation(h, gridgraph.MinElevation),
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(100),
//		bfs.WithOnDequeue(func(c gridgraph.Coordinate, cost int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil            if the heightmap pointer is nil.
//   - ErrTargetNil          if the target predicate is nil.
//   - ErrOriginOutOfBounds  if the origin lies outside the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath             from Result.PathTo when nothing was found.
package bfs
