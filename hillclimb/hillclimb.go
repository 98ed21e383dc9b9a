// Package hillclimb answers both halves of the hill-climbing puzzle:
// the shortest climb from the marked start to the summit, and the
// shortest climb to the summit from whichever lowest cell is closest.
//
// The second answer is found with a single Descending search outward from
// the summit instead of one Ascending search per lowest cell. The two are
// equivalent because every move costs 1 and Descending is exactly the
// reversed Ascending rule.
package hillclimb

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PierreGagelin/aor-2022/bfs"
	"github.com/PierreGagelin/aor-2022/gridgraph"
)

// Climb searches Ascending from h.Start until it reaches h.End.
func Climb(ctx context.Context, h *gridgraph.Heightmap, opts ...Option) (*bfs.Result, error) {
	if h == nil {
		return nil, bfs.ErrGridNil
	}
	return search(ctx, h, h.Start, gridgraph.Ascending, bfs.At(h.End), "climb", opts)
}

// Hike searches Descending from h.End until it reaches any cell at
// MinElevation.
func Hike(ctx context.Context, h *gridgraph.Heightmap, opts ...Option) (*bfs.Result, error) {
	if h == nil {
		return nil, bfs.ErrGridNil
	}
	return search(ctx, h, h.End, gridgraph.Descending, bfs.AtElevation(h, gridgraph.MinElevation), "hike", opts)
}

// Solve runs both searches on h. The searches share h read-only and each
// owns its own frontier.
func Solve(ctx context.Context, h *gridgraph.Heightmap, opts ...Option) (Answers, error) {
	up, err := Climb(ctx, h, opts...)
	if err != nil {
		return Answers{}, err
	}
	down, err := Hike(ctx, h, opts...)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Climb: distance(up), Hike: distance(down)}, nil
}

// SolveFile loads the heightmap at path and solves it.
// Load failures are returned as is and match gridgraph.ErrIO or
// gridgraph.ErrInvalidFormat.
func SolveFile(ctx context.Context, path string, opts ...Option) (Answers, error) {
	h, err := gridgraph.LoadFile(path)
	if err != nil {
		return Answers{}, err
	}
	return Solve(ctx, h, opts...)
}

func search(ctx context.Context, h *gridgraph.Heightmap, origin gridgraph.Coordinate, dir gridgraph.Direction, to bfs.Target, name string, opts []Option) (*bfs.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res, err := bfs.ShortestPath(h, origin, dir, to, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("hillclimb: %s: %w", name, err)
	}
	o.Logger.WithFields(logrus.Fields{
		"search":    name,
		"origin":    res.Origin.String(),
		"direction": res.Direction.String(),
		"found":     res.Found,
		"steps":     res.Steps,
		"explored":  res.Explored,
	}).Debug("search finished")

	return res, nil
}

func distance(res *bfs.Result) Distance {
	return Distance{Steps: res.Steps, Reachable: res.Found}
}
