package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/PierreGagelin/aor-2022/bfs"
	"github.com/PierreGagelin/aor-2022/gridgraph"
)

// BenchmarkShortestPath_Open measures a full-grid Ascending search on a
// 200×200 heightmap of gentle slopes, with an unreachable target so every
// reachable cell is explored.
func BenchmarkShortestPath_Open(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	h := randomHeightmap(b, rng, 200, 200, 1)
	never := func(gridgraph.Coordinate) bool { return false }

	b.ReportAllocs()
	b.SetBytes(int64(h.Size()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(h, h.Start, gridgraph.Ascending, never)
	}
}

// BenchmarkShortestPath_NearestLow measures the Descending search toward the
// closest 'a' on a 200×200 heightmap with steeper terrain.
func BenchmarkShortestPath_NearestLow(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	h := randomHeightmap(b, rng, 200, 200, 2)
	low := bfs.AtElevation(h, gridgraph.MinElevation)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(h, h.End, gridgraph.Descending, low)
	}
}
