package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/PierreGagelin/aor-2022/gridgraph"
)

// randomText builds an n×n heightmap text with S at the top-left and E at the
// bottom-right.
func randomText(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == n-1 && c == n-1:
				sb.WriteByte('E')
			default:
				sb.WriteByte(byte('a' + rng.Intn(26)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures Load on a random 1000×1000 heightmap.
// Complexity: O(R×C)
func BenchmarkParse(b *testing.B) {
	text := randomText(1000, 42)

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Parse(text); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
