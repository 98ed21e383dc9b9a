// Package aor2022 holds daily puzzle solvers. The hill-climbing solver is
// the one built as a set of reusable packages:
//
//	gridgraph/       — heightmap parsing, grid geometry and the step rule
//	bfs/             — level-order shortest path over a heightmap
//	hillclimb/       — the two puzzle answers wired on top of bfs
//	cmd/hillclimb/   — `hillclimb [-v] <input-path>`, prints both answers
//
// Quick ASCII example (S start, E summit):
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// climbs from S to E in 31 moves, and from the nearest 'a' in 29.
package aor2022
