package gridgraph

// Admissible reports whether a single step from elevation from to elevation
// to is legal when walking in direction dir.
//
//	Ascending:  to ≤ from+1  (climb at most one unit, drop any amount)
//	Descending: from ≤ to+1  (the Ascending rule on the reversed edge)
//
// Admissible(Ascending, a, b) == Admissible(Descending, b, a) for all a, b.
func Admissible(dir Direction, from, to Elevation) bool {
	if dir == Descending {
		from, to = to, from
	}
	return int(to) <= int(from)+1
}

// CanStep reports whether the orthogonal step a→b is admissible in dir.
// Both cells must be in bounds.
func (h *Heightmap) CanStep(dir Direction, a, b Coordinate) bool {
	return Admissible(dir, h.At(a), h.At(b))
}
