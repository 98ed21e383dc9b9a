package gridgraph

import (
	"fmt"
	"strings"
)

// NewHeightmap constructs a Heightmap from a non-empty, rectangular 2D slice
// of elevations and the two marker coordinates.
// It deep-copies the input to ensure immutability, then stores start at
// MinElevation and end at MaxElevation exactly as Load does.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrElevationRange for a value
// above MaxElevation, ErrMarkerOutOfBounds for a marker outside the grid and
// ErrDuplicateMarker if start and end share a cell.
// Complexity: O(R×C) time and memory.
func NewHeightmap(values [][]Elevation, start, end Coordinate) (*Heightmap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]Elevation, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, e := range row {
			if e > MaxElevation {
				return nil, fmt.Errorf("%w: %d at %v", ErrElevationRange, e, Coordinate{r, c})
			}
		}
		cells = append(cells, row...)
	}
	h := newHeightmap(rows, cols, cells, start, end)
	for _, m := range []Coordinate{start, end} {
		if !h.InBounds(m) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrMarkerOutOfBounds, m, rows, cols)
		}
	}
	if start == end {
		return nil, fmt.Errorf("%w: start and end both at %v", ErrDuplicateMarker, start)
	}
	cells[h.Index(start)] = MinElevation
	cells[h.Index(end)] = MaxElevation

	return h, nil
}

// newHeightmap wires an already validated cell slice into a Heightmap.
func newHeightmap(rows, cols int, cells []Elevation, start, end Coordinate) *Heightmap {
	return &Heightmap{
		Rows:            rows,
		Cols:            cols,
		Start:           start,
		End:             end,
		cells:           cells,
		neighborOffsets: orthogonal,
	}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (h *Heightmap) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < h.Rows && c.Col >= 0 && c.Col < h.Cols
}

// Size returns the number of cells, Rows×Cols.
func (h *Heightmap) Size() int {
	return h.Rows * h.Cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// c must be in bounds.
func (h *Heightmap) Index(c Coordinate) int {
	return c.Row*h.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (h *Heightmap) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / h.Cols, Col: idx % h.Cols}
}

// At returns the elevation of cell c. c must be in bounds.
func (h *Heightmap) At(c Coordinate) Elevation {
	return h.cells[h.Index(c)]
}

// AtIndex returns the elevation stored at row-major index idx.
func (h *Heightmap) AtIndex(idx int) Elevation {
	return h.cells[idx]
}

// NeighborOffsets returns the orthogonal {dRow, dCol} offsets in N, E, S, W order.
// Searches should iterate these rather than allocate neighbor slices.
func (h *Heightmap) NeighborOffsets() [4][2]int {
	return h.neighborOffsets
}

// Neighbors returns the in-bounds orthogonal neighbors of c in N, E, S, W order.
func (h *Heightmap) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(h.neighborOffsets))
	for _, d := range h.neighborOffsets {
		n := c.Add(d[0], d[1])
		if h.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// LowPoints returns every cell at MinElevation, in row-major order.
// The start cell is always among them.
func (h *Heightmap) LowPoints() []Coordinate {
	var out []Coordinate
	for i, e := range h.cells {
		if e == MinElevation {
			out = append(out, h.Coordinate(i))
		}
	}
	return out
}

// String renders the heightmap in its input form, with 'S' and 'E' restored.
func (h *Heightmap) String() string {
	var sb strings.Builder
	sb.Grow(h.Rows * (h.Cols + 1))
	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			switch pos := (Coordinate{r, c}); pos {
			case h.Start:
				sb.WriteByte(startMarker)
			case h.End:
				sb.WriteByte(endMarker)
			default:
				sb.WriteByte(h.At(pos).Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
