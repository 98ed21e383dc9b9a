// Package gridgraph defines the elevation grid types and the single
// admissibility rule used by every search over the grid.
package gridgraph

import "fmt"

// Elevation is the height of a single cell, 0 ('a') through 25 ('z').
type Elevation uint8

const (
	// MinElevation is the lowest terrain, written 'a' (and 'S' for the start).
	MinElevation Elevation = 0
	// MaxElevation is the highest terrain, written 'z' (and 'E' for the end).
	MaxElevation Elevation = 'z' - 'a'
)

// Letter returns the lowercase letter encoding e.
func (e Elevation) Letter() byte {
	return 'a' + byte(e)
}

// Coordinate addresses a cell by 0-indexed row and column.
type Coordinate struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the given row and column deltas.
func (c Coordinate) Add(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction selects which way edges are walked during a search.
type Direction int

const (
	// Ascending walks from the start toward the summit: a step may climb at
	// most one unit and may drop any amount.
	Ascending Direction = iota
	// Descending walks the reverse of the Ascending edges.
	Descending
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Heightmap is a rectangular elevation field with its start and end cells.
// It is immutable once built and safe for concurrent readers.
// Elevations are stored row-major in a single slice: cells[Row*Cols+Col].
type Heightmap struct {
	Rows, Cols int
	Start, End Coordinate

	cells           []Elevation
	neighborOffsets [4][2]int
}

// orthogonal lists the N, E, S, W offsets as {dRow, dCol}.
var orthogonal = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
