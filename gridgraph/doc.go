// Package gridgraph models a hill-climbing heightmap: a rectangular grid of
// elevations written as lowercase letters, with one start cell 'S' and one
// end cell 'E'.
//
// What:
//
//   - Load parses the text form in a single pass, recording Start and End and
//     normalizing them to elevations 'a' and 'z'.
//   - Heightmap stores elevations row-major in one dense slice, so a cell can
//     be addressed either by Coordinate or by its flat index.
//   - Admissible is the only movement rule. Descending is the Ascending rule
//     applied to the reversed edge.
//
// Complexity:
//
//   - Load:        O(R×C), Memory: O(R×C).
//   - Neighbors:   O(1).
//   - LowPoints:   O(R×C).
//
// Errors:
//
//   - ErrIO: the input could not be opened or read.
//   - ErrInvalidFormat: umbrella for every malformed input. The specific
//     causes ErrEmptyGrid, ErrNonRectangular, ErrIllegalRune,
//     ErrMissingMarker, ErrDuplicateMarker, ErrElevationRange and
//     ErrMarkerOutOfBounds all match it with errors.Is.
package gridgraph
