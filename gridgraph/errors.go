package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is the umbrella error for any malformed heightmap.
	// Every more specific format error below also matches it with errors.Is.
	ErrInvalidFormat = errors.New("gridgraph: invalid heightmap format")
	// ErrIO indicates the input could not be opened or read.
	ErrIO = errors.New("gridgraph: cannot read heightmap")

	// ErrEmptyGrid indicates the input has no rows or an empty row.
	ErrEmptyGrid = formatError("input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = formatError("all rows must have the same length")
	// ErrIllegalRune indicates a character outside 'a'..'z', 'S' and 'E'.
	ErrIllegalRune = formatError("illegal character")
	// ErrMissingMarker indicates the start or end marker is absent.
	ErrMissingMarker = formatError("missing start or end marker")
	// ErrDuplicateMarker indicates the start or end marker appears more than once.
	ErrDuplicateMarker = formatError("duplicate start or end marker")
	// ErrElevationRange indicates an elevation above MaxElevation.
	ErrElevationRange = formatError("elevation out of range")
	// ErrMarkerOutOfBounds indicates a start or end coordinate outside the grid.
	ErrMarkerOutOfBounds = formatError("marker outside grid bounds")
)

// kindError is a specific format error that also reports itself as ErrInvalidFormat.
type kindError struct {
	msg string
}

func formatError(msg string) error {
	return &kindError{msg: "gridgraph: " + msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == ErrInvalidFormat }

// at decorates a format error with the 1-based input position it was found at.
func at(err error, line, col int, format string, args ...any) error {
	return fmt.Errorf("%w at line %d, column %d: %s", err, line, col, fmt.Sprintf(format, args...))
}
