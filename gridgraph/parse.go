package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	startMarker = 'S'
	endMarker   = 'E'
)

// Load parses a heightmap from r: one row per line, every row the same
// non-zero length, runes limited to 'a'..'z' plus exactly one 'S' and one 'E'.
// A single trailing line terminator (LF or CRLF) is accepted.
//
// Start and End are recorded and normalized to MinElevation and MaxElevation
// in the same pass. Read failures wrap ErrIO; every malformed input wraps
// ErrInvalidFormat and no partial heightmap is returned.
// Complexity: O(R×C) time and memory.
func Load(r io.Reader) (*Heightmap, error) {
	p := parser{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		if err := p.row(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	return p.finish()
}

// Parse is Load over an in-memory string.
func Parse(text string) (*Heightmap, error) {
	return Load(strings.NewReader(text))
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	return Load(f)
}

// parser accumulates rows and marker positions for one Load call.
type parser struct {
	rows, cols int
	cells      []Elevation
	start, end *Coordinate
}

// row consumes one input line.
func (p *parser) row(line string) error {
	lineNo := p.rows + 1
	if line == "" {
		if p.rows == 0 {
			return fmt.Errorf("%w: line 1 is empty", ErrEmptyGrid)
		}
		return at(ErrNonRectangular, lineNo, 1, "empty row, want %d cells", p.cols)
	}
	for i := 0; i < len(line); i++ {
		pos := Coordinate{Row: p.rows, Col: i}
		switch ch := line[i]; {
		case ch >= 'a' && ch <= 'z':
			p.cells = append(p.cells, Elevation(ch-'a'))
		case ch == startMarker:
			if p.start != nil {
				return at(ErrDuplicateMarker, lineNo, i+1, "second %q, first at %v", ch, *p.start)
			}
			p.start = &pos
			p.cells = append(p.cells, MinElevation)
		case ch == endMarker:
			if p.end != nil {
				return at(ErrDuplicateMarker, lineNo, i+1, "second %q, first at %v", ch, *p.end)
			}
			p.end = &pos
			p.cells = append(p.cells, MaxElevation)
		default:
			return at(ErrIllegalRune, lineNo, i+1, "%q", ch)
		}
	}
	if p.rows == 0 {
		p.cols = len(line)
	} else if len(line) != p.cols {
		return at(ErrNonRectangular, lineNo, 1, "row has %d cells, want %d", len(line), p.cols)
	}
	p.rows++
	return nil
}

// finish validates markers and builds the Heightmap.
func (p *parser) finish() (*Heightmap, error) {
	if p.rows == 0 {
		return nil, ErrEmptyGrid
	}
	if p.start == nil {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, startMarker)
	}
	if p.end == nil {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, endMarker)
	}

	return newHeightmap(p.rows, p.cols, p.cells, *p.start, *p.end), nil
}
