package hillclimb

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Distance is the answer of one search: a move count, or unreachable.
type Distance struct {
	Steps     int
	Reachable bool
}

// String renders the move count in decimal, or "unreachable".
func (d Distance) String() string {
	if !d.Reachable {
		return "unreachable"
	}
	return strconv.Itoa(d.Steps)
}

// Answers holds both puzzle results.
type Answers struct {
	// Climb is the fewest moves from the start to the end.
	Climb Distance
	// Hike is the fewest moves from any lowest cell to the end.
	Hike Distance
}

// Option configures a Solve call.
type Option func(*Options)

// Options holds the driver settings.
type Options struct {
	// Logger receives one Debug entry per search. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with a logger that writes nowhere.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{Logger: l}
}

// WithLogger routes search traces to l. A nil l keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
