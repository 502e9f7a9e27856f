// Package beam provides tunable options and error definitions
// for beam propagation over a gridgraph.ObstacleGrid.
package beam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Sentinel errors for beam execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("beam: grid is nil")

	// ErrBadHeading is returned when the entry heading is not one of the four
	// cardinal headings.
	ErrBadHeading = errors.New("beam: invalid entry heading")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beam: invalid option supplied")
)

// Option configures Trace and MaxEnergized via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the traversal is invoked.
type Option func(*Options)

// Options holds parameters to customize beam propagation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the number of concurrent traversals in MaxEnergized.
	Workers int

	// Logger receives one debug entry per call.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers = runtime.GOMAXPROCS(0)
//   - a logrus logger writing to io.Discard
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  l,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds MaxEnergized parallelism.
//
//	n > 0: at most n traversals run at once
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Best is the winning boundary entry of MaxEnergized.
type Best struct {
	Entry gridgraph.Entry
	Count int
}
