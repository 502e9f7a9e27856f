// Package pathsearch defines core types and configuration options
// for the run-length constrained shortest-path search on cost grids.
//
// Options:
//
//	– Target:       cell to reach (required; must lie inside the grid).
//	– MinRun:       straight steps required before a turn (and before stopping).
//	– MaxRun:       straight steps allowed before a turn is forced.
//	– Heuristic:    order the frontier by cost + Manhattan distance (A*) or by cost alone.
//	– ReturnPath:   if true, reconstruct the cheapest path in Result.Path.
//	– Ctx:          cancellation, checked once per frontier pop.
//	– Logger:       receives one debug entry per search.
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the provided grid pointer is nil.
//	– ErrNoTarget           if Target was never set.
//	– ErrTargetOutOfBounds  if Target lies outside the grid.
//	– ErrBadRunBounds       if MinRun < 0, MaxRun < 1, or MinRun > MaxRun.
//	– ErrUnreachable        if the frontier empties before a valid terminal state.
package pathsearch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrNoTarget indicates that the Target option was not supplied.
	ErrNoTarget = errors.New("pathsearch: target not set")

	// ErrTargetOutOfBounds indicates the target lies outside the grid.
	ErrTargetOutOfBounds = errors.New("pathsearch: target outside grid")

	// ErrBadRunBounds indicates an invalid MinRun/MaxRun combination.
	ErrBadRunBounds = errors.New("pathsearch: invalid run bounds")

	// ErrUnreachable indicates that no path satisfies the run-length
	// constraints. It is a legitimate outcome, not a contract violation.
	ErrUnreachable = errors.New("pathsearch: target unreachable under run constraints")
)

// Defaults for the run bounds: turn at most every three steps, no minimum
// beyond the first step.
const (
	DefaultMinRun = 1
	DefaultMaxRun = 3
)

// Options configures the behavior of Search.
//
// MinRun – a path must move at least MinRun cells in one heading before
//
//	turning, and may only stop at the target after at least MinRun cells.
//
// MaxRun – a path must turn after MaxRun cells in one heading.
type Options struct {
	Target     gridgraph.Point    // cell to reach
	MinRun     int                // minimum consecutive straight steps
	MaxRun     int                // maximum consecutive straight steps
	Heuristic  bool               // A* ordering (true) or plain Dijkstra ordering
	ReturnPath bool               // reconstruct Result.Path
	Ctx        context.Context    // cancellation
	Logger     logrus.FieldLogger // debug sink

	hasTarget bool
	err       error // first invalid option, surfaced by Search
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Target sets the cell the search must reach. Must be called.
func Target(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Target = p
		o.hasTarget = true
	}
}

// WithRunBounds sets the minimum and maximum run length.
//
//	min < 0, max < 1 or min > max: invalid → ErrBadRunBounds from Search.
func WithRunBounds(min, max int) Option {
	return func(o *Options) {
		if min < 0 || max < 1 || min > max {
			o.err = fmt.Errorf("%w: min=%d max=%d", ErrBadRunBounds, min, max)
			return
		}
		o.MinRun, o.MaxRun = min, max
	}
}

// WithoutHeuristic orders the frontier by accumulated cost alone.
// The answer is unchanged; more states are usually expanded.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = false
	}
}

// WithReturnPath enables reconstruction of the cheapest path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
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

// WithLogger routes the per-search debug summary to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MinRun/MaxRun: DefaultMinRun/DefaultMaxRun.
//   - Heuristic:     true.
//   - ReturnPath:    false.
//   - Ctx:           context.Background().
//   - Logger:        a logrus logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		MinRun:    DefaultMinRun,
		MaxRun:    DefaultMaxRun,
		Heuristic: true,
		Ctx:       context.Background(),
		Logger:    discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Result is the outcome of a successful Search.
//   - Cost:     minimum accumulated cost; the origin cell's own cost is never paid.
//   - Path:     cells from the origin to Target inclusive (only with ReturnPath).
//   - Expanded: frontier entries popped.
//   - Enqueued: distinct states pushed (including the two seeds).
type Result struct {
	Cost     int64
	Path     []gridgraph.Point
	Expanded int
	Enqueued int
}
