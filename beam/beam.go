// Package beam simulates light beams crossing a grid of mirrors and
// splitters and counts the cells they energize.
package beam

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// Result holds the outcome of a single traversal.
type Result struct {
	gridgraph.Bounds
	seen   []uint8 // per cell: bit h set once a beam entered it heading h
	cells  int     // distinct energized cells
	states int     // distinct (cell, heading) pairs
}

// Count returns the number of distinct energized cells.
func (r *Result) Count() int { return r.cells }

// States returns the number of distinct (cell, heading) pairs processed.
func (r *Result) States() int { return r.states }

// Energized reports whether any beam passed through p.
func (r *Result) Energized(p gridgraph.Point) bool {
	return r.InBounds(p) && r.seen[r.Index(p)] != 0
}

// Render draws the grid with '#' for energized and '.' for dark cells,
// one row per line.
func (r *Result) Render() string {
	var sb strings.Builder
	sb.Grow(r.Len() + r.Height)
	for i, m := range r.seen {
		if m != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if (i+1)%r.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Trace propagates a beam entering entry.At with entry.Heading and returns
// every cell it energizes. A beam that leaves the grid or repeats a
// (cell, heading) pair stops; an entry outside the grid energizes nothing.
// Returns ErrNilGrid, ErrBadHeading, ErrOptionViolation, or ctx.Err().
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func Trace(g *gridgraph.ObstacleGrid, entry gridgraph.Entry, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !entry.Heading.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadHeading, entry.Heading)
	}

	start := time.Now()
	res, err := trace(o.Ctx, g, entry)
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(logrus.Fields{
		"entry":     entry,
		"energized": res.cells,
		"states":    res.states,
		"elapsed":   time.Since(start),
	}).Debug("beam: trace done")

	return res, nil
}

// Count returns the number of cells energized by a beam entering at with
// heading h.
func Count(g *gridgraph.ObstacleGrid, at gridgraph.Point, h gridgraph.Heading) (int, error) {
	res, err := Trace(g, gridgraph.Entry{At: at, Heading: h})
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// trace is the work-list traversal. Pending beams sit on an explicit stack
// instead of the call stack, so long mirror chains cannot overflow it.
func trace(ctx context.Context, g *gridgraph.ObstacleGrid, entry gridgraph.Entry) (*Result, error) {
	res := &Result{Bounds: g.Bounds, seen: make([]uint8, g.Len())}
	stack := []gridgraph.Entry{entry}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// follow one beam until it exits, repeats, or splits
		for {
			obstacle, ok := g.At(cur.At)
			if !ok {
				break // left the grid
			}
			idx := g.Index(cur.At)
			bit := uint8(1) << cur.Heading
			if res.seen[idx]&bit != 0 {
				break // cycle
			}
			if res.seen[idx] == 0 {
				res.cells++
			}
			res.seen[idx] |= bit
			res.states++

			next, n := deflect(obstacle, cur.Heading)
			if n == 0 {
				break
			}
			if n == 2 {
				stack = append(stack, gridgraph.Entry{At: cur.At.Add(next[1].Delta()), Heading: next[1]})
			}
			cur = gridgraph.Entry{At: cur.At.Add(next[0].Delta()), Heading: next[0]}
		}
	}

	return res, nil
}
