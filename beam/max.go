package beam

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// MaxEnergized traces a beam from every boundary entry of g (see
// gridgraph.Bounds.Boundary) and returns the entry that energizes the most
// cells. Ties go to the entry listed first by Boundary.
//
// Traversals are independent: each owns its visited set and only reads g.
// They run on at most Options.Workers goroutines; the first error (for
// example a cancelled context) stops the remaining work.
//
// Complexity: O((W+H) · W·H·4) time, O(Workers · W·H) memory.
func MaxEnergized(g *gridgraph.ObstacleGrid, opts ...Option) (Best, error) {
	if g == nil {
		return Best{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Best{}, o.err
	}

	start := time.Now()
	entries := g.Boundary()
	counts := make([]int, len(entries))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, e := range entries {
		i, e := i, e
		eg.Go(func() error {
			res, err := trace(ctx, g, e)
			if err != nil {
				return err
			}
			counts[i] = res.cells
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Best{}, err
	}

	best := Best{Entry: entries[0], Count: counts[0]}
	for i, c := range counts[1:] {
		if c > best.Count {
			best = Best{Entry: entries[i+1], Count: c}
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"entries": len(entries),
		"workers": o.Workers,
		"best":    best.Entry,
		"count":   best.Count,
		"elapsed": time.Since(start),
	}).Debug("beam: boundary scan done")

	return best, nil
}
