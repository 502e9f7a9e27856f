// Package pathsearch implements a best-first search for the cheapest path
// across a cost grid when the walker's straight runs are bounded.
//
// The search state is (cell, heading, run length). Entering a cell pays its
// cost; the origin (0,0) is never paid for. The frontier is ordered by
// cost + Manhattan distance × cheapest cell cost, which is consistent for
// every non-negative grid (plain Manhattan when all cells cost ≥ 1).
//
// A state is pushed at most once: every state with run > 1 has exactly one
// predecessor state, and states with run == 1 all share a predecessor cell
// whose competing states are popped in cost order, so the first push
// already carries the minimal cost.
//
// Complexity (N = W·H cells, R = MaxRun):
//
//   - Time:  O(N·4·R · log(N·4·R))
//   - Space: O(N·4·R) for the seen map and the frontier.
package pathsearch

import (
	"container/heap"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

// origin is the fixed starting cell of every search.
var origin = gridgraph.Point{}

// Search computes the minimum accumulated cost from (0,0) to Options.Target
// on g under the configured run bounds.
//
// Returns:
//
//   - *Result with Cost (and Path if WithReturnPath was given).
//   - ErrUnreachable if no path satisfies the run bounds.
//   - Validation errors in order: ErrNilGrid, option errors (ErrBadRunBounds),
//     ErrNoTarget, ErrTargetOutOfBounds.
//   - ctx.Err() if the context is cancelled mid-search.
func Search(g *gridgraph.CostGrid, opts ...Option) (*Result, error) {
	// 1) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.hasTarget {
		return nil, ErrNoTarget
	}
	if !g.InBounds(cfg.Target) {
		return nil, ErrTargetOutOfBounds
	}

	// 3) Run
	r := &runner{
		g:    g,
		opts: cfg,
		seen: make(map[state]state, g.Len()*4),
		pq:   make(frontier, 0, g.Len()),
		step: int64(g.MinCellCost()),
	}
	start := time.Now()
	res, err := r.run()

	fields := logrus.Fields{
		"target":   cfg.Target,
		"min_run":  cfg.MinRun,
		"max_run":  cfg.MaxRun,
		"expanded": r.expanded,
		"enqueued": len(r.seen),
		"elapsed":  time.Since(start),
	}
	if err != nil {
		cfg.Logger.WithFields(fields).WithError(err).Debug("pathsearch: no result")
		return nil, err
	}
	fields["cost"] = res.Cost
	cfg.Logger.WithFields(fields).Debug("pathsearch: done")

	return res, nil
}

// MinCost is the plain form of Search: the minimum cost from (0,0) to target
// with run lengths bounded by [minRun, maxRun].
func MinCost(g *gridgraph.CostGrid, target gridgraph.Point, minRun, maxRun int) (int64, error) {
	res, err := Search(g, Target(target), WithRunBounds(minRun, maxRun))
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// state is a search node. Two states are equal iff all three fields match.
type state struct {
	at  gridgraph.Point
	dir gridgraph.Heading
	run int
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *gridgraph.CostGrid
	opts     Options
	seen     map[state]state // state → predecessor; seeds map to themselves
	pq       frontier
	seq      uint64 // insertion counter for deterministic tie-breaks
	step     int64  // cheapest cell cost; scales the Manhattan heuristic
	expanded int
}

// run seeds the frontier and pops until a valid terminal state appears.
func (r *runner) run() (*Result, error) {
	heap.Init(&r.pq)
	for _, h := range [2]gridgraph.Heading{gridgraph.East, gridgraph.South} {
		s := state{at: origin, dir: h}
		r.seen[s] = s
		r.push(s, 0)
	}

	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*entry)
		r.expanded++
		cur := item.st

		if cur.at == r.opts.Target && cur.run >= r.opts.MinRun {
			res := &Result{Cost: item.cost, Expanded: r.expanded, Enqueued: len(r.seen)}
			if r.opts.ReturnPath {
				res.Path = r.pathTo(cur)
			}
			return res, nil
		}

		r.expand(cur, item.cost)
	}

	return nil, ErrUnreachable
}

// expand pushes every unseen legal successor of cur.
func (r *runner) expand(cur state, cost int64) {
	var (
		next [3]gridgraph.Heading
		n    int
	)
	switch {
	case cur.run < r.opts.MinRun:
		next[0], n = cur.dir, 1
	case cur.run >= r.opts.MaxRun:
		t := cur.dir.Turns()
		next[0], next[1], n = t[0], t[1], 2
	default:
		t := cur.dir.Turns()
		next[0], next[1], next[2], n = cur.dir, t[0], t[1], 3
	}

	for _, h := range next[:n] {
		at := cur.at.Add(h.Delta())
		c, ok := r.g.Cost(at)
		if !ok {
			continue // out of grid
		}
		run := 1
		if h == cur.dir {
			run = cur.run + 1
		}
		s := state{at: at, dir: h, run: run}
		if _, dup := r.seen[s]; dup {
			continue
		}
		r.seen[s] = cur
		r.push(s, cost+int64(c))
	}
}

// push enqueues s with accumulated cost and its frontier priority.
func (r *runner) push(s state, cost int64) {
	prio := cost
	if r.opts.Heuristic {
		prio += int64(s.at.Manhattan(r.opts.Target)) * r.step
	}
	r.seq++
	heap.Push(&r.pq, &entry{prio: prio, cost: cost, seq: r.seq, st: s})
}

// pathTo walks predecessor links back to a seed and returns the cells
// from the origin to s.at.
func (r *runner) pathTo(s state) []gridgraph.Point {
	var rev []gridgraph.Point
	for {
		rev = append(rev, s.at)
		p := r.seen[s]
		if p == s {
			break
		}
		s = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// entry is a frontier item: priority, accumulated cost, and state.
type entry struct {
	prio int64
	cost int64
	seq  uint64
	st   state
}

// frontier is a min-heap of *entry ordered by prio, then insertion order.
type frontier []*entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority; equal priorities pop first-in first-out.
func (pq frontier) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
