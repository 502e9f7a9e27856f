// Package pathsearch provides a run-length constrained cheapest-path search
// over a gridgraph.CostGrid.
//
// Overview:
//
//   - The walker starts at (0,0) facing East or South and pays the cost of
//     every cell it enters.
//   - After entering a heading it must keep it for at least MinRun cells and
//     may keep it for at most MaxRun cells; a 180° reversal is never allowed.
//   - The walker may only stop on Target after a run of at least MinRun cells.
//
// Typical settings:
//
//   - MinRun=1, MaxRun=3:  "turn at least every three cells".
//   - MinRun=4, MaxRun=10: "commit to four cells, turn within ten".
//
// Algorithm:
//
//   - Best-first search over states (cell, heading, run length) using a
//     container/heap min-heap keyed by accumulated cost plus an admissible
//     Manhattan-distance estimate (A*). WithoutHeuristic() reverts to plain
//     Dijkstra ordering; both return the same cost.
//   - A state is pushed the first time it is seen and never again; the first
//     pop of a Target state with run ≥ MinRun is the answer.
//   - Out-of-grid moves are pruned silently.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNoTarget, ErrTargetOutOfBounds, ErrBadRunBounds:
//     invalid input, returned before any work is done.
//   - ErrUnreachable: the frontier emptied; no path satisfies the run bounds.
//     This is reported as an error value instead of a magic "infinite" cost.
//
// Example usage:
//
//	g, _ := gridgraph.ParseCostGrid(r)
//	res, err := pathsearch.Search(g,
//	    pathsearch.Target(g.Corner()),
//	    pathsearch.WithRunBounds(4, 10),
//	    pathsearch.WithReturnPath(),
//	)
//	if errors.Is(err, pathsearch.ErrUnreachable) {
//	    ...
//	}
//	fmt.Println(res.Cost, len(res.Path))
package pathsearch
