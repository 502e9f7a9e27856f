// Package beam counts the cells a light beam energizes on its way through a
// gridgraph.ObstacleGrid of mirrors ('/', '\') and splitters ('|', '-').
//
// What
//
//   - Trace: propagate one beam from an entry cell and heading; the Result
//     reports energized cells, processed (cell, heading) states, and an ASCII
//     rendering.
//   - Count: Trace reduced to the energized-cell count.
//   - MaxEnergized: run Trace from every boundary entry in parallel and keep
//     the best.
//   - Deflect: the explicit Obstacle × Heading transition table.
//
// Transitions
//
//	empty         → continue straight
//	'/'           → N↔E, S↔W
//	'\'           → N↔W, S↔E
//	'|' along N/S → pass; broadside (E/W) → split into N and S
//	'-' along E/W → pass; broadside (N/S) → split into E and W
//
// Termination
//
//	A beam stops when it leaves the grid or re-enters a cell with a heading
//	it has already entered that cell with. The state space is W·H·4, so
//	every traversal ends even when splitters feed beams back into loops.
//	Pending beams live on an explicit stack, not the call stack.
//
// Concurrency
//
//	Grids are read-only; MaxEnergized fans entries out over an errgroup
//	bounded by WithWorkers and merges by maximum. No locks are taken.
//
// Complexity
//
//   - Trace:        O(W·H·4) time, O(W·H) memory.
//   - MaxEnergized: O((W+H)·W·H·4) time, O(Workers·W·H) memory.
package beam
