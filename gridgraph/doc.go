// Package gridgraph models a rectangular puzzle grid as the read-only index
// consumed by the grid searches in this module.
//
// What:
//
//   - Point and Heading: value types for cells and the four cardinal moves.
//   - CostGrid: non-negative integer cost per cell (entering a cell pays its cost).
//   - ObstacleGrid: per-cell mirror/splitter tags (closed Obstacle enum).
//   - Bounds: InBounds, row-major Index/PointAt, and Boundary entry enumeration.
//   - Parsers for the plain-text forms of both grids.
//
// Coordinates:
//
//	(0,0) is the top-left cell; X grows East, Y grows South.
//	North = (0,-1), South = (0,1), East = (1,0), West = (-1,0).
//
// Grids are immutable once built and safe for concurrent readers.
//
// Complexity:
//
//   - NewCostGrid / NewObstacleGrid / Parse*: O(W×H) time and memory.
//   - Cost / At / InBounds / Index: O(1).
//   - Boundary: O(W + H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cost cell is below zero.
//   - ErrBadCell: the parser met a character outside the grid's alphabet.
//   - ErrBadObstacle: unknown obstacle tag or rune.
//   - ErrMalformedGrid: MustCost called for an out-of-grid point.
package gridgraph
