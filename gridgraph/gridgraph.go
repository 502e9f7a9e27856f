// Package gridgraph provides immutable rectangular grids addressed by
// zero-based (x, y) points. It supports:
//
//   - Cost grids (non-negative traversal cost per cell)
//   - Obstacle grids (mirrors and splitters for beam propagation)
//   - Bounds checks, row-major indexing, and boundary entry enumeration
//
// Any point outside [0, Width) × [0, Height) is out-of-grid.
package gridgraph

import "fmt"

// Bounds describes the rectangle [0, Width) × [0, Height).
type Bounds struct {
	Width, Height int
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (b Bounds) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Len returns Width × Height.
func (b Bounds) Len() int {
	return b.Width * b.Height
}

// Index maps p to a row‑major index: y*Width + x.
// The result is meaningless for out-of-grid points.
// Complexity: O(1).
func (b Bounds) Index(p Point) int {
	return p.Y*b.Width + p.X
}

// PointAt converts a row‑major index back to a Point.
// Complexity: O(1).
func (b Bounds) PointAt(idx int) Point {
	return Point{X: idx % b.Width, Y: idx / b.Width}
}

// Corner returns the bottom-right cell.
func (b Bounds) Corner() Point {
	return Point{X: b.Width - 1, Y: b.Height - 1}
}

// Boundary lists every edge cell paired with its inward heading:
// top row facing South, bottom row facing North, left column facing East,
// right column facing West. Corner cells appear once per adjoining edge.
// Order is deterministic: columns first (top then bottom per x), then rows.
// Complexity: O(W + H).
func (b Bounds) Boundary() []Entry {
	out := make([]Entry, 0, 2*(b.Width+b.Height))
	for x := 0; x < b.Width; x++ {
		out = append(out,
			Entry{At: Point{X: x, Y: 0}, Heading: South},
			Entry{At: Point{X: x, Y: b.Height - 1}, Heading: North},
		)
	}
	for y := 0; y < b.Height; y++ {
		out = append(out,
			Entry{At: Point{X: 0, Y: y}, Heading: East},
			Entry{At: Point{X: b.Width - 1, Y: y}, Heading: West},
		)
	}
	return out
}

// checkRect validates a non-empty rectangular 2D slice and returns its bounds.
func checkRect[T any](values [][]T) (Bounds, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Bounds{}, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return Bounds{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	return Bounds{Width: w, Height: h}, nil
}

// CostGrid is an immutable grid of non-negative traversal costs.
type CostGrid struct {
	Bounds
	cells   []int // row-major
	minCell int
}

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	b, err := checkRect(values)
	if err != nil {
		return nil, err
	}
	cells := make([]int, 0, b.Len())
	minCell := values[0][0]
	for y, row := range values {
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: %d at %v", ErrNegativeCost, c, Pt(x, y))
			}
			if c < minCell {
				minCell = c
			}
			cells = append(cells, c)
		}
	}
	return &CostGrid{Bounds: b, cells: cells, minCell: minCell}, nil
}

// MinCellCost returns the cheapest cell cost in g. Each step of any path
// costs at least this much, which bounds the remaining cost from below.
func (g *CostGrid) MinCellCost() int {
	return g.minCell
}

// Cost returns the cost of entering p, or false if p is out-of-grid.
func (g *CostGrid) Cost(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.Index(p)], true
}

// MustCost is Cost for callers that have already bounds-checked p.
// It panics with ErrMalformedGrid otherwise.
func (g *CostGrid) MustCost(p Point) int {
	c, ok := g.Cost(p)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrMalformedGrid, p))
	}
	return c
}

// ObstacleGrid is an immutable grid of mirror/splitter tags.
type ObstacleGrid struct {
	Bounds
	cells []Obstacle // row-major
}

// NewObstacleGrid constructs an ObstacleGrid from a non-empty, rectangular
// 2D slice indexed as values[y][x]. It copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadObstacle.
func NewObstacleGrid(values [][]Obstacle) (*ObstacleGrid, error) {
	b, err := checkRect(values)
	if err != nil {
		return nil, err
	}
	cells := make([]Obstacle, 0, b.Len())
	for y, row := range values {
		for x, o := range row {
			if o > SplitterHorizontal {
				return nil, fmt.Errorf("%w: tag %d at %v", ErrBadObstacle, uint8(o), Pt(x, y))
			}
			cells = append(cells, o)
		}
	}
	return &ObstacleGrid{Bounds: b, cells: cells}, nil
}

// At returns the obstacle at p, or false if p is out-of-grid.
func (g *ObstacleGrid) At(p Point) (Obstacle, bool) {
	if !g.InBounds(p) {
		return Empty, false
	}
	return g.cells[g.Index(p)], true
}
