package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cost cell below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrBadCell indicates an input character that the parser does not accept.
	ErrBadCell = errors.New("gridgraph: invalid cell character")
	// ErrBadObstacle indicates an unknown obstacle tag or rune.
	ErrBadObstacle = errors.New("gridgraph: unknown obstacle")
	// ErrMalformedGrid indicates a lookup outside the grid where the caller
	// promised an in-bounds point.
	ErrMalformedGrid = errors.New("gridgraph: no cell at in-bounds coordinate")
)
