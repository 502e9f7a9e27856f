package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readRows scans r line by line, mapping each rune through cell.
// Trailing blank lines and '\r' are ignored; a blank line followed by more
// content is reported as a ragged row.
func readRows[T any](r io.Reader, cell func(rune) (T, error)) ([][]T, error) {
	var (
		rows    [][]T
		pending int // blank lines seen since the last non-blank row
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, line)
		}
		pending = 0
		row := make([]T, 0, len(text))
		col := 1
		for _, ch := range text {
			v, err := cell(ch)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w", line, col, err)
			}
			row = append(row, v)
			col++
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	return rows, nil
}

// ParseCostGrid reads a grid of single decimal digits, one row per line.
// Returns ErrBadCell for non-digits, plus any NewCostGrid error.
// Complexity: O(W×H).
func ParseCostGrid(r io.Reader) (*CostGrid, error) {
	rows, err := readRows(r, func(ch rune) (int, error) {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit", ErrBadCell, ch)
		}
		return int(ch - '0'), nil
	})
	if err != nil {
		return nil, err
	}
	return NewCostGrid(rows)
}

// ParseObstacleGrid reads a grid of '.', '/', '\', '|' and '-' characters.
// Returns ErrBadCell for any other rune, plus any NewObstacleGrid error.
// Complexity: O(W×H).
func ParseObstacleGrid(r io.Reader) (*ObstacleGrid, error) {
	rows, err := readRows(r, func(ch rune) (Obstacle, error) {
		o, err := ParseObstacle(ch)
		if err != nil {
			return Empty, fmt.Errorf("%w: %v", ErrBadCell, err)
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	return NewObstacleGrid(rows)
}

// String renders g back into its input form.
func (g *ObstacleGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, o := range g.cells {
		sb.WriteRune(o.Rune())
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String renders g back into its input form. Costs above 9 are written
// in brackets so the output stays unambiguous.
func (g *CostGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, c := range g.cells {
		if c <= 9 {
			sb.WriteByte(byte('0' + c))
		} else {
			fmt.Fprintf(&sb, "[%d]", c)
		}
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
