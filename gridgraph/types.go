// Package gridgraph defines core types, headings, and obstacle tags
// for the gridgraph subpackage of github.com/katalvlaran/gridwalk.
package gridgraph

import "fmt"

// Point is a cell coordinate. X grows to the East, Y grows to the South.
// Points are plain values and may be used as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the L1 distance between p and q.
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Heading is one of the four cardinal movement directions.
type Heading uint8

const (
	// North moves towards row 0.
	North Heading = iota
	// East moves towards the last column.
	East
	// South moves towards the last row.
	South
	// West moves towards column 0.
	West
)

// Headings lists all four headings in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// deltas is indexed by Heading.
var deltas = [4]Point{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Valid reports whether h is one of the four defined headings.
func (h Heading) Valid() bool {
	return h <= West
}

// Delta returns the unit step for h.
// Panics if h is not Valid.
func (h Heading) Delta() Point {
	return deltas[h]
}

// Reverse returns the opposite heading (North↔South, East↔West).
func (h Heading) Reverse() Heading {
	return (h + 2) % 4
}

// Turns returns the two headings perpendicular to h, counter-clockwise first.
func (h Heading) Turns() [2]Heading {
	return [2]Heading{(h + 3) % 4, (h + 1) % 4}
}

// Vertical reports whether h is North or South.
func (h Heading) Vertical() bool {
	return h == North || h == South
}

// String returns the single-letter compass name.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// Entry is a starting cell together with the heading a beam or walker
// enters it with.
type Entry struct {
	At      Point
	Heading Heading
}

// String renders e as "(x,y)→H".
func (e Entry) String() string {
	return e.At.String() + "→" + e.Heading.String()
}

// Obstacle tags the content of a single cell in an ObstacleGrid.
// The set of values is closed; every switch over Obstacle in this module
// handles all five cases.
type Obstacle uint8

const (
	// Empty lets a beam pass straight through.
	Empty Obstacle = iota
	// MirrorSlash is '/': reflects North↔East and South↔West.
	MirrorSlash
	// MirrorBackslash is '\': reflects North↔West and South↔East.
	MirrorBackslash
	// SplitterVertical is '|': passes North/South, splits East/West into North+South.
	SplitterVertical
	// SplitterHorizontal is '-': passes East/West, splits North/South into East+West.
	SplitterHorizontal
)

// ParseObstacle maps an input rune to its Obstacle tag.
// Returns ErrBadObstacle for any rune outside ". / \ | -".
func ParseObstacle(r rune) (Obstacle, error) {
	switch r {
	case '.':
		return Empty, nil
	case '/':
		return MirrorSlash, nil
	case '\\':
		return MirrorBackslash, nil
	case '|':
		return SplitterVertical, nil
	case '-':
		return SplitterHorizontal, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrBadObstacle, r)
	}
}

// Rune returns the input character for o.
func (o Obstacle) Rune() rune {
	switch o {
	case Empty:
		return '.'
	case MirrorSlash:
		return '/'
	case MirrorBackslash:
		return '\\'
	case SplitterVertical:
		return '|'
	case SplitterHorizontal:
		return '-'
	default:
		return '?'
	}
}

// String returns the input character for o as a string.
func (o Obstacle) String() string { return string(o.Rune()) }
