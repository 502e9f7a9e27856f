package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNewCostGrid_Errors verifies that NewCostGrid rejects empty, ragged,
// or negative inputs.
func TestNewCostGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}}, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCostGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewCostGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewObstacleGrid_Errors verifies rectangle checks and unknown tags.
func TestNewObstacleGrid_Errors(t *testing.T) {
	_, err := gridgraph.NewObstacleGrid(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewObstacleGrid([][]gridgraph.Obstacle{{gridgraph.Empty}, {}})
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.NewObstacleGrid([][]gridgraph.Obstacle{{gridgraph.Obstacle(42)}})
	require.ErrorIs(t, err, gridgraph.ErrBadObstacle)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestCost_CopiesInput ensures later mutation of the source slice is not visible.
func TestCost_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewCostGrid(src)
	require.NoError(t, err)
	src[1][0] = 99

	c, ok := g.Cost(gridgraph.Pt(0, 1))
	require.True(t, ok)
	require.Equal(t, 3, c)

	_, ok = g.Cost(gridgraph.Pt(2, 0))
	require.False(t, ok)
}

// TestMustCost_PanicsOutside asserts the contract-violation panic.
func TestMustCost_PanicsOutside(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{5}})
	require.NoError(t, err)
	require.Equal(t, 5, g.MustCost(gridgraph.Pt(0, 0)))
	require.PanicsWithError(t, "gridgraph: no cell at in-bounds coordinate: (1,0)", func() {
		g.MustCost(gridgraph.Pt(1, 0))
	})
}

// TestIndexRoundTrip checks Index and PointAt are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	b := gridgraph.Bounds{Width: 4, Height: 3}
	for i := 0; i < b.Len(); i++ {
		p := b.PointAt(i)
		require.True(t, b.InBounds(p))
		require.Equal(t, i, b.Index(p))
	}
	require.Equal(t, gridgraph.Pt(3, 2), b.Corner())
}

// TestBoundary verifies the entry count and inward headings.
func TestBoundary(t *testing.T) {
	b := gridgraph.Bounds{Width: 3, Height: 2}
	entries := b.Boundary()
	require.Len(t, entries, 2*(3+2))

	for _, e := range entries {
		require.True(t, b.InBounds(e.At), "entry %v outside grid", e)
		back := e.At.Add(e.Heading.Reverse().Delta())
		require.False(t, b.InBounds(back), "entry %v does not face inward", e)
	}
	require.Contains(t, entries, gridgraph.Entry{At: gridgraph.Pt(0, 0), Heading: gridgraph.East})
	require.Contains(t, entries, gridgraph.Entry{At: gridgraph.Pt(0, 0), Heading: gridgraph.South})
	require.Contains(t, entries, gridgraph.Entry{At: gridgraph.Pt(2, 1), Heading: gridgraph.North})
	require.Contains(t, entries, gridgraph.Entry{At: gridgraph.Pt(2, 1), Heading: gridgraph.West})
}

//----------------------------------------------------------------------------//
// Headings
//----------------------------------------------------------------------------//

// TestHeading_Geometry checks deltas, reversal, and perpendicular turns.
func TestHeading_Geometry(t *testing.T) {
	cases := []struct {
		h       gridgraph.Heading
		delta   gridgraph.Point
		reverse gridgraph.Heading
		turns   [2]gridgraph.Heading
	}{
		{gridgraph.North, gridgraph.Pt(0, -1), gridgraph.South, [2]gridgraph.Heading{gridgraph.West, gridgraph.East}},
		{gridgraph.East, gridgraph.Pt(1, 0), gridgraph.West, [2]gridgraph.Heading{gridgraph.North, gridgraph.South}},
		{gridgraph.South, gridgraph.Pt(0, 1), gridgraph.North, [2]gridgraph.Heading{gridgraph.East, gridgraph.West}},
		{gridgraph.West, gridgraph.Pt(-1, 0), gridgraph.East, [2]gridgraph.Heading{gridgraph.South, gridgraph.North}},
	}
	for _, tc := range cases {
		t.Run(tc.h.String(), func(t *testing.T) {
			require.True(t, tc.h.Valid())
			require.Equal(t, tc.delta, tc.h.Delta())
			require.Equal(t, tc.reverse, tc.h.Reverse())
			require.Equal(t, tc.turns, tc.h.Turns())
			require.Equal(t, tc.h.Vertical(), tc.delta.X == 0)
		})
	}
	require.False(t, gridgraph.Heading(4).Valid())
	require.Equal(t, "Heading(4)", gridgraph.Heading(4).String())
}

// TestManhattan checks the L1 metric.
func TestManhattan(t *testing.T) {
	require.Equal(t, 0, gridgraph.Pt(3, 3).Manhattan(gridgraph.Pt(3, 3)))
	require.Equal(t, 7, gridgraph.Pt(-1, 2).Manhattan(gridgraph.Pt(2, -2)))
}

//----------------------------------------------------------------------------//
// Parsers
//----------------------------------------------------------------------------//

// TestParseCostGrid covers the happy path and the error sentinels.
func TestParseCostGrid(t *testing.T) {
	g, err := gridgraph.ParseCostGrid(strings.NewReader("241\r\n321\n\n"))
	require.NoError(t, err)
	require.Equal(t, gridgraph.Bounds{Width: 3, Height: 2}, g.Bounds)
	require.Equal(t, 1, g.MustCost(gridgraph.Pt(2, 0)))
	require.Equal(t, "241\n321\n", g.String())

	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyBlank", "\n\n", gridgraph.ErrEmptyGrid},
		{"Letter", "12\n3x\n", gridgraph.ErrBadCell},
		{"Ragged", "123\n45\n", gridgraph.ErrNonRectangular},
		{"GapInside", "12\n\n34\n", gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseCostGrid(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseObstacleGrid checks every tag and rejects unknown runes.
func TestParseObstacleGrid(t *testing.T) {
	const input = `./\.
|-..
`
	g, err := gridgraph.ParseObstacleGrid(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, input, g.String())

	want := map[gridgraph.Point]gridgraph.Obstacle{
		gridgraph.Pt(0, 0): gridgraph.Empty,
		gridgraph.Pt(1, 0): gridgraph.MirrorSlash,
		gridgraph.Pt(2, 0): gridgraph.MirrorBackslash,
		gridgraph.Pt(0, 1): gridgraph.SplitterVertical,
		gridgraph.Pt(1, 1): gridgraph.SplitterHorizontal,
	}
	for p, o := range want {
		got, ok := g.At(p)
		require.True(t, ok)
		require.Equal(t, o, got, "at %v", p)
	}
	_, ok := g.At(gridgraph.Pt(4, 0))
	require.False(t, ok)

	_, err = gridgraph.ParseObstacleGrid(strings.NewReader("..#\n"))
	require.ErrorIs(t, err, gridgraph.ErrBadCell)
}
