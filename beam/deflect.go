package beam

import "github.com/katalvlaran/gridwalk/gridgraph"

// Deflect returns the headings a beam leaves a cell with when it arrives
// heading h and the cell holds o. The result has one element, or two when a
// splitter is hit broadside. An invalid heading or obstacle yields nil.
func Deflect(o gridgraph.Obstacle, h gridgraph.Heading) []gridgraph.Heading {
	out, n := deflect(o, h)
	if n == 0 {
		return nil
	}
	return append([]gridgraph.Heading(nil), out[:n]...)
}

// deflect is the allocation-free transition table behind Deflect.
// Every Obstacle × Heading pair is listed explicitly.
func deflect(o gridgraph.Obstacle, h gridgraph.Heading) ([2]gridgraph.Heading, int) {
	const (
		N = gridgraph.North
		E = gridgraph.East
		S = gridgraph.South
		W = gridgraph.West
	)
	one := func(d gridgraph.Heading) ([2]gridgraph.Heading, int) { return [2]gridgraph.Heading{d}, 1 }
	two := func(a, b gridgraph.Heading) ([2]gridgraph.Heading, int) { return [2]gridgraph.Heading{a, b}, 2 }

	switch o {
	case gridgraph.Empty:
		switch h {
		case N, E, S, W:
			return one(h)
		}
	case gridgraph.MirrorSlash: // '/'
		switch h {
		case N:
			return one(E)
		case E:
			return one(N)
		case S:
			return one(W)
		case W:
			return one(S)
		}
	case gridgraph.MirrorBackslash: // '\'
		switch h {
		case N:
			return one(W)
		case W:
			return one(N)
		case S:
			return one(E)
		case E:
			return one(S)
		}
	case gridgraph.SplitterVertical: // '|'
		switch h {
		case N, S:
			return one(h)
		case E, W:
			return two(N, S)
		}
	case gridgraph.SplitterHorizontal: // '-'
		switch h {
		case E, W:
			return one(h)
		case N, S:
			return two(E, W)
		}
	}
	return [2]gridgraph.Heading{}, 0
}
