// Package gridwalk collects searches over rectangular puzzle grids.
//
// What is gridwalk?
//
//	A small, dependency-light toolkit built around two engines:
//		• Constrained shortest path: cheapest route from the top-left cell to a
//		  target when every straight run must be between a minimum and a maximum
//		  length (A* over position, heading and run length)
//		• Beam propagation: how many cells a light beam energizes while it is
//		  reflected by mirrors and split by splitters, and which boundary entry
//		  energizes the most (parallel over entries)
//
// Everything is organized under three subpackages and one command:
//
//	gridgraph/     Point, Heading, Bounds, CostGrid, ObstacleGrid & text parsers
//	pathsearch/    run-length constrained cheapest-path search
//	beam/          beam tracing, transition table & boundary maximum
//	cmd/gridwalk/  command-line front end for both engines
//
// Quick ASCII example (cost grid, run bounds 1..2):
//
//	0 1 9          S * 9
//	9 1 1    ⇒     9 * *      cost = 1+1+1+1 = 4
//	9 9 1          9 9 T
//
// Every engine takes functional options (context, logger, bounds) and
// reports failures as sentinel errors that callers match with errors.Is.
//
// See the package docs for details:
//
//	go doc github.com/katalvlaran/gridwalk/gridgraph
//	go doc github.com/katalvlaran/gridwalk/pathsearch
//	go doc github.com/katalvlaran/gridwalk/beam
package gridwalk
