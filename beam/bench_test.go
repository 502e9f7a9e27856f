package beam_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/gridgraph"
)

// randomContraption builds an n×n grid with roughly one obstacle in ten cells.
func randomContraption(b *testing.B, n int) *gridgraph.ObstacleGrid {
	rng := rand.New(rand.NewSource(42))
	tags := []gridgraph.Obstacle{
		gridgraph.MirrorSlash, gridgraph.MirrorBackslash,
		gridgraph.SplitterVertical, gridgraph.SplitterHorizontal,
	}
	rows := make([][]gridgraph.Obstacle, n)
	for y := range rows {
		rows[y] = make([]gridgraph.Obstacle, n)
		for x := range rows[y] {
			if rng.Intn(10) == 0 {
				rows[y][x] = tags[rng.Intn(len(tags))]
			}
		}
	}
	g, err := gridgraph.NewObstacleGrid(rows)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkTrace_110 measures a single traversal on a puzzle-sized grid.
func BenchmarkTrace_110(b *testing.B) {
	g := randomContraption(b, 110)
	entry := gridgraph.Entry{At: gridgraph.Pt(0, 0), Heading: gridgraph.East}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := beam.Trace(g, entry); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMaxEnergized_110 compares sequential and parallel boundary scans.
func BenchmarkMaxEnergized_110(b *testing.B) {
	g := randomContraption(b, 110)
	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("Workers%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := beam.MaxEnergized(g, beam.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
