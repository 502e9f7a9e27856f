package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/gridgraph"
	"github.com/katalvlaran/gridwalk/pathsearch"
)

type command struct {
	summary string
	fn      func(ctx context.Context, cfg config, in io.Reader, out io.Writer) error
}

var commands = map[string]command{
	"path": {"cheapest constrained path to the bottom-right cell", runPath},
	"beam": {"energized cells from (0,0) East, and the best boundary entry", runBeam},
}

func runPath(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	g, err := gridgraph.ParseCostGrid(in)
	if err != nil {
		return fmt.Errorf("parse cost grid: %w", err)
	}
	log.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}).Debug("grid loaded")

	opts := []pathsearch.Option{
		pathsearch.Target(g.Corner()),
		pathsearch.WithRunBounds(cfg.MinRun, cfg.MaxRun),
		pathsearch.WithContext(ctx),
		pathsearch.WithLogger(log),
	}
	if !cfg.Heuristic {
		opts = append(opts, pathsearch.WithoutHeuristic())
	}
	if cfg.ShowPath {
		opts = append(opts, pathsearch.WithReturnPath())
	}

	res, err := pathsearch.Search(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Cost)
	if cfg.ShowPath {
		for _, p := range res.Path {
			fmt.Fprintln(out, p)
		}
	}
	return nil
}

func runBeam(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	g, err := gridgraph.ParseObstacleGrid(in)
	if err != nil {
		return fmt.Errorf("parse obstacle grid: %w", err)
	}
	log.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}).Debug("grid loaded")

	opts := []beam.Option{
		beam.WithContext(ctx),
		beam.WithWorkers(cfg.Workers),
		beam.WithLogger(log),
	}

	res, err := beam.Trace(g, gridgraph.Entry{At: gridgraph.Pt(0, 0), Heading: gridgraph.East}, opts...)
	if err != nil {
		return err
	}
	best, err := beam.MaxEnergized(g, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.Count())
	fmt.Fprintf(out, "%d %v\n", best.Count, best.Entry)
	if cfg.Render {
		fmt.Fprint(out, res.Render())
	}
	return nil
}
