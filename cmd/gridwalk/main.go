// Command gridwalk runs the grid searches over a puzzle input file.
//
//	gridwalk [flags] path <file>   cheapest constrained path to the bottom-right cell
//	gridwalk [flags] beam <file>   energized cells from (0,0) East, and the best boundary entry
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// config holds the parsed command-line flags.
type config struct {
	MinRun    int
	MaxRun    int
	Heuristic bool
	ShowPath  bool
	Workers   int
	Render    bool
	Verbose   bool
	Timeout   time.Duration
}

func (c config) Fields() logrus.Fields {
	return logrus.Fields{
		"min_run":   c.MinRun,
		"max_run":   c.MaxRun,
		"heuristic": c.Heuristic,
		"workers":   c.Workers,
		"timeout":   c.Timeout.String(),
	}
}

// errUsage marks command-line mistakes; main exits 2 for them.
var errUsage = errors.New("usage")

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.MinRun, "min", 1, "minimum straight run before turning (path)")
	fs.IntVar(&cfg.MaxRun, "max", 3, "maximum straight run before turning (path)")
	fs.BoolVar(&cfg.Heuristic, "heuristic", true, "order the frontier with the Manhattan estimate (path)")
	fs.BoolVar(&cfg.ShowPath, "path", false, "print the cheapest path (path)")
	fs.IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "parallel boundary traversals (beam)")
	fs.BoolVar(&cfg.Render, "render", false, "print the energized map (beam)")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "overall deadline; 0 means none")
	fs.Usage = func() {
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(stderr, "usage: gridwalk [flags] <command> <file>\n")
		fmt.Fprintf(stderr, "where command is one of:\n")
		for _, name := range names {
			fmt.Fprintf(stderr, "  %-6s %s\n", name, commands[name].summary)
		}
		fmt.Fprintln(stderr, "flags:")
		fs.PrintDefaults()
	}
	return fs
}

func setupLogging(cfg config) {
	logLevel := logrus.InfoLevel
	if cfg.Verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// run parses args, executes one command, and writes results to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("%w: want <command> <file>, got %d arguments", errUsage, fs.NArg())
	}
	name, path := fs.Arg(0), fs.Arg(1)
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	log.WithFields(cfg.Fields()).WithField("command", name).Debug("config")
	return cmd.fn(ctx, cfg, f, stdout)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Flags are parsed again inside run; this pass only sets up logging early.
	var pre config
	fs := newFlagSet(&pre, io.Discard)
	_ = fs.Parse(os.Args[1:])
	setupLogging(pre)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errUsage):
		log.WithError(err).Error("bad invocation")
		os.Exit(2)
	default:
		log.WithError(err).Fatal("gridwalk failed")
	}
}
