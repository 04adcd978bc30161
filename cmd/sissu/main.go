// Command sissu solves a Shenzhen Solitaire deal read from a text
// file, per spec §6: one positional argument, exit 0 on any
// completion, exit 1 on argument misuse or an unreadable file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/FA555/SISSU/internal/checkpoint"
	"github.com/FA555/SISSU/internal/deal"
	"github.com/FA555/SISSU/internal/game"
	"github.com/FA555/SISSU/internal/render"
	"github.com/FA555/SISSU/internal/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sissu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s <input_file>\n", fs.Name())
	}

	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	checkpointPath := fs.String("checkpoint", "", "path to a checkpoint database for resumable search")
	maxIterations := fs.Int("max-iterations", 0, "abort after this many iterations (0 = unbounded)")
	dumpRoot := fs.Bool("dump-root", false, "print the canonicalized root board before searching")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	setupLogging(*logLevel, stderr)

	path := fs.Arg(0)
	trays, slots, err := deal.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := deal.Validate(trays, slots); err != nil {
		fmt.Fprintln(stdout, err)
		return 0
	}

	// A deal whose trays are all empty on input returns without doing
	// any work at all, not even the "Found solution of 0 step(s)"
	// line that a deal which normalizes down to empty (e.g. a lone
	// Flower) produces.
	if allTraysEmpty(trays) {
		return 0
	}

	root := game.BuildRoot(trays, slots)
	if *dumpRoot {
		render.Board(stdout, root)
	}

	var store *checkpoint.Store
	if *checkpointPath != "" {
		store, err = checkpoint.Open(*checkpointPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Default().Info("search starting", "card_count", root.CardCount())
	result, err := search.Solve(root, search.Options{
		MaxIterations: *maxIterations,
		Checkpoint:    store,
		Context:       ctx,
		Progress: func(n int) {
			render.Progress(stdout, n)
		},
	})

	switch {
	case errors.Is(err, search.ErrNoSolution):
		render.NoSolution(stdout)
		return 0
	case errors.Is(err, search.ErrIterationLimit):
		slog.Default().Warn("iteration limit reached", "max_iterations", *maxIterations)
		fmt.Fprintf(stdout, "Search aborted after %d iterations\n", *maxIterations)
		return 0
	case errors.Is(err, context.Canceled):
		slog.Default().Warn("search interrupted")
		fmt.Fprintln(stdout, "Search interrupted")
		return 0
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	}

	slog.Default().Info("search finished", "iterations", result.Iterations, "steps", len(result.Actions))
	render.Solution(stdout, result.Actions, result.Iterations)
	return 0
}

func allTraysEmpty(trays [game.TrayCount][]game.Card) bool {
	for i := range trays {
		if len(trays[i]) > 0 {
			return false
		}
	}
	return true
}

func setupLogging(level string, w io.Writer) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}
