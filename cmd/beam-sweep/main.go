// Command beam-sweep ranks every edge entry of a contraption by the number of
// cells its beam energizes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"aoc-grid/internal/core"
	"aoc-grid/internal/logging"
	"aoc-grid/internal/puzzles/contraption"
)

func main() {
	input := pflag.StringP("input", "i", "inputs/16.txt", "contraption grid")
	workers := pflag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := pflag.Int("top", 5, "entries to print, 0 prints all")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	log, err := logging.New("info", "console", *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log = logging.WithRun(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = sweep(ctx, os.Stdout, log, *input, *workers, *top)
	stop()
	if err != nil {
		log.Error("Sweep failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func sweep(ctx context.Context, out io.Writer, log *zap.Logger, path string, workers, top int) error {
	raw, err := core.ReadInput(path)
	if err != nil {
		return err
	}
	c, err := contraption.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	size := c.Size()
	log.Info("Sweeping entries",
		zap.Int("entries", len(c.Entries())),
		zap.Int("workers", workers),
		zap.Int("width", size.W),
		zap.Int("height", size.H))

	start := time.Now()
	ranked, err := c.Rank(ctx, workers, top)
	if err != nil {
		return err
	}
	log.Debug("Sweep finished", zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintf(out, "Top %d entries:\n", len(ranked))
	for i, r := range ranked {
		fmt.Fprintf(out, "%2d) energized=%d at=(%d,%d) heading=%s\n",
			i+1, r.Energized, r.Entry.At.X, r.Entry.At.Y, r.Entry.Heading)
	}
	return nil
}
