package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-grid/internal/config"
	"aoc-grid/internal/logging"
	_ "aoc-grid/internal/puzzles/contraption"
	_ "aoc-grid/internal/puzzles/platform"
	_ "aoc-grid/internal/puzzles/springs"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose    bool
	configPath string
	inputsDir  string
	sets       map[string]string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Grid puzzle solvers built around a sparse directional index",
		Long: `aoc runs the registered puzzle solvers against their inputs.

Inputs are read from <inputs>/NN.txt by default. Solver parameters come from
aoc.yaml and can be overridden with --set key=value.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.inputsDir != "" {
				cfg.InputsDir = a.inputsDir
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logging.WithRun(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.configPath, "config", "", "settings file (default aoc.yaml)")
	flags.StringVar(&a.inputsDir, "inputs", "", "directory holding NN.txt inputs")
	flags.StringToStringVar(&a.sets, "set", nil, "solver parameter override, key=value")

	root.AddCommand(a.solveCmd(), a.allCmd(), a.listCmd(), a.viewCmd(), a.initCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
