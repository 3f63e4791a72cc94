//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"aoc-grid/internal/app"
	"aoc-grid/internal/config"
	"aoc-grid/internal/core"
	"aoc-grid/internal/logging"
	_ "aoc-grid/internal/puzzles/contraption"
	_ "aoc-grid/internal/puzzles/platform"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	configPath := pflag.String("config", "", "settings file (default aoc.yaml)")
	pflag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(settings.Log.Level, settings.Log.Format, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log = logging.WithRun(log)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, settings, log); err != nil {
		log.Error("Viewer failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *app.Config, settings *config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	solver, err := core.Lookup(cfg.Sim, nil)
	if err != nil {
		return err
	}
	factory, ok := core.Sims()[solver.Name()]
	if !ok {
		return fmt.Errorf("%s has no viewer", solver.Name())
	}
	path := cfg.Input
	if path == "" {
		path = core.InputPath(settings.InputsDir, solver.Day())
	}
	raw, err := core.ReadInput(path)
	if err != nil {
		return err
	}
	sim, err := factory(raw, settings.Params(solver.Name(), cfg.Set))
	if err != nil {
		return err
	}

	size := sim.Size()
	if err := app.CheckSize(size); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info("Opening viewer",
		zap.String("puzzle", sim.Name()),
		zap.String("input", path),
		zap.Int("width", size.W),
		zap.Int("height", size.H))

	ebiten.SetWindowTitle("aoc-grid - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(app.New(sim, cfg.Scale, cfg.HUDWidth)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
