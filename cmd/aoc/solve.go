package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-grid/internal/core"
)

// resolve finds a solver by any accepted alias and rebuilds it with the
// parameters configured for its canonical name.
func (a *app) resolve(name string) (core.Solver, error) {
	s, err := core.Lookup(name, nil)
	if err != nil {
		return nil, err
	}
	return core.Lookup(s.Name(), a.cfg.Params(s.Name(), a.sets))
}

func (a *app) run(ctx context.Context, s core.Solver, path string) (core.Answer, error) {
	if path == "" {
		path = core.InputPath(a.cfg.InputsDir, s.Day())
	}
	log := a.logger.With(zap.String("puzzle", s.Name()), zap.String("input", path))
	input, err := core.ReadInput(path)
	if err != nil {
		return core.Answer{}, err
	}
	log.Debug("Solving", zap.Int("bytes", len(input)))
	start := time.Now()
	ans, err := s.Solve(ctx, input)
	if err != nil {
		log.Error("Solve failed", zap.Error(err))
		return core.Answer{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	log.Info("Solved",
		zap.Int("part1", ans.Part1),
		zap.Int("part2", ans.Part2),
		zap.Duration("elapsed", time.Since(start)))
	return ans, nil
}

func (a *app) solveCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "solve <name|dayNN>",
		Short: "Solve one puzzle and print both parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			ans, err := a.run(cmd.Context(), s, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ans)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default <inputs>/NN.txt)")
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every registered puzzle whose input is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				s, err := a.resolve(name)
				if err != nil {
					return err
				}
				ans, err := a.run(cmd.Context(), s, "")
				if errors.Is(err, fs.ErrNotExist) {
					a.logger.Warn("Skipping puzzle without input", zap.String("puzzle", name))
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "day %02d %s\n%v\n", s.Day(), s.Name(), ans)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				s, err := core.Lookup(name, nil)
				if err != nil {
					return err
				}
				_, animated := core.Sims()[name]
				mark := ""
				if animated {
					mark = " (view)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "day %02d  %s%s\n", s.Day(), name, mark)
			}
			return nil
		},
	}
}
