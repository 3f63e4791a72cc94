package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-grid/internal/core"
	"aoc-grid/internal/tui"
)

func (a *app) viewCmd() *cobra.Command {
	var (
		input string
		tps   int
	)
	cmd := &cobra.Command{
		Use:   "view <name|dayNN>",
		Short: "Animate a puzzle in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			factory, ok := core.Sims()[s.Name()]
			if !ok {
				return fmt.Errorf("%s has no viewer", s.Name())
			}
			if input == "" {
				input = core.InputPath(a.cfg.InputsDir, s.Day())
			}
			raw, err := core.ReadInput(input)
			if err != nil {
				return err
			}
			sim, err := factory(raw, a.cfg.Params(s.Name(), a.sets))
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			a.logger.Debug("Viewing", zap.String("puzzle", s.Name()), zap.Int("tps", tps))
			return tui.New(screen, sim, tps).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default <inputs>/NN.txt)")
	cmd.Flags().IntVar(&tps, "tps", 10, "steps per second")
	return cmd
}
