package platform

import (
	"context"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

// Solver answers the parabolic reflector dish puzzle.
type Solver struct {
	cfg Config
}

// New returns a solver for the provided configuration.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "platform" }

// Day returns the puzzle day.
func (s *Solver) Day() int { return 14 }

// Solve tilts a copy of the platform north for part 1 and spins another copy
// for part 2.
func (s *Solver) Solve(ctx context.Context, input string) (core.Answer, error) {
	p, err := Parse(input)
	if err != nil {
		return core.Answer{}, err
	}
	north := p.Clone()
	north.Tilt(grid.North)
	spun, err := p.SpinLoad(ctx, s.cfg.Cycles)
	if err != nil {
		return core.Answer{}, err
	}
	return core.Answer{Part1: north.Load(), Part2: spun}, nil
}

func init() {
	core.Register("platform", func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
	core.RegisterSim("platform", func(input string, cfg map[string]string) (core.Sim, error) {
		s, err := NewSim(input)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
