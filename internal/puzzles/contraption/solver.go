package contraption

import (
	"context"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

// Solver answers the floor-will-be-lava puzzle.
type Solver struct {
	cfg Config
}

// New returns a solver for the provided configuration.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "contraption" }

// Day returns the puzzle day.
func (s *Solver) Day() int { return 16 }

// Solve counts the cells lit from the top-left corner heading east, then the
// best count over every edge entry.
func (s *Solver) Solve(ctx context.Context, input string) (core.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return core.Answer{}, err
	}
	best, err := c.Best(ctx, s.cfg.Workers)
	if err != nil {
		return core.Answer{}, err
	}
	first := c.Energize(Beam{At: grid.Point{}, Heading: grid.East})
	return core.Answer{Part1: first, Part2: best.Energized}, nil
}

func init() {
	core.Register("contraption", func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
	core.RegisterSim("contraption", func(input string, cfg map[string]string) (core.Sim, error) {
		s, err := NewSim(input)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
