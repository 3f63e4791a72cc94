package springs

import (
	"context"
	"fmt"
	"strings"

	"aoc-grid/internal/core"
)

// Solver answers the hot springs puzzle.
type Solver struct {
	cfg Config
}

// New returns a solver for the provided configuration.
func New(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "springs" }

// Day returns the puzzle day.
func (s *Solver) Day() int { return 12 }

// Solve sums the arrangements of every record, folded and unfolded.
func (s *Solver) Solve(ctx context.Context, input string) (core.Answer, error) {
	var ans core.Answer
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if err := ctx.Err(); err != nil {
			return core.Answer{}, err
		}
		e, err := ParseEntry(line)
		if err != nil {
			return core.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		ans.Part1 += e.Arrangements()
		ans.Part2 += e.Unfold(s.cfg.Unfold).Arrangements()
	}
	return ans, nil
}

func init() {
	core.Register("springs", func(cfg map[string]string) core.Solver {
		return New(FromMap(cfg))
	})
}
