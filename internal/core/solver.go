package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownSolver is returned when a name matches no registered solver.
var ErrUnknownSolver = errors.New("unknown solver")

// Answer holds the two results a puzzle produces.
type Answer struct {
	Part1 int
	Part2 int
}

func (a Answer) String() string {
	return fmt.Sprintf("part 1: %d\npart 2: %d", a.Part1, a.Part2)
}

// Solver computes both answers for one puzzle input.
type Solver interface {
	Name() string
	Day() int
	Solve(ctx context.Context, input string) (Answer, error)
}

// Factory constructs a Solver using an optional configuration map.
type Factory func(cfg map[string]string) Solver

var solvers = map[string]Factory{}

// Register adds a solver factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	solvers[name] = f
}

// Solvers exposes the registry of available solver factories.
func Solvers() map[string]Factory {
	return solvers
}

// Names returns the registered solver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a solver by name, by "dayNN" or by the bare day number and
// constructs it with cfg.
func Lookup(name string, cfg map[string]string) (Solver, error) {
	if f, ok := solvers[name]; ok {
		return f(cfg), nil
	}
	day, err := strconv.Atoi(strings.TrimPrefix(name, "day"))
	if err == nil {
		for _, n := range Names() {
			s := solvers[n](cfg)
			if s.Day() == day {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSolver, name)
}
