package app

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"aoc-grid/internal/core"
)

// ErrEmptySim is returned for a sim with no cells to draw.
var ErrEmptySim = errors.New("sim has no cells to draw")

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Input    string
	Scale    int
	TPS      int
	HUDWidth int
	Set      map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "contraption", Scale: 8, TPS: 30, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "puzzle to animate")
	fs.StringVarP(&c.Input, "input", "i", c.Input, "puzzle input file (default inputs/NN.txt)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 hides it")
	fs.StringToStringVar(&c.Set, "set", c.Set, "puzzle parameter override, key=value")
}

// Validate rejects settings the window cannot be built with.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("no sim selected")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// CheckSize rejects sims too small to back a window image.
func CheckSize(size core.Size) error {
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySim, size.W, size.H)
	}
	return nil
}
