package core

import "image/color"

// Size describes the dimensions of a puzzle grid.
type Size struct {
	W int
	H int
}

// Sim is a puzzle that can be animated one step at a time in a viewer.
type Sim interface {
	Name() string
	Size() Size
	// Reset restores the state the sim was created with.
	Reset()
	// Step advances one tick and reports whether anything changed.
	Step() bool
	// Cells returns palette indices in row-major order.
	Cells() []uint8
	Palette() []color.RGBA
}

// SimFactory builds a Sim from raw puzzle input and string parameters.
type SimFactory func(input string, cfg map[string]string) (Sim, error)

var sims = map[string]SimFactory{}

// RegisterSim adds a viewer factory under the provided solver name.
func RegisterSim(name string, f SimFactory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available viewer factories.
func Sims() map[string]SimFactory {
	return sims
}
