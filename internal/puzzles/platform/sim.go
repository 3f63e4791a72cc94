package platform

import (
	"image/color"
	"strconv"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

const (
	cellEmpty uint8 = iota
	cellCube
	cellRound
)

var palette = []color.RGBA{
	cellEmpty: {R: 24, G: 22, B: 30, A: 255},
	cellCube:  {R: 120, G: 120, B: 132, A: 255},
	cellRound: {R: 226, G: 196, B: 120, A: 255},
}

// Sim animates spin cycles one tilt per step.
type Sim struct {
	initial *Platform
	cur     *Platform
	tilts   int
	moved   int
	idle    int
	buf     *core.ByteGrid
}

// NewSim parses input into an animated platform.
func NewSim(input string) (*Sim, error) {
	p, err := Parse(input)
	if err != nil {
		return nil, err
	}
	s := &Sim{initial: p, buf: core.NewByteGrid(p.w, p.h)}
	s.Reset()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "platform" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.cur.Size() }

// Reset restores the parsed platform.
func (s *Sim) Reset() {
	s.cur = s.initial.Clone()
	s.tilts = 0
	s.moved = 0
	s.idle = 0
}

// Step performs the next tilt of the current spin cycle. It reports false
// once a whole cycle of tilts has moved nothing.
func (s *Sim) Step() bool {
	s.moved = s.cur.Tilt(SpinOrder[s.tilts%len(SpinOrder)])
	s.tilts++
	if s.moved > 0 {
		s.idle = 0
	} else {
		s.idle++
	}
	return s.idle < len(SpinOrder)
}

// Cells paints the platform into palette indices.
func (s *Sim) Cells() []uint8 {
	size := s.cur.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			rock, _ := s.cur.At(grid.Point{X: x, Y: y})
			switch rock {
			case Cube:
				s.buf.Set(x, y, cellCube)
			case Round:
				s.buf.Set(x, y, cellRound)
			default:
				s.buf.Set(x, y, cellEmpty)
			}
		}
	}
	return s.buf.Cells()
}

// Palette exposes the colors used for rendering.
func (s *Sim) Palette() []color.RGBA { return palette }

// Parameters reports progress for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Platform",
		Params: []core.Parameter{
			{Key: "tilts", Label: "Tilts", Value: strconv.Itoa(s.tilts)},
			{Key: "cycles", Label: "Cycles", Value: strconv.Itoa(s.tilts / len(SpinOrder))},
			{Key: "moved", Label: "Moved", Value: strconv.Itoa(s.moved)},
			{Key: "load", Label: "North load", Value: strconv.Itoa(s.cur.Load())},
		},
	}}}
}
