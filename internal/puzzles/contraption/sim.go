package contraption

import (
	"image/color"
	"strconv"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

const (
	cellDark uint8 = iota
	cellLit
	cellTile
	cellLitTile
)

var palette = []color.RGBA{
	cellDark:    {R: 16, G: 16, B: 24, A: 255},
	cellLit:     {R: 250, G: 180, B: 60, A: 255},
	cellTile:    {R: 90, G: 110, B: 150, A: 255},
	cellLitTile: {R: 255, G: 240, B: 200, A: 255},
}

// Sim advances every active beam one cell per step, starting from the top
// left corner heading east.
type Sim struct {
	c        *Contraption
	entry    Beam
	frontier []Beam
	visited  map[Beam]struct{}
	lit      []bool
	count    int
	steps    int
	buf      *core.ByteGrid
	mask     []float32
}

// NewSim parses input into an animated contraption.
func NewSim(input string) (*Sim, error) {
	c, err := Parse(input)
	if err != nil {
		return nil, err
	}
	size := c.Size()
	s := &Sim{
		c:     c,
		entry: Beam{At: grid.Point{}, Heading: grid.East},
		buf:   core.NewByteGrid(size.W, size.H),
		mask:  make([]float32, size.W*size.H),
	}
	s.Reset()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "contraption" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.c.Size() }

// Reset clears every lit cell and restarts from the entry beam.
func (s *Sim) Reset() {
	size := s.c.Size()
	s.lit = make([]bool, size.W*size.H)
	s.visited = make(map[Beam]struct{})
	s.count = 0
	s.steps = 0
	s.frontier = s.frontier[:0]
	if s.c.tiles.InBounds(s.entry.At) {
		s.frontier = append(s.frontier, s.entry)
		s.mark(s.entry.At)
	}
}

func (s *Sim) mark(p grid.Point) {
	i := p.Y*s.buf.W + p.X
	if !s.lit[i] {
		s.lit[i] = true
		s.count++
	}
}

// Step moves every beam one cell and reports whether any beam is still active.
func (s *Sim) Step() bool {
	var next []Beam
	for _, b := range s.frontier {
		if _, ok := s.visited[b]; ok {
			continue
		}
		s.visited[b] = struct{}{}
		t, ok := s.c.tiles.Get(b.At)
		for _, d := range deflect(t, ok, b.Heading) {
			p := b.At.Add(d.Offset())
			if !s.c.tiles.InBounds(p) {
				continue
			}
			s.mark(p)
			next = append(next, Beam{At: p, Heading: d})
		}
	}
	s.frontier = next
	s.steps++
	return len(next) > 0
}

// Energized returns the number of cells lit so far.
func (s *Sim) Energized() int { return s.count }

// Cells paints tiles and lit cells into palette indices.
func (s *Sim) Cells() []uint8 {
	cells := s.buf.Cells()
	for i, on := range s.lit {
		x, y := i%s.buf.W, i/s.buf.W
		_, tile := s.c.Tile(grid.Point{X: x, Y: y})
		switch {
		case tile && on:
			cells[i] = cellLitTile
		case tile:
			cells[i] = cellTile
		case on:
			cells[i] = cellLit
		default:
			cells[i] = cellDark
		}
	}
	return cells
}

// Palette exposes the colors used for rendering.
func (s *Sim) Palette() []color.RGBA { return palette }

// Mask highlights energized cells for overlays.
func (s *Sim) Mask() []float32 {
	for i, on := range s.lit {
		s.mask[i] = 0
		if on {
			s.mask[i] = 1
		}
	}
	return s.mask
}

// Parameters reports progress for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Beams",
		Params: []core.Parameter{
			{Key: "steps", Label: "Steps", Value: strconv.Itoa(s.steps)},
			{Key: "active", Label: "Active beams", Value: strconv.Itoa(len(s.frontier))},
			{Key: "energized", Label: "Energized", Value: strconv.Itoa(s.count)},
		},
	}}}
}
