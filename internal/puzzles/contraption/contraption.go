// Package contraption traces light beams through a grid of mirrors and
// splitters and counts the cells they energize.
package contraption

import (
	"errors"
	"fmt"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

// ErrEmptyGrid is returned when there is no cell for a beam to enter.
var ErrEmptyGrid = errors.New("contraption: empty grid")

// Tile is an optical element occupying a cell.
type Tile uint8

const (
	Forward    Tile = iota + 1 // '\'
	Backward                   // '/'
	Horizontal                 // '-'
	Vertical                   // '|'
)

var classify = grid.Runes(map[rune]Tile{
	'\\': Forward,
	'/':  Backward,
	'-':  Horizontal,
	'|':  Vertical,
}, '.')

// Beam is a beam of light standing on a cell, travelling in a direction.
type Beam struct {
	At      grid.Point
	Heading grid.Direction
}

func (b Beam) String() string {
	return fmt.Sprintf("(%d,%d)%v", b.At.X, b.At.Y, b.Heading)
}

// Contraption is the parsed layout of tiles.
type Contraption struct {
	tiles *grid.Index[Tile]
}

// Parse reads a contraption drawn with '\', '/', '-', '|' and '.'.
func Parse(raw string) (*Contraption, error) {
	tiles, err := grid.Parse(raw, classify)
	if err != nil {
		return nil, fmt.Errorf("parse contraption: %w", err)
	}
	return &Contraption{tiles: tiles}, nil
}

// Size returns the contraption dimensions.
func (c *Contraption) Size() core.Size {
	w, h := c.tiles.Dimensions()
	return core.Size{W: w, H: h}
}

// Tile returns the tile at p, if any.
func (c *Contraption) Tile(p grid.Point) (Tile, bool) { return c.tiles.Get(p) }

// deflect returns the headings a beam leaves a cell with after arriving on
// it with heading d.
func deflect(t Tile, ok bool, d grid.Direction) []grid.Direction {
	if !ok {
		return []grid.Direction{d}
	}
	switch t {
	case Horizontal:
		if d.Vertical() {
			return []grid.Direction{grid.East, grid.West}
		}
	case Vertical:
		if !d.Vertical() {
			return []grid.Direction{grid.North, grid.South}
		}
	case Forward:
		if d.Vertical() {
			return []grid.Direction{d.Left()}
		}
		return []grid.Direction{d.Right()}
	case Backward:
		if d.Vertical() {
			return []grid.Direction{d.Right()}
		}
		return []grid.Direction{d.Left()}
	}
	return []grid.Direction{d}
}

// Energize traces the beam entering at entry and returns the number of cells
// it passes through. Between tiles the beam jumps straight to the next tile
// on its path, marking the cells in between.
func (c *Contraption) Energize(entry Beam) int {
	size := c.Size()
	if !c.tiles.InBounds(entry.At) {
		return 0
	}
	lit := make([]bool, size.W*size.H)
	count := 0
	mark := func(p grid.Point) {
		i := p.Y*size.W + p.X
		if !lit[i] {
			lit[i] = true
			count++
		}
	}

	visited := make(map[Beam]struct{})
	stack := []Beam{entry}
	mark(entry.At)
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[b]; ok {
			continue
		}
		visited[b] = struct{}{}

		t, ok := c.tiles.Get(b.At)
		for _, d := range deflect(t, ok, b.Heading) {
			next, hit := c.tiles.Nearest(b.At, d)
			step := d.Offset()
			for p := b.At.Add(step); c.tiles.InBounds(p); p = p.Add(step) {
				mark(p)
				if hit && p == next {
					break
				}
			}
			if hit {
				stack = append(stack, Beam{At: next, Heading: d})
			}
		}
	}
	return count
}

// Entries lists every beam that can enter the contraption from an edge: down
// from the top row, up from the bottom row, right from the left column and
// left from the right column.
func (c *Contraption) Entries() []Beam {
	size := c.Size()
	if size.W == 0 || size.H == 0 {
		return nil
	}
	entries := make([]Beam, 0, 2*(size.W+size.H))
	for x := 0; x < size.W; x++ {
		entries = append(entries,
			Beam{At: grid.Point{X: x, Y: 0}, Heading: grid.South},
			Beam{At: grid.Point{X: x, Y: size.H - 1}, Heading: grid.North})
	}
	for y := 0; y < size.H; y++ {
		entries = append(entries,
			Beam{At: grid.Point{X: 0, Y: y}, Heading: grid.East},
			Beam{At: grid.Point{X: size.W - 1, Y: y}, Heading: grid.West})
	}
	return entries
}
