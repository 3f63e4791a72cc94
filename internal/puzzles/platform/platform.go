// Package platform slides round rocks across a tilted platform until each one
// rests against a cube rock, another round rock or the edge.
package platform

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

// Rock is the kind of rock occupying a cell.
type Rock uint8

const (
	Round Rock = iota + 1
	Cube
)

var classify = grid.Runes(map[rune]Rock{'O': Round, '#': Cube}, '.')

// SpinOrder is the sequence of tilts that makes up one spin cycle.
var SpinOrder = [4]grid.Direction{grid.North, grid.West, grid.South, grid.East}

// Platform holds the movable and fixed rocks in separate indices so a tilt
// can query each for the nearest blocker.
type Platform struct {
	round *grid.Index[struct{}]
	cube  *grid.Index[struct{}]
	w, h  int
}

// Parse reads a platform drawn with 'O', '#' and '.'.
func Parse(raw string) (*Platform, error) {
	rocks, err := grid.Parse(raw, classify)
	if err != nil {
		return nil, fmt.Errorf("parse platform: %w", err)
	}
	w, h := rocks.Dimensions()
	p := &Platform{round: grid.New[struct{}](), cube: grid.New[struct{}](), w: w, h: h}
	for pt, r := range rocks.All() {
		if r == Round {
			p.round.Insert(pt, struct{}{})
		} else {
			p.cube.Insert(pt, struct{}{})
		}
	}
	p.round.SetDimensions(w, h)
	p.cube.SetDimensions(w, h)
	return p, nil
}

// Size returns the platform dimensions.
func (p *Platform) Size() core.Size { return core.Size{W: p.w, H: p.h} }

// Clone returns an independent copy. Cube rocks never move and are shared.
func (p *Platform) Clone() *Platform {
	return &Platform{round: p.round.Clone(), cube: p.cube, w: p.w, h: p.h}
}

// At returns the rock at pt, if any.
func (p *Platform) At(pt grid.Point) (Rock, bool) {
	if p.round.Contains(pt) {
		return Round, true
	}
	if p.cube.Contains(pt) {
		return Cube, true
	}
	return 0, false
}

// Tilt slides every round rock as far as it goes in direction d and returns
// how many rocks moved. Rocks are visited front to back so each one only has
// to look at rocks that already settled.
func (p *Platform) Tilt(d grid.Direction) int {
	var order []grid.Point
	switch d {
	case grid.North:
		order = slices.Collect(p.round.ByY())
	case grid.South:
		order = slices.Collect(p.round.ByYDesc())
	case grid.East:
		order = slices.Collect(p.round.ByXDesc())
	default:
		order = slices.Collect(p.round.ByX())
	}
	moved := 0
	for _, from := range order {
		to := p.edge(d, from)
		if b, ok := p.blocker(from, d); ok {
			to = b.Add(d.Opposite().Offset())
		}
		if to == from {
			continue
		}
		p.round.Remove(from)
		p.round.Insert(to, struct{}{})
		moved++
	}
	return moved
}

func (p *Platform) blocker(from grid.Point, d grid.Direction) (grid.Point, bool) {
	c, cok := p.cube.Nearest(from, d)
	r, rok := p.round.Nearest(from, d)
	switch {
	case cok && rok:
		return d.Closer(c, r), true
	case cok:
		return c, true
	default:
		return r, rok
	}
}

func (p *Platform) edge(d grid.Direction, pt grid.Point) grid.Point {
	switch d {
	case grid.North:
		return grid.Point{X: pt.X, Y: 0}
	case grid.South:
		return grid.Point{X: pt.X, Y: p.h - 1}
	case grid.East:
		return grid.Point{X: p.w - 1, Y: pt.Y}
	default:
		return grid.Point{X: 0, Y: pt.Y}
	}
}

// Spin runs one full spin cycle.
func (p *Platform) Spin() {
	for _, d := range SpinOrder {
		p.Tilt(d)
	}
}

// Load returns the total load on the north support beams.
func (p *Platform) Load() int {
	total := 0
	for pt := range p.round.ByX() {
		total += p.h - pt.Y
	}
	return total
}

// SpinLoad runs the given number of spin cycles and returns the resulting
// load. Once a platform state repeats the remaining cycles are skipped modulo
// the cycle length.
func (p *Platform) SpinLoad(ctx context.Context, cycles int) (int, error) {
	seen := make(map[uint64]int)
	for i := 0; i < cycles; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		key := p.fingerprint()
		if start, ok := seen[key]; ok {
			for range (cycles - i) % (i - start) {
				p.Spin()
			}
			return p.Load(), nil
		}
		seen[key] = i
		p.Spin()
	}
	return p.Load(), nil
}

func (p *Platform) fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for pt := range p.round.ByX() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(pt.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(pt.Y))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func (p *Platform) String() string {
	rocks := grid.New[Rock]()
	rocks.SetDimensions(p.w, p.h)
	for pt := range p.cube.ByX() {
		rocks.Insert(pt, Cube)
	}
	for pt := range p.round.ByX() {
		rocks.Insert(pt, Round)
	}
	return grid.Render(rocks, func(r Rock) rune {
		if r == Round {
			return 'O'
		}
		return '#'
	}, '.')
}
