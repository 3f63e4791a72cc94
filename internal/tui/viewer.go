// Package tui animates a sim in the terminal.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"aoc-grid/internal/core"
	"aoc-grid/internal/ui"
)

type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionStep
	actionReset
	actionFaster
	actionSlower
)

// command maps a key press to a viewer action.
func command(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyEnter:
		return actionStep
	case tcell.KeyRune:
		switch r {
		case 'q':
			return actionQuit
		case ' ':
			return actionPause
		case 'n':
			return actionStep
		case 'r':
			return actionReset
		case '+', '=':
			return actionFaster
		case '-':
			return actionSlower
		}
	}
	return actionNone
}

// Viewer draws a sim onto a tcell screen and steps it on a timer.
type Viewer struct {
	screen  tcell.Screen
	sim     core.Sim
	pacer   *core.Pacer
	styles  []tcell.Style
	paused  bool
	settled bool
	steps   int
}

// New prepares a viewer for sim on an initialised screen.
func New(screen tcell.Screen, sim core.Sim, tps int) *Viewer {
	palette := sim.Palette()
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return &Viewer{screen: screen, sim: sim, pacer: core.NewPacer(tps), styles: styles}
}

func (v *Viewer) apply(a action) bool {
	switch a {
	case actionQuit:
		return false
	case actionPause:
		v.paused = !v.paused
	case actionStep:
		v.advance()
	case actionReset:
		v.sim.Reset()
		v.settled = false
		v.steps = 0
	case actionFaster:
		v.pacer.Faster()
	case actionSlower:
		v.pacer.Slower()
	}
	return true
}

func (v *Viewer) advance() {
	if v.settled {
		return
	}
	v.steps++
	if !v.sim.Step() {
		v.settled = true
	}
}

// Run pumps events and redraws until the user quits or ctx is done. The
// event goroutine exits once the caller finalises the screen.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.apply(command(ev.Key(), ev.Rune())) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.draw()
		case now := <-ticker.C:
			if !v.paused {
				for range v.pacer.Due(now) {
					v.advance()
				}
			}
			v.draw()
		}
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := int(cells[y*size.W+x])
			style := tcell.StyleDefault
			if c < len(v.styles) {
				style = v.styles[c]
			}
			glyph := '█'
			if c == 0 {
				glyph = '·'
			}
			v.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	v.status(size.H + 1)
	v.screen.Show()
}

func (v *Viewer) status(row int) {
	state := "running"
	switch {
	case v.settled:
		state = "settled"
	case v.paused:
		state = "paused"
	}
	line := fmt.Sprintf("%s  step %d  %d tps  %s", v.sim.Name(), v.steps, v.pacer.TPS(), state)
	if p, ok := v.sim.(core.ParameterProvider); ok {
		for _, l := range ui.Lines(v.sim.Name(), p.Parameters()) {
			if !l.Header {
				line += "  " + l.Text
			}
		}
	}
	for i, r := range []rune(line) {
		v.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	help := "space pause  n step  r reset  +/- speed  q quit"
	for i, r := range []rune(help) {
		v.screen.SetContent(i, row+1, r, nil, tcell.StyleDefault.Dim(true))
	}
}
