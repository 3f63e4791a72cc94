package tui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc-grid/internal/puzzles/contraption"
)

func TestCommand(t *testing.T) {
	assert.Equal(t, actionQuit, command(tcell.KeyEscape, 0))
	assert.Equal(t, actionQuit, command(tcell.KeyCtrlC, 0))
	assert.Equal(t, actionQuit, command(tcell.KeyRune, 'q'))
	assert.Equal(t, actionPause, command(tcell.KeyRune, ' '))
	assert.Equal(t, actionStep, command(tcell.KeyEnter, 0))
	assert.Equal(t, actionReset, command(tcell.KeyRune, 'r'))
	assert.Equal(t, actionFaster, command(tcell.KeyRune, '+'))
	assert.Equal(t, actionSlower, command(tcell.KeyRune, '-'))
	assert.Equal(t, actionNone, command(tcell.KeyRune, 'z'))
}

func newViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	sim, err := contraption.NewSim(".|.\n...")
	require.NoError(t, err)
	return New(screen, sim, 30), screen
}

func TestApply(t *testing.T) {
	v, screen := newViewer(t)
	defer screen.Fini()

	assert.True(t, v.apply(actionPause))
	assert.True(t, v.paused)
	assert.True(t, v.apply(actionStep))
	assert.Equal(t, 1, v.steps)
	assert.True(t, v.apply(actionFaster))
	assert.Equal(t, 60, v.pacer.TPS())
	assert.True(t, v.apply(actionSlower))
	assert.True(t, v.apply(actionSlower))
	assert.Equal(t, 15, v.pacer.TPS())

	for range 20 {
		v.apply(actionStep)
	}
	assert.True(t, v.settled)
	steps := v.steps
	v.apply(actionStep)
	assert.Equal(t, steps, v.steps, "a settled sim is not stepped")

	assert.True(t, v.apply(actionReset))
	assert.False(t, v.settled)
	assert.Zero(t, v.steps)
	assert.False(t, v.apply(actionQuit))

	v.draw()
}

func TestRunStopsOnContext(t *testing.T) {
	v, screen := newViewer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := v.Run(ctx)
	screen.Fini()
	assert.ErrorIs(t, err, context.Canceled)
}
