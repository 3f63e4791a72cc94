package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)

	assert.Equal(t, uint8(7), g.Get(2, 1))
	assert.Equal(t, uint8(0), g.Get(5, 5))
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 7}, g.Cells())

	g.Clear()
	assert.Equal(t, make([]uint8, 6), g.Cells())

	empty := NewByteGrid(0, -3)
	assert.Equal(t, 1, empty.W)
	assert.Equal(t, 1, empty.H)
}
