package contraption

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

const example = `
.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEnergize(t *testing.T) {
	c, err := Parse(example)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 10}, c.Size())

	assert.Equal(t, 46, c.Energize(Beam{At: grid.Point{}, Heading: grid.East}))
	assert.Equal(t, 51, c.Energize(Beam{At: grid.Point{X: 3, Y: 0}, Heading: grid.South}))
	assert.Zero(t, c.Energize(Beam{At: grid.Point{X: 10, Y: 0}, Heading: grid.West}))
}

func TestEnergizeSimpleLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		entry Beam
		want  int
	}{
		{"empty row", "....", Beam{grid.Point{}, grid.East}, 4},
		{"mirror turns down", ".\\.\n...\n...", Beam{grid.Point{}, grid.East}, 4},
		{"mirror turns up", "...\n...\n./.", Beam{grid.Point{X: 0, Y: 2}, grid.East}, 4},
		{"splitter", "...\n.|.\n...", Beam{grid.Point{X: 0, Y: 1}, grid.East}, 4},
		{"splitter passthrough", ".-.", Beam{grid.Point{}, grid.East}, 3},
		{"loop", "/.\\\n...\n\\./", Beam{grid.Point{X: 1, Y: 0}, grid.East}, 8},
		{"mirror on entry", "\\..\n...", Beam{grid.Point{}, grid.East}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Energize(tt.entry))
		})
	}
}

func TestEntries(t *testing.T) {
	c, err := Parse("...\n...")
	require.NoError(t, err)
	entries := c.Entries()
	assert.Len(t, entries, 2*(3+2))
	assert.Equal(t, Beam{grid.Point{X: 0, Y: 0}, grid.South}, entries[0])
	assert.Equal(t, Beam{grid.Point{X: 0, Y: 1}, grid.North}, entries[1])
	assert.Contains(t, entries, Beam{grid.Point{X: 2, Y: 1}, grid.West})

	empty, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, empty.Entries())
	_, err = empty.Best(context.Background(), 2)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestBestAndRank(t *testing.T) {
	c, err := Parse(example)
	require.NoError(t, err)

	best, err := c.Best(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 51, best.Energized)
	assert.Equal(t, 51, c.Energize(best.Entry))

	serial, err := c.Best(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, best, serial)

	ranked, err := c.Rank(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 5)
	assert.Equal(t, best, ranked[0])
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Energized, ranked[i].Energized)
	}

	all, err := c.Rank(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Len(t, all, len(c.Entries()))
}

func TestSweepCancelled(t *testing.T) {
	c, err := Parse(example)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Sweep(ctx, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseRejectsUnknownRune(t *testing.T) {
	_, err := Parse("..#")
	var perr *grid.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Offset)
	assert.Equal(t, '#', perr.Char)
}

func TestSolver(t *testing.T) {
	s, err := core.Lookup("contraption", map[string]string{"workers": "2"})
	require.NoError(t, err)
	assert.Equal(t, 16, s.Day())
	ans, err := s.Solve(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, core.Answer{Part1: 46, Part2: 51}, ans)
}

func TestSimMatchesEnergize(t *testing.T) {
	s, err := NewSim(example)
	require.NoError(t, err)
	for i := 0; s.Step(); i++ {
		require.Less(t, i, 1000, "beams never settled")
	}
	assert.Equal(t, 46, s.Energized())

	lit := 0
	for _, v := range s.Mask() {
		if v > 0 {
			lit++
		}
	}
	assert.Equal(t, 46, lit)

	cells := s.Cells()
	assert.Equal(t, cellLit, cells[0])
	assert.Equal(t, cellLitTile, cells[1])
	assert.Equal(t, cellDark, cells[9*10+9])

	tile, ok := s.c.Tile(grid.Point{X: 1, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, Vertical, tile)
	_, ok = s.c.Tile(grid.Point{X: 0, Y: 0})
	assert.False(t, ok)

	s.Reset()
	assert.Equal(t, 1, s.Energized())
	assert.Equal(t, "1", s.Parameters().Groups[0].Params[2].Value)
}
