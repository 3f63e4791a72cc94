package springs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc-grid/internal/core"
	"aoc-grid/pkg/grid"
)

const example = `
???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestArrangements(t *testing.T) {
	tests := []struct {
		line     string
		folded   int
		unfolded int
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
		{"# 1", 1, 1},
		{"#. 2", 0, 0},
		{"??? 1", 3, 0},
	}
	for _, tt := range tests {
		e, err := ParseEntry(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.folded, e.Arrangements(), tt.line)
		if tt.unfolded > 0 {
			assert.Equal(t, tt.unfolded, e.Unfold(5).Arrangements(), tt.line)
		}
	}
}

// brute tries every assignment of the unknown springs.
func brute(e Entry) int {
	var unknown []int
	for i, c := range e.Record {
		if c == Unknown {
			unknown = append(unknown, i)
		}
	}
	total := 0
	rec := make([]Condition, len(e.Record))
	for mask := 0; mask < 1<<len(unknown); mask++ {
		copy(rec, e.Record)
		for bit, i := range unknown {
			rec[i] = Operational
			if mask&(1<<bit) != 0 {
				rec[i] = Damaged
			}
		}
		var groups []int
		n := 0
		for _, c := range append(rec, Operational) {
			if c == Damaged {
				n++
			} else if n > 0 {
				groups = append(groups, n)
				n = 0
			}
		}
		if len(groups) == len(e.Groups) {
			match := true
			for i := range groups {
				match = match && groups[i] == e.Groups[i]
			}
			if match {
				total++
			}
		}
	}
	return total
}

func TestArrangementsMatchBruteForce(t *testing.T) {
	rng := grid.NewRNG(12)
	for range 300 {
		var e Entry
		for range 1 + rng.Source().IntN(12) {
			e.Record = append(e.Record, Condition(rng.Source().IntN(3)))
		}
		for range 1 + rng.Source().IntN(3) {
			e.Groups = append(e.Groups, 1+rng.Source().IntN(3))
		}
		assert.Equal(t, brute(e), e.Arrangements(), e.String())
	}
}

func TestUnfold(t *testing.T) {
	e, err := ParseEntry(".# 1")
	require.NoError(t, err)
	assert.Equal(t, ".#?.#?.#?.#?.# 1,1,1,1,1", e.Unfold(5).String())
	assert.Equal(t, ".# 1", e.Unfold(1).String())
}

func TestParseEntryErrors(t *testing.T) {
	for _, line := range []string{"???.###", "??x 1", "?? 1,a", "?? 0", "?? 1,,2"} {
		_, err := ParseEntry(line)
		require.Error(t, err, line)
		var terr *TokenError
		assert.True(t, errors.As(err, &terr), line)
		assert.ErrorIs(t, err, ErrMalformed)
	}
	_, err := ParseEntry("??x 1")
	var terr *TokenError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "x", terr.Token)
}

func TestSolver(t *testing.T) {
	s, err := core.Lookup("day12", nil)
	require.NoError(t, err)
	ans, err := s.Solve(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, core.Answer{Part1: 21, Part2: 525152}, ans)

	_, err = s.Solve(context.Background(), "??? 1\n??! 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	folded := New(FromMap(map[string]string{"unfold": "1"}))
	ans, err = folded.Solve(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, 21, ans.Part2)
}
