package grid

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupied[V any](ix *Index[V]) map[Point]bool {
	set := map[Point]bool{}
	for p := range ix.ByX() {
		set[p] = true
	}
	return set
}

func TestInsertGetRemove(t *testing.T) {
	ix := New[rune]()
	ix.Insert(Point{3, 1}, 'a')
	ix.Insert(Point{3, 1}, 'b')

	v, ok := ix.Get(Point{3, 1})
	require.True(t, ok)
	assert.Equal(t, 'b', v)
	assert.Equal(t, 1, ix.Len())

	w, h := ix.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)

	ix.Remove(Point{3, 1})
	_, ok = ix.Get(Point{3, 1})
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(ix.ByX()))
	assert.Empty(t, slices.Collect(ix.ByY()))

	// Dimensions never shrink.
	w, h = ix.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)

	// Removing an absent point is a no-op.
	ix.Remove(Point{9, 9})
	assert.Equal(t, 0, ix.Len())
}

func TestInsertNegativePanics(t *testing.T) {
	ix := New[int]()
	assert.Panics(t, func() { ix.Insert(Point{-1, 0}, 1) })
}

func TestViewsStayConsistent(t *testing.T) {
	rng := NewRNG(7)
	ix := New[int]()
	ref := map[Point]int{}
	for i := range 5000 {
		p := rng.Point(12, 9)
		if rng.Chance(0.6) {
			ix.Insert(p, i)
			ref[p] = i
		} else {
			ix.Remove(p)
			delete(ref, p)
		}

		byX := occupied(ix)
		byY := map[Point]bool{}
		for q := range ix.ByY() {
			byY[q] = true
		}
		require.Equal(t, len(ref), ix.Len())
		require.Len(t, byX, len(ref))
		require.Len(t, byY, len(ref))
		for q, want := range ref {
			got, ok := ix.Get(q)
			require.True(t, ok)
			require.Equal(t, want, got)
			require.True(t, byX[q], "missing %v from column view", q)
			require.True(t, byY[q], "missing %v from row view", q)
		}
	}
}

func TestIterationOrder(t *testing.T) {
	ix := New[struct{}]()
	Scatter(NewRNG(3), ix, 20, 15, 0.3, struct{}{})

	byX := slices.Collect(ix.ByX())
	require.NotEmpty(t, byX)
	assert.True(t, slices.IsSortedFunc(byX, func(a, b Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	}))
	for i := 1; i < len(byX); i++ {
		assert.NotEqual(t, byX[i-1], byX[i])
	}

	byY := slices.Collect(ix.ByY())
	assert.True(t, slices.IsSortedFunc(byY, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	}))

	reversed := slices.Clone(byX)
	slices.Reverse(reversed)
	if diff := cmp.Diff(reversed, slices.Collect(ix.ByXDesc())); diff != "" {
		t.Fatalf("ByXDesc mismatch (-want +got):\n%s", diff)
	}
	reversed = slices.Clone(byY)
	slices.Reverse(reversed)
	if diff := cmp.Diff(reversed, slices.Collect(ix.ByYDesc())); diff != "" {
		t.Fatalf("ByYDesc mismatch (-want +got):\n%s", diff)
	}

	// Sequences are restartable.
	if diff := cmp.Diff(byX, slices.Collect(ix.ByX())); diff != "" {
		t.Fatalf("second ByX pass differs (-first +second):\n%s", diff)
	}
}

func TestIterationStopsEarly(t *testing.T) {
	ix := New[int]()
	for x := range 4 {
		for y := range 4 {
			ix.Insert(Point{x, y}, x*4+y)
		}
	}
	var seen []Point
	for p := range ix.ByYDesc() {
		seen = append(seen, p)
		if len(seen) == 5 {
			break
		}
	}
	assert.Equal(t, []Point{{3, 3}, {2, 3}, {1, 3}, {0, 3}, {3, 2}}, seen)

	n := 0
	for p, v := range ix.All() {
		assert.Equal(t, p.X*4+p.Y, v)
		n++
	}
	assert.Equal(t, 16, n)
}

// scan walks from p one cell at a time, the slow reference for Nearest.
func scan[V any](ix *Index[V], p Point, d Direction) (Point, bool) {
	w, h := ix.Dimensions()
	for q := p.Add(d.Offset()); q.X >= 0 && q.Y >= 0 && q.X < w && q.Y < h; q = q.Add(d.Offset()) {
		if ix.Contains(q) {
			return q, true
		}
	}
	return Point{}, false
}

func TestNearestMatchesLinearScan(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := NewRNG(seed)
		ix := New[bool]()
		Scatter(rng, ix, 11, 9, 0.25, true)
		for y := range 9 {
			for x := range 11 {
				p := Point{x, y}
				for _, d := range Directions {
					want, wantOK := scan(ix, p, d)
					got, ok := ix.Nearest(p, d)
					require.Equal(t, wantOK, ok, "seed %d %v %v", seed, p, d)
					if ok {
						require.Equal(t, want, got, "seed %d %v %v", seed, p, d)
						require.NotEqual(t, p, got)
					}
				}
			}
		}
	}
}

func TestNearestSkipsStart(t *testing.T) {
	ix := New[int]()
	ix.Insert(Point{2, 0}, 0)
	ix.Insert(Point{2, 3}, 1)
	ix.Insert(Point{2, 5}, 2)

	got, ok := ix.Nearest(Point{2, 3}, North)
	require.True(t, ok)
	assert.Equal(t, Point{2, 0}, got)

	got, ok = ix.Nearest(Point{2, 3}, South)
	require.True(t, ok)
	assert.Equal(t, Point{2, 5}, got)

	_, ok = ix.Nearest(Point{2, 0}, North)
	assert.False(t, ok)
	_, ok = ix.Nearest(Point{2, 3}, East)
	assert.False(t, ok)
	_, ok = ix.Nearest(Point{7, 3}, North)
	assert.False(t, ok)
}

func TestNearestScenario(t *testing.T) {
	ix, err := Parse("#.#\n...\n.#.", Runes(map[rune]bool{'#': true}, '.'))
	require.NoError(t, err)

	got, ok := ix.Nearest(Point{2, 0}, West)
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, got)

	_, ok = ix.Nearest(Point{1, 2}, North)
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	ix := New[int]()
	ix.Insert(Point{1, 1}, 1)
	ix.Insert(Point{1, 4}, 2)

	c := ix.Clone()
	c.Remove(Point{1, 1})
	c.Insert(Point{6, 0}, 3)

	assert.True(t, ix.Contains(Point{1, 1}))
	assert.False(t, ix.Contains(Point{6, 0}))
	got, ok := ix.Nearest(Point{1, 4}, North)
	require.True(t, ok)
	assert.Equal(t, Point{1, 1}, got)

	_, ok = c.Nearest(Point{1, 4}, North)
	assert.False(t, ok)
	w, _ := ix.Dimensions()
	assert.Equal(t, 2, w)
}
