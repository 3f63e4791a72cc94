// Package grid provides a sparse two-dimensional index over integer
// coordinates that answers "first occupied cell in direction D" queries in
// logarithmic time.
package grid

import (
	"fmt"
	"iter"

	"github.com/google/btree"
)

const degree = 8

// line is one occupied row or column: its coordinate on the fixed axis and the
// ordered set of occupied coordinates along the other axis.
type line struct {
	key int
	set *btree.BTreeG[int]
}

func lineLess(a, b line) bool { return a.key < b.key }

// Index is a sparse map from grid points to values of type V. Every occupied
// point is recorded three times: in its column, in its row and in the value
// map. All mutations keep the three views consistent.
type Index[V any] struct {
	cols   *btree.BTreeG[line] // x -> ordered ys
	rows   *btree.BTreeG[line] // y -> ordered xs
	items  map[Point]V
	width  int
	height int
}

// New returns an empty index.
func New[V any]() *Index[V] {
	return &Index[V]{
		cols:  btree.NewG(degree, lineLess),
		rows:  btree.NewG(degree, lineLess),
		items: make(map[Point]V),
	}
}

// Insert stores v at p, replacing any previous value, and widens the tracked
// dimensions to include p.
func (ix *Index[V]) Insert(p Point, v V) {
	if p.X < 0 || p.Y < 0 {
		panic(fmt.Sprintf("grid: negative coordinate %v", p))
	}
	addTo(ix.cols, p.X, p.Y)
	addTo(ix.rows, p.Y, p.X)
	ix.items[p] = v
	ix.width = max(ix.width, p.X+1)
	ix.height = max(ix.height, p.Y+1)
}

// Remove deletes p from the index. Removing an absent point is a no-op.
// Dimensions are left unchanged.
func (ix *Index[V]) Remove(p Point) {
	if _, ok := ix.items[p]; !ok {
		return
	}
	removeFrom(ix.cols, p.X, p.Y)
	removeFrom(ix.rows, p.Y, p.X)
	delete(ix.items, p)
}

// Get returns the value stored at p.
func (ix *Index[V]) Get(p Point) (V, bool) {
	v, ok := ix.items[p]
	return v, ok
}

// Contains reports whether p is occupied.
func (ix *Index[V]) Contains(p Point) bool {
	_, ok := ix.items[p]
	return ok
}

// Len returns the number of occupied points.
func (ix *Index[V]) Len() int { return len(ix.items) }

// Dimensions returns the width and height of the area the index has seen.
func (ix *Index[V]) Dimensions() (int, int) { return ix.width, ix.height }

// SetDimensions widens the tracked area. Smaller values are ignored.
func (ix *Index[V]) SetDimensions(w, h int) {
	ix.width = max(ix.width, w)
	ix.height = max(ix.height, h)
}

// InBounds reports whether p lies inside the tracked area.
func (ix *Index[V]) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < ix.width && p.Y < ix.height
}

// ByX yields every occupied point ordered by x, then by y.
func (ix *Index[V]) ByX() iter.Seq[Point] {
	return walk(ix.cols, false, func(x, y int) Point { return Point{x, y} })
}

// ByXDesc yields the points of ByX in reverse order.
func (ix *Index[V]) ByXDesc() iter.Seq[Point] {
	return walk(ix.cols, true, func(x, y int) Point { return Point{x, y} })
}

// ByY yields every occupied point ordered by y, then by x.
func (ix *Index[V]) ByY() iter.Seq[Point] {
	return walk(ix.rows, false, func(y, x int) Point { return Point{x, y} })
}

// ByYDesc yields the points of ByY in reverse order.
func (ix *Index[V]) ByYDesc() iter.Seq[Point] {
	return walk(ix.rows, true, func(y, x int) Point { return Point{x, y} })
}

// All yields every occupied point together with its value, ordered by y then x.
func (ix *Index[V]) All() iter.Seq2[Point, V] {
	return func(yield func(Point, V) bool) {
		for p := range ix.ByY() {
			if !yield(p, ix.items[p]) {
				return
			}
		}
	}
}

// Nearest returns the closest occupied point strictly beyond p when moving
// from p in direction d along p's row or column. The search never wraps.
func (ix *Index[V]) Nearest(p Point, d Direction) (Point, bool) {
	switch d {
	case North:
		y, ok := below(ix.cols, p.X, p.Y)
		return Point{p.X, y}, ok
	case South:
		y, ok := above(ix.cols, p.X, p.Y)
		return Point{p.X, y}, ok
	case East:
		x, ok := above(ix.rows, p.Y, p.X)
		return Point{x, p.Y}, ok
	default:
		x, ok := below(ix.rows, p.Y, p.X)
		return Point{x, p.Y}, ok
	}
}

// Clone returns an independent copy of the index.
func (ix *Index[V]) Clone() *Index[V] {
	c := &Index[V]{
		cols:   cloneLines(ix.cols),
		rows:   cloneLines(ix.rows),
		items:  make(map[Point]V, len(ix.items)),
		width:  ix.width,
		height: ix.height,
	}
	for p, v := range ix.items {
		c.items[p] = v
	}
	return c
}

func addTo(lines *btree.BTreeG[line], key, v int) {
	l, ok := lines.Get(line{key: key})
	if !ok {
		l = line{key: key, set: btree.NewOrderedG[int](degree)}
		lines.ReplaceOrInsert(l)
	}
	l.set.ReplaceOrInsert(v)
}

func removeFrom(lines *btree.BTreeG[line], key, v int) {
	l, ok := lines.Get(line{key: key})
	if !ok {
		return
	}
	l.set.Delete(v)
	if l.set.Len() == 0 {
		lines.Delete(l)
	}
}

// below returns the largest value smaller than v on the given line.
func below(lines *btree.BTreeG[line], key, v int) (int, bool) {
	l, ok := lines.Get(line{key: key})
	if !ok {
		return 0, false
	}
	var found int
	var hit bool
	l.set.DescendLessOrEqual(v-1, func(item int) bool {
		found, hit = item, true
		return false
	})
	return found, hit
}

// above returns the smallest value greater than v on the given line.
func above(lines *btree.BTreeG[line], key, v int) (int, bool) {
	l, ok := lines.Get(line{key: key})
	if !ok {
		return 0, false
	}
	var found int
	var hit bool
	l.set.AscendGreaterOrEqual(v+1, func(item int) bool {
		found, hit = item, true
		return false
	})
	return found, hit
}

func walk(lines *btree.BTreeG[line], desc bool, point func(key, v int) Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		more := true
		visit := func(l line) bool {
			inner := func(v int) bool {
				more = yield(point(l.key, v))
				return more
			}
			if desc {
				l.set.Descend(inner)
			} else {
				l.set.Ascend(inner)
			}
			return more
		}
		if desc {
			lines.Descend(visit)
		} else {
			lines.Ascend(visit)
		}
	}
}

func cloneLines(lines *btree.BTreeG[line]) *btree.BTreeG[line] {
	c := btree.NewG(degree, lineLess)
	lines.Ascend(func(l line) bool {
		c.ReplaceOrInsert(line{key: l.key, set: l.set.Clone()})
		return true
	})
	return c
}
