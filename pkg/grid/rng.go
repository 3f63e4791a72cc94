package grid

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Point returns a random point inside a w*h area.
func (r *RNG) Point(w, h int) Point {
	return Point{r.r.IntN(w), r.r.IntN(h)}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Scatter inserts v into roughly density*w*h random cells of ix and widens
// ix to w*h.
func Scatter[V any](r *RNG, ix *Index[V], w, h int, density float64, v V) {
	ix.SetDimensions(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(density) {
				ix.Insert(Point{x, y}, v)
			}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
