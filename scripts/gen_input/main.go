// Command gen_input writes a random puzzle grid for benchmarking the solvers
// on inputs larger than the published ones.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"aoc-grid/pkg/grid"
)

func main() {
	kind := pflag.String("kind", "platform", "grid to generate: platform or contraption")
	width := pflag.Int("width", 100, "grid width")
	height := pflag.Int("height", 100, "grid height")
	seed := pflag.Int64("seed", 1, "random seed")
	out := pflag.StringP("output", "o", "", "output file (default stdout)")
	pflag.Parse()

	text, err := generate(*kind, *width, *height, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *out == "" {
		fmt.Println(text)
		return
	}
	if err := os.WriteFile(*out, []byte(text+"\n"), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type layer struct {
	glyph   rune
	density float64
}

var layers = map[string][]layer{
	"platform":    {{'#', 0.12}, {'O', 0.18}},
	"contraption": {{'\\', 0.02}, {'/', 0.02}, {'-', 0.02}, {'|', 0.02}},
}

// generate scatters each layer of kind over a w*h grid. Later layers
// overwrite earlier ones.
func generate(kind string, w, h int, seed int64) (string, error) {
	ls, ok := layers[kind]
	if !ok {
		return "", fmt.Errorf("unknown kind %q", kind)
	}
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("invalid size %dx%d", w, h)
	}
	rng := grid.NewRNG(seed)
	ix := grid.New[rune]()
	for _, l := range ls {
		grid.Scatter(rng, ix, w, h, l.density, l.glyph)
	}
	return grid.Render(ix, func(r rune) rune { return r }, '.'), nil
}
