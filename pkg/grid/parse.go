package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChar is returned by classifiers for runes they do not recognise.
var ErrUnknownChar = errors.New("unrecognized character")

// Classifier maps one input rune to the value stored for it. keep is false for
// background cells that should not be indexed.
type Classifier[V any] func(r rune) (v V, keep bool, err error)

// ParseError reports the cell a classifier rejected.
type ParseError struct {
	Offset int // rune offset into the trimmed input
	At     Point
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: %v %q at offset %d (x=%d, y=%d)", e.Err, e.Char, e.Offset, e.At.X, e.At.Y)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse builds an index from a rectangular character grid. Surrounding
// whitespace is trimmed, rows are separated by newlines and every rune the
// classifier keeps is inserted at its (column, row) position. The index
// dimensions cover the widest row and every row, including empty ones.
func Parse[V any](raw string, classify Classifier[V]) (*Index[V], error) {
	ix := New[V]()
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ix, nil
	}
	offset := 0
	lines := strings.Split(raw, "\n")
	for y, line := range lines {
		row := strings.TrimSuffix(line, "\r")
		x := 0
		for _, r := range row {
			v, keep, err := classify(r)
			if err != nil {
				return nil, &ParseError{Offset: offset, At: Point{x, y}, Char: r, Err: err}
			}
			if keep {
				ix.Insert(Point{x, y}, v)
			}
			x++
			offset++
		}
		if len(row) < len(line) {
			offset++ // carriage return
		}
		offset++ // newline
		ix.SetDimensions(x, y+1)
	}
	return ix, nil
}

// Runes returns a table-driven classifier. Runes in table are kept with their
// mapped value, runes listed in background are skipped and anything else is
// rejected with ErrUnknownChar.
func Runes[V any](table map[rune]V, background ...rune) Classifier[V] {
	return func(r rune) (V, bool, error) {
		if v, ok := table[r]; ok {
			return v, true, nil
		}
		var zero V
		for _, b := range background {
			if r == b {
				return zero, false, nil
			}
		}
		return zero, false, ErrUnknownChar
	}
}

// Render draws the index back into text, one row per line, using glyph for
// occupied cells and fill for empty ones.
func Render[V any](ix *Index[V], glyph func(V) rune, fill rune) string {
	w, h := ix.Dimensions()
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if v, ok := ix.Get(Point{x, y}); ok {
				b.WriteRune(glyph(v))
			} else {
				b.WriteRune(fill)
			}
		}
	}
	return b.String()
}
