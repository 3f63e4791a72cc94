// Package render turns sim cells into RGBA pixel buffers.
package render

import (
	"image/color"
	"math"
)

// FillPalette converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last color. When the palette is empty
// the buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

const maxMaskAlpha = 140.0

// FillMask tints buf with intensity values in [0, 1]. Zero cells become
// transparent; the alpha of lit cells grows with their intensity.
func FillMask(buf []byte, mask []float32, tint color.RGBA) {
	for i, m := range mask {
		base := i * 4
		intensity := min(max(float64(m), 0), 1)
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = uint8(math.Round(maxMaskAlpha * intensity))
	}
}
