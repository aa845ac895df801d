package render

import "image/color"

// FillRGBA converts quantized cell levels into RGBA pixels in buf using a
// palette. When the palette is empty the buffer is cleared to transparent
// black.
func FillRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Palette maps a quantized sample level (0 for -1, 255 for +1) to a color.
type Palette []color.RGBA
