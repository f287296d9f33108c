package render

import "image/color"

// fillPaletteRGBA converts cell codes into RGBA pixels in buf. Codes past the
// end of the palette use its last entry; an empty palette clears the buffer
// to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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

// DefaultPalette renders code 0 black and everything else white.
var DefaultPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}
