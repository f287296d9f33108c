package autopoiesis

import "image/color"

// Cell codes written into the Sim frame.
const (
	CellSubstrate uint8 = iota
	CellHole
	CellCatalyst
	CellFreeLink
	CellSingleLink
	CellDoubleLink
)

var autopoiesisPalette = []color.RGBA{
	CellSubstrate:  {R: 18, G: 18, B: 24, A: 255},
	CellHole:       {R: 0, G: 0, B: 0, A: 255},
	CellCatalyst:   {R: 230, G: 70, B: 60, A: 255},
	CellFreeLink:   {R: 90, G: 160, B: 230, A: 255},
	CellSingleLink: {R: 70, G: 200, B: 120, A: 255},
	CellDoubleLink: {R: 240, G: 220, B: 90, A: 255},
}

// Palette exposes the color for each cell code.
func (s *Sim) Palette() []color.RGBA {
	return autopoiesisPalette
}

// CellColor returns the palette color for a cell code. Unknown codes are
// drawn as substrate.
func CellColor(code uint8) color.RGBA {
	if int(code) >= len(autopoiesisPalette) {
		code = CellSubstrate
	}
	return autopoiesisPalette[code]
}
