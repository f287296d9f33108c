//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"autopoiesis/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type bondProvider interface {
	BondSegments() [][2]image.Point
}

type boundsProvider interface {
	BoundsInView() image.Rectangle
}

var (
	bondColor   = color.RGBA{R: 250, G: 250, B: 250, A: 200}
	boundsColor = color.RGBA{R: 110, G: 110, B: 140, A: 255}
)

// Overlay draws bonds as line segments between cell centers and, optionally,
// the bounding box of everything the simulation has touched. Key 1 toggles
// bonds, key 2 the bounding box.
type Overlay struct {
	sim        core.Sim
	scale      int
	showBonds  bool
	showBounds bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1), showBonds: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBonds = !o.showBonds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.scale)
	if o.showBounds {
		if provider, ok := o.sim.(boundsProvider); ok {
			r := provider.BoundsInView()
			vector.StrokeRect(screen, float32(r.Min.X)*s, float32(r.Min.Y)*s,
				float32(r.Dx())*s, float32(r.Dy())*s, 1, boundsColor, false)
		}
	}
	// Bonds are only legible once a cell spans a few pixels.
	if !o.showBonds || o.scale < 3 {
		return
	}
	provider, ok := o.sim.(bondProvider)
	if !ok {
		return
	}
	width := max(s/4, 1)
	for _, seg := range provider.BondSegments() {
		x0, y0 := cellCenter(seg[0], s)
		x1, y1 := cellCenter(seg[1], s)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, bondColor, true)
	}
}

func cellCenter(p image.Point, scale float32) (float32, float32) {
	return (float32(p.X) + 0.5) * scale, (float32(p.Y) + 0.5) * scale
}
