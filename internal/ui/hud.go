//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"autopoiesis/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the parameter and statistics panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls []controlState
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	stats    core.StatsProvider
	lines    []core.Stat

	panelOffsetX int
	title        string
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: buildTitle(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = layoutControls(provider.ParameterControls(), h.width)
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	h.stats, _ = sim.(core.StatsProvider)
	return h
}

// Update refreshes parameter values and statistics and handles clicks on
// the -/+ buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(parameterProvider); ok {
		params := indexParameters(provider.Parameters())
		for i := range h.controls {
			h.controls[i].refresh(params)
		}
	}
	if h.stats != nil {
		h.lines = h.stats.Stats()
	}
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawControls()
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minusRect):
			c.adjust(-1, h.ints, h.floats)
			return
		case pointInRect(px, my, c.plusRect):
			c.adjust(1, h.ints, h.floats)
			return
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.controls) == 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		baseline := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, baseline, labelColor)

		valueColor := labelColor
		if !c.hasValue {
			valueColor = dimColor
		}
		valueX := c.minusRect.Min.X - buttonGap - text.BoundString(face, c.value).Dx()
		text.Draw(h.panel, c.value, face, valueX, baseline, valueColor)

		_, down := c.target(-1)
		_, up := c.target(1)
		h.drawButton(c.minusRect, "-", down)
		h.drawButton(c.plusRect, "+", up)
	}
}

// drawStats lists the live statistics below the controls, label on the
// left and value right-aligned.
func (h *HUD) drawStats() {
	if len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	y := controlsBottom(len(h.controls)) + headerBaseline
	text.Draw(h.panel, "Census", face, panelPadding, y, titleColor)
	for _, stat := range h.lines {
		y += statLineHeight
		if y > h.lastHeight-panelPadding {
			return
		}
		text.Draw(h.panel, stat.Label, face, panelPadding, y, dimColor)
		valueX := h.width - panelPadding - text.BoundString(face, stat.Value).Dx()
		text.Draw(h.panel, stat.Value, face, valueX, y, labelColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
