//go:build ebiten

package app

import (
	"image/color"
	"time"

	"autopoiesis/internal/core"
	"autopoiesis/internal/render"
	"autopoiesis/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type centerer interface {
	Center()
}

const panStep = 8

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	scale = max(scale, 1)
	size := sim.Size()
	palette := render.DefaultPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		palette:  palette,
		scale:    scale,
		hudWidth: max(hudWidth, 0),
		seed:     seed,
	}
	if g.hudWidth > 0 {
		g.hud = ui.NewHUD(sim, g.hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handlePan()

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePan() {
	if c, ok := g.sim.(centerer); ok && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.Center()
	}
	p, ok := g.sim.(core.Panner)
	if !ok {
		return
	}
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panStep
	}
	if dx != 0 || dy != 0 {
		p.Pan(dx, dy)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
