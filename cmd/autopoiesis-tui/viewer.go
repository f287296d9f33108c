package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"autopoiesis/internal/sims/autopoiesis"
)

var glyphs = [...]rune{
	autopoiesis.CellSubstrate:  ' ',
	autopoiesis.CellHole:       '.',
	autopoiesis.CellCatalyst:   '@',
	autopoiesis.CellFreeLink:   'o',
	autopoiesis.CellSingleLink: '+',
	autopoiesis.CellDoubleLink: '#',
}

const panStep = 4

// viewer draws a universe into a terminal screen. The bottom row is a status
// line; everything above is a window onto the plane starting at origin.
type viewer struct {
	screen tcell.Screen
	cfg    autopoiesis.Config
	u      *autopoiesis.Universe
	origin autopoiesis.Pos
	paused bool
	err    error
	styles [len(glyphs)]tcell.Style
}

func newViewer(screen tcell.Screen, cfg autopoiesis.Config) (*viewer, error) {
	u, err := autopoiesis.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	v := &viewer{screen: screen, cfg: cfg, u: u}
	for code := range v.styles {
		c := autopoiesis.CellColor(uint8(code))
		v.styles[code] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	v.styles[autopoiesis.CellCatalyst] = v.styles[autopoiesis.CellCatalyst].Bold(true)
	v.center()
	return v, nil
}

// frame advances one frame worth of updates unless paused.
func (v *viewer) frame() {
	if v.paused {
		return
	}
	v.u.Step(v.cfg.Params.StepsPerFrame)
}

func (v *viewer) center() {
	w, h := v.screen.Size()
	b := v.u.Bounds()
	size := b.Size()
	v.origin = autopoiesis.Pos{
		X: b.UpperLeft.X + size.X/2 - w/2,
		Y: b.UpperLeft.Y + size.Y/2 - (h-1)/2,
	}
}

func (v *viewer) reset() error {
	cfg := v.cfg
	cfg.Seed++
	u, err := autopoiesis.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	v.cfg, v.u = cfg, u
	v.center()
	return nil
}

// handleKey applies a key press and reports whether the viewer keeps running.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.origin.X -= panStep
	case tcell.KeyRight:
		v.origin.X += panStep
	case tcell.KeyUp:
		v.origin.Y -= panStep
	case tcell.KeyDown:
		v.origin.Y += panStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.u.Step(v.cfg.Params.StepsPerFrame)
		case 'c':
			v.center()
		case 'r':
			v.err = v.reset()
		case '+':
			v.u.SetDecayRate(v.u.DecayRate() + 0.005)
		case '-':
			v.u.SetDecayRate(v.u.DecayRate() - 0.005)
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 {
		v.screen.Show()
		return
	}
	span := autopoiesis.Pos{X: w - 1, Y: rows - 1}
	paint := func(ps []autopoiesis.Pos, code uint8) {
		for _, p := range ps {
			v.screen.SetContent(p.X-v.origin.X, p.Y-v.origin.Y, glyphs[code], nil, v.styles[code])
		}
	}
	paint(v.u.HolesIn(v.origin, span), autopoiesis.CellHole)
	paint(v.u.CatalystsIn(v.origin, span), autopoiesis.CellCatalyst)
	paint(v.u.FreeLinksIn(v.origin, span), autopoiesis.CellFreeLink)
	paint(v.u.SingleBondedLinksIn(v.origin, span), autopoiesis.CellSingleLink)
	paint(v.u.DoubleBondedLinksIn(v.origin, span), autopoiesis.CellDoubleLink)

	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *viewer) drawStatus(w, y int) {
	c := v.u.Census()
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" t=%d %s decay=%.3f links=%d bonds=%d membranes=%d (largest %d) chains=%d | arrows pan, space pause, n step, r reset, q quit",
		c.Tick, state, v.u.DecayRate(), c.Links, c.Bonds, c.Membranes, c.LargestMembrane, c.Chains)
	if v.err != nil {
		line = " reset failed: " + v.err.Error()
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
