package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"autopoiesis/internal/sims/autopoiesis"
)

func newTestViewer(t *testing.T) *viewer {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	cfg := autopoiesis.DefaultConfig()
	cfg.Width, cfg.Height = 30, 15
	cfg.Params.Catalysts = 3
	cfg.Params.StepsPerFrame = 25
	v, err := newViewer(screen, cfg)
	require.NoError(t, err)
	return v
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewerDrawsCatalysts(t *testing.T) {
	v := newTestViewer(t)
	v.draw()

	w, h := v.screen.Size()
	span := autopoiesis.Pos{X: w - 1, Y: h - 2}
	catalysts := v.u.CatalystsIn(v.origin, span)
	require.NotEmpty(t, catalysts)
	for _, p := range catalysts {
		r, _, _, _ := v.screen.GetContent(p.X-v.origin.X, p.Y-v.origin.Y)
		require.Equal(t, '@', r)
	}
	r, _, _, _ := v.screen.GetContent(1, h-1)
	require.Equal(t, 't', r, "status line starts with the tick")
}

func TestViewerPauseAndStep(t *testing.T) {
	v := newTestViewer(t)

	require.True(t, v.handleKey(key(' ')))
	require.True(t, v.paused)
	v.frame()
	require.Zero(t, v.u.Tick())

	require.True(t, v.handleKey(key('n')))
	require.Equal(t, uint64(25), v.u.Tick())

	require.True(t, v.handleKey(key(' ')))
	v.frame()
	require.Equal(t, uint64(50), v.u.Tick())
}

func TestViewerPanAndReset(t *testing.T) {
	v := newTestViewer(t)
	start := v.origin

	v.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	require.Equal(t, autopoiesis.Pos{X: start.X + panStep, Y: start.Y - panStep}, v.origin)

	v.handleKey(key('n'))
	seed := v.cfg.Seed
	require.True(t, v.handleKey(key('r')))
	require.Zero(t, v.u.Tick())
	require.Equal(t, seed+1, v.cfg.Seed)
	require.Equal(t, start, v.origin)
}

func TestViewerDecayKeys(t *testing.T) {
	v := newTestViewer(t)
	before := v.u.DecayRate()
	v.handleKey(key('+'))
	require.InDelta(t, before+0.005, v.u.DecayRate(), 1e-12)
	v.handleKey(key('-'))
	v.handleKey(key('-'))
	require.InDelta(t, before-0.005, v.u.DecayRate(), 1e-12)
}

func TestViewerQuitKeys(t *testing.T) {
	v := newTestViewer(t)
	require.False(t, v.handleKey(key('q')))
	require.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewerReportsFailedReset(t *testing.T) {
	v := newTestViewer(t)
	v.handleKey(key('n'))
	seed := v.cfg.Seed
	v.cfg.Params.Catalysts = v.cfg.Width*v.cfg.Height + 1

	require.True(t, v.handleKey(key('r')), "a failed reset keeps the viewer running")
	require.ErrorIs(t, v.err, autopoiesis.ErrTooManyCatalysts)
	require.Equal(t, uint64(25), v.u.Tick(), "the old universe stays in place")
	require.Equal(t, seed, v.cfg.Seed)

	v.draw()
	w, h := v.screen.Size()
	var status strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := v.screen.GetContent(x, h-1)
		status.WriteRune(r)
	}
	require.True(t, strings.HasPrefix(status.String(), " reset failed: "), status.String())
}
