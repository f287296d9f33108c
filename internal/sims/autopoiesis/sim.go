package autopoiesis

import "autopoiesis/internal/core"

// Sim adapts a Universe to core.Sim. Each Step advances the chemistry by
// StepsPerFrame updates and repaints a camera window the size of the seed
// region into a byte grid of cell codes.
type Sim struct {
	cfg    Config
	u      *Universe
	view   *core.ByteGrid
	origin Pos
}

// NewSim builds the universe for cfg and an initial frame.
func NewSim(cfg Config) (*Sim, error) {
	u, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, u: u, view: core.NewByteGrid(cfg.Width, cfg.Height)}
	s.rasterize()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "autopoiesis" }

// Size reports the camera window dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.view.W, H: s.view.H} }

// Cells exposes the current frame.
func (s *Sim) Cells() []uint8 { return s.view.Cells() }

// Origin returns the top-left cell of the camera window.
func (s *Sim) Origin() Pos { return s.origin }

// Reset rebuilds the universe. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	cfg := s.cfg
	if seed != 0 {
		cfg.Seed = seed
	}
	u, err := NewWithConfig(cfg)
	if err != nil {
		// cfg was accepted by NewSim and only the seed differs.
		panic(err)
	}
	s.u = u
	s.origin = Pos{}
	s.rasterize()
}

// Step advances the universe by one frame worth of updates.
func (s *Sim) Step() {
	s.u.Step(s.cfg.Params.StepsPerFrame)
	s.rasterize()
}

// Pan moves the camera window by (dx, dy) cells.
func (s *Sim) Pan(dx, dy int) {
	s.origin = s.origin.Add(Pos{X: dx, Y: dy})
	s.rasterize()
}

// Center moves the camera so the bounding box of the universe is centered.
func (s *Sim) Center() {
	b := s.u.Bounds()
	size := b.Size()
	s.origin = Pos{
		X: b.UpperLeft.X + size.X/2 - s.view.W/2,
		Y: b.UpperLeft.Y + size.Y/2 - s.view.H/2,
	}
	s.rasterize()
}

func (s *Sim) rasterize() {
	s.view.Clear()
	size := Pos{X: s.view.W - 1, Y: s.view.H - 1}
	paint := func(ps []Pos, code uint8) {
		for _, p := range ps {
			s.view.Set(p.X-s.origin.X, p.Y-s.origin.Y, code)
		}
	}
	paint(s.u.HolesIn(s.origin, size), CellHole)
	paint(s.u.CatalystsIn(s.origin, size), CellCatalyst)
	paint(s.u.FreeLinksIn(s.origin, size), CellFreeLink)
	paint(s.u.SingleBondedLinksIn(s.origin, size), CellSingleLink)
	paint(s.u.DoubleBondedLinksIn(s.origin, size), CellDoubleLink)
}

func init() {
	core.Register("autopoiesis", func(cfg map[string]string) core.Sim {
		s, err := NewSim(FromMap(cfg))
		if err != nil {
			panic(err)
		}
		return s
	})
}
