package autopoiesis

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"autopoiesis/internal/core"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.Params.Catalysts = 3
	cfg.Params.StepsPerFrame = 50
	return cfg
}

func TestSimRegistered(t *testing.T) {
	factory, ok := core.Sims()["autopoiesis"]
	require.True(t, ok)
	s := factory(map[string]string{"w": "12", "h": "8"})
	require.Equal(t, "autopoiesis", s.Name())
	require.Equal(t, core.Size{W: 12, H: 8}, s.Size())
	require.Len(t, s.Cells(), 12*8)
}

func TestSimResetIsDeterministic(t *testing.T) {
	s, err := NewSim(smallConfig())
	require.NoError(t, err)

	s.Reset(21)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	first := slices.Clone(s.Cells())

	s.Reset(21)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	require.Equal(t, first, s.Cells())
	require.Equal(t, uint64(500), s.u.Tick())
}

func TestSimPaintsCellCodes(t *testing.T) {
	s, err := NewSim(smallConfig())
	require.NoError(t, err)
	u := emptyUniverse(t, 0)
	s.u = u
	a, b := Pos{X: 4, Y: 2}, Pos{X: 5, Y: 2}
	place(u, KindCatalyst, Pos{X: 2, Y: 3})
	place(u, KindHole, Pos{X: 7, Y: 7}, Pos{X: 1, Y: 1})
	place(u, KindLink, a, b, Pos{X: 9, Y: 0})
	place(u, KindHole, Pos{X: 0, Y: 9})
	u.bonds.Add(a, b)
	s.rasterize()

	w := s.Size().W
	cells := s.Cells()
	require.Equal(t, CellCatalyst, cells[3*w+2])
	require.Equal(t, CellHole, cells[7*w+7])
	require.Equal(t, CellSingleLink, cells[2*w+4])
	require.Equal(t, CellFreeLink, cells[0*w+9])
	require.Equal(t, CellSubstrate, cells[5*w+5])

	s.Pan(1, 0)
	require.Equal(t, Pos{X: 1, Y: 0}, s.Origin())
	require.Equal(t, CellCatalyst, s.Cells()[3*w+1])
}

func TestSimParameters(t *testing.T) {
	s, err := NewSim(smallConfig())
	require.NoError(t, err)

	require.True(t, s.SetFloatParameter("decay_rate", 0.2))
	require.Equal(t, 0.2, s.u.DecayRate())
	require.True(t, s.SetIntParameter("steps_per_frame", 0))
	require.False(t, s.SetIntParameter("catalysts", 9))
	require.False(t, s.SetFloatParameter("speed", 1))

	values := map[string]string{}
	for _, g := range s.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	require.Equal(t, "0.2", values["decay_rate"])
	require.Equal(t, "1", values["steps_per_frame"])
	require.Equal(t, "8", values["bond_neighborhood"])

	s.Reset(0)
	require.Equal(t, 0.2, s.u.DecayRate(), "tuned values survive a reset")
}

func TestRasterMatchesClassifier(t *testing.T) {
	s, err := NewSim(smallConfig())
	require.NoError(t, err)
	s.Step()
	s.Step()

	size := s.Size()
	cells := s.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p := s.Origin().Add(Pos{X: x, Y: y})
			want := kindCode(s.u.KindAt(p), s.u.NumBonds(p))
			require.Equal(t, want, cells[y*size.W+x], "cell %v", p)
		}
	}
	require.Len(t, s.Palette(), int(CellDoubleLink)+1)
}

func TestCellColorFallsBackToSubstrate(t *testing.T) {
	require.Equal(t, CellColor(CellSubstrate), CellColor(200))
	require.NotEqual(t, CellColor(CellSubstrate), CellColor(CellCatalyst))
}

// kindCode is the per-cell reference for the raster: a classification plus
// bond degree mapped to its frame code.
func kindCode(k Kind, bonds int) uint8 {
	switch k {
	case KindHole:
		return CellHole
	case KindCatalyst:
		return CellCatalyst
	case KindLink:
		switch bonds {
		case 0:
			return CellFreeLink
		case 1:
			return CellSingleLink
		default:
			return CellDoubleLink
		}
	default:
		return CellSubstrate
	}
}
