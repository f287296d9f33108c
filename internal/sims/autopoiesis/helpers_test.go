package autopoiesis

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"autopoiesis/internal/core"
)

// emptyUniverse returns a 10x10 universe without catalysts so tests can
// place every entity by hand.
func emptyUniverse(t *testing.T, decay float64) *Universe {
	t.Helper()
	u, err := New(10, 10, decay, 0, core.NewRNG(7).Source())
	require.NoError(t, err)
	return u
}

func place(u *Universe, k Kind, ps ...Pos) {
	for _, p := range ps {
		switch k {
		case KindHole:
			u.holes.Add(p)
		case KindCatalyst:
			u.catalysts.Add(p)
		case KindLink:
			u.links.Add(p)
		}
		u.bounds.Expand(p)
	}
}

func sortedPos(ps []Pos) []Pos {
	out := slices.Clone(ps)
	slices.SortFunc(out, comparePos)
	return out
}

func comparePos(a, b Pos) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

func requireSameState(t *testing.T, want, got *Universe) {
	t.Helper()
	require.Equal(t, sortedPos(want.holes.Items()), sortedPos(got.holes.Items()), "holes")
	require.Equal(t, sortedPos(want.catalysts.Items()), sortedPos(got.catalysts.Items()), "catalysts")
	require.Equal(t, sortedPos(want.links.Items()), sortedPos(got.links.Items()), "links")
	require.ElementsMatch(t, want.bonds.All(), got.bonds.All(), "bonds")
}
