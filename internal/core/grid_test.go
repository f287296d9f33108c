package core

import "testing"

func TestByteGridSetIgnoresOutOfRange(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	g.Set(0, 2, 9)

	if got := g.At(2, 1); got != 7 {
		t.Fatalf("expected 7 at (2,1), got %d", got)
	}
	for i, v := range g.Cells() {
		if i != g.Index(2, 1) && v != 0 {
			t.Fatalf("cell %d written by an out-of-range Set: %d", i, v)
		}
	}

	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear must zero every cell")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected a 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42).Source()
	b := NewRNG(42).Source()
	for i := 0; i < 16; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
