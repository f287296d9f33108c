package stream

import (
	"encoding/json"

	"autopoiesis/internal/sims/autopoiesis"
)

// Rect is an axis-aligned rectangle in universe coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Frame is one rendered view of a universe as sent to clients.
type Frame struct {
	Tick     uint64 `json:"tick"`
	Bounds   Rect   `json:"bounds"`
	Viewport Rect   `json:"viewport"`

	Catalysts   []autopoiesis.Pos  `json:"catalysts"`
	Holes       []autopoiesis.Pos  `json:"holes"`
	FreeLinks   []autopoiesis.Pos  `json:"free_links"`
	SingleLinks []autopoiesis.Pos  `json:"single_links"`
	DoubleLinks []autopoiesis.Pos  `json:"double_links"`
	Bonds       []autopoiesis.Bond `json:"bonds"`

	Census autopoiesis.Census `json:"census"`
}

// Snapshot captures the w×h window whose top-left cell is origin. A
// non-positive size captures the whole bounding box instead.
func Snapshot(u *autopoiesis.Universe, origin autopoiesis.Pos, w, h int) Frame {
	b := u.Bounds()
	bsize := b.Size()
	if w <= 0 || h <= 0 {
		origin = b.UpperLeft
		w, h = bsize.X, bsize.Y
	}
	// The viewport queries take an inclusive far corner.
	span := autopoiesis.Pos{X: w - 1, Y: h - 1}
	bonds := u.BondsIn(origin, span)
	if bonds == nil {
		bonds = []autopoiesis.Bond{}
	}
	return Frame{
		Tick:        u.Tick(),
		Bounds:      Rect{X: b.UpperLeft.X, Y: b.UpperLeft.Y, W: bsize.X, H: bsize.Y},
		Viewport:    Rect{X: origin.X, Y: origin.Y, W: w, H: h},
		Catalysts:   u.CatalystsIn(origin, span),
		Holes:       u.HolesIn(origin, span),
		FreeLinks:   u.FreeLinksIn(origin, span),
		SingleLinks: u.SingleBondedLinksIn(origin, span),
		DoubleLinks: u.DoubleBondedLinksIn(origin, span),
		Bonds:       bonds,
		Census:      u.Census(),
	}
}

// JSON encodes the frame.
func (f Frame) JSON() ([]byte, error) {
	return json.Marshal(f)
}
