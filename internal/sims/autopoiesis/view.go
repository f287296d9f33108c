package autopoiesis

import (
	"image"
	"strconv"

	"autopoiesis/internal/core"
)

// BondSegments returns every bond touching the camera window as a pair of
// window-local cells. Endpoints may fall just outside the window.
func (s *Sim) BondSegments() [][2]image.Point {
	size := Pos{X: s.view.W - 1, Y: s.view.H - 1}
	bonds := s.u.BondsIn(s.origin, size)
	out := make([][2]image.Point, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, [2]image.Point{s.local(b.A), s.local(b.B)})
	}
	return out
}

// BoundsInView returns the universe bounding box in window-local cells.
func (s *Sim) BoundsInView() image.Rectangle {
	b := s.u.Bounds()
	return image.Rectangle{Min: s.local(b.UpperLeft), Max: s.local(b.LowerRight)}
}

func (s *Sim) local(p Pos) image.Point {
	return image.Point{X: p.X - s.origin.X, Y: p.Y - s.origin.Y}
}

// Stats reports the census for the HUD.
func (s *Sim) Stats() []core.Stat {
	c := s.u.Census()
	itoa := strconv.Itoa
	return []core.Stat{
		{Label: "Tick", Value: strconv.FormatUint(c.Tick, 10)},
		{Label: "Holes", Value: itoa(c.Holes)},
		{Label: "Links", Value: itoa(c.Links)},
		{Label: "Free / single / double", Value: itoa(c.FreeLinks) + " / " + itoa(c.SingleBonded) + " / " + itoa(c.DoubleBonded)},
		{Label: "Bonds", Value: itoa(c.Bonds)},
		{Label: "Chains (longest)", Value: itoa(c.Chains) + " (" + itoa(c.LongestChain) + ")"},
		{Label: "Membranes (largest)", Value: itoa(c.Membranes) + " (" + itoa(c.LargestMembrane) + ")"},
	}
}
