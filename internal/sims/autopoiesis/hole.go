package autopoiesis

// updateHole diffuses the hole at p one step in a random direction. A bonded
// link cannot be displaced, but the hole may tunnel past it into substrate.
func (u *Universe) updateHole(p Pos) {
	dir := u.rng.IntN(4)
	p1 := Neighbor4(p, dir)
	u.bounds.Expand(p1)
	switch u.KindAt(p1) {
	case KindLink:
		if u.bonds.Degree(p1) == 0 {
			u.links.Move(p1, p)
			u.holes.Move(p, p1)
			u.bond(p)
			return
		}
		p2 := Neighbor4(p1, dir)
		if u.IsSubstrate(p2) {
			u.bounds.Expand(p2)
			u.holes.Move(p, p2)
		}
	case KindCatalyst:
		u.catalysts.Move(p1, p)
		u.holes.Move(p, p1)
	case KindSubstrate:
		u.holes.Move(p, p1)
	}
}
