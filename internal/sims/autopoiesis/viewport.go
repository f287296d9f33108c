package autopoiesis

// The viewport queries return the positions of one kind inside the inclusive
// rectangle [topLeft, topLeft+size]. They never mutate the universe.

// CatalystsIn returns the catalysts inside the rectangle.
func (u *Universe) CatalystsIn(topLeft, size Pos) []Pos {
	return collectIn(u.catalysts.Items(), topLeft, size, nil)
}

// HolesIn returns the holes inside the rectangle.
func (u *Universe) HolesIn(topLeft, size Pos) []Pos {
	return collectIn(u.holes.Items(), topLeft, size, nil)
}

// FreeLinksIn returns the unbonded links inside the rectangle.
func (u *Universe) FreeLinksIn(topLeft, size Pos) []Pos {
	return u.linksIn(topLeft, size, 0)
}

// SingleBondedLinksIn returns the links with exactly one bond.
func (u *Universe) SingleBondedLinksIn(topLeft, size Pos) []Pos {
	return u.linksIn(topLeft, size, 1)
}

// DoubleBondedLinksIn returns the links with two bonds.
func (u *Universe) DoubleBondedLinksIn(topLeft, size Pos) []Pos {
	return u.linksIn(topLeft, size, 2)
}

// BondsIn returns the bonds with at least one endpoint inside the rectangle.
func (u *Universe) BondsIn(topLeft, size Pos) []Bond {
	var out []Bond
	for _, b := range u.bonds.All() {
		if inRect(b.A, topLeft, size) || inRect(b.B, topLeft, size) {
			out = append(out, b)
		}
	}
	return out
}

func (u *Universe) linksIn(topLeft, size Pos, degree int) []Pos {
	return collectIn(u.links.Items(), topLeft, size, func(p Pos) bool {
		return u.bonds.Degree(p) == degree
	})
}

func collectIn(items []Pos, topLeft, size Pos, keep func(Pos) bool) []Pos {
	out := make([]Pos, 0)
	for _, p := range items {
		if !inRect(p, topLeft, size) {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inRect(p, topLeft, size Pos) bool {
	return p.X >= topLeft.X && p.X <= topLeft.X+size.X &&
		p.Y >= topLeft.Y && p.Y <= topLeft.Y+size.Y
}
