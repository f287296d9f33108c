package autopoiesis

// moveCatalyst steps the catalyst at p one cell in a random direction and
// returns where it ends up. Holes swap with it, a free link is pushed into a
// nearby hole (or swapped when none is reachable), and substrate is entered
// directly. Catalysts and bonded links block the move.
func (u *Universe) moveCatalyst(p Pos) Pos {
	p1 := Neighbor4(p, u.rng.IntN(4))
	u.bounds.Expand(p1)
	switch u.KindAt(p1) {
	case KindHole:
		u.catalysts.Move(p, p1)
		u.holes.Move(p1, p)
	case KindLink:
		if u.bonds.Degree(p1) > 0 {
			return p
		}
		dst := p
		if h, ok := u.reachableHole(p1); ok {
			u.holes.Move(h, p)
			dst = h
		}
		u.links.Move(p1, dst)
		u.catalysts.Move(p, p1)
		u.bond(dst)
	case KindSubstrate:
		u.catalysts.Move(p, p1)
		if h, ok := u.reachableHole(p1); ok {
			u.holes.Move(h, p)
		}
	default:
		return p
	}
	return p1
}

// produce is the catalytic reaction: two substrate cells next to the catalyst
// at p become one link (the near cell) and one hole (the far cell). It returns
// the new link's position.
func (u *Universe) produce(p Pos) (Pos, bool) {
	var near, far [4]Pos
	n := 0
	for dir := 0; dir < 4; dir++ {
		q := Neighbor4(p, dir)
		if !u.IsSubstrate(q) {
			continue
		}
		f, ok := u.selectNeighbor(q, dir)
		if !ok {
			continue
		}
		near[n], far[n] = q, f
		n++
	}
	if n == 0 {
		return Pos{}, false
	}
	i := u.rng.IntN(n)
	link, hole := near[i], far[i]
	u.links.Add(link)
	u.holes.Add(hole)
	u.bounds.Expand(link)
	u.bounds.Expand(hole)
	u.bond(link)
	return link, true
}

// selectNeighbor picks the far cell for a production through n, which lies in
// direction dir from the catalyst: either straight on (n+dir) or bent to one
// side. Only substrate qualifies; when both do, the choice is a coin flip.
func (u *Universe) selectNeighbor(n Pos, dir int) (Pos, bool) {
	straight := Neighbor4(n, dir)
	left, right := perpendiculars(dir)
	side := left
	if u.rng.IntN(2) == 1 {
		side = right
	}
	bent := Neighbor4(n, side)

	straightFree, bentFree := u.IsSubstrate(straight), u.IsSubstrate(bent)
	switch {
	case straightFree && bentFree:
		if u.rng.IntN(2) == 0 {
			return straight, true
		}
		return bent, true
	case straightFree:
		return straight, true
	case bentFree:
		return bent, true
	}
	return Pos{}, false
}
