package autopoiesis

// updateLink either decays the link at p or lets it wander and bond.
func (u *Universe) updateLink(p Pos) {
	if u.rng.Float64() < u.decayRate {
		u.decay(p)
		return
	}
	site := p
	if u.bonds.Degree(p) == 0 {
		site = u.moveLink(p)
	}
	if u.bonds.Degree(site) < maxBondDegree {
		u.bond(site)
	}
}

// decay turns the link at p back into substrate together with one hole: an
// adjacent hole when there is one, otherwise the nearest hole anywhere.
func (u *Universe) decay(p Pos) bool {
	hole, ok := u.adjacentHole(p)
	if !ok {
		hole, ok = u.nearestHole(p)
	}
	u.links.Remove(p)
	u.fixBonds(p)
	if ok {
		u.holes.Remove(hole)
	}
	return ok
}

func (u *Universe) adjacentHole(p Pos) (Pos, bool) {
	var found [4]Pos
	n := 0
	for dir := 0; dir < 4; dir++ {
		q := Neighbor4(p, dir)
		if u.holes.Has(q) {
			found[n] = q
			n++
		}
	}
	if n == 0 {
		return Pos{}, false
	}
	return found[u.rng.IntN(n)], true
}

// nearestHole returns the hole closest to p. Ties go to the first hole in
// set order.
func (u *Universe) nearestHole(p Pos) (Pos, bool) {
	var best Pos
	bestDist := -1.0
	for _, h := range u.holes.Items() {
		d := Distance(p, h)
		if bestDist < 0 || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, bestDist >= 0
}

// moveLink steps an unbonded link one cell in a random direction. Moving into
// substrate pulls a nearby hole into the vacated cell; moving into a hole
// swaps the two. It returns the link's position afterwards.
func (u *Universe) moveLink(p Pos) Pos {
	p1 := Neighbor4(p, u.rng.IntN(4))
	switch u.KindAt(p1) {
	case KindSubstrate:
		u.links.Move(p, p1)
		if h, ok := u.reachableHole(p1); ok {
			u.holes.Move(h, p)
		}
	case KindHole:
		u.links.Move(p, p1)
		u.holes.Move(p1, p)
	default:
		return p
	}
	u.bounds.Expand(p1)
	return p1
}

// bond tries to attach the link at p to one neighboring link. Candidates must
// have a free bond slot, not already be bonded to p, and must not have a bond
// partner orthogonally adjacent to p, which would close an acute kink. It
// returns the new partner.
func (u *Universe) bond(p Pos) (Pos, bool) {
	if !u.links.Has(p) || u.bonds.Degree(p) >= maxBondDegree {
		return Pos{}, false
	}
	var cands [8]Pos
	n := 0
	for dir := 0; dir < u.bondConn.Directions(); dir++ {
		q := p.Neighbor(dir, u.bondConn)
		if !u.links.Has(q) || u.bonds.Degree(q) >= maxBondDegree || u.bonds.Has(p, q) {
			continue
		}
		if u.kinked(p, q) {
			continue
		}
		cands[n] = q
		n++
	}
	if n == 0 {
		return Pos{}, false
	}
	q := cands[u.rng.IntN(n)]
	u.bonds.Add(p, q)
	return q, true
}

func (u *Universe) kinked(p, candidate Pos) bool {
	for _, m := range u.bonds.Partners(candidate) {
		if adjacent4(m, p) {
			return true
		}
	}
	return false
}

// fixBonds drops every bond that touched a dead link. Former partners keep
// their other bond, if any.
func (u *Universe) fixBonds(dead Pos) int {
	return u.bonds.RemoveAll(dead)
}
