package autopoiesis

// Kind classifies a cell. Substrate is whatever no set claims.
type Kind uint8

const (
	KindSubstrate Kind = iota
	KindHole
	KindCatalyst
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindHole:
		return "hole"
	case KindCatalyst:
		return "catalyst"
	case KindLink:
		return "link"
	default:
		return "substrate"
	}
}

// KindAt reports what occupies p.
func (u *Universe) KindAt(p Pos) Kind {
	switch {
	case u.holes.Has(p):
		return KindHole
	case u.catalysts.Has(p):
		return KindCatalyst
	case u.links.Has(p):
		return KindLink
	default:
		return KindSubstrate
	}
}

func (u *Universe) IsSubstrate(p Pos) bool { return u.KindAt(p) == KindSubstrate }
func (u *Universe) IsHole(p Pos) bool      { return u.holes.Has(p) }
func (u *Universe) IsCatalyst(p Pos) bool  { return u.catalysts.Has(p) }
func (u *Universe) IsLink(p Pos) bool      { return u.links.Has(p) }

// NumBonds returns the bond degree of p (0 for anything but a bonded link).
func (u *Universe) NumBonds(p Pos) int { return u.bonds.Degree(p) }

// IsBonded reports whether p takes part in at least one bond.
func (u *Universe) IsBonded(p Pos) bool { return u.bonds.Degree(p) > 0 }

// Bonded reports whether p and q are bonded to each other.
func (u *Universe) Bonded(p, q Pos) bool { return u.bonds.Has(p, q) }

func (u *Universe) isFreeLink(p Pos) bool {
	return u.links.Has(p) && u.bonds.Degree(p) == 0
}

func (u *Universe) isBondedLink(p Pos) bool {
	return u.links.Has(p) && u.bonds.Degree(p) > 0
}
