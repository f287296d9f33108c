package autopoiesis

import "fmt"

// ValidateBonds checks that every bond joins two current links and that no
// link carries more than two bonds.
func (u *Universe) ValidateBonds() error {
	return u.bonds.check(u.links.Has)
}

// Validate checks every invariant of the universe: disjoint sets, as many
// links as holes, valid bonds, and a bounding box that encloses everything.
func (u *Universe) Validate() error {
	sets := []struct {
		name string
		s    *posSet
	}{{"holes", u.holes}, {"catalysts", u.catalysts}, {"links", u.links}}
	for _, set := range sets {
		if err := set.s.check(set.name); err != nil {
			return err
		}
	}
	for _, p := range u.holes.Items() {
		if u.catalysts.Has(p) || u.links.Has(p) {
			return fmt.Errorf("%w: hole %v shares its cell", ErrInvariant, p)
		}
	}
	for _, p := range u.catalysts.Items() {
		if u.links.Has(p) {
			return fmt.Errorf("%w: catalyst %v shares its cell with a link", ErrInvariant, p)
		}
	}
	if u.links.Len() != u.holes.Len() {
		return fmt.Errorf("%w: %d links but %d holes", ErrInvariant, u.links.Len(), u.holes.Len())
	}
	if err := u.ValidateBonds(); err != nil {
		return err
	}
	for _, set := range sets {
		for _, p := range set.s.Items() {
			if !u.bounds.Contains(p) {
				return fmt.Errorf("%w: %v lies outside bounds %v-%v", ErrInvariant, p, u.bounds.UpperLeft, u.bounds.LowerRight)
			}
		}
	}
	return nil
}
