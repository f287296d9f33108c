package autopoiesis

import (
	"fmt"
	"slices"
)

// Bond joins two link cells. A is always the lexicographically smaller
// endpoint so equal bonds compare equal regardless of construction order.
type Bond struct {
	A Pos `json:"a"`
	B Pos `json:"b"`
}

// NewBond returns the canonical bond between p and q.
func NewBond(p, q Pos) Bond {
	if q.Less(p) {
		p, q = q, p
	}
	return Bond{A: p, B: q}
}

// Has reports whether p is an endpoint of b.
func (b Bond) Has(p Pos) bool { return b.A == p || b.B == p }

// Other returns the endpoint opposite p.
func (b Bond) Other(p Pos) Pos {
	if b.A == p {
		return b.B
	}
	return b.A
}

const maxBondDegree = 2

// bondLedger stores bonds in insertion order alongside a partner index that
// answers degree queries without scanning.
type bondLedger struct {
	bonds    []Bond
	index    map[Bond]int
	partners map[Pos][]Pos
}

func newBondLedger() *bondLedger {
	return &bondLedger{index: make(map[Bond]int), partners: make(map[Pos][]Pos)}
}

func (l *bondLedger) Len() int { return len(l.bonds) }

func (l *bondLedger) Degree(p Pos) int { return len(l.partners[p]) }

// Partners exposes the bond partners of p. Callers must not modify it.
func (l *bondLedger) Partners(p Pos) []Pos { return l.partners[p] }

func (l *bondLedger) Has(p, q Pos) bool {
	_, ok := l.index[NewBond(p, q)]
	return ok
}

// All exposes the bonds in ledger order. Callers must not modify it.
func (l *bondLedger) All() []Bond { return l.bonds }

// Add inserts the bond p-q unless it is a self bond, a duplicate, or would
// push either endpoint past the degree limit.
func (l *bondLedger) Add(p, q Pos) bool {
	if p == q || l.Has(p, q) {
		return false
	}
	if l.Degree(p) >= maxBondDegree || l.Degree(q) >= maxBondDegree {
		return false
	}
	b := NewBond(p, q)
	l.index[b] = len(l.bonds)
	l.bonds = append(l.bonds, b)
	l.partners[p] = append(l.partners[p], q)
	l.partners[q] = append(l.partners[q], p)
	return true
}

func (l *bondLedger) Remove(p, q Pos) bool {
	b := NewBond(p, q)
	i, ok := l.index[b]
	if !ok {
		return false
	}
	last := len(l.bonds) - 1
	if i != last {
		moved := l.bonds[last]
		l.bonds[i] = moved
		l.index[moved] = i
	}
	l.bonds = l.bonds[:last]
	delete(l.index, b)
	l.dropPartner(p, q)
	l.dropPartner(q, p)
	return true
}

// RemoveAll deletes every bond touching p and returns how many were removed.
func (l *bondLedger) RemoveAll(p Pos) int {
	partners := slices.Clone(l.partners[p])
	for _, q := range partners {
		l.Remove(p, q)
	}
	return len(partners)
}

func (l *bondLedger) dropPartner(p, q Pos) {
	ps := l.partners[p]
	i := slices.Index(ps, q)
	if i < 0 {
		return
	}
	ps = slices.Delete(ps, i, i+1)
	if len(ps) == 0 {
		delete(l.partners, p)
		return
	}
	l.partners[p] = ps
}

func (l *bondLedger) clone() *bondLedger {
	c := newBondLedger()
	for _, b := range l.bonds {
		c.Add(b.A, b.B)
	}
	return c
}

// check verifies endpoint membership, the degree limit and index consistency.
func (l *bondLedger) check(isLink func(Pos) bool) error {
	if len(l.bonds) != len(l.index) {
		return fmt.Errorf("%w: bond index holds %d entries for %d bonds", ErrInvariant, len(l.index), len(l.bonds))
	}
	degree := make(map[Pos]int, len(l.partners))
	for i, b := range l.bonds {
		if j, ok := l.index[b]; !ok || j != i {
			return fmt.Errorf("%w: bond index out of sync at %v-%v", ErrInvariant, b.A, b.B)
		}
		if b.B.Less(b.A) || b.A == b.B {
			return fmt.Errorf("%w: bond %v-%v is not canonical", ErrInvariant, b.A, b.B)
		}
		if !isLink(b.A) || !isLink(b.B) {
			return fmt.Errorf("%w: bond %v-%v has an endpoint that is not a link", ErrInvariant, b.A, b.B)
		}
		degree[b.A]++
		degree[b.B]++
	}
	for p, d := range degree {
		if d > maxBondDegree {
			return fmt.Errorf("%w: link %v has %d bonds", ErrInvariant, p, d)
		}
		if len(l.partners[p]) != d {
			return fmt.Errorf("%w: partner index for %v lists %d bonds, ledger has %d", ErrInvariant, p, len(l.partners[p]), d)
		}
	}
	if len(degree) != len(l.partners) {
		return fmt.Errorf("%w: partner index tracks %d links, ledger touches %d", ErrInvariant, len(l.partners), len(degree))
	}
	return nil
}
