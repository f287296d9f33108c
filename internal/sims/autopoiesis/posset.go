package autopoiesis

import "fmt"

// posSet is an insertion-ordered set of positions. Removal swaps the last
// element into the freed slot, so iteration order depends only on the
// sequence of mutations and seeded runs stay reproducible.
type posSet struct {
	items []Pos
	index map[Pos]int
}

func newPosSet(capacity int) *posSet {
	return &posSet{items: make([]Pos, 0, capacity), index: make(map[Pos]int, capacity)}
}

func (s *posSet) Len() int { return len(s.items) }

func (s *posSet) Has(p Pos) bool {
	_, ok := s.index[p]
	return ok
}

// At returns the i-th element in set order.
func (s *posSet) At(i int) Pos { return s.items[i] }

// Items exposes the backing slice. Callers must not modify it.
func (s *posSet) Items() []Pos { return s.items }

func (s *posSet) Add(p Pos) bool {
	if s.Has(p) {
		return false
	}
	s.index[p] = len(s.items)
	s.items = append(s.items, p)
	return true
}

func (s *posSet) Remove(p Pos) bool {
	i, ok := s.index[p]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, p)
	return true
}

// Move relocates from to dst in place, keeping its slot in set order.
func (s *posSet) Move(from, dst Pos) bool {
	i, ok := s.index[from]
	if !ok || s.Has(dst) {
		return false
	}
	delete(s.index, from)
	s.items[i] = dst
	s.index[dst] = i
	return true
}

func (s *posSet) clone() *posSet {
	c := newPosSet(len(s.items))
	for _, p := range s.items {
		c.Add(p)
	}
	return c
}

func (s *posSet) check(name string) error {
	if len(s.items) != len(s.index) {
		return fmt.Errorf("%w: %s index holds %d entries for %d items", ErrInvariant, name, len(s.index), len(s.items))
	}
	for i, p := range s.items {
		if j, ok := s.index[p]; !ok || j != i {
			return fmt.Errorf("%w: %s index out of sync at %v", ErrInvariant, name, p)
		}
	}
	return nil
}
