package autopoiesis

// Bounds is the half-open rectangle [UpperLeft, LowerRight) that has held
// every position the simulation touched so far.
type Bounds struct {
	UpperLeft  Pos
	LowerRight Pos
}

func newBounds(w, h int) Bounds {
	return Bounds{UpperLeft: Pos{}, LowerRight: Pos{X: w, Y: h}}
}

// Expand grows the rectangle until it contains p.
func (b *Bounds) Expand(p Pos) {
	if p.X < b.UpperLeft.X {
		b.UpperLeft.X = p.X
	}
	if p.Y < b.UpperLeft.Y {
		b.UpperLeft.Y = p.Y
	}
	if p.X >= b.LowerRight.X {
		b.LowerRight.X = p.X + 1
	}
	if p.Y >= b.LowerRight.Y {
		b.LowerRight.Y = p.Y + 1
	}
}

// Contains reports whether p lies inside the rectangle.
func (b Bounds) Contains(p Pos) bool {
	return p.X >= b.UpperLeft.X && p.X < b.LowerRight.X &&
		p.Y >= b.UpperLeft.Y && p.Y < b.LowerRight.Y
}

// Size returns the width and height of the rectangle.
func (b Bounds) Size() Pos {
	return Pos{X: b.LowerRight.X - b.UpperLeft.X, Y: b.LowerRight.Y - b.UpperLeft.Y}
}
