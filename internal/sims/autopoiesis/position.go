package autopoiesis

import (
	"fmt"
	"math"
)

// Pos is a cell coordinate on the unbounded plane.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos { return Pos{X: p.X + d.X, Y: p.Y + d.Y} }

// Less orders positions by X, then by Y.
func (p Pos) Less(q Pos) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Connectivity selects the neighborhood used for a rule: orthogonal (Conn4)
// or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Directions reports how many direction indices the neighborhood defines.
func (c Connectivity) Directions() int {
	if c == Conn8 {
		return len(offsets8)
	}
	return len(offsets4)
}

func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

var offsets4 = [4]Pos{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

var offsets8 = [8]Pos{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// Neighbor4 returns the orthogonal neighbor of p in direction dir (0=N, 1=E,
// 2=S, 3=W). It panics on any other index.
func Neighbor4(p Pos, dir int) Pos {
	if dir < 0 || dir >= len(offsets4) {
		panic(fmt.Sprintf("autopoiesis: 4-neighbor direction %d out of range", dir))
	}
	return p.Add(offsets4[dir])
}

// Neighbor8 returns the neighbor of p in direction dir, clockwise from north
// (0=N ... 7=NW). It panics on any other index.
func Neighbor8(p Pos, dir int) Pos {
	if dir < 0 || dir >= len(offsets8) {
		panic(fmt.Sprintf("autopoiesis: 8-neighbor direction %d out of range", dir))
	}
	return p.Add(offsets8[dir])
}

// Neighbor dispatches to Neighbor4 or Neighbor8.
func (p Pos) Neighbor(dir int, conn Connectivity) Pos {
	if conn == Conn8 {
		return Neighbor8(p, dir)
	}
	return Neighbor4(p, dir)
}

// Distance is the Euclidean distance between p and q.
func Distance(p, q Pos) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

func adjacent4(p, q Pos) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx+dy*dy == 1
}

// perpendiculars returns the two 4-connected directions at right angles to dir.
func perpendiculars(dir int) (int, int) {
	return (dir + 1) % 4, (dir + 3) % 4
}
