package autopoiesis

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Census summarizes the population and the shape of the bonded structures.
// Every connected piece of the bond graph is either an open chain or, when
// all of its links are double bonded, a closed membrane.
type Census struct {
	Tick uint64 `json:"tick"`

	Holes     int `json:"holes"`
	Catalysts int `json:"catalysts"`
	Links     int `json:"links"`

	FreeLinks    int `json:"free_links"`
	SingleBonded int `json:"single_bonded"`
	DoubleBonded int `json:"double_bonded"`
	Bonds        int `json:"bonds"`

	Chains          int `json:"chains"`
	LongestChain    int `json:"longest_chain"`
	Membranes       int `json:"membranes"`
	LargestMembrane int `json:"largest_membrane"`
}

// Census counts the current population and classifies bonded structures.
func (u *Universe) Census() Census {
	c := Census{
		Tick:      u.tick,
		Holes:     u.holes.Len(),
		Catalysts: u.catalysts.Len(),
		Links:     u.links.Len(),
		Bonds:     u.bonds.Len(),
	}
	for _, p := range u.links.Items() {
		switch u.bonds.Degree(p) {
		case 0:
			c.FreeLinks++
		case 1:
			c.SingleBonded++
		default:
			c.DoubleBonded++
		}
	}
	if u.bonds.Len() == 0 {
		return c
	}

	g := u.bondGraph()
	for _, component := range topo.ConnectedComponents(g) {
		closed := true
		for _, n := range component {
			if g.From(n.ID()).Len() != maxBondDegree {
				closed = false
				break
			}
		}
		if closed {
			c.Membranes++
			c.LargestMembrane = max(c.LargestMembrane, len(component))
			continue
		}
		c.Chains++
		c.LongestChain = max(c.LongestChain, len(component))
	}
	return c
}

// bondGraph mirrors the ledger as an undirected graph over bonded links.
func (u *Universe) bondGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	ids := make(map[Pos]int64, 2*u.bonds.Len())
	node := func(p Pos) graph.Node {
		id, ok := ids[p]
		if !ok {
			id = int64(len(ids))
			ids[p] = id
			g.AddNode(simple.Node(id))
		}
		return simple.Node(id)
	}
	for _, b := range u.bonds.All() {
		g.SetEdge(g.NewEdge(node(b.A), node(b.B)))
	}
	return g
}
