package autopoiesis

import (
	"fmt"
	"math"
	"math/rand/v2"

	"autopoiesis/internal/core"
)

// Universe holds the whole chemistry: three disjoint position sets (substrate
// is every cell none of them claims), the bond ledger and the bounding box of
// everything touched so far. It is not safe for concurrent use.
type Universe struct {
	holes     *posSet
	catalysts *posSet
	links     *posSet
	bonds     *bondLedger

	decayRate float64
	bondConn  Connectivity
	bounds    Bounds
	checks    bool
	tick      uint64

	rng *rand.Rand
}

// New seeds catalysts distinct random catalyst positions inside
// [0,width)×[0,height) and returns the resulting universe. Every random
// decision draws from rng; a nil rng falls back to the default seed.
func New(width, height int, decayRate float64, catalysts int, rng *rand.Rand) (*Universe, error) {
	params := DefaultConfig().Params
	params.DecayRate = decayRate
	params.Catalysts = catalysts
	return build(width, height, params, rng)
}

// NewWithConfig builds a universe from cfg, seeding the RNG from cfg.Seed.
func NewWithConfig(cfg Config) (*Universe, error) {
	return build(cfg.Width, cfg.Height, cfg.Params, core.NewRNG(cfg.Seed).Source())
}

func build(w, h int, params Params, rng *rand.Rand) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyRegion, w, h)
	}
	if h > math.MaxInt/w {
		return nil, fmt.Errorf("%w: got %dx%d", ErrRegionTooLarge, w, h)
	}
	if params.Catalysts < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCatalysts, params.Catalysts)
	}
	if params.Catalysts > w*h {
		return nil, fmt.Errorf("%w: %d catalysts for %d cells", ErrTooManyCatalysts, params.Catalysts, w*h)
	}
	if !validRate(params.DecayRate) {
		return nil, fmt.Errorf("%w: got %v", ErrDecayRate, params.DecayRate)
	}
	if rng == nil {
		rng = core.NewRNG(DefaultConfig().Seed).Source()
	}
	u := &Universe{
		holes:     newPosSet(0),
		catalysts: newPosSet(params.Catalysts),
		links:     newPosSet(0),
		bonds:     newBondLedger(),
		decayRate: params.DecayRate,
		bondConn:  params.BondNeighborhood,
		bounds:    newBounds(w, h),
		checks:    params.Checks,
		rng:       rng,
	}
	u.seedCatalysts(w, h, params.Catalysts)
	return u, nil
}

func validRate(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}

// seedCatalysts places count distinct catalysts. Sparse regions use rejection
// sampling; dense ones draw from a permutation so seeding always terminates.
func (u *Universe) seedCatalysts(w, h, count int) {
	area := w * h
	if count*2 <= area {
		for u.catalysts.Len() < count {
			u.catalysts.Add(Pos{X: u.rng.IntN(w), Y: u.rng.IntN(h)})
		}
		return
	}
	for _, i := range u.rng.Perm(area)[:count] {
		u.catalysts.Add(Pos{X: i % w, Y: i / w})
	}
}

// Update performs one tick: it selects one hole, link or catalyst, uniformly
// over the whole population, and applies the matching reaction.
func (u *Universe) Update() {
	u.tick++
	if u.checks {
		mustHold(u.ValidateBonds())
	}

	nh, nl, nc := u.holes.Len(), u.links.Len(), u.catalysts.Len()
	total := nh + nl + nc
	if total == 0 {
		return
	}
	i := u.rng.IntN(total)
	switch {
	case i < nh:
		u.updateHole(u.holes.At(i))
	case i < nh+nl:
		u.updateLink(u.links.At(i - nh))
	default:
		p := u.moveCatalyst(u.catalysts.At(i - nh - nl))
		u.produce(p)
	}

	if u.checks {
		mustHold(u.Validate())
	}
}

// Step runs n updates.
func (u *Universe) Step(n int) {
	for i := 0; i < n; i++ {
		u.Update()
	}
}

func mustHold(err error) {
	if err != nil {
		panic(err)
	}
}

// Tick returns how many updates have run.
func (u *Universe) Tick() uint64 { return u.tick }

// Bounds returns the rectangle enclosing every touched position.
func (u *Universe) Bounds() Bounds { return u.bounds }

// DecayRate returns the current link decay probability.
func (u *Universe) DecayRate() float64 { return u.decayRate }

// SetDecayRate changes the decay probability, clamped to [0, 1].
func (u *Universe) SetDecayRate(r float64) {
	if math.IsNaN(r) {
		return
	}
	u.decayRate = min(max(r, 0), 1)
}

// SetChecks toggles the invariant self-checks around each update.
func (u *Universe) SetChecks(on bool) { u.checks = on }

func (u *Universe) NumHoles() int     { return u.holes.Len() }
func (u *Universe) NumLinks() int     { return u.links.Len() }
func (u *Universe) NumCatalysts() int { return u.catalysts.Len() }

// BondCount returns the number of bonds in the ledger.
func (u *Universe) BondCount() int { return u.bonds.Len() }

// Clone returns an independent copy that shares the RNG with u.
func (u *Universe) Clone() *Universe {
	c := *u
	c.holes = u.holes.clone()
	c.catalysts = u.catalysts.clone()
	c.links = u.links.clone()
	c.bonds = u.bonds.clone()
	return &c
}

// reachableHole looks for a hole next to center, first among its direct
// 4-neighbors, then behind a bonded link. Directions are probed in a random
// rotation.
func (u *Universe) reachableHole(center Pos) (Pos, bool) {
	start := u.rng.IntN(4)
	for k := 0; k < 4; k++ {
		n := Neighbor4(center, (start+k)%4)
		if u.holes.Has(n) {
			return n, true
		}
	}
	for k := 0; k < 4; k++ {
		if h, ok := u.displacedHole(center, (start+k)%4); ok {
			return h, true
		}
	}
	return Pos{}, false
}

// displacedHole is the two-hop probe: a hole directly at from+dir, or one
// step further when from+dir is a bonded link the hole sits behind.
func (u *Universe) displacedHole(from Pos, dir int) (Pos, bool) {
	n := Neighbor4(from, dir)
	if u.holes.Has(n) {
		return n, true
	}
	if !u.isBondedLink(n) {
		return Pos{}, false
	}
	beyond := Neighbor4(n, dir)
	if u.holes.Has(beyond) {
		return beyond, true
	}
	return Pos{}, false
}
