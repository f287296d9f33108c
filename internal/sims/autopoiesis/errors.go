package autopoiesis

import "errors"

var (
	// ErrEmptyRegion indicates a seed region without positive width and height.
	ErrEmptyRegion = errors.New("autopoiesis: seed region must have positive width and height")
	// ErrRegionTooLarge indicates a seed region whose area does not fit in an int.
	ErrRegionTooLarge = errors.New("autopoiesis: seed region area overflows")
	// ErrTooManyCatalysts indicates more catalysts than cells in the seed region.
	ErrTooManyCatalysts = errors.New("autopoiesis: catalyst count exceeds seed region area")
	// ErrNegativeCatalysts indicates a negative catalyst count.
	ErrNegativeCatalysts = errors.New("autopoiesis: catalyst count must not be negative")
	// ErrDecayRate indicates a decay probability outside [0, 1].
	ErrDecayRate = errors.New("autopoiesis: decay rate must lie in [0, 1]")
	// ErrInvariant wraps every self-check failure. It signals a defect in the
	// reaction rules, never a recoverable condition.
	ErrInvariant = errors.New("autopoiesis: invariant violated")
)
