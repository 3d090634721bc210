package space

import "iter"

// WithTraits wraps a carrier with a different trait assertion, leaving
// every other behavior untouched. The wrapper is how callers weaken a
// model's hypotheses — e.g. to confirm that a construction refuses to
// run without local compactness — or assert traits for a custom carrier
// built from closures.
func WithTraits[P comparable](sp Space[P], t Traits) Space[P] {
	return traitOverride[P]{Space: sp, traits: t}
}

type traitOverride[P comparable] struct {
	Space[P]
	traits Traits
}

func (o traitOverride[P]) Traits() Traits { return o.traits }

// Exhaust delegates to the wrapped carrier explicitly; embedding would
// already forward it, but the override keeps the method set obvious.
func (o traitOverride[P]) Exhaust() iter.Seq[Block[P]] { return o.Space.Exhaust() }
