// Package shrink options and sentinel errors.
package shrink

import (
	"errors"

	"github.com/topoglue/topoglue/space"
)

// Sentinel errors for the refiner.
var (
	// ErrNotShrinkable indicates the carrier lacks normality, or a probe
	// of the closed set is covered by no member of the family — either
	// way the shrinking lemma's hypothesis fails and no partial result
	// is returned.
	ErrNotShrinkable = errors.New("shrink: cover cannot be shrunk (normality or coverage precondition fails)")

	// ErrNoProbes indicates a non-empty cover with an empty probe net:
	// there is nothing to witness coverage with, so the refiner cannot
	// certify its postcondition.
	ErrNoProbes = errors.New("shrink: probe net of the closed set is empty")

	// ErrBadCover indicates a member ball with a non-positive radius.
	ErrBadCover = errors.New("shrink: cover balls must have positive radius")

	// ErrBadOptions indicates a slack share outside [0, 1).
	ErrBadOptions = errors.New("shrink: slack share must lie in [0, 1)")
)

// DefaultSlack is the share of the unused radius kept as breathing room
// above the strict requirement. One half balances two pressures: too
// little slack produces closed sets that barely contain their probes
// (fragile against later radius arithmetic), too much defeats the point
// of shrinking.
const DefaultSlack = 0.5

// Options configures Refine.
type Options struct {
	// Traits are the structural hypotheses of the ambient carrier,
	// asserted by the caller. Refine requires Traits.Normal.
	Traits space.Traits

	// Slack ∈ [0, 1): the shrunk radius is need + Slack·(orig − need),
	// where need is the largest distance of a kept probe. Zero shrinks
	// as hard as the probes permit.
	Slack float64
}

// DefaultOptions returns Options asserting the full trait set with the
// default slack share.
func DefaultOptions() Options {
	return Options{Traits: space.AllTraits(), Slack: DefaultSlack}
}
