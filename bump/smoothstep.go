package bump

import (
	"github.com/topoglue/topoglue/space"
)

// Defaults for the smoothstep adapter — single source of truth.
const (
	// DefaultPlateauFraction is the plateau radius as a share of the
	// support radius. One half leaves a comfortable falloff band while
	// keeping the "equal to 1 near the center" region large enough for
	// coverage arguments.
	DefaultPlateauFraction = 0.5

	// DefaultSupportShare is the share of the reported clearance used as
	// the support radius. Strictly below 1 so the closed support ball
	// stays inside the target neighborhood (clearance is an open bound).
	DefaultSupportShare = 0.9
)

// Option configures a SmoothstepFactory. Invalid parameters panic:
// option constructors run at setup time and a nonsensical value is a
// programmer error, not user input.
type Option[P comparable] func(*SmoothstepFactory[P])

// WithPlateauFraction sets the plateau/support ratio. Panics unless
// 0 < f ≤ 1.
func WithPlateauFraction[P comparable](f float64) Option[P] {
	if f <= 0 || f > 1 {
		panic("bump: plateau fraction must lie in (0, 1]")
	}

	return func(sf *SmoothstepFactory[P]) { sf.plateau = f }
}

// WithMaxRadius caps the support radius produced by Make. Panics unless
// r > 0.
func WithMaxRadius[P comparable](r float64) Option[P] {
	if r <= 0 {
		panic("bump: max radius must be positive")
	}

	return func(sf *SmoothstepFactory[P]) { sf.maxRadius = r }
}

// SmoothstepFactory builds members over a metric with a cubic
// smoothstep profile:
//
//	w(p) = 1                     d ≤ plateau
//	w(p) = 3t² − 2t³             plateau < d < radius, t = (radius−d)/(radius−plateau)
//	w(p) = 0                     d ≥ radius
//
// where d = dist(center, p). The profile is continuous, monotone in d,
// exactly 1 on the plateau and exactly 0 outside the support.
type SmoothstepFactory[P comparable] struct {
	dist      space.Metric[P]
	plateau   float64 // plateau fraction of the support radius
	maxRadius float64 // 0 means uncapped
}

// NewSmoothstepFactory returns a factory over the given metric.
// Panics on a nil metric (programmer error).
func NewSmoothstepFactory[P comparable](d space.Metric[P], opts ...Option[P]) *SmoothstepFactory[P] {
	if d == nil {
		panic("bump: metric must be non-nil")
	}
	sf := &SmoothstepFactory[P]{dist: d, plateau: DefaultPlateauFraction}
	for _, opt := range opts {
		opt(sf)
	}

	return sf
}

// Clearance reports the room target leaves around center.
//
// Contracts:
//   - target must be a space.RadialRegion; predicate-only regions cannot
//     certify containment (ErrOpaqueTarget).
//   - A zero clearance — center on the boundary or outside — is
//     ErrDegenerateNeighborhood.
//
// Complexity: one clearance query.
func (sf *SmoothstepFactory[P]) Clearance(center P, target space.Region[P]) (float64, error) {
	if target == nil {
		return 0, ErrNilTarget
	}
	rr, ok := target.(space.RadialRegion[P])
	if !ok {
		return 0, ErrOpaqueTarget
	}
	c := rr.Clearance(center)
	if c <= 0 {
		return 0, ErrDegenerateNeighborhood
	}

	return c, nil
}

// Make produces a member centered at center with support radius
// DefaultSupportShare of the target clearance, capped by WithMaxRadius.
// The support closure is the closed ball of that radius and lies inside
// target because the radius is strictly below the clearance.
//
// Complexity: one clearance query; each Eval costs one metric call.
func (sf *SmoothstepFactory[P]) Make(center P, target space.Region[P]) (Member[P], error) {
	c, err := sf.Clearance(center, target)
	if err != nil {
		return Member[P]{}, err
	}
	r := c * DefaultSupportShare
	if sf.maxRadius > 0 && r > sf.maxRadius {
		r = sf.maxRadius
	}

	return sf.member(center, r), nil
}

// RestrictRadius rebuilds the smoothstep profile at the smaller radius.
// The plateau shrinks proportionally, so the restricted member's support
// and plateau are both subsets of the original's and the center weight
// stays 1.
//
// Complexity: O(1).
func (sf *SmoothstepFactory[P]) RestrictRadius(m Member[P], radius float64) (Member[P], error) {
	if err := m.Validate(); err != nil {
		return Member[P]{}, err
	}
	if radius <= 0 || radius > m.Radius {
		return Member[P]{}, ErrBadRadius
	}

	return sf.member(m.Center, radius), nil
}

// member assembles the profile closure for a given center and support
// radius.
func (sf *SmoothstepFactory[P]) member(center P, radius float64) Member[P] {
	var (
		plateau = radius * sf.plateau
		band    = radius - plateau
		d       = sf.dist
	)

	eval := func(p P) float64 {
		dd := d(center, p)
		switch {
		case dd <= plateau:
			return 1
		case dd >= radius:
			return 0
		default:
			t := (radius - dd) / band
			return t * t * (3 - 2*t)
		}
	}

	return Member[P]{Center: center, Radius: radius, Plateau: plateau, Eval: eval}
}
