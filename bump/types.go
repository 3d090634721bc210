// Package bump member type, factory contract and sentinel errors.
package bump

import (
	"errors"

	"github.com/topoglue/topoglue/space"
)

// Sentinel errors for member production.
var (
	// ErrDegenerateNeighborhood indicates the target neighborhood admits
	// no positive-radius ball around the requested center.
	ErrDegenerateNeighborhood = errors.New("bump: target neighborhood admits no positive radius around center")

	// ErrOpaqueTarget indicates the target region cannot report
	// clearance (it is not a space.RadialRegion), so support containment
	// cannot be certified.
	ErrOpaqueTarget = errors.New("bump: target region does not report clearance")

	// ErrNilTarget indicates a nil target neighborhood.
	ErrNilTarget = errors.New("bump: target neighborhood is nil")

	// ErrBadRadius indicates a radius restriction outside (0, Radius].
	ErrBadRadius = errors.New("bump: restricted radius must lie in (0, current radius]")

	// ErrBadMember indicates a member violating the Member contract
	// (nil Eval, non-positive plateau, plateau above radius, or weight
	// at center differing from 1).
	ErrBadMember = errors.New("bump: member violates the weight-function contract")
)

// Member is a single bump weight function: center, support radius,
// plateau radius and the evaluation closure.
//
// Contract (callers constructing members by hand must honor it;
// cover.FromMembers spot-checks it):
//   - Eval(Center) == 1 and 0 ≤ Eval(p) ≤ 1 everywhere;
//   - Eval(p) == 1 whenever d(Center, p) ≤ Plateau;
//   - Eval(p) == 0 whenever d(Center, p) ≥ Radius;
//   - 0 < Plateau ≤ Radius.
//
// The support of the member is therefore contained in the closed ball
// of its Radius around Center, and its closure is compact whenever the
// carrier is locally compact.
type Member[P comparable] struct {
	Center  P
	Radius  float64
	Plateau float64
	Eval    func(p P) float64
}

// Weight evaluates the member, treating a nil Eval as identically zero.
// Complexity: one closure evaluation.
func (m Member[P]) Weight(p P) float64 {
	if m.Eval == nil {
		return 0
	}

	return m.Eval(p)
}

// Validate spot-checks the cheap parts of the Member contract: shape of
// the radii, a non-nil Eval and weight 1 at the center. Pointwise range
// and support bounds are not enumerable and remain the producer's
// responsibility.
//
// Complexity: O(1) plus one evaluation.
func (m Member[P]) Validate() error {
	if m.Eval == nil {
		return ErrBadMember
	}
	if m.Plateau <= 0 || m.Plateau > m.Radius {
		return ErrBadMember
	}
	if w := m.Eval(m.Center); w != 1 {
		return ErrBadMember
	}

	return nil
}

// Factory produces admissible bump members. It is the external
// collaborator of the covering builder: the builder never inspects how
// a member is made, only that the Member contract and the support
// containment guarantee hold.
type Factory[P comparable] interface {
	// Make returns a member centered at center whose support closure is
	// contained in target. Errors: ErrNilTarget, ErrOpaqueTarget,
	// ErrDegenerateNeighborhood.
	Make(center P, target space.Region[P]) (Member[P], error)

	// RestrictRadius returns a member with the same center and a support
	// radius of exactly radius. Monotone: radius ≤ m.Radius implies the
	// new support is a subset of the old one, and the weight at the
	// center stays 1. Errors: ErrBadRadius (radius outside (0, m.Radius]),
	// ErrBadMember (malformed input member).
	RestrictRadius(m Member[P], radius float64) (Member[P], error)

	// Clearance reports a positive radius r such that the closed ball of
	// any radius < r around center stays inside target. Errors:
	// ErrNilTarget, ErrOpaqueTarget, ErrDegenerateNeighborhood (no
	// positive radius exists).
	Clearance(center P, target space.Region[P]) (float64, error)
}
