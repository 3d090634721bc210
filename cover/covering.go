package cover

import (
	"iter"

	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/space"
)

// Covering is an immutable bump covering: an ordered family of bump
// members over a closed domain, together with the carrier it lives on
// and a spatial index over the supports. The index set is the slice
// position and the total order on it is the ordinary < on int — the
// order the normalizer's telescoping formula folds along.
//
// A Covering is constructed once — by Build or FromMembers — and never
// mutated; derivations (partitions, blends) read it concurrently
// without synchronization.
type Covering[P comparable] struct {
	sp      space.Space[P]
	domain  space.Subset[P]
	members []bump.Member[P]
	index   *gridIndex[P]
}

// FromMembers adopts a hand-built member family as a covering over dom.
// Each member is spot-checked against the Member contract
// (bump.ErrBadMember on violation); the deeper covering invariants —
// plateau coverage of dom, local finiteness — are the caller's claim,
// exactly as with a covering deserialized from a descriptor.
//
// Contracts:
//   - sp non-nil (ErrNilSpace), dom asserted closed (ErrInvalidDomain).
//   - An empty family is the trivial covering of the empty domain.
//
// Complexity: O(n) validation + index construction.
func FromMembers[P comparable](sp space.Space[P], dom space.Subset[P], members []bump.Member[P]) (*Covering[P], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if !dom.Closed() {
		return nil, ErrInvalidDomain
	}
	for i := range members {
		if err := members[i].Validate(); err != nil {
			return nil, err
		}
	}

	own := make([]bump.Member[P], len(members))
	copy(own, members)

	return &Covering[P]{
		sp:      sp,
		domain:  dom,
		members: own,
		index:   newGridIndex(sp.Dim(), sp.Coords, own),
	}, nil
}

// Len returns the number of members.
func (c *Covering[P]) Len() int { return len(c.members) }

// Member returns the i-th member. The slice position is the member's
// index in the total order; i must lie in [0, Len()) — like a slice
// access, anything else is a programmer error and panics.
func (c *Covering[P]) Member(i int) bump.Member[P] { return c.members[i] }

// Members yields (index, member) pairs in index order. The family is
// always materialized finitely — the builder only ever instantiates the
// finite prefix demanded by the exhaustion — but consumers should range
// rather than copy.
func (c *Covering[P]) Members() iter.Seq2[int, bump.Member[P]] {
	return func(yield func(int, bump.Member[P]) bool) {
		for i := range c.members {
			if !yield(i, c.members[i]) {
				return
			}
		}
	}
}

// Domain returns the closed domain descriptor.
func (c *Covering[P]) Domain() space.Subset[P] { return c.domain }

// Space returns the carrier the covering was built over.
func (c *Covering[P]) Space() space.Space[P] { return c.sp }

// Active returns the indices whose weight is nonzero at p, in ascending
// index order — the finite active set A(p) the normalizer folds over.
// Nonzero weight means strictly inside the support ball.
//
// Complexity: one bucket lookup plus one metric evaluation per
// candidate in the bucket.
func (c *Covering[P]) Active(p P) []int {
	cand := c.index.candidates(p)
	if len(cand) == 0 {
		return nil
	}
	out := make([]int, 0, len(cand))
	for _, i := range cand {
		m := &c.members[i]
		if c.sp.Dist(m.Center, p) < m.Radius {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// Covers reports whether some member is identically 1 on a neighborhood
// of p — strictly inside a plateau. This is the pointwise coverage
// invariant of the covering.
//
// Complexity: as Active.
func (c *Covering[P]) Covers(p P) bool {
	for _, i := range c.index.candidates(p) {
		m := &c.members[i]
		if c.sp.Dist(m.Center, p) < m.Plateau {
			return true
		}
	}

	return false
}

// MaxMultiplicity returns the largest number of supports meeting any
// single probe — a finite local-finiteness witness over the given net.
//
// Complexity: O(len(probes)) Active queries.
func (c *Covering[P]) MaxMultiplicity(probes []P) int {
	var most int
	for _, p := range probes {
		if n := len(c.Active(p)); n > most {
			most = n
		}
	}

	return most
}
