package cover

import (
	"fmt"
	"math/rand"

	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/shrink"
	"github.com/topoglue/topoglue/space"
)

// maxDerivedStages caps the hull-driven walk along the exhaustion: a
// model whose blocks never swallow the domain hull is indistinguishable
// from an unbounded domain and is reported as one.
const maxDerivedStages = 64

// Build constructs a bump covering of dom subordinate to the
// neighborhood assignment u.
//
// Contracts:
//   - dom must be asserted closed (ErrInvalidDomain — rejected before
//     any work begins);
//   - sp must assert local compactness, σ-compactness and Hausdorff
//     separation (ErrNoCoveringPossible) and normality for the
//     shrinking stage (shrink.ErrNotShrinkable, wrapped);
//   - a domain without a bounding hull needs WithStageBudget
//     (ErrUnboundedDomain);
//   - a non-empty domain that neither the hull anchors nor the witness
//     net manage to sample fails with ErrNetTooCoarse — an empty family
//     is never passed off as covering a non-empty domain;
//   - f's failure to find a positive radius for some center surfaces as
//     bump.ErrDegenerateNeighborhood (wrapped) and aborts the whole
//     construction — no partial covering is ever returned.
//
// The construction runs in five stages:
//
//  1. Validation — argument shape and carrier traits, all up front.
//  2. Exhaustion & selection — seed the in-domain hull anchors, then
//     walk the compact blocks in order and sample each block's net;
//     every in-domain sample not yet owned by an earlier member's
//     plateau becomes a member center via f.Make(center, u(center)).
//     Samples discarded here are what keeps the family point-finite.
//  3. Shrinking — the candidate support balls form an open cover of the
//     witness net; shrink.Refine turns it into closed balls V_i
//     strictly inside the candidates.
//  4. Instantiation — each member is tightened via f.RestrictRadius to
//     the smallest radius that still contains V_i and keeps every owned
//     sample strictly inside the plateau; a factory whose restriction
//     cannot honor that keeps its candidate member (valid, just less
//     tight).
//  5. Verification — plateau coverage of the full net is re-checked as
//     a postcondition (ErrPostcondition), not re-derived.
//
// Complexity: O(stages · net + probes · members) metric evaluations
// plus one factory call per member.
func Build[P comparable](
	sp space.Space[P],
	dom space.Subset[P],
	u Assignment[P],
	f bump.Factory[P],
	opts ...Option,
) (*Covering[P], error) {
	// Stage 1 — validation.
	if sp == nil {
		return nil, ErrNilSpace
	}
	if u == nil {
		return nil, ErrNilAssignment
	}
	if f == nil {
		return nil, ErrNilFactory
	}
	if !dom.Closed() {
		return nil, ErrInvalidDomain
	}
	traits := sp.Traits()
	if !traits.LocallyCompact || !traits.SigmaCompact || !traits.Hausdorff {
		return nil, ErrNoCoveringPossible
	}

	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if dom.IsEmpty() {
		return FromMembers(sp, dom, nil)
	}

	blocks, err := exhaustionPrefix(sp, dom, o.stageBudget)
	if err != nil {
		return nil, err
	}

	// Stage 2 — exhaustion & selection.
	var rng *rand.Rand
	if o.jitter {
		rng = rngFromSeed(o.seed)
	}

	var (
		members   []bump.Member[P]
		ownedNeed []float64
		probes    []P
		seen      = make(map[P]struct{})
	)
	// take admits one sample: records it as a probe and spawns a member
	// unless an existing plateau already owns it. stage < 0 marks a
	// domain anchor rather than a net sample.
	take := func(q P, stage int) error {
		if !sp.Contains(q) || !dom.Contains(q) {
			return nil
		}
		if _, dup := seen[q]; !dup {
			seen[q] = struct{}{}
			probes = append(probes, q)
		}

		if owner(sp, members, q) >= 0 {
			return nil
		}
		m, merr := f.Make(q, u(q))
		if merr != nil {
			if stage < 0 {
				return fmt.Errorf("cover: member at domain anchor: %w", merr)
			}

			return fmt.Errorf("cover: member at stage %d: %w", stage+1, merr)
		}
		members = append(members, m)
		ownedNeed = append(ownedNeed, 0)

		return nil
	}

	// Domain anchors first: the hull center and its axis extremes,
	// whenever the domain accepts them. A step net can walk straight
	// over a domain thinner than the step; the anchors keep such domains
	// witnessed (and a singleton domain gets its member at the hull
	// center).
	if hull, bounded := dom.Hull(); bounded {
		anchors, aerr := hullExtremes(sp, hull)
		if aerr != nil {
			return nil, aerr
		}
		for _, q := range anchors {
			if err := take(q, -1); err != nil {
				return nil, err
			}
		}
	}
	for stage, b := range blocks {
		for _, raw := range b.Net(o.netStep) {
			if err := take(jitter(sp, dom, rng, raw, o.netStep), stage); err != nil {
				return nil, err
			}
		}
	}
	if len(probes) == 0 {
		// The domain asserted itself non-empty, yet neither the anchors
		// nor the net produced a single point of it. Coverage cannot be
		// witnessed, so no covering is claimed.
		return nil, ErrNetTooCoarse
	}

	// Owned-sample distances, for the plateau requirement of stage 4.
	for _, p := range probes {
		if i := owner(sp, members, p); i >= 0 {
			if d := sp.Dist(members[i].Center, p); d > ownedNeed[i] {
				ownedNeed[i] = d
			}
		}
	}

	// Stage 3 — shrinking.
	balls := make([]space.Ball[P], len(members))
	for i := range members {
		balls[i] = space.NewBall(sp.Dist, members[i].Center, members[i].Radius)
	}
	so := shrink.Options{Traits: traits, Slack: shrink.DefaultSlack}
	if o.slack >= 0 {
		so.Slack = o.slack
	}
	shrunk, err := shrink.Refine(probes, balls, so)
	if err != nil {
		return nil, fmt.Errorf("cover: shrinking stage: %w", err)
	}

	// Stage 4 — instantiation.
	for i := range members {
		tightenMember(f, &members[i], shrunk[i].Radius, ownedNeed[i])
	}

	// Stage 5 — verification.
	cov, err := FromMembers(sp, dom, members)
	if err != nil {
		return nil, err
	}
	for _, p := range probes {
		if !cov.Covers(p) {
			return nil, ErrPostcondition
		}
	}

	return cov, nil
}

// exhaustionPrefix returns the finite block prefix the construction
// materializes: the explicit budget when given, otherwise the shortest
// prefix whose last block contains the domain hull's extremal points.
func exhaustionPrefix[P comparable](sp space.Space[P], dom space.Subset[P], budget int) ([]space.Block[P], error) {
	hull, bounded := dom.Hull()
	if budget <= 0 && !bounded {
		return nil, ErrUnboundedDomain
	}

	var extremes []P
	if budget <= 0 {
		var err error
		if extremes, err = hullExtremes(sp, hull); err != nil {
			return nil, err
		}
	}

	var blocks []space.Block[P]
	for b := range sp.Exhaust() {
		blocks = append(blocks, b)
		if budget > 0 {
			if len(blocks) == budget {
				return blocks, nil
			}
			continue
		}
		if containsAll(b, extremes) {
			return blocks, nil
		}
		if len(blocks) == maxDerivedStages {
			return nil, ErrUnboundedDomain
		}
	}

	// The exhaustion ended early; whatever was yielded is the carrier.
	return blocks, nil
}

// hullExtremes returns the hull center displaced by ±radius along every
// coordinate axis, plus the center itself — the probes whose block
// membership tells the prefix walk when to stop. Displacing coordinates
// by a metric radius reaches at least as far as the hull does along
// each axis, by the Dist/Coords bound of the space.Space contract.
func hullExtremes[P comparable](sp space.Space[P], hull space.Ball[P]) ([]P, error) {
	var (
		dim    = sp.Dim()
		center = sp.Coords(hull.Center)
		out    = make([]P, 0, 2*dim+1)
	)
	out = append(out, hull.Center)
	for axis := 0; axis < dim; axis++ {
		for _, sign := range [2]float64{-1, 1} {
			c := make([]float64, dim)
			copy(c, center)
			c[axis] += sign * hull.Radius
			p, err := sp.PointAt(c)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}

	return out, nil
}

func containsAll[P comparable](b space.Block[P], pts []P) bool {
	for _, p := range pts {
		if !b.Contains(p) {
			return false
		}
	}

	return true
}

// owner returns the lowest member index whose plateau owns q — within
// DefaultSelectShare of the plateau radius, so owned samples keep a
// strict margin — or -1.
func owner[P comparable](sp space.Space[P], members []bump.Member[P], q P) int {
	for i := range members {
		if sp.Dist(members[i].Center, q) <= DefaultSelectShare*members[i].Plateau {
			return i
		}
	}

	return -1
}

// tightenMember restricts m toward the shrunk radius while keeping the
// closed set V (radius vRadius) inside the support and every owned
// sample strictly inside the plateau. A restriction the factory cannot
// honor leaves the candidate member in place.
func tightenMember[P comparable](f bump.Factory[P], m *bump.Member[P], vRadius, owned float64) {
	target := vRadius
	if m.Radius > 0 && m.Plateau > 0 {
		// The radius at which the (proportionally scaled) plateau still
		// holds the owned samples with the selection margin.
		frac := m.Plateau / m.Radius
		if byPlateau := owned / (DefaultSelectShare * frac); byPlateau > target {
			target = byPlateau
		}
	}
	if target <= 0 || target >= m.Radius {
		return
	}
	res, err := f.RestrictRadius(*m, target)
	if err != nil {
		return
	}
	if res.Radius < vRadius || DefaultSelectShare*res.Plateau < owned {
		return
	}
	*m = res
}

// jitter displaces a net sample by a deterministic fraction of the step,
// falling back to the raw sample when the displaced point leaves the
// carrier or the domain. A nil rng disables jitter.
func jitter[P comparable](sp space.Space[P], dom space.Subset[P], rng *rand.Rand, raw P, step float64) P {
	if rng == nil {
		return raw
	}
	c := sp.Coords(raw)
	for i := range c {
		c[i] += (rng.Float64()*2 - 1) * DefaultJitterShare * step
	}
	p, err := sp.PointAt(c)
	if err != nil || !sp.Contains(p) || !dom.Contains(p) {
		return raw
	}

	return p
}
