// Package space core types: metric, regions, traits, exhaustion blocks
// and the Space interface.
//
// Design principles (shared across topoglue):
//   - Deterministic, side-effect free values; no global state.
//   - No logging, no panics on user input — only sentinel errors.
//   - Traits are caller/model assertions, consulted but never re-derived.
package space

import (
	"errors"
	"iter"
)

// Sentinel errors for carrier operations.
var (
	// ErrBadCoords indicates a coordinate slice whose length does not
	// match the carrier dimension (PointAt contract violation).
	ErrBadCoords = errors.New("space: coordinate arity does not match carrier dimension")

	// ErrBadStep indicates a non-positive sampling step passed to a
	// block net.
	ErrBadStep = errors.New("space: sampling step must be positive")
)

// Metric is the distance function of a carrier. Implementations must be
// symmetric, non-negative and satisfy the triangle inequality; zero
// distance identifies points (the constructions assume a genuine metric).
type Metric[P comparable] func(a, b P) float64

// Region is an open or closed subset of the carrier, described by
// membership only. Which of the two it is follows from the context in
// which the region is used; the pipeline never needs to decide.
type Region[P comparable] interface {
	Contains(p P) bool
}

// RegionFunc adapts a plain predicate to a Region.
type RegionFunc[P comparable] func(P) bool

// Contains reports whether p satisfies the predicate.
func (f RegionFunc[P]) Contains(p P) bool { return f(p) }

// RadialRegion is a Region that can report clearance: a lower bound on
// the distance from an interior point to the complement. Clearance is
// the computational rendering of "admits a positive-radius ball inside
// the region"; the bump factory relies on it to pick support radii.
type RadialRegion[P comparable] interface {
	Region[P]

	// Clearance returns r ≥ 0 such that the closed ball of any radius
	// < r around p stays inside the region. Zero means p is on the
	// boundary or outside.
	Clearance(p P) float64
}

// Traits records the structural hypotheses a carrier asserts about
// itself. The covering constructions consult these flags up front and
// abort when a required hypothesis is missing; they never attempt to
// verify or derive a trait.
type Traits struct {
	// LocallyCompact: every point has a neighborhood with compact closure.
	LocallyCompact bool
	// Hausdorff: distinct points have disjoint neighborhoods.
	Hausdorff bool
	// SigmaCompact: the carrier is a countable union of compact blocks.
	SigmaCompact bool
	// Normal: disjoint closed sets have disjoint open neighborhoods
	// (the hypothesis of the shrinking lemma).
	Normal bool
}

// AllTraits returns the trait set of a locally compact, σ-compact,
// Hausdorff, normal carrier — what both shipped models satisfy.
func AllTraits() Traits {
	return Traits{
		LocallyCompact: true,
		Hausdorff:      true,
		SigmaCompact:   true,
		Normal:         true,
	}
}

// Block is one compact stage of an exhaustion. A block is a region that
// can additionally produce a finite sample net of itself: the finite
// witness sets all coverage arguments are checked against.
type Block[P comparable] interface {
	Contains(p P) bool

	// Net returns a finite step-net of the block: every point of the
	// block lies within step of some returned sample. A non-positive
	// step yields nil (callers validate via ErrBadStep up front).
	Net(step float64) []P
}

// Space is the ambient carrier handle consumed by the covering pipeline.
//
// Contracts:
//   - Dist is a metric (see Metric).
//   - Coords/PointAt are inverse to each other for points of the carrier;
//     PointAt returns ErrBadCoords on arity mismatch.
//   - Dist dominates coordinate differences: for all points a, b and
//     every axis k, |Coords(a)[k] − Coords(b)[k]| ≤ Dist(a, b). In other
//     words Coords is 1-Lipschitz into (ℝ^Dim, max-norm). The spatial
//     index and the hull-extreme walk bound coordinate extents by metric
//     radii, so a carrier whose metric under-reports coordinate gaps
//     would make them miss members. Both shipped carriers satisfy the
//     bound (the line with equality, the plane via the Euclidean norm).
//   - Exhaust yields an increasing sequence of compact blocks whose union
//     is the carrier. The sequence may be infinite; callers consume a
//     finite prefix and must not materialize the stream.
type Space[P comparable] interface {
	Contains(p P) bool
	Dist(a, b P) float64

	// Dim is the coordinate dimension used by Coords and PointAt.
	Dim() int
	Coords(p P) []float64
	PointAt(coords []float64) (P, error)

	Traits() Traits
	Exhaust() iter.Seq[Block[P]]
}
