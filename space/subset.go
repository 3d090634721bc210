package space

// Subset is a described subset of a carrier: a membership indicator, a
// caller-asserted closedness flag and an optional bounding hull.
//
// Closedness is an assertion, not a computation — deciding closedness of
// an arbitrary indicator is not possible, so the pipeline trusts the
// flag and rejects subsets not asserted closed where a closed set is
// required (cover.ErrInvalidDomain).
//
// The hull, when present, bounds the subset: every member point lies in
// the hull ball. Builders use it to derive how many exhaustion stages
// are needed; an unbounded subset forces the caller to supply an
// explicit stage budget.
type Subset[P comparable] struct {
	indicator func(P) bool
	closed    bool
	hull      *Ball[P]
}

// NewClosedSubset describes a subset asserted to be closed in the
// carrier. A nil indicator yields the empty subset.
//
// Complexity: O(1).
func NewClosedSubset[P comparable](indicator func(P) bool) Subset[P] {
	return Subset[P]{indicator: indicator, closed: true}
}

// NewSubset describes a subset with an explicit closedness assertion.
// Use NewClosedSubset for the common case.
func NewSubset[P comparable](indicator func(P) bool, closed bool) Subset[P] {
	return Subset[P]{indicator: indicator, closed: closed}
}

// Empty returns the empty subset: closed, with no hull supplied (Hull
// reports false; builders special-case emptiness before consulting it).
func Empty[P comparable]() Subset[P] {
	return Subset[P]{indicator: nil, closed: true}
}

// WithHull returns a copy of the subset carrying a bounding hull ball.
// The caller asserts containment; the pipeline does not verify it.
func (s Subset[P]) WithHull(hull Ball[P]) Subset[P] {
	s.hull = &hull

	return s
}

// Contains reports membership. The empty subset contains nothing.
// Complexity: one indicator evaluation.
func (s Subset[P]) Contains(p P) bool {
	if s.indicator == nil {
		return false
	}

	return s.indicator(p)
}

// Closed reports the caller's closedness assertion.
func (s Subset[P]) Closed() bool { return s.closed }

// Hull returns the bounding hull and whether one was supplied.
func (s Subset[P]) Hull() (Ball[P], bool) {
	if s.hull == nil {
		return Ball[P]{}, false
	}

	return *s.hull, true
}

// IsEmpty reports whether the subset is the canonical empty subset
// (nil indicator). A non-nil indicator that happens to reject every
// point is not detected — emptiness of arbitrary predicates is not
// decidable and builders treat such subsets like any other.
func (s Subset[P]) IsEmpty() bool { return s.indicator == nil }
