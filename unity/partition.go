// Package unity partition type and pointwise evaluation.
package unity

import (
	"errors"

	"github.com/topoglue/topoglue/cover"
	"github.com/topoglue/topoglue/space"
)

// ErrNilCovering is the only failure mode of Normalize: a conforming
// covering never fails to normalize.
var ErrNilCovering = errors.New("unity: covering must be non-nil")

// Partition is a partition of unity derived from a bump covering: an
// immutable family of non-negative weight functions summing to exactly
// 1 on the covering's domain and to at most 1 everywhere.
//
// Weights are pure functions of the covering and the index order; the
// partition stores nothing beyond the covering reference and evaluates
// lazily. Concurrent evaluation needs no synchronization.
type Partition[P comparable] struct {
	cov *cover.Covering[P]
}

// Normalize derives the partition of unity of c under the telescoping
// formula. Fails only on a nil covering.
func Normalize[P comparable](c *cover.Covering[P]) (*Partition[P], error) {
	if c == nil {
		return nil, ErrNilCovering
	}

	return &Partition[P]{cov: c}, nil
}

// Covering returns the source covering.
func (pt *Partition[P]) Covering() *cover.Covering[P] { return pt.cov }

// Domain returns the closed set on which the weights sum to exactly 1.
func (pt *Partition[P]) Domain() space.Subset[P] { return pt.cov.Domain() }

// Len returns the number of weight functions (the covering's size).
func (pt *Partition[P]) Len() int { return pt.cov.Len() }

// Weights returns the active indices at p (ascending) and their
// telescoped weights, computed in one fold:
//
//	w_i(p) = b_i(p) · Π_{j<i active} (1 − b_j(p))
//
// Inactive indices carry weight 0 and are omitted. Both slices are
// freshly allocated; callers may keep them.
//
// Complexity: one Active query plus O(|A(p)|) member evaluations.
func (pt *Partition[P]) Weights(p P) ([]int, []float64) {
	active := pt.cov.Active(p)
	if len(active) == 0 {
		return nil, nil
	}

	var (
		weights = make([]float64, len(active))
		carry   = 1.0 // Π (1 − b_j) over the active prefix
		b       float64
	)
	for k, i := range active {
		b = pt.cov.Member(i).Weight(p)
		weights[k] = b * carry
		carry *= 1 - b
	}

	return active, weights
}

// Weight evaluates a single index at p. Zero whenever the member's own
// weight is zero — supports never grow under normalization. i must lie
// in [0, Len()) — like a slice access, anything else is a programmer
// error and panics.
//
// Complexity: as Weights.
func (pt *Partition[P]) Weight(i int, p P) float64 {
	b := pt.cov.Member(i).Weight(p)
	if b == 0 {
		return 0
	}

	carry := 1.0
	for _, j := range pt.cov.Active(p) {
		if j >= i {
			break
		}
		carry *= 1 - pt.cov.Member(j).Weight(p)
	}

	return b * carry
}

// Sum returns Σ_i w_i(p). By the telescoping identity this equals
// 1 − Residual(p): at most 1 everywhere, exactly 1 wherever some member
// evaluates to 1 — in particular on the whole domain.
//
// Complexity: as Weights.
func (pt *Partition[P]) Sum(p P) float64 {
	return 1 - pt.Residual(p)
}

// Residual returns Π_i (1 − b_i(p)), the complement of the telescoped
// sum. Exported because Sum + Residual == 1 is the identity the test
// suite (and any external audit) checks the normalization against.
//
// Complexity: as Weights.
func (pt *Partition[P]) Residual(p P) float64 {
	carry := 1.0
	for _, i := range pt.cov.Active(p) {
		carry *= 1 - pt.cov.Member(i).Weight(p)
		if carry == 0 {
			return 0
		}
	}

	return carry
}
