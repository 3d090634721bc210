// Package blend combiner contract, shipped combiners and sentinels.
package blend

import "errors"

// Sentinel errors for blending.
var (
	// ErrNilPartition indicates a nil partition of unity.
	ErrNilPartition = errors.New("blend: partition must be non-nil")

	// ErrNilCandidates indicates a nil candidate family.
	ErrNilCandidates = errors.New("blend: candidate family must be non-nil")

	// ErrNilCombiner indicates a nil value combiner.
	ErrNilCombiner = errors.New("blend: combiner must be non-nil")
)

// Combiner supplies the linear structure of the value type: the zero
// value, addition and scalar multiplication. It must behave like a
// module over the reals on the values actually blended — the convexity
// guarantee is only as good as this arithmetic.
type Combiner[V any] interface {
	Zero() V
	Add(a, b V) V
	Scale(w float64, v V) V
}

// Reals is the Combiner of scalar float64 values.
type Reals struct{}

// Zero returns 0.
func (Reals) Zero() float64 { return 0 }

// Add returns a + b.
func (Reals) Add(a, b float64) float64 { return a + b }

// Scale returns w · v.
func (Reals) Scale(w float64, v float64) float64 { return w * v }

// Vectors is the Combiner of []float64 values of a fixed dimension.
// All candidates blended together must share the dimension; Add adopts
// the longer slice's length, padding the shorter with zeros, so a
// mismatch degrades predictably instead of panicking.
type Vectors struct{}

// Zero returns the empty vector (a zero of every dimension).
func (Vectors) Zero() []float64 { return nil }

// Add returns the componentwise sum.
func (Vectors) Add(a, b []float64) []float64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make([]float64, len(a))
	copy(out, a)
	for i := range b {
		out[i] += b[i]
	}

	return out
}

// Scale returns the componentwise product with w.
func (Vectors) Scale(w float64, v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = w * v[i]
	}

	return out
}
