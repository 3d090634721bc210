package space

import (
	"iter"
	"math"
)

// Line is the real line ℝ with the absolute-value metric: the simplest
// shipped carrier, locally compact, σ-compact, Hausdorff and normal.
// Its exhaustion is the increasing family of closed intervals [−k, k].
type Line struct{}

// NewLine returns the real-line carrier.
func NewLine() *Line { return &Line{} }

// Contains always reports true: every float64 is a point of the line.
// NaN is not a point; it is rejected so that malformed inputs fail the
// membership gate instead of poisoning downstream arithmetic.
func (*Line) Contains(p float64) bool { return !math.IsNaN(p) }

// Dist is the absolute-value metric.
// Complexity: O(1).
func (*Line) Dist(a, b float64) float64 { return math.Abs(a - b) }

// Dim returns 1.
func (*Line) Dim() int { return 1 }

// Coords returns the single-coordinate representation of p.
func (*Line) Coords(p float64) []float64 { return []float64{p} }

// PointAt is the inverse of Coords. Returns ErrBadCoords unless exactly
// one coordinate is supplied.
func (*Line) PointAt(coords []float64) (float64, error) {
	if len(coords) != 1 {
		return 0, ErrBadCoords
	}

	return coords[0], nil
}

// Traits asserts the full trait set: ℝ satisfies every structural
// hypothesis the covering pipeline consults.
func (*Line) Traits() Traits { return AllTraits() }

// Exhaust yields the intervals [−1,1] ⊂ [−2,2] ⊂ … without end; consume
// a finite prefix.
func (l *Line) Exhaust() iter.Seq[Block[float64]] {
	return func(yield func(Block[float64]) bool) {
		for k := 1; ; k++ {
			if !yield(lineBlock{lo: -float64(k), hi: float64(k)}) {
				return
			}
		}
	}
}

// Ball returns the closed interval [c−r, c+r] as a ball of the line.
func (l *Line) Ball(c, r float64) Ball[float64] {
	return NewBall(l.Dist, c, r)
}

// Interval returns the closed interval [lo, hi] as a Subset of the
// line, with its natural bounding hull. An inverted interval (hi < lo)
// yields the empty subset.
func Interval(lo, hi float64) Subset[float64] {
	if hi < lo {
		return Empty[float64]()
	}
	mid := (lo + hi) / 2
	s := NewClosedSubset(func(p float64) bool { return p >= lo && p <= hi })

	return s.WithHull(NewBall((&Line{}).Dist, mid, (hi-lo)/2))
}

// lineBlock is the compact interval [lo, hi].
type lineBlock struct {
	lo, hi float64
}

func (b lineBlock) Contains(p float64) bool { return p >= b.lo && p <= b.hi }

// Net returns lo, lo+step, …, hi. The right endpoint is always included
// so the net genuinely witnesses the whole block.
// Complexity: O((hi−lo)/step).
func (b lineBlock) Net(step float64) []float64 {
	if step <= 0 {
		return nil
	}
	n := int(math.Ceil((b.hi - b.lo) / step))
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := b.lo + float64(i)*step
		if x >= b.hi {
			break
		}
		out = append(out, x)
	}

	return append(out, b.hi)
}
