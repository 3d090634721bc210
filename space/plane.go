package space

import (
	"iter"
	"math"
)

// Vec2 is a point of the plane. A fixed-size array keeps the type
// comparable, which every indexed structure in the pipeline relies on.
type Vec2 = [2]float64

// Plane is ℝ² with the Euclidean metric. Its exhaustion is the
// increasing family of closed squares [−k, k]².
type Plane struct{}

// NewPlane returns the Euclidean-plane carrier.
func NewPlane() *Plane { return &Plane{} }

// Contains rejects NaN coordinates, accepts everything else.
func (*Plane) Contains(p Vec2) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1])
}

// Dist is the Euclidean metric.
// Complexity: O(1).
func (*Plane) Dist(a, b Vec2) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// Dim returns 2.
func (*Plane) Dim() int { return 2 }

// Coords returns the coordinate pair of p.
func (*Plane) Coords(p Vec2) []float64 { return []float64{p[0], p[1]} }

// PointAt is the inverse of Coords. Returns ErrBadCoords unless exactly
// two coordinates are supplied.
func (*Plane) PointAt(coords []float64) (Vec2, error) {
	if len(coords) != 2 {
		return Vec2{}, ErrBadCoords
	}

	return Vec2{coords[0], coords[1]}, nil
}

// Traits asserts the full trait set.
func (*Plane) Traits() Traits { return AllTraits() }

// Exhaust yields the squares [−1,1]² ⊂ [−2,2]² ⊂ … without end; consume
// a finite prefix.
func (pl *Plane) Exhaust() iter.Seq[Block[Vec2]] {
	return func(yield func(Block[Vec2]) bool) {
		for k := 1; ; k++ {
			if !yield(squareBlock{half: float64(k)}) {
				return
			}
		}
	}
}

// Ball returns the closed Euclidean disk of radius r around c.
func (pl *Plane) Ball(c Vec2, r float64) Ball[Vec2] {
	return NewBall(pl.Dist, c, r)
}

// ClosedDisk returns the closed disk of radius r around c as a Subset
// of the plane, with itself as the bounding hull. Negative radii yield
// the empty subset.
func ClosedDisk(c Vec2, r float64) Subset[Vec2] {
	if r < 0 {
		return Empty[Vec2]()
	}
	d := (&Plane{}).Dist
	s := NewClosedSubset(func(p Vec2) bool { return d(c, p) <= r })

	return s.WithHull(NewBall(d, c, r))
}

// squareBlock is the compact square [−half, half]².
type squareBlock struct {
	half float64
}

func (b squareBlock) Contains(p Vec2) bool {
	return p[0] >= -b.half && p[0] <= b.half && p[1] >= -b.half && p[1] <= b.half
}

// Net returns a grid with spacing ≤ step covering the square, both
// boundary rows/columns included.
// Complexity: O((2·half/step)²).
func (b squareBlock) Net(step float64) []Vec2 {
	if step <= 0 {
		return nil
	}
	axis := lineBlock{lo: -b.half, hi: b.half}.Net(step)
	out := make([]Vec2, 0, len(axis)*len(axis))
	for _, y := range axis {
		for _, x := range axis {
			out = append(out, Vec2{x, y})
		}
	}

	return out
}
