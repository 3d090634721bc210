package cover

import (
	"math"

	"github.com/topoglue/topoglue/bump"
)

// gridIndex is a uniform-grid spatial index over member support balls.
// Each member is registered in every cell its coordinate bounding box
// overlaps; a point query inspects the single cell containing the point
// and re-checks candidates against the metric. This keeps Active(p) a
// bucket lookup instead of a linear scan over the family.
//
// The cell size is the largest support radius, so a support ball can
// overlap at most 2^dim cells per axis step and any support containing
// p necessarily overlaps p's cell. Treating a metric radius as a
// coordinate extent is sound because space.Space requires per-axis
// coordinate differences to be bounded by Dist: a point within metric
// radius r of a center is within r of it along every axis.
type gridIndex[P comparable] struct {
	cell    float64
	dim     int
	coords  func(P) []float64
	buckets map[uint64][]int
}

// newGridIndex registers all members. An empty family yields an index
// that answers every query with nil.
//
// Complexity: O(Σ_i cells(i)) insertion, where cells(i) is the bounded
// number of grid cells member i's bounding box overlaps.
func newGridIndex[P comparable](dim int, coords func(P) []float64, members []bump.Member[P]) *gridIndex[P] {
	g := &gridIndex[P]{dim: dim, coords: coords, buckets: make(map[uint64][]int)}
	if len(members) == 0 {
		return g
	}

	var maxR float64
	for i := range members {
		if members[i].Radius > maxR {
			maxR = members[i].Radius
		}
	}
	if maxR <= 0 {
		return g
	}
	g.cell = maxR

	var (
		lo   = make([]int, dim)
		hi   = make([]int, dim)
		cur  = make([]int, dim)
		axis int
	)
	for i := range members {
		c := coords(members[i].Center)
		for axis = 0; axis < dim; axis++ {
			lo[axis] = g.cellOf(c[axis] - members[i].Radius)
			hi[axis] = g.cellOf(c[axis] + members[i].Radius)
		}

		// Odometer walk over the cell box [lo, hi] in every axis.
		copy(cur, lo)
		for {
			key := foldCell(cur)
			g.buckets[key] = append(g.buckets[key], i)

			axis = 0
			for axis < dim {
				cur[axis]++
				if cur[axis] <= hi[axis] {
					break
				}
				cur[axis] = lo[axis]
				axis++
			}
			if axis == dim {
				break
			}
		}
	}

	return g
}

// cellOf maps a coordinate to its integer cell index.
func (g *gridIndex[P]) cellOf(x float64) int {
	return int(math.Floor(x / g.cell))
}

// candidates returns the member ids registered in p's cell, in
// ascending id order (insertion preserves it). The caller filters by
// the actual metric; a candidate is a may-overlap hint, nothing more.
//
// Complexity: O(1) expected plus the bucket length.
func (g *gridIndex[P]) candidates(p P) []int {
	if g.cell <= 0 {
		return nil
	}
	c := g.coords(p)
	cells := make([]int, g.dim)
	for axis := 0; axis < g.dim; axis++ {
		cells[axis] = g.cellOf(c[axis])
	}

	return g.buckets[foldCell(cells)]
}
