package cover_test

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/cover"
	"github.com/topoglue/topoglue/space"
)

// plateauMember builds a hand-made piecewise-linear bump on the line:
// 1 within plateau, 0 outside radius, linear in between.
func plateauMember(center, radius, plateau float64) bump.Member[float64] {
	d := space.NewLine().Dist

	return bump.Member[float64]{
		Center:  center,
		Radius:  radius,
		Plateau: plateau,
		Eval: func(p float64) float64 {
			dd := d(center, p)
			switch {
			case dd <= plateau:
				return 1
			case dd >= radius:
				return 0
			default:
				return (radius - dd) / (radius - plateau)
			}
		},
	}
}

// TestFromMembers_ActiveMatchesBruteForce cross-checks the spatial
// index against a linear scan on an irregular family.
func TestFromMembers_ActiveMatchesBruteForce(t *testing.T) {
	sp := space.NewLine()
	members := []bump.Member[float64]{
		plateauMember(-2, 1.5, 0.5),
		plateauMember(0, 0.8, 0.4),
		plateauMember(0.5, 2.0, 1.0),
		plateauMember(3, 0.3, 0.1),
	}
	cov, err := cover.FromMembers(sp, space.Interval(-3, 4), members)
	require.NoError(t, err)

	for x := -4.0; x <= 5.0; x += 0.05 {
		var want []int
		for i := range members {
			if sp.Dist(members[i].Center, x) < members[i].Radius {
				want = append(want, i)
			}
		}
		got := cov.Active(x)
		assert.Equal(t, want, got, "active set at %v", x)
		assert.IsIncreasing(t, got, "active set must be ascending")
	}
}

// TestFromMembers_CoversAndMultiplicity checks the plateau-coverage
// query and the local-finiteness witness.
func TestFromMembers_CoversAndMultiplicity(t *testing.T) {
	members := []bump.Member[float64]{
		plateauMember(-1, 1.5, 1.0),
		plateauMember(1, 1.5, 1.0),
	}
	cov, err := cover.FromMembers(space.NewLine(), space.Interval(-2, 2), members)
	require.NoError(t, err)

	assert.True(t, cov.Covers(0), "0 is inside both plateaus")
	assert.True(t, cov.Covers(-1.9))
	assert.False(t, cov.Covers(2.1), "outside every plateau")
	assert.False(t, cov.Covers(-2.0), "plateau boundary is not a neighborhood")

	probes := []float64{-2, -1, 0, 1, 2, 5}
	assert.Equal(t, 2, cov.MaxMultiplicity(probes), "both supports meet 0")
	assert.Equal(t, 0, cov.MaxMultiplicity([]float64{9}))
}

// TestFromMembers_MembersIterationAndAccessors covers the plain
// accessors and the iterator order.
func TestFromMembers_MembersIterationAndAccessors(t *testing.T) {
	members := []bump.Member[float64]{
		plateauMember(0, 1, 0.5),
		plateauMember(2, 1, 0.5),
	}
	dom := space.Interval(-1, 3)
	cov, err := cover.FromMembers(space.NewLine(), dom, members)
	require.NoError(t, err)

	assert.Equal(t, 2, cov.Len())
	assert.Equal(t, 0.0, cov.Member(0).Center)
	assert.True(t, cov.Domain().Contains(3))

	var order []int
	for i, m := range cov.Members() {
		order = append(order, i)
		assert.Equal(t, members[i].Center, m.Center)
	}
	assert.Equal(t, []int{0, 1}, order, "iteration follows the index order")
}

// stretchedLine is a carrier whose metric doubles the coordinate gap.
// It honors the Space contract (per-axis coordinate differences stay
// below Dist), but with room to spare: a metric support radius
// over-estimates the coordinate extent by a factor of two, so members
// land in more index cells than they geometrically need. Queries must
// stay exact regardless.
type stretchedLine struct{}

func (stretchedLine) Contains(p float64) bool    { return !math.IsNaN(p) }
func (stretchedLine) Dist(a, b float64) float64  { return 2 * math.Abs(a-b) }
func (stretchedLine) Dim() int                   { return 1 }
func (stretchedLine) Coords(p float64) []float64 { return []float64{p} }
func (stretchedLine) PointAt(c []float64) (float64, error) {
	if len(c) != 1 {
		return 0, space.ErrBadCoords
	}

	return c[0], nil
}
func (stretchedLine) Traits() space.Traits { return space.AllTraits() }
func (stretchedLine) Exhaust() iter.Seq[space.Block[float64]] {
	return space.NewLine().Exhaust()
}

// stretchedBump is a hand-made member under the doubled metric: 1
// within plateau, 0 outside radius, both measured by stretchedLine.Dist.
func stretchedBump(center, radius, plateau float64) bump.Member[float64] {
	d := stretchedLine{}.Dist

	return bump.Member[float64]{
		Center:  center,
		Radius:  radius,
		Plateau: plateau,
		Eval: func(p float64) float64 {
			dd := d(center, p)
			switch {
			case dd <= plateau:
				return 1
			case dd >= radius:
				return 0
			default:
				return (radius - dd) / (radius - plateau)
			}
		},
	}
}

// TestFromMembers_MetricDominatesCoordinates pins the index down on a
// carrier where metric and coordinate scales disagree: every point a
// member is identically 1 at must be reported active and covered, and
// the whole active set must match a brute-force metric scan.
func TestFromMembers_MetricDominatesCoordinates(t *testing.T) {
	sp := stretchedLine{}
	members := []bump.Member[float64]{
		stretchedBump(-1.5, 1, 0.9), // support |x+1.5| < 0.5 in coordinates
		stretchedBump(0, 1, 0.9),
		stretchedBump(1.2, 1, 0.9),
	}
	dom := space.NewClosedSubset(func(x float64) bool { return x >= -2 && x <= 1.7 })
	cov, err := cover.FromMembers[float64](sp, dom, members)
	require.NoError(t, err)

	// p sits well inside member 0's plateau in the metric (d = 2·0.4 =
	// 0.8) although its coordinate gap of 0.4 looks like nearly half the
	// coordinate support.
	p := -1.1
	require.Equal(t, 1.0, members[0].Weight(p))
	assert.Equal(t, []int{0}, cov.Active(p))
	assert.True(t, cov.Covers(p))

	for i := -44; i <= 40; i++ {
		x := float64(i) * 0.05
		var want []int
		for j := range members {
			if sp.Dist(members[j].Center, x) < members[j].Radius {
				want = append(want, j)
			}
		}
		assert.Equal(t, want, cov.Active(x), "active set at %v", x)
	}
}

// TestFromMembers_Errors walks the adoption gate.
func TestFromMembers_Errors(t *testing.T) {
	sp := space.NewLine()
	good := []bump.Member[float64]{plateauMember(0, 1, 0.5)}

	_, err := cover.FromMembers[float64](nil, space.Interval(0, 1), good)
	assert.ErrorIs(t, err, cover.ErrNilSpace)

	open := space.NewSubset(func(x float64) bool { return x > 0 && x < 1 }, false)
	_, err = cover.FromMembers(sp, open, good)
	assert.ErrorIs(t, err, cover.ErrInvalidDomain)

	bad := []bump.Member[float64]{{Center: 0, Radius: 1, Plateau: 0.5, Eval: nil}}
	_, err = cover.FromMembers(sp, space.Interval(0, 1), bad)
	assert.ErrorIs(t, err, bump.ErrBadMember)

	// The trivial covering: no members, empty domain.
	cov, err := cover.FromMembers(sp, space.Empty[float64](), nil)
	require.NoError(t, err)
	assert.Zero(t, cov.Len())
	assert.Nil(t, cov.Active(0))
	assert.False(t, cov.Covers(0))
}
