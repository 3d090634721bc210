package unity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/cover"
	"github.com/topoglue/topoglue/space"
	"github.com/topoglue/topoglue/unity"
)

// linearBump is a hand-made piecewise-linear member: 1 within plateau,
// 0 outside radius, linear in between. Cheap to reason about exactly.
func linearBump(center, radius, plateau float64) bump.Member[float64] {
	return bump.Member[float64]{
		Center:  center,
		Radius:  radius,
		Plateau: plateau,
		Eval: func(p float64) float64 {
			d := space.NewLine().Dist(center, p)
			switch {
			case d <= plateau:
				return 1
			case d >= radius:
				return 0
			default:
				return (radius - d) / (radius - plateau)
			}
		},
	}
}

func mustPartition(t *testing.T, members []bump.Member[float64], lo, hi float64) *unity.Partition[float64] {
	t.Helper()
	cov, err := cover.FromMembers(space.NewLine(), space.Interval(lo, hi), members)
	require.NoError(t, err)
	pt, err := unity.Normalize(cov)
	require.NoError(t, err)

	return pt
}

// TestNormalize_NilCovering is the only failure mode.
func TestNormalize_NilCovering(t *testing.T) {
	_, err := unity.Normalize[float64](nil)
	assert.ErrorIs(t, err, unity.ErrNilCovering)
}

// TestPartition_TelescopingIdentity: Σ w_i == 1 − Π (1 − b_i) at every
// probe, and the weights are a sub-probability vector everywhere.
func TestPartition_TelescopingIdentity(t *testing.T) {
	pt := mustPartition(t, []bump.Member[float64]{
		linearBump(-1, 1.2, 0.5),
		linearBump(0, 1.0, 0.4),
		linearBump(0.8, 1.5, 0.6),
	}, -2, 2)

	for i := -60; i <= 60; i++ {
		p := float64(i) * 0.05
		_, weights := pt.Weights(p)

		var sum float64
		for _, w := range weights {
			assert.GreaterOrEqual(t, w, 0.0, "weight must be non-negative at %v", p)
			sum += w
		}
		assert.InDelta(t, pt.Sum(p), sum, 1e-12, "fold and identity disagree at %v", p)
		assert.InDelta(t, 1-pt.Residual(p), pt.Sum(p), 0, "Sum is defined as the complement")
		assert.LessOrEqual(t, sum, 1.0+1e-12, "weights must never exceed 1 at %v", p)
	}
}

// TestPartition_ExactOnPlateaus: wherever some member evaluates to
// exactly 1 the sum is exactly 1.0 — no tolerance.
func TestPartition_ExactOnPlateaus(t *testing.T) {
	pt := mustPartition(t, []bump.Member[float64]{
		linearBump(-0.5, 1.0, 0.6),
		linearBump(0.5, 1.0, 0.6),
	}, -1, 1)

	for _, p := range []float64{-0.9, -0.5, -0.1, 0, 0.1, 0.5, 0.9} {
		assert.Equal(t, 1.0, pt.Sum(p), "a plateau point sums to exactly 1, p=%v", p)
		assert.Equal(t, 0.0, pt.Residual(p))
	}
}

// TestPartition_EarlierIndexAbsorbs: where an earlier member's plateau
// holds, every later weight vanishes — the telescoping order resolves
// plateau overlap in favor of the lower index.
func TestPartition_EarlierIndexAbsorbs(t *testing.T) {
	pt := mustPartition(t, []bump.Member[float64]{
		linearBump(0, 1.0, 0.5),
		linearBump(0.2, 1.0, 0.5), // plateau overlaps member 0's
	}, -1, 1.2)

	// 0.3 lies inside both plateaus.
	assert.Equal(t, 1.0, pt.Weight(0, 0.3))
	assert.Equal(t, 0.0, pt.Weight(1, 0.3))

	idx, w := pt.Weights(0.3)
	assert.Equal(t, []int{0, 1}, idx, "member 1 is active, just weightless")
	assert.Equal(t, []float64{1, 0}, w)
}

// TestPartition_SupportContainment: normalization never grows a
// support; w_i is zero wherever b_i is.
func TestPartition_SupportContainment(t *testing.T) {
	pt := mustPartition(t, []bump.Member[float64]{
		linearBump(0, 0.5, 0.25),
		linearBump(1, 0.5, 0.25),
	}, -0.5, 1.5)

	assert.Equal(t, 0.0, pt.Weight(0, 0.7), "outside member 0's support")
	assert.Greater(t, pt.Weight(1, 0.7), 0.0)
	assert.Equal(t, 0.0, pt.Sum(3.0), "far from every support the sum is exactly 0")

	idx, _ := pt.Weights(3.0)
	assert.Nil(t, idx)
}

// TestPartition_SingleMember: one bump normalizes to itself.
func TestPartition_SingleMember(t *testing.T) {
	m := linearBump(0, 1.0, 0.4)
	pt := mustPartition(t, []bump.Member[float64]{m}, -0.4, 0.4)

	for i := -12; i <= 12; i++ {
		p := float64(i) * 0.1
		assert.Equal(t, m.Weight(p), pt.Weight(0, p), "w_0 == b_0 at %v", p)
	}
	assert.Equal(t, 1, pt.Len())
	assert.True(t, pt.Domain().Contains(0.4))
}

// TestPartition_BuiltCoveringSumsToOneOnDomain runs the full pipeline
// and checks the partition axioms over the built family.
func TestPartition_BuiltCoveringSumsToOneOnDomain(t *testing.T) {
	sp := space.NewLine()
	dom := space.Interval(-2, 2)
	u := func(x float64) space.Region[float64] { return sp.Ball(x, 1.0) }

	cov, err := cover.Build[float64](sp, dom, u, bump.NewSmoothstepFactory(sp.Dist))
	require.NoError(t, err)
	pt, err := unity.Normalize(cov)
	require.NoError(t, err)

	for i := -16; i <= 16; i++ {
		p := float64(i) * 0.125
		assert.Equal(t, 1.0, pt.Sum(p), "domain point %v", p)
	}
	assert.Equal(t, 0.0, pt.Sum(10.0))
	assert.Same(t, cov, pt.Covering())
}
