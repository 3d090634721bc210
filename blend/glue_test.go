package blend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topoglue/topoglue/blend"
	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/cover"
	"github.com/topoglue/topoglue/space"
	"github.com/topoglue/topoglue/unity"
)

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

func twoBumpPartition(t *testing.T) *unity.Partition[float64] {
	t.Helper()
	cov, err := cover.FromMembers(space.NewLine(), space.Interval(-1, 2), []bump.Member[float64]{
		linearBump(0, 1.0, 0.4),
		linearBump(1, 1.0, 0.4),
	})
	require.NoError(t, err)
	pt, err := unity.Normalize(cov)
	require.NoError(t, err)

	return pt
}

// TestGlue_ConvexCombinationOfConstants: constant candidates 0 and 1
// glue to a value pinned between them wherever the weights are total,
// and to the pure candidate on each plateau.
func TestGlue_ConvexCombinationOfConstants(t *testing.T) {
	pt := twoBumpPartition(t)
	consts := func(i int, p float64) float64 { return float64(i) }

	glued, err := blend.Glue[float64, float64](pt, consts, blend.Reals{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, glued(0), "member 0's plateau selects candidate 0")
	assert.Equal(t, 1.0, glued(1), "member 1's plateau selects candidate 1")

	for i := 0; i <= 20; i++ {
		p := float64(i) * 0.05 // the [0, 1] overlap region
		v := glued(p)
		assert.GreaterOrEqual(t, v, 0.0, "at %v", p)
		assert.LessOrEqual(t, v, 1.0, "at %v", p)
	}

	// Far from every support the blend is the combiner's zero.
	assert.Equal(t, 0.0, glued(50))
}

// TestGlue_ReproducesSharedFunction: when every candidate agrees with
// one global function, gluing reproduces it exactly wherever the
// weights sum to 1.
func TestGlue_ReproducesSharedFunction(t *testing.T) {
	pt := twoBumpPartition(t)
	shared := func(i int, p float64) float64 { return 3*p - 1 }

	glued, err := blend.Glue[float64, float64](pt, shared, blend.Reals{})
	require.NoError(t, err)

	for i := -8; i <= 28; i++ {
		p := float64(i) * 0.05
		if pt.Sum(p) != 1.0 {
			continue
		}
		assert.InDelta(t, 3*p-1, glued(p), 1e-12, "at %v", p)
	}
}

// TestGlue_KnownWeights pins an exact midpoint value: at p=0.5 both
// linear bumps evaluate to 5/6, so w0=5/6, w1=(5/6)·(1/6).
func TestGlue_KnownWeights(t *testing.T) {
	pt := twoBumpPartition(t)

	idx, w := pt.Weights(0.5)
	require.Equal(t, []int{0, 1}, idx)
	b := (1.0 - 0.5) / 0.6 // both members' profile value at 0.5
	assert.InDelta(t, b, w[0], 1e-12)
	assert.InDelta(t, b*(1-b), w[1], 1e-12)

	glued, err := blend.Glue[float64, float64](pt, func(i int, p float64) float64 { return float64(i) }, blend.Reals{})
	require.NoError(t, err)
	assert.InDelta(t, b*(1-b), glued(0.5), 1e-12, "only candidate 1 contributes its index")
}

// TestGlue_VectorCandidates blends vector-valued data componentwise.
func TestGlue_VectorCandidates(t *testing.T) {
	pt := twoBumpPartition(t)
	frames := func(i int, p float64) []float64 {
		if i == 0 {
			return []float64{1, 0}
		}

		return []float64{0, 1}
	}

	glued, err := blend.Glue[float64, []float64](pt, frames, blend.Vectors{})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, glued(0))
	assert.Equal(t, []float64{0, 1}, glued(1))

	mid := glued(0.5)
	require.Len(t, mid, 2)
	assert.InDelta(t, pt.Sum(0.5), mid[0]+mid[1], 1e-12, "components carry exactly the total weight")
	assert.Greater(t, mid[0], 0.0)
	assert.Greater(t, mid[1], 0.0)

	assert.Nil(t, glued(50), "outside every support: the Vectors zero")
}

// TestGlue_NilArguments.
func TestGlue_NilArguments(t *testing.T) {
	pt := twoBumpPartition(t)
	cand := func(i int, p float64) float64 { return 0 }

	_, err := blend.Glue[float64, float64](nil, cand, blend.Reals{})
	assert.ErrorIs(t, err, blend.ErrNilPartition)

	_, err = blend.Glue[float64, float64](pt, nil, blend.Reals{})
	assert.ErrorIs(t, err, blend.ErrNilCandidates)

	_, err = blend.Glue[float64, float64](pt, cand, nil)
	assert.ErrorIs(t, err, blend.ErrNilCombiner)
}

// TestGlueBatch_MatchesPointwise: the batch path is the pointwise path
// over a sliced index range.
func TestGlueBatch_MatchesPointwise(t *testing.T) {
	pt := twoBumpPartition(t)
	cand := func(i int, p float64) float64 { return float64(i) + p }

	glued, err := blend.Glue[float64, float64](pt, cand, blend.Reals{})
	require.NoError(t, err)

	var pts []float64
	for i := -20; i <= 40; i++ {
		pts = append(pts, float64(i)*0.05)
	}
	want := make([]float64, len(pts))
	for k, p := range pts {
		want[k] = glued(p)
	}

	for _, workers := range []int{0, 1, 3, len(pts)} {
		got, err := blend.GlueBatch[float64, float64](context.Background(), pt, cand, blend.Reals{}, pts, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}

	got, err := blend.GlueBatch[float64, float64](context.Background(), pt, cand, blend.Reals{}, nil, 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = blend.GlueBatch[float64, float64](ctx, pt, cand, blend.Reals{}, pts, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
