package blend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/topoglue/topoglue/unity"
)

// Candidates is the per-index family of locally valid data: candidate
// i's value at point p. It is consulted only for indices active at p.
type Candidates[P comparable, V any] func(i int, p P) V

// Glue returns the globally defined convex combination
//
//	p ↦ Σ_i w_i(p) · candidates(i, p)
//
// over the finite active set at p. Outside every support the result is
// cmb.Zero().
//
// Guarantee: wherever the weights sum to 1 (the whole domain), the
// result is a convex combination of the active candidates — if all of
// them lie in a convex set, so does the glued value.
//
// Complexity per evaluation: one Weights query plus |A(p)| candidate
// evaluations and combiner operations.
func Glue[P comparable, V any](
	pt *unity.Partition[P],
	candidates Candidates[P, V],
	cmb Combiner[V],
) (func(P) V, error) {
	if pt == nil {
		return nil, ErrNilPartition
	}
	if candidates == nil {
		return nil, ErrNilCandidates
	}
	if cmb == nil {
		return nil, ErrNilCombiner
	}

	return func(p P) V {
		active, weights := pt.Weights(p)
		acc := cmb.Zero()
		for k, i := range active {
			if weights[k] == 0 {
				continue
			}
			acc = cmb.Add(acc, cmb.Scale(weights[k], candidates(i, p)))
		}

		return acc
	}, nil
}

// GlueBatch evaluates the glued function over a batch of points with
// errgroup fan-out — the same read-only parallel regime as
// unity.Partition.Sums. workers ≤ 0 selects GOMAXPROCS; cancellation is
// cooperative between points.
func GlueBatch[P comparable, V any](
	ctx context.Context,
	pt *unity.Partition[P],
	candidates Candidates[P, V],
	cmb Combiner[V],
	pts []P,
	workers int,
) ([]V, error) {
	glue, err := Glue(pt, candidates, cmb)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pts) {
		workers = len(pts)
	}

	out := make([]V, len(pts))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(pts) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(pts) {
			hi = len(pts)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[k] = glue(pts[k])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
