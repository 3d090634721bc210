package unity

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sums evaluates Σ_i w_i over a batch of points, fanning out across
// workers. Evaluation is read-only over the immutable covering, so
// workers share nothing and the fan-out is plain index slicing.
//
// workers ≤ 0 selects GOMAXPROCS. Cancellation is cooperative: each
// worker checks the context between points and the first failure wins
// (there are no evaluation failures, so in practice only context errors
// surface).
//
// Complexity: O(len(pts)) Sum evaluations spread over the workers.
func (pt *Partition[P]) Sums(ctx context.Context, pts []P, workers int) ([]float64, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pts) {
		workers = len(pts)
	}

	out := make([]float64, len(pts))
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
				out[k] = pt.Sum(pts[k])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
