package shrink

import (
	"github.com/topoglue/topoglue/space"
)

// Refine shrinks an open ball cover of a closed set into a strictly
// smaller closed ball family that still covers the set.
//
// Inputs:
//   - probes — a finite net of the closed set S; every coverage claim is
//     witnessed on it. Members of the cover are treated as OPEN balls
//     for coverage purposes (distance strictly below the radius), which
//     is what makes the strict shrink possible.
//   - cover — the indexed family {U_i}; the slice order is the total
//     order of the index set.
//
// Postconditions (on success):
//   - out[i] is a closed ball with out[i].Radius < cover[i].Radius and
//     the same center — V_i ⊆ U_i;
//   - every probe lies in some out[i].
//
// Failure is total: ErrNotShrinkable (normality absent, or some probe
// covered by nothing), ErrNoProbes, ErrBadCover, ErrBadOptions. No
// partial family is ever returned.
//
// Algorithm: one pass in index order. When member i is processed, the
// probes that are neither inside an already-shrunk V_j (j < i) nor
// inside a later original U_k (k > i) have only U_i left — their
// largest distance from the center dictates the shrunk radius, plus the
// configured slack share of what remains. Probes falling inside the new
// V_i are settled and never consulted again; by point-finiteness each
// probe is consulted at most its multiplicity many times.
//
// Complexity: O(|probes|·|cover|) metric evaluations, O(|probes|) extra
// space.
func Refine[P comparable](probes []P, cover []space.Ball[P], opts Options) ([]space.Ball[P], error) {
	if opts.Slack < 0 || opts.Slack >= 1 {
		return nil, ErrBadOptions
	}
	if !opts.Traits.Normal {
		return nil, ErrNotShrinkable
	}

	var i int
	for i = range cover {
		if cover[i].Radius <= 0 {
			return nil, ErrBadCover
		}
	}
	if len(cover) == 0 {
		// Nothing to shrink; coverage is vacuous only for an empty net.
		if len(probes) > 0 {
			return nil, ErrNotShrinkable
		}
		return nil, nil
	}
	if len(probes) == 0 {
		return nil, ErrNoProbes
	}

	// lastHome[p] = the largest index whose open ball contains probe p.
	// A probe not covered at all breaks the precondition immediately.
	var (
		n        = len(cover)
		lastHome = make([]int, len(probes))
		settled  = make([]bool, len(probes))
	)
	var (
		pi   int
		home int
	)
	for pi = range probes {
		home = -1
		for i = n - 1; i >= 0; i-- {
			if cover[i].Dist(probes[pi]) < cover[i].Radius {
				home = i
				break
			}
		}
		if home < 0 {
			return nil, ErrNotShrinkable
		}
		lastHome[pi] = home
	}

	// Ordered shrink pass.
	out := make([]space.Ball[P], n)
	var (
		need float64
		d    float64
	)
	for i = 0; i < n; i++ {
		// Stage 1: the radius the unsettled last-resort probes demand.
		need = 0
		for pi = range probes {
			if settled[pi] || lastHome[pi] != i {
				continue
			}
			if d = cover[i].Dist(probes[pi]); d > need {
				need = d
			}
		}

		// need < Radius holds: every last-resort probe is strictly inside
		// the open ball. The slack share of the remaining room keeps the
		// closed set comfortably away from the boundary.
		out[i] = cover[i].Shrunk(need + opts.Slack*(cover[i].Radius-need))

		// Stage 2: settle every probe the new closed ball captures, not
		// just the last-resort ones — earlier settling means later members
		// shrink harder.
		for pi = range probes {
			if !settled[pi] && out[i].Contains(probes[pi]) {
				settled[pi] = true
			}
		}
	}

	// Postcondition: the shrunk family still covers the net.
	for pi = range probes {
		if !settled[pi] {
			return nil, ErrNotShrinkable
		}
	}

	return out, nil
}
