// Package topoglue is your toolkit for gluing locally-defined data into a
// single global object — bump coverings, partitions of unity and convex
// blending over abstract metric carriers.
//
// 🚀 What is topoglue?
//
//	A deterministic, generics-based library that brings together:
//		• Carrier abstraction: metric spaces with compact exhaustions (space/)
//		• Bump members: plateau weight functions with bounded support (bump/)
//		• Shrinking refiner: closed refinements of point-finite ball covers (shrink/)
//		• Covering builder: locally finite, subordinate bump coverings (cover/)
//		• Partition of unity: telescoping normalization, Σ = 1 on the domain (unity/)
//		• Blending: convex combination of per-member candidates (blend/)
//
// ✨ Why choose topoglue?
//
//   - Constructive – every covering carries finite witnesses of its
//     invariants (coverage net, multiplicity bound), not just a promise
//   - Deterministic – seed-driven sampling, no time-based randomness
//   - Immutable values – coverings and partitions are built once, never
//     mutated; derivations produce new values
//   - Parallel-friendly – pointwise evaluation is read-only and fans out
//     across workers with no shared state
//
// The pipeline, leaf to root:
//
//	space.Space ──► cover.Build ──► cover.Covering ──► unity.Normalize
//	                     ▲                                    │
//	            bump.Factory (admissible members)             ▼
//	                                           unity.Partition ──► blend.Glue
//
// Quick sketch, on the real line:
//
//	sp := space.NewLine()
//	dom := space.Interval(-2, 2)
//	u := func(x float64) space.Region[float64] { return sp.Ball(x, 1.0) }
//	f := bump.NewSmoothstepFactory(sp.Dist)
//
//	cov, _ := cover.Build(sp, dom, u, f)
//	pt, _ := unity.Normalize(cov)
//	// pt.Sum(x) == 1 for every x in [-2, 2]
//
// Dive into the per-package docs for contracts, complexity notes and the
// invariants each construction certifies.
//
//	go get github.com/topoglue/topoglue
package topoglue
