// Package space defines the ambient carrier abstraction used by the
// covering pipeline: metric point carriers, open/closed regions, compact
// exhaustion blocks and the structural traits (local compactness,
// Hausdorff separation, σ-compactness, normality) the constructions
// consult.
//
// 🚀 What is space?
//
//	The leaf layer of topoglue. Everything above it (shrink, cover,
//	unity, blend) is generic over a point type P and talks to the
//	carrier exclusively through the Space interface:
//	  • Contains / Dist / Dim / Coords / PointAt — metric carrier ops
//	  • Traits — structural hypotheses, asserted by the model
//	  • Exhaust — an increasing stream of compact blocks, each able to
//	    produce a finite sample net
//
// ✨ Key design points:
//
//   - Traits are consulted, never re-derived: a model asserts its own
//     topology, and the builders fail fast when a required trait is
//     absent. WithTraits wraps any space with weaker assertions, which
//     is how the failure paths are exercised.
//   - Exhaust returns a possibly infinite iter.Seq of blocks; callers
//     consume a finite prefix and never materialize the stream.
//   - Ball, RegionFunc and Subset give finitely-describable stand-ins
//     for the open/closed sets of the underlying mathematics.
//
// Two ready-made models ship with the package: Line (ℝ) and Plane (ℝ²).
// Both are locally compact, σ-compact, Hausdorff and normal, with
// symmetric interval/square exhaustions.
//
// See cover.Build for the orchestration that consumes all of this.
package space
