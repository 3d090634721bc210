// Package blend glues per-member candidate data into one globally
// defined function by convex combination against a partition of unity.
//
// 🚀 What is blending?
//
//	Each member of a covering brings its own locally valid candidate —
//	a value, a vector, a locally defined function. Blending combines
//	them without ever case-splitting on which member "owns" a point:
//
//	  glue(p) = Σ_i w_i(p) · candidate_i(p)
//
//	summed over the finite active set at p.
//
// ✨ The convexity guarantee:
//
//	Wherever the partition weights sum to 1 — everywhere on the domain —
//	the glued value is a convex combination of the active candidates.
//	If every active candidate at p lies in a convex target set, so does
//	glue(p). This is the whole point: local validity plus partition
//	invariants equals global validity, with no further argument.
//
// Value arithmetic goes through the Combiner interface; Reals and
// Vectors cover the common cases, and any module-like type (affine
// parameters, matrices, interpolation tables) slots in the same way.
//
// Like every evaluation in this library, blending is read-only over
// immutable inputs: GlueBatch fans out across workers with no shared
// state.
package blend
