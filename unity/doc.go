// Package unity derives partitions of unity from bump coverings via the
// order-dependent telescoping normalization.
//
// 🚀 What is the normalization?
//
//	Given a covering with members b_0 < b_1 < … (the index order), the
//	partition weight of index i at a point p is
//
//	  w_i(p) = b_i(p) · Π_{j<i} (1 − b_j(p))
//
//	Only the finite active set A(p) = { i : b_i(p) ≠ 0 } contributes:
//	every other factor is exactly 1. The fold runs over A(p) sorted
//	ascending — an explicit sort-then-fold, never an iteration-order
//	accident.
//
// ✨ The telescoping identity:
//
//	Σ_i w_i(p) = 1 − Π_i (1 − b_i(p))
//
//	which yields every partition invariant at once: weights are
//	non-negative, the sum is at most 1 everywhere, and on the domain —
//	where coverage puts some b_i(p) = 1 — the residual product is 0 and
//	the sum is exactly 1. Supports never grow: w_i(p) = 0 wherever
//	b_i(p) = 0.
//
// A Partition is an immutable view over its covering; weights are pure
// functions of it and are recomputed on demand (persist the covering's
// descriptor, not the weights). Evaluation at distinct points shares no
// state, so Sums fans out across workers with plain slicing — the
// embarrassingly parallel read-only regime.
//
// Given a well-formed covering the normalizer cannot fail; the only
// error is a nil covering. Malformed coverings are a contract violation
// of package cover, not a runtime condition handled here.
package unity
