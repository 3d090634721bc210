// Package bump defines the weight-function members of a covering and the
// admissibility interface through which they are produced.
//
// 🚀 What is a bump member?
//
//	A function equal to 1 at a designated center, identically 1 on a
//	closed plateau ball around it, falling off to exactly 0 at the
//	support radius, and 0 everywhere beyond. Members are the bricks a
//	covering is assembled from:
//
//	  1 ┤      ┌────────┐
//	    │     /          \
//	    │    /            \
//	  0 ┤───┘              └───────
//	        ─ plateau ─
//	        ───── support ─────
//
// "Admissibility" (smoothness class, differentiability) is opaque by
// design: callers that care supply their own Factory, and the pipeline
// only relies on the Member contract — Eval(Center)=1, range ⊆ [0,1],
// Eval ≡ 1 within Plateau, Eval ≡ 0 outside Radius.
//
// ✨ Shipped adapter:
//
//	SmoothstepFactory builds members over any metric with a cubic
//	smoothstep falloff (3t²−2t³) between plateau and support — C¹,
//	deterministic, allocation-free per evaluation.
//
// The factory's Clearance method is the radius-existence query of the
// covering builder: it reports how much room a prescribed neighborhood
// leaves around a center, and fails with ErrDegenerateNeighborhood when
// there is none.
package bump
