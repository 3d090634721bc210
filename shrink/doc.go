// Package shrink implements the shrinking refiner: given a point-finite
// open ball cover of a closed set, it produces a strictly smaller closed
// ball family, each ball inside its original, that still covers the set.
//
// 🚀 What is shrinking?
//
//	The constructive half of the shrinking lemma. An open cover is
//	usually "too big": supports built from it may spill over and local
//	finiteness arguments need closed sets strictly inside the open
//	originals. Refine walks the family once, in index order, and for
//	each member keeps exactly as much radius as the points that have
//	nowhere else to go require — plus a configurable share of the slack.
//
// Coverage is witnessed on a finite probe net of the closed set: a
// probe is "kept" by member i when no earlier shrunk ball and no later
// original ball contains it. By point-finiteness every probe is settled
// after finitely many members, which is why one ordered pass suffices.
//
// ✨ Guarantees (postconditions of Refine):
//
//   - out[i].Center == cover[i].Center and out[i].Radius < cover[i].Radius:
//     each closed V_i sits strictly inside its open U_i;
//   - every probe of the net lies in some out[i];
//   - the family stays point-finite — shrinking never adds overlap.
//
// The refiner consults the carrier's Normal trait and refuses to run
// without it (ErrNotShrinkable): the lemma does not hold in non-normal
// spaces, and a cover whose probes cannot be re-covered is reported the
// same way.
package shrink
