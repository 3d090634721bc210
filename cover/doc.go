// Package cover builds bump coverings: locally finite, subordinate
// families of bump members whose plateaus cover a closed domain.
//
// 🚀 What is a bump covering?
//
//	An indexed family of bump members (see package bump) over a closed
//	domain S such that:
//	  1. the family is locally finite — every point has a neighborhood
//	     meeting only finitely many supports;
//	  2. every member's center lies in S;
//	  3. every point of S is inside some member's plateau (a member is
//	     identically 1 on a neighborhood of the point);
//	  4. every member's support closure lies inside the prescribed
//	     neighborhood U(center) — subordination.
//
// Build orchestrates the whole construction against the spaces' traits:
//
//	validate ─► exhaust & select ─► shrink ─► instantiate ─► verify
//
// The exhaustion stage walks the carrier's compact blocks in order,
// samples each block's net and keeps exactly the samples not already
// inside an earlier member's plateau — the point-finite sub-covering
// extraction. The shrinking stage delegates to package shrink. The
// instantiation stage asks the bump factory for members and tightens
// their radii toward the shrunk closed sets. The verification stage
// re-checks plateau coverage on the full net and records the support
// multiplicity — finite witnesses, not re-derivations.
//
// A Covering is immutable once built. Point queries go through a
// uniform-grid spatial index keyed by support bounding regions, so
// Active(p) — the finite set of indices with nonzero weight at p — is a
// bucket lookup, not a linear scan.
//
// Coverings serialize to a Descriptor (center coordinates, radii,
// neighborhood refs, YAML on the wire); the weight functions themselves
// are never persisted and are rebuilt through the factory on decode.
package cover
