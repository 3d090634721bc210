// Package cover sentinel errors, options and documented defaults.
//
// Design principles (module-wide):
//   - Strict sentinels: callers branch on errors.Is, never on messages.
//   - Panic only in option constructors (programmer error), never on
//     user input.
//   - Deterministic: seed==0 means the fixed default stream; no
//     time-based randomness anywhere.
package cover

import (
	"errors"

	"github.com/topoglue/topoglue/space"
)

// Sentinel errors for covering construction.
var (
	// ErrInvalidDomain indicates the domain subset is not asserted
	// closed. Rejected before any work begins.
	ErrInvalidDomain = errors.New("cover: domain must be a closed subset of the carrier")

	// ErrNoCoveringPossible indicates the carrier lacks local
	// compactness, σ-compactness or Hausdorff separation — the
	// structural hypotheses behind a locally finite construction.
	ErrNoCoveringPossible = errors.New("cover: carrier traits do not admit a locally finite covering")

	// ErrUnboundedDomain indicates a domain without a bounding hull and
	// no explicit stage budget: the exhaustion prefix to materialize
	// cannot be derived.
	ErrUnboundedDomain = errors.New("cover: unbounded domain requires an explicit stage budget")

	// ErrNetTooCoarse indicates a non-empty domain that neither the
	// hull anchors nor the witness net managed to sample, so coverage
	// cannot be certified. Refine WithNetStep (or supply a domain with
	// a bounding hull) and rebuild.
	ErrNetTooCoarse = errors.New("cover: witness net produced no domain sample; refine the net step")

	// ErrNilSpace indicates a nil carrier handle.
	ErrNilSpace = errors.New("cover: carrier must be non-nil")

	// ErrNilAssignment indicates a nil neighborhood assignment.
	ErrNilAssignment = errors.New("cover: neighborhood assignment must be non-nil")

	// ErrNilFactory indicates a nil bump factory.
	ErrNilFactory = errors.New("cover: bump factory must be non-nil")

	// ErrPostcondition indicates the constructed family failed its own
	// verification stage (plateau coverage of the net). A conforming
	// factory and assignment never trigger it.
	ErrPostcondition = errors.New("cover: construction failed its coverage postcondition")

	// ErrBadDescriptor indicates a descriptor that cannot be
	// reconstructed: wrong coordinate arity, non-positive radius, or a
	// recorded radius the factory cannot reach under the current
	// assignment.
	ErrBadDescriptor = errors.New("cover: descriptor does not reconstruct under this space/assignment/factory")
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultNetStep is the sampling step of exhaustion-block nets.
	// Smaller steps certify coverage on a finer witness net at a
	// quadratic (per dimension) sampling cost.
	DefaultNetStep = 0.25

	// DefaultSelectShare is the plateau share used by the selection
	// stage: a sample inside selectShare·plateau of an existing member
	// is considered owned by it and spawns no member of its own. Below
	// 1 so every owned sample keeps a strict margin inside the plateau
	// (the "1 on a neighborhood" part of coverage).
	DefaultSelectShare = 0.9

	// DefaultJitterShare is the fraction of the net step by which
	// samples are displaced when a seed is supplied. Jitter breaks
	// degenerate boundary ties between the net and the domain.
	DefaultJitterShare = 0.2
)

// Option configures Build via functional arguments. Nonsensical values
// panic immediately: options are assembled by the programmer at setup
// time.
type Option func(*buildOptions)

type buildOptions struct {
	netStep     float64
	stageBudget int
	slack       float64
	seed        int64
	jitter      bool
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		netStep:     DefaultNetStep,
		stageBudget: 0,  // derived from the domain hull
		slack:       -1, // marker: use shrink.DefaultSlack
	}
}

// WithNetStep sets the sampling step of the witness net. Panics unless
// step > 0.
func WithNetStep(step float64) Option {
	if step <= 0 {
		panic("cover: net step must be positive")
	}

	return func(o *buildOptions) { o.netStep = step }
}

// WithStageBudget fixes how many exhaustion blocks are materialized.
// Required for unbounded domains; for bounded domains it overrides the
// hull-derived prefix. Panics unless n > 0.
func WithStageBudget(n int) Option {
	if n <= 0 {
		panic("cover: stage budget must be positive")
	}

	return func(o *buildOptions) { o.stageBudget = n }
}

// WithSlack forwards a slack share to the shrinking stage. Panics
// unless 0 ≤ slack < 1.
func WithSlack(slack float64) Option {
	if slack < 0 || slack >= 1 {
		panic("cover: slack share must lie in [0, 1)")
	}

	return func(o *buildOptions) { o.slack = slack }
}

// WithSeed enables deterministic net jitter. seed==0 selects the fixed
// default stream, so a zero seed is still reproducible; jittered samples
// that would leave the domain fall back to their unjittered position.
func WithSeed(seed int64) Option {
	return func(o *buildOptions) {
		o.seed = seed
		o.jitter = true
	}
}

// Assignment prescribes, for every point of the domain, the open
// neighborhood its member's support must stay inside.
type Assignment[P comparable] func(p P) space.Region[P]
