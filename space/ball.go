package space

// Ball is a closed metric ball. It carries its own metric so that it can
// act as a Region (and RadialRegion) without further plumbing; construct
// it through NewBall.
//
// A Ball with Radius == 0 is the singleton {Center}; negative radii are
// normalized to 0 by NewBall.
type Ball[P comparable] struct {
	// Center of the ball.
	Center P
	// Radius of the closed ball (points at distance exactly Radius belong).
	Radius float64

	dist Metric[P]
}

// NewBall returns the closed ball of the given radius around center,
// measured by d. Negative radii are clamped to 0.
//
// Complexity: O(1).
func NewBall[P comparable](d Metric[P], center P, radius float64) Ball[P] {
	if radius < 0 {
		radius = 0
	}

	return Ball[P]{Center: center, Radius: radius, dist: d}
}

// Contains reports whether p lies in the closed ball.
// Complexity: one metric evaluation.
func (b Ball[P]) Contains(p P) bool {
	return b.dist(b.Center, p) <= b.Radius
}

// Clearance returns Radius − d(Center, p), clamped at 0: any closed ball
// of strictly smaller radius around p stays inside b.
// Complexity: one metric evaluation.
func (b Ball[P]) Clearance(p P) float64 {
	c := b.Radius - b.dist(b.Center, p)
	if c < 0 {
		return 0
	}

	return c
}

// Shrunk returns a ball with the same center and metric but the given
// radius. Radii above the current one are clamped down — Shrunk never
// grows a ball, mirroring the monotone-restriction contract of the bump
// factory.
//
// Complexity: O(1).
func (b Ball[P]) Shrunk(radius float64) Ball[P] {
	if radius > b.Radius {
		radius = b.Radius
	}
	if radius < 0 {
		radius = 0
	}
	b.Radius = radius

	return b
}

// Dist exposes the ball's metric evaluated from its center.
// Complexity: one metric evaluation.
func (b Ball[P]) Dist(p P) float64 {
	return b.dist(b.Center, p)
}
