// Package trackplate synthesizes 2D cross-section outlines ("templates") for
// physical track-bed templates: straight segments, constant-radius arcs, and
// Euler-spiral (clothoid) transition curves.
//
// Each template is a closed, non-self-intersecting polygon tracing the inner
// and outer rail boundaries of a piece of track, parameterized by rail gauge,
// radius, arc extent, and direction. Templates are produced by the three
// generators [NewStraight], [NewCurve], and [NewTransition]; all three are
// pure functions that validate their inputs, run to completion, and return an
// immutable [Template]. There is no shared or cross-call state, so independent
// generator calls may run concurrently without synchronization.
//
// # Coordinate system
//
// Templates are generated in a right-handed frame with the track entering at
// the origin heading along the positive x axis. The inner rail of a straight
// lies along y = 0 and the outer rail along y = gauge. A right-hand curve
// bends toward positive y; a left-hand curve is its exact y-mirror.
//
// # Transition curves
//
// [NewTransition] integrates a clothoid, a curve whose curvature grows
// linearly with arc length, from zero curvature at the start to 1/endRadius
// at the end. The integration is explicit first-order Euler with a fixed step,
// so discretization error shrinks linearly with the segment count; see the
// function's documentation for details.
//
// # Serialization
//
// [SVG] and [WriteSVG] emit a template's outline as SVG path commands. No CAD
// exchange format is produced; constructing 3D solids from templates is out of
// scope for this package.
package trackplate
