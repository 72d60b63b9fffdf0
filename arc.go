package trackplate

import (
	"fmt"
	"math"
)

// Direction selects which way a curve or transition bends. The zero value is
// Right, which bends toward positive y; Left produces the exact y-mirror of
// the corresponding Right outline.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DefaultSegments is the segment count used by [NewCurve] and [NewTransition]
// when the caller passes 0.
const DefaultSegments = 64

type sweepKind int

const (
	sweepUnset sweepKind = iota
	sweepByAngle
	sweepByArcLength
)

// Sweep specifies the extent of an arc, either as a swept angle or as an arc
// length measured along the inner rail. Construct one with [SweepAngle] or
// [SweepArcLength]; the zero Sweep is rejected by [NewCurve] with
// [ErrInvalidArgument].
type Sweep struct {
	kind  sweepKind
	value float64
}

// SweepAngle specifies an arc extent as a swept angle in degrees.
func SweepAngle(degrees float64) Sweep {
	return Sweep{kind: sweepByAngle, value: degrees}
}

// SweepArcLength specifies an arc extent as a length measured along the inner
// rail.
func SweepArcLength(length float64) Sweep {
	return Sweep{kind: sweepByArcLength, value: length}
}

func (s Sweep) String() string {
	switch s.kind {
	case sweepByAngle:
		return fmt.Sprintf("%g°", s.value)
	case sweepByArcLength:
		return fmt.Sprintf("arclen %g", s.value)
	default:
		return "unset sweep"
	}
}

// angle resolves the sweep to a swept angle in radians for an arc of the
// given inner-rail radius.
func (s Sweep) angle(radius float64) (float64, error) {
	switch s.kind {
	case sweepByAngle:
		return s.value * (math.Pi / 180), nil
	case sweepByArcLength:
		if radius == 0 {
			return 0, fmt.Errorf("%w: resolving arc length %g requires a non-zero radius", ErrDegenerate, s.value)
		}
		return s.value / radius, nil
	default:
		return 0, fmt.Errorf("%w: sweep must be set with SweepAngle or SweepArcLength", ErrInvalidArgument)
	}
}

// NewCurve returns the template for a constant-radius curved track piece.
// radius is measured to the inner rail; the outer rail lies exactly gauge
// farther from the curve center at every sample. sweep gives the arc's extent
// as either a swept angle or an inner-rail arc length. segments is the number
// of chords approximating each rail; 0 selects [DefaultSegments].
//
// The outline is assembled by tracing the inner rail forward, jumping to the
// final outer-rail point, tracing the outer rail backward, and closing back
// to the first inner point. This order keeps the polygon simple for sweeps up
// to a full turn; larger sweeps are rejected.
//
// It fails with [ErrInvalidArgument] if gauge or radius is not positive, the
// sweep is unset, segments is negative, or the resolved angle is not in
// (0, 2π]; and with [ErrDegenerate] if resolving an arc length would divide
// by zero.
func NewCurve(gauge, radius float64, sweep Sweep, dir Direction, segments int) (Template, error) {
	if gauge <= 0 {
		return Template{}, fmt.Errorf("%w: gauge %g must be positive", ErrInvalidArgument, gauge)
	}
	if radius < 0 {
		return Template{}, fmt.Errorf("%w: radius %g must be positive", ErrInvalidArgument, radius)
	}
	segments, err := resolveSegments(segments)
	if err != nil {
		return Template{}, err
	}
	angle, err := sweep.angle(radius)
	if err != nil {
		return Template{}, err
	}
	// Zero radius is checked after sweep resolution: dividing an arc length
	// by a zero radius is the degenerate case and takes precedence over the
	// plain range error.
	if radius == 0 {
		return Template{}, fmt.Errorf("%w: radius %g must be positive", ErrInvalidArgument, radius)
	}
	// The slop keeps a sweep specified as exactly 360° from being rejected
	// over the rounding in the degree conversion.
	if angle <= 0 || angle-2*math.Pi > 1e-9 {
		return Template{}, fmt.Errorf("%w: swept angle %g rad must be in (0, 2π]", ErrInvalidArgument, angle)
	}

	// Mirroring the y coordinate turns the right-hand outline, centered on
	// (0, radius), into the left-hand one centered on (0, -radius).
	ySign := 1.0
	if dir == Left {
		ySign = -1
	}

	inner := make([]Point, segments+1)
	outer := make([]Point, segments+1)
	outerRadius := radius + gauge
	for i := 0; i <= segments; i++ {
		th := float64(i) / float64(segments) * angle
		sin, cos := math.Sincos(th)
		inner[i] = Pt(radius*sin, ySign*(radius-radius*cos))
		outer[i] = Pt(outerRadius*sin, ySign*(radius-outerRadius*cos))
	}

	return newTemplate(gauge, closeOutline(inner, outer), CurveTemplate), nil
}

func resolveSegments(segments int) (int, error) {
	if segments == 0 {
		return DefaultSegments, nil
	}
	if segments < 1 {
		return 0, fmt.Errorf("%w: segment count %d must be at least 1", ErrInvalidArgument, segments)
	}
	return segments, nil
}

// closeOutline assembles the closed rail outline from per-sample inner and
// outer points: inner rail forward, end cap to the last outer point, outer
// rail backward excluding its last point, and back to the first inner point.
func closeOutline(inner, outer []Point) []Point {
	points := make([]Point, 0, 2*len(inner)+1)
	points = append(points, inner...)
	points = append(points, outer[len(outer)-1])
	for i := len(outer) - 2; i >= 0; i-- {
		points = append(points, outer[i])
	}
	points = append(points, inner[0])
	return points
}
