package trackplate

import (
	"fmt"
)

// NewTransition returns the template for a clothoid (Euler spiral) transition
// piece whose inner rail starts straight at the origin, heading along +x, and
// ends at curvature 1/endRadius after the given inner-rail length. The
// clothoid scale is A² = endRadius·length, giving curvature κ(s) = s/A² at
// arc-length position s.
//
// Heading and position are advanced by explicit first-order Euler integration
// with a fixed step of length/segments: each step moves the position along
// the current heading and then bends the heading by κ(s)·ds. The endpoint
// therefore carries a discretization error that shrinks linearly as segments
// grows; it is not a closed-form Fresnel evaluation. The outer rail is offset
// from each integrated inner sample by gauge along the local heading normal,
// so rail separation is exactly gauge at every sample even where the
// integrated heading is off.
//
// segments is the number of integration steps; 0 selects [DefaultSegments].
//
// It fails with [ErrInvalidArgument] if gauge, endRadius, or length is
// negative or gauge is zero, or segments is negative; and with
// [ErrDegenerate] if endRadius or length is zero, since A² = endRadius·length
// would then divide κ by zero.
func NewTransition(gauge, endRadius, length float64, dir Direction, segments int) (Template, error) {
	if gauge <= 0 {
		return Template{}, fmt.Errorf("%w: gauge %g must be positive", ErrInvalidArgument, gauge)
	}
	segments, err := resolveSegments(segments)
	if err != nil {
		return Template{}, err
	}
	if endRadius < 0 {
		return Template{}, fmt.Errorf("%w: end radius %g must be positive", ErrInvalidArgument, endRadius)
	}
	if length < 0 {
		return Template{}, fmt.Errorf("%w: length %g must be positive", ErrInvalidArgument, length)
	}
	if endRadius == 0 {
		return Template{}, fmt.Errorf("%w: end radius 0 leaves no curvature scale", ErrDegenerate)
	}
	if length == 0 {
		return Template{}, fmt.Errorf("%w: length 0 leaves no curvature scale", ErrDegenerate)
	}

	// A right-hand transition bends the heading toward positive y; the
	// left-hand outline mirrors every computed y, including the rail normal.
	ySign := 1.0
	if dir == Left {
		ySign = -1
	}

	aSquared := endRadius * length
	ds := length / float64(segments)

	inner := make([]Point, segments+1)
	outer := make([]Point, segments+1)
	pos := Pt(0, 0)
	heading := 0.0
	for i := 0; i <= segments; i++ {
		inner[i] = Pt(pos.X, ySign*pos.Y)
		normal := VecFromAngle(heading).Turn90()
		outer[i] = inner[i].Translate(Vec(normal.X, ySign*normal.Y).Mul(gauge))

		if i < segments {
			s := float64(i) * ds
			pos = pos.Translate(VecFromAngle(heading).Mul(ds))
			heading += s / aSquared * ds
		}
	}

	return newTemplate(gauge, closeOutline(inner, outer), TransitionTemplate), nil
}
