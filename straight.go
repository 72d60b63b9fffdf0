package trackplate

import (
	"fmt"
)

// NewStraight returns the template for a straight track piece: a rectangle
// with the inner rail along y = 0 from x = 0 to x = length and the outer rail
// along y = gauge, closed as a 5-point polygon.
//
// It fails with [ErrInvalidArgument] if gauge or length is not positive.
func NewStraight(gauge, length float64) (Template, error) {
	if gauge <= 0 {
		return Template{}, fmt.Errorf("%w: gauge %g must be positive", ErrInvalidArgument, gauge)
	}
	if length <= 0 {
		return Template{}, fmt.Errorf("%w: length %g must be positive", ErrInvalidArgument, length)
	}
	points := []Point{
		Pt(0, 0),
		Pt(length, 0),
		Pt(length, gauge),
		Pt(0, gauge),
		Pt(0, 0),
	}
	return newTemplate(gauge, points, StraightTemplate), nil
}
