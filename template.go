package trackplate

import (
	"fmt"
	"math"
	"slices"
)

// TemplateKind discriminates the three template shapes.
type TemplateKind int

const (
	StraightTemplate TemplateKind = iota
	CurveTemplate
	TransitionTemplate
)

func (k TemplateKind) String() string {
	switch k {
	case StraightTemplate:
		return "straight"
	case CurveTemplate:
		return "curve"
	case TransitionTemplate:
		return "transition"
	default:
		return fmt.Sprintf("TemplateKind(%d)", int(k))
	}
}

// Template is a track-bed cross-section outline: the rail gauge, a closed
// polygon tracing the inner and outer rail boundaries, and the kind of track
// piece it describes.
//
// Templates are immutable. They are produced exclusively by [NewStraight],
// [NewCurve], and [NewTransition]; every template holds at least 4 points,
// its first and last points coincide, and the polygon is simple for valid
// physical inputs. Simplicity follows from each generator's construction
// order (inner rail forward, end cap, outer rail backward) and is not
// re-checked after the fact.
type Template struct {
	gauge  float64
	points []Point
	kind   TemplateKind
}

func newTemplate(gauge float64, points []Point, kind TemplateKind) Template {
	return Template{
		gauge:  gauge,
		points: points,
		kind:   kind,
	}
}

// Gauge returns the perpendicular separation between the inner and outer rail
// boundaries.
func (t Template) Gauge() float64 {
	return t.gauge
}

// Kind returns the template's shape discriminant.
func (t Template) Kind() TemplateKind {
	return t.kind
}

// Points returns the template's outline polygon. The first and last points
// coincide. The returned slice is a copy; modifying it does not affect the
// template.
func (t Template) Points() []Point {
	return slices.Clone(t.points)
}

// NumPoints returns the number of points in the outline polygon, including
// the repeated closing point.
func (t Template) NumPoints() int {
	return len(t.points)
}

// BoundingBox returns the axis-aligned box spanned by the componentwise
// minimum and maximum over all outline points. The duplicate closing point is
// harmless here.
func (t Template) BoundingBox() Rect {
	if len(t.points) == 0 {
		return Rect{}
	}
	bbox := Rect{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
	for _, pt := range t.points {
		bbox.X0 = min(bbox.X0, pt.X)
		bbox.Y0 = min(bbox.Y0, pt.Y)
		bbox.X1 = max(bbox.X1, pt.X)
		bbox.Y1 = max(bbox.Y1, pt.Y)
	}
	return bbox
}

// Dimensions returns the width and height of the bounding box.
func (t Template) Dimensions() Size {
	return t.BoundingBox().Size()
}

// IsClosed reports whether the first and last outline points coincide within
// the absolute tolerance tol.
func (t Template) IsClosed(tol float64) bool {
	if len(t.points) < 2 {
		return false
	}
	return t.points[0].ApproxEqual(t.points[len(t.points)-1], tol)
}

// Area returns the area enclosed by the outline polygon, computed with the
// shoelace formula. The result is non-negative regardless of winding order.
func (t Template) Area() float64 {
	var sum float64
	for i := 0; i+1 < len(t.points); i++ {
		sum += Vec2(t.points[i]).Cross(Vec2(t.points[i+1]))
	}
	return 0.5 * math.Abs(sum)
}

// Perimeter returns the total length of the outline polygon.
func (t Template) Perimeter() float64 {
	var sum float64
	for i := 0; i+1 < len(t.points); i++ {
		sum += t.points[i].Distance(t.points[i+1])
	}
	return sum
}
