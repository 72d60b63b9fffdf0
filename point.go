package trackplate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Rotate rotates the point about the coordinate origin by angle radians,
// counter-clockwise for positive angles.
func (pt Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// RotateAround rotates the point about origin by angle radians,
// counter-clockwise for positive angles. Rotating by −angle about the same
// origin restores the point up to floating-point tolerance.
func (pt Point) RotateAround(angle float64, origin Point) Point {
	return origin.Translate(pt.Sub(origin).rotated(angle))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// ApproxEqual reports whether pt and o coincide within the absolute tolerance
// tol in each coordinate. Points are plain values with no identity beyond
// their coordinates, so this is the comparison to use for geometry computed
// through floating-point arithmetic.
func (pt Point) ApproxEqual(o Point, tol float64) bool {
	return scalar.EqualWithinAbs(pt.X, o.X, tol) &&
		scalar.EqualWithinAbs(pt.Y, o.Y, tol)
}

// Mirror returns the point reflected across the x axis.
func (pt Point) Mirror() Point {
	return Point{
		X: pt.X,
		Y: -pt.Y,
	}
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
