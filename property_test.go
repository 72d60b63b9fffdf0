package trackplate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRotationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1435)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("rotating back restores the point", prop.ForAll(
		func(x, y, angle, ox, oy float64) bool {
			pt := Pt(x, y)
			origin := Pt(ox, oy)
			return pt.RotateAround(angle, origin).RotateAround(-angle, origin).ApproxEqual(pt, 1e-6)
		},
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("rotation preserves distance to the origin", prop.ForAll(
		func(x, y, angle, ox, oy float64) bool {
			pt := Pt(x, y)
			origin := Pt(ox, oy)
			before := pt.Distance(origin)
			after := pt.RotateAround(angle, origin).Distance(origin)
			return before-after < 1e-6 && after-before < 1e-6
		},
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.TestingRun(t)
}

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1435)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	gaugeGen := gen.Float64Range(1, 100)
	radiusGen := gen.Float64Range(50, 5000)
	lengthGen := gen.Float64Range(10, 2000)
	degreesGen := gen.Float64Range(1, 360)
	segmentsGen := gen.IntRange(1, 96)

	closedWithEnoughPoints := func(tpl Template) bool {
		return tpl.NumPoints() >= 4 && tpl.IsClosed(1e-9)
	}

	properties.Property("straight outlines are closed", prop.ForAll(
		func(gauge, length float64) bool {
			tpl, err := NewStraight(gauge, length)
			return err == nil && closedWithEnoughPoints(tpl)
		},
		gaugeGen, lengthGen,
	))

	properties.Property("curve outlines are closed", prop.ForAll(
		func(gauge, radius, degrees float64, segments int) bool {
			tpl, err := NewCurve(gauge, radius, SweepAngle(degrees), Right, segments)
			return err == nil && closedWithEnoughPoints(tpl)
		},
		gaugeGen, radiusGen, degreesGen, segmentsGen,
	))

	properties.Property("left curves mirror right curves", prop.ForAll(
		func(gauge, radius, degrees float64, segments int) bool {
			right, err := NewCurve(gauge, radius, SweepAngle(degrees), Right, segments)
			if err != nil {
				return false
			}
			left, err := NewCurve(gauge, radius, SweepAngle(degrees), Left, segments)
			if err != nil {
				return false
			}
			rightPts := right.Points()
			leftPts := left.Points()
			for i := range rightPts {
				if !rightPts[i].Mirror().ApproxEqual(leftPts[i], 1e-9) {
					return false
				}
			}
			return true
		},
		gaugeGen, radiusGen, degreesGen, segmentsGen,
	))

	properties.Property("transition rails stay a gauge apart", prop.ForAll(
		func(gauge, endRadius, length float64, segments int) bool {
			tpl, err := NewTransition(gauge, endRadius, length, Right, segments)
			if err != nil || !closedWithEnoughPoints(tpl) {
				return false
			}
			pts := tpl.Points()
			for i := 0; i <= segments; i++ {
				d := pts[i].Distance(pts[2*segments+1-i])
				if d-gauge > 1e-6 || gauge-d > 1e-6 {
					return false
				}
			}
			return true
		},
		gaugeGen, radiusGen, lengthGen, segmentsGen,
	))

	properties.TestingRun(t)
}
