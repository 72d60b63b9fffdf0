package trackplate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(4, 6), Vec(1, 2).Add(Vec(3, 4)))
	diff(t, Vec(-2, -2), Vec(1, 2).Sub(Vec(3, 4)))
	diff(t, Vec(2.5, -5), Vec(1, -2).Mul(2.5))
	diff(t, Vec(-1, 2), Vec(1, -2).Negate())
}

func TestVec2Products(t *testing.T) {
	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("got dot product %v, want 11", d)
	}
	if c := Vec(1, 2).Cross(Vec(3, 4)); c != -2 {
		t.Errorf("got cross product %v, want -2", c)
	}
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
}

func TestVec2Angle(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(1, 0), VecFromAngle(0), approx)
	diff(t, Vec(0, 1), VecFromAngle(math.Pi/2), approx)
	if a := Vec(0, 3).Angle(); a != math.Pi/2 {
		t.Errorf("got angle %v, want π/2", a)
	}
	// VecFromAngle and Angle invert each other on unit vectors.
	for _, th := range []float64{-2.5, -1, 0, 0.25, 1.5, 3} {
		if a := VecFromAngle(th).Angle(); math.Abs(a-th) > 1e-12 {
			t.Errorf("got angle %v, want %v", a, th)
		}
	}
}

func TestVec2Turn90(t *testing.T) {
	diff(t, Vec(0, 1), Vec(1, 0).Turn90())
	diff(t, Vec(-1, 0), Vec(0, 1).Turn90())
	// Two quarter turns negate the vector.
	diff(t, Vec(-3, -4), Vec(3, 4).Turn90().Turn90())
}

func TestVec2Splat(t *testing.T) {
	x, y := Vec(7, -8).Splat()
	if x != 7 || y != -8 {
		t.Errorf("got %g, %g, want 7, -8", x, y)
	}
}
