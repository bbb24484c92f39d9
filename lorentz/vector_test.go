package lorentz

import (
	"math"
	"testing"
)

func TestZeroValue(t *testing.T) {
	var v Vector
	if v != Zero() {
		t.Errorf("zero value %v differs from Zero()", v)
	}
	if v.T() != 0 || v.X() != 0 || v.Y() != 0 || v.Z() != 0 {
		t.Errorf("zero value has non-zero components: %v", v)
	}
}

func TestNew_Accessors(t *testing.T) {
	v := New(1.5, -2.25, 3e10, -4e-10)
	if v.T() != 1.5 || v.X() != -2.25 || v.Y() != 3e10 || v.Z() != -4e-10 {
		t.Errorf("accessors returned %v", v)
	}
	if v.Components() != [4]float64{1.5, -2.25, 3e10, -4e-10} {
		t.Errorf("Components() = %v", v.Components())
	}
}

func TestSetters(t *testing.T) {
	tests := []struct {
		name string
		set  func(v *Vector)
		want Vector
	}{
		{"t", func(v *Vector) { v.SetT(9) }, New(9, 2, 3, 4)},
		{"x", func(v *Vector) { v.SetX(9) }, New(1, 9, 3, 4)},
		{"y", func(v *Vector) { v.SetY(9) }, New(1, 2, 9, 4)},
		{"z", func(v *Vector) { v.SetZ(9) }, New(1, 2, 3, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(1, 2, 3, 4)
			tt.set(&v)
			if v != tt.want {
				t.Errorf("got %v, want %v", v, tt.want)
			}
		})
	}
}

func TestArithmetic_Exact(t *testing.T) {
	v0 := New(1, 2, 3, 4)
	v1 := New(0, 0, 0, 0)

	if got := v0.Add(v1); got != New(1, 2, 3, 4) {
		t.Errorf("Add zero = %v, want (1; 2; 3; 4)", got)
	}
	if got := v0.Scale(2.0); got != New(2, 4, 6, 8) {
		t.Errorf("Scale(2) = %v, want (2; 4; 6; 8)", got)
	}
	if got := v0.Sub(New(1, 1, 1, 1)); got != New(0, 1, 2, 3) {
		t.Errorf("Sub = %v, want (0; 1; 2; 3)", got)
	}
	if got, want := v0.Norm(), math.Sqrt(28); math.Abs(got-want) > DefaultTolerance {
		t.Errorf("Norm() = %v, want %v", got, want)
	}

	// Operands are untouched.
	if v0 != New(1, 2, 3, 4) || v1 != Zero() {
		t.Errorf("pure operations mutated operands: %v %v", v0, v1)
	}
}

func TestArithmetic_InPlace(t *testing.T) {
	v := New(1, 2, 3, 4)
	v.AddInPlace(New(1, 1, 1, 1))
	if v != New(2, 3, 4, 5) {
		t.Errorf("AddInPlace = %v", v)
	}
	v.SubInPlace(New(2, 2, 2, 2))
	if v != New(0, 1, 2, 3) {
		t.Errorf("SubInPlace = %v", v)
	}
	v.ScaleInPlace(-2)
	if v != New(0, -2, -4, -6) {
		t.Errorf("ScaleInPlace = %v", v)
	}
}

func TestNormAndInterval(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		interval float64
		norm     float64
	}{
		{"timelike", New(5, 0, 0, 3), 16, 4},
		{"spacelike", New(3, 0, 0, 5), -16, 4},
		{"lightlike", New(1, 1, 0, 0), 0, 0},
		{"zero", Zero(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Interval(); got != tt.interval {
				t.Errorf("Interval() = %v, want %v", got, tt.interval)
			}
			if got := tt.v.Norm(); got != tt.norm {
				t.Errorf("Norm() = %v, want %v", got, tt.norm)
			}
		})
	}
}

func TestBoostZ_Scenario(t *testing.T) {
	v := New(5, 0, 0, 3)
	v.BoostZ(0.5)

	g := math.Sqrt(0.75)
	want := New((5+0.5*3)/g, 0, 0, (3+0.5*5)/g)
	if !v.ApproxEqual(want, 1e-6) {
		t.Errorf("BoostZ(0.5) = %v, want %v", v, want)
	}
	if math.Abs(v.T()-7.5056) > 1e-4 || math.Abs(v.Z()-6.3509) > 1e-4 {
		t.Errorf("BoostZ(0.5) = %v, want about (7.5056; 0; 0; 6.3509)", v)
	}
}

func TestBoostZ_UsesOriginalT(t *testing.T) {
	v := New(1, 0, 0, 0)
	v.BoostZ(0.6)
	// t' = 1/0.8, z' = 0.6/0.8: z is computed from the pre-boost t.
	if !v.ApproxEqual(New(1.25, 0, 0, 0.75), 1e-12) {
		t.Errorf("BoostZ(0.6) = %v, want (1.25; 0; 0; 0.75)", v)
	}
}

func TestBoostZ_ZeroBetaIsIdentity(t *testing.T) {
	v := New(1, 2, 3, 4)
	v.BoostZ(0)
	if v != New(1, 2, 3, 4) {
		t.Errorf("BoostZ(0) = %v", v)
	}
}

func TestBoostZ_SuperluminalIsNaN(t *testing.T) {
	v := New(1, 2, 3, 4)
	v.BoostZ(1.5)
	if !math.IsNaN(v.T()) || !math.IsNaN(v.Z()) {
		t.Errorf("BoostZ(1.5) = %v, want NaN in t and z", v)
	}
	if v.X() != 2 || v.Y() != 3 {
		t.Errorf("BoostZ changed transverse components: %v", v)
	}
}

func TestBoosted_LeavesReceiver(t *testing.T) {
	v := New(5, 0, 0, 3)
	b := v.Boosted(0.5)
	if v != New(5, 0, 0, 3) {
		t.Errorf("Boosted mutated receiver: %v", v)
	}
	w := v
	w.BoostZ(0.5)
	if b != w {
		t.Errorf("Boosted = %v, BoostZ = %v", b, w)
	}
}

// Dot keeps its historical behavior: it ignores the argument and sums the
// squares of the receiver's components.
func TestDot_IgnoresArgument(t *testing.T) {
	v := New(1, 2, 3, 4)
	for _, w := range []Vector{Zero(), New(9, 9, 9, 9), New(-1, 0, 5, 2)} {
		if got := v.Dot(w); got != 30 {
			t.Errorf("Dot(%v) = %v, want 30", w, got)
		}
	}
}

func TestMinkowskiDot(t *testing.T) {
	v := New(1, 2, 3, 4)
	w := New(5, 6, 7, 8)
	if got := v.MinkowskiDot(w); got != 5-12-21-32 {
		t.Errorf("MinkowskiDot = %v, want %v", got, 5-12-21-32)
	}
	if got := v.MinkowskiDot(v); got != v.Interval() {
		t.Errorf("MinkowskiDot(v, v) = %v, want Interval() = %v", got, v.Interval())
	}
}

func TestNaNPropagates(t *testing.T) {
	v := New(math.NaN(), 0, 0, 0)
	if !math.IsNaN(v.Norm()) {
		t.Errorf("Norm of NaN vector = %v", v.Norm())
	}
	if !math.IsNaN(v.Add(New(1, 1, 1, 1)).T()) {
		t.Error("Add did not propagate NaN")
	}
	w := New(math.Inf(1), 0, 0, 0)
	if !math.IsInf(w.Norm(), 1) {
		t.Errorf("Norm of Inf vector = %v", w.Norm())
	}
}

func TestApproxEqual(t *testing.T) {
	v := New(1, 2, 3, 4)
	if !v.ApproxEqual(New(1+1e-9, 2, 3, 4-1e-9), DefaultTolerance) {
		t.Error("vectors within tolerance should be equal")
	}
	if v.ApproxEqual(New(1, 2, 3, 4.1), DefaultTolerance) {
		t.Error("vectors outside tolerance should differ")
	}
	if !v.ApproxEqual(New(1, 2, 3, 4.1), 0.5) {
		t.Error("per-comparison tolerance should be honored")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{New(1, 2, 3, 4), "(1; 2; 3; 4)"},
		{New(-1.5, 0, 2.25, -0.125), "(-1.5; 0; 2.25; -0.125)"},
		{New(1e21, 1e-7, 0, 0), "(1e+21; 1e-07; 0; 0)"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
