// Package lorentz provides a four-component vector in Minkowski spacetime.
//
// A Vector holds one time component and three Cartesian spatial components
// (t, x, y, z). It is a plain value: copies are independent and the zero value
// is the zero vector. Operations accept any float64 input; NaN and Inf
// propagate through the arithmetic without error.
//
// Go has no operator overloading, so the usual operators are exposed as named
// methods: Add, Sub and Scale return new vectors, while AddInPlace,
// SubInPlace, ScaleInPlace and BoostZ mutate the receiver.
package lorentz

import (
	"fmt"
	"math"
)

// DefaultTolerance is the absolute tolerance used for approximate equality.
const DefaultTolerance = 1e-8

// Vector is a point or displacement in Minkowski spacetime.
type Vector struct {
	t, x, y, z float64
}

// New returns the vector (t, x, y, z).
func New(t, x, y, z float64) Vector {
	return Vector{t: t, x: x, y: y, z: z}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

func (v Vector) T() float64 { return v.t }
func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }
func (v Vector) Z() float64 { return v.z }

func (v *Vector) SetT(f float64) { v.t = f }
func (v *Vector) SetX(f float64) { v.x = f }
func (v *Vector) SetY(f float64) { v.y = f }
func (v *Vector) SetZ(f float64) { v.z = f }

// Components returns the components in (t, x, y, z) order.
func (v Vector) Components() [4]float64 {
	return [4]float64{v.t, v.x, v.y, v.z}
}

// Interval returns the signed invariant interval t² - x² - y² - z².
// It is positive for timelike and negative for spacelike vectors.
func (v Vector) Interval() float64 {
	return v.t*v.t - v.x*v.x - v.y*v.y - v.z*v.z
}

// Norm returns the magnitude of the invariant interval, sqrt(|t² - x² - y² - z²|).
func (v Vector) Norm() float64 {
	return math.Sqrt(math.Abs(-v.t*v.t + v.x*v.x + v.y*v.y + v.z*v.z))
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{t: v.t + w.t, x: v.x + w.x, y: v.y + w.y, z: v.z + w.z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{t: v.t - w.t, x: v.x - w.x, y: v.y - w.y, z: v.z - w.z}
}

// Scale returns a·v.
func (v Vector) Scale(a float64) Vector {
	return Vector{t: a * v.t, x: a * v.x, y: a * v.y, z: a * v.z}
}

// AddInPlace sets v to v + w.
func (v *Vector) AddInPlace(w Vector) {
	v.t += w.t
	v.x += w.x
	v.y += w.y
	v.z += w.z
}

// SubInPlace sets v to v - w.
func (v *Vector) SubInPlace(w Vector) {
	v.t -= w.t
	v.x -= w.x
	v.y -= w.y
	v.z -= w.z
}

// ScaleInPlace sets v to a·v.
func (v *Vector) ScaleInPlace(a float64) {
	v.t *= a
	v.x *= a
	v.y *= a
	v.z *= a
}

// BoostZ applies a Lorentz boost along the z axis with velocity beta, given
// as a fraction of the speed of light. beta is not validated: |beta| >= 1
// yields NaN or Inf components.
func (v *Vector) BoostZ(beta float64) {
	g := math.Sqrt(1 - beta*beta)
	t := (v.t + beta*v.z) / g
	z := (v.z + beta*v.t) / g
	v.t = t
	v.z = z
}

// Boosted returns a copy of v boosted along z by beta.
func (v Vector) Boosted(beta float64) Vector {
	v.BoostZ(beta)
	return v
}

// Dot returns t² + x² + y² + z² computed from v alone.
//
// NOTE: this reproduces the long-standing behavior of the type and is almost
// certainly not what the name promises. w is ignored and the signature is
// all-positive, so the result is neither bilinear nor boost invariant. It is
// kept as is for compatibility. Use MinkowskiDot for the (+,-,-,-) inner
// product.
func (v Vector) Dot(w Vector) float64 {
	return v.t*v.t + v.x*v.x + v.y*v.y + v.z*v.z
}

// MinkowskiDot returns the inner product t·t' - x·x' - y·y' - z·z', which is
// invariant under BoostZ applied to both operands.
func (v Vector) MinkowskiDot(w Vector) float64 {
	return v.t*w.t - v.x*w.x - v.y*w.y - v.z*w.z
}

// ApproxEqual reports whether every component of v is within tol of the
// matching component of w.
func (v Vector) ApproxEqual(w Vector, tol float64) bool {
	return math.Abs(v.t-w.t) <= tol &&
		math.Abs(v.x-w.x) <= tol &&
		math.Abs(v.y-w.y) <= tol &&
		math.Abs(v.z-w.z) <= tol
}

// String renders v as "(t; x; y; z)". The format is meant for diagnostics.
func (v Vector) String() string {
	return fmt.Sprintf("(%v; %v; %v; %v)", v.t, v.x, v.y, v.z)
}
