// Package geom provides the 2D vector arithmetic and grid snapping used
// by the raycasting core. Vectors are immutable values: every operation
// returns a new Vec and never mutates its operands. Non-finite inputs
// propagate NaN/Inf through the arithmetic instead of signaling errors;
// callers validate inputs when they need stricter guarantees.
package geom

import "math"

// Vec is a 2D vector. It doubles as an integer cell coordinate after
// flooring; callers track by convention which values are continuous
// points and which are cell indices.
type Vec struct {
	X, Y float64
}

// V constructs a vector from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{}
}

// FromAngle returns the unit vector pointing at the given angle in radians.
func FromAngle(rad float64) Vec {
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec) Mul(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div divides component-wise. A zero component in o yields Inf/NaN in
// that component; this is used deliberately for grid-space scaling.
func (v Vec) Div(o Vec) Vec {
	return Vec{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Norm returns the unit vector in v's direction. The zero vector
// normalizes to the zero vector, not NaN.
func (v Vec) Norm() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec) DistanceTo(o Vec) float64 {
	return o.Sub(v).Length()
}

// Array returns the components as an [x, y] pair for drawing APIs that
// consume coordinate pairs.
func (v Vec) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}
