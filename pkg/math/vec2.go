// Package math provides the small vector and matrix types used by the curve
// and revolution code.
package math

import "math"

// Vec2 is a 2D vector. In profile space X is the distance from the
// revolution axis and Y is the height along it.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Lerp interpolates t*other + (1-t)*v.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{t*other.X + (1-t)*v.X, t*other.Y + (1-t)*v.Y}
}

// MirrorX reflects v across the vertical line x = axisX.
func (v Vec2) MirrorX(axisX float32) Vec2 {
	return Vec2{2*axisX - v.X, v.Y}
}

// XY0 lifts v into the z = 0 plane.
func (v Vec2) XY0() Vec3 {
	return Vec3{v.X, v.Y, 0}
}
