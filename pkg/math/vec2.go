// Package math provides the small vector and matrix types used by the editor.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
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

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Rotate returns v rotated counter-clockwise by radians around the origin.
func (v Vec2) Rotate(radians float32) Vec2 {
	sin, cos := math32.Sincos(radians)
	return Vec2{
		v.X*cos - v.Y*sin,
		v.X*sin + v.Y*cos,
	}
}

// Lerp returns the linear interpolation a + (b - a) * t.
func Lerp(a, b Vec2, t float32) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// ApproxEqual reports whether v and other differ by at most eps on each axis.
func (v Vec2) ApproxEqual(other Vec2, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps && math32.Abs(v.Y-other.Y) <= eps
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0)
}

// Homogeneous returns (x, y, 1).
func (v Vec2) Homogeneous() Vec3 {
	return Vec3{v.X, v.Y, 1}
}
