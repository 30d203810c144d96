// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// FromAngle creates a vector from an angle (radians) and magnitude.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// Rect is an axis-aligned bounding box in field units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle centered on the given point.
func RectAround(center Vec2, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether this rectangle overlaps another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampInt restricts an integer to [lo, hi].
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// FoldY maps a y-coordinate back into [0, height] by repeated reflection
// across whichever bound it exceeds. Unlike clamping, this preserves the
// geometry of wall bounces for straight-line trajectory predictions.
func FoldY(y, height float64) float64 {
	for y < 0 || y > height {
		if y < 0 {
			y = -y
		} else {
			y = 2*height - y
		}
	}
	return y
}
