// Package core provides fundamental types and utilities for the ballz
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in logical play-area coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LenSq returns the squared length of the vector.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// RectF is an axis-aligned rectangle in logical coordinates.
type RectF struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRectF creates a rectangle from its top-left corner and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the rectangle width.
func (r RectF) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the rectangle height.
func (r RectF) Height() float64 {
	return r.MaxY - r.MinY
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec2 {
	return Vec2{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// ClosestPoint returns the point inside the rectangle closest to p.
// For a point already inside, it returns p unchanged. This is the clamped
// point used for circle-vs-rectangle intersection tests.
func (r RectF) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.MinX, r.MaxX),
		Y: ClampF(p.Y, r.MinY, r.MaxY),
	}
}

// IntersectsCircle reports whether a circle at center c with the given
// radius overlaps this rectangle.
func (r RectF) IntersectsCircle(c Vec2, radius float64) bool {
	return r.ClosestPoint(c).Sub(c).LenSq() <= radius*radius
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
