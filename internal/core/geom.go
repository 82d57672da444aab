// Package core provides fundamental types and utilities for the bounce platform.
// It contains no external dependencies (especially no Bubble Tea) to keep demo
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Viewport maps a continuous domain of size W x H (origin bottom-left, y up)
// onto a rectangle of terminal cells (origin top-left, y down).
type Viewport struct {
	Cells Rect
	W, H  float64
}

// ScaleX returns cells per domain unit along x.
func (v Viewport) ScaleX() float64 {
	if v.W <= 0 {
		return 0
	}
	return float64(v.Cells.W) / v.W
}

// ScaleY returns cells per domain unit along y.
func (v Viewport) ScaleY() float64 {
	if v.H <= 0 {
		return 0
	}
	return float64(v.Cells.H) / v.H
}

// Project converts a domain point to fractional cell coordinates.
func (v Viewport) Project(x, y float64) (float64, float64) {
	return float64(v.Cells.X) + x*v.ScaleX(), float64(v.Cells.Y) + (v.H-y)*v.ScaleY()
}

// ToCell converts a domain point to the cell containing it.
// Points on or past the far edges map into the last row/column.
func (v Viewport) ToCell(x, y float64) (int, int) {
	px, py := v.Project(x, y)
	cx := Clamp(int(math.Floor(px)), v.Cells.X, max(v.Cells.X, v.Cells.Right()-1))
	cy := Clamp(int(math.Floor(py)), v.Cells.Y, max(v.Cells.Y, v.Cells.Bottom()-1))
	return cx, cy
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
