// Package core holds the types shared by games and runtimes: geometry,
// input actions, the cell screen and runtime settings. It imports nothing
// outside the standard library.
package core

// Rect is an integer box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a floating-point axis-aligned box in world units.
// Physics bodies and sprites are positioned with it.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap with positive area.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the penetration depth on each axis, or zeros when the
// boxes do not intersect.
func (r RectF) Overlap(other RectF) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}
	dx = min(r.Right(), other.Right()) - max(r.X, other.X)
	dy = min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	return dx, dy
}

// Sprite is a colored box in world coordinates, with an optional label.
// Runtimes that draw pixels instead of cells consume these.
type Sprite struct {
	Box   RectF
	Color Color
	Label string // text drawn at Box.X, Box.Y when set (Box size is ignored)
}
