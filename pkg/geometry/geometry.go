// Package geometry provides the 2D value types shared by the box model,
// layouts and widgets.
package geometry

import "fmt"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Axis identifies one of the two layout axes.
type Axis int

const (
	// Horizontal is the width axis.
	Horizontal Axis = iota
	// Vertical is the height axis.
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Along returns the component on the given axis.
// It panics on an axis outside {Horizontal, Vertical}; selecting a
// wrong-axis component silently is never acceptable.
func (o Offset) Along(a Axis) float64 {
	switch a {
	case Horizontal:
		return o.X
	case Vertical:
		return o.Y
	}
	panic(fmt.Sprintf("geometry: invalid axis %d, valid axes are Horizontal (0) and Vertical (1)", int(a)))
}

// WithAlong returns a copy with the component on the given axis replaced.
func (o Offset) WithAlong(a Axis, v float64) Offset {
	switch a {
	case Horizontal:
		return Offset{X: v, Y: o.Y}
	case Vertical:
		return Offset{X: o.X, Y: v}
	}
	panic(fmt.Sprintf("geometry: invalid axis %d, valid axes are Horizontal (0) and Vertical (1)", int(a)))
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Along returns the dimension on the given axis.
// Panics on an invalid axis, like Offset.Along.
func (s Size) Along(a Axis) float64 {
	switch a {
	case Horizontal:
		return s.Width
	case Vertical:
		return s.Height
	}
	panic(fmt.Sprintf("geometry: invalid axis %d, valid axes are Horizontal (0) and Vertical (1)", int(a)))
}

// WithAlong returns a copy with the dimension on the given axis replaced.
func (s Size) WithAlong(a Axis, v float64) Size {
	switch a {
	case Horizontal:
		return Size{Width: v, Height: s.Height}
	case Vertical:
		return Size{Width: s.Width, Height: v}
	}
	panic(fmt.Sprintf("geometry: invalid axis %d, valid axes are Horizontal (0) and Vertical (1)", int(a)))
}

// Valid reports whether both dimensions are strictly positive.
// A box with an invalid current size is not rendered.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// ApproxEqual returns true if two float64 values are approximately equal.
func ApproxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}
