// Package box implements the constrained box model shared by widgets and
// layouts: preferred, current, minimum and maximum sizes plus a per-axis
// size behavior that tells the constraint solver how a box may be resized.
package box

import (
	"fmt"

	"github.com/go-lucid/lucid/pkg/geometry"
)

// Behavior specifies how the solver may change a box's size on one axis.
type Behavior int

const (
	// Fixed pins the current size to the preferred size; the solver never
	// modifies it.
	Fixed Behavior = iota
	// Grow allows the box to grow beyond its preferred size, bounded above
	// by its maximum limit when one is set.
	Grow
	// Shrink allows the box to shrink below its preferred size, bounded
	// below by its minimum limit when one is set (never below zero).
	Shrink
	// Flex allows both, bounded by whichever limit applies to the
	// direction moved.
	Flex
)

// String returns a human-readable representation of the behavior.
func (b Behavior) String() string {
	switch b {
	case Fixed:
		return "fixed"
	case Grow:
		return "grow"
	case Shrink:
		return "shrink"
	case Flex:
		return "flex"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// CanGrow reports whether the behavior permits growth.
func (b Behavior) CanGrow() bool {
	return b == Grow || b == Flex
}

// CanShrink reports whether the behavior permits shrinking.
func (b Behavior) CanShrink() bool {
	return b == Shrink || b == Flex
}

// Limit is an optional size bound. The zero value means "no limit", which
// keeps a true zero-size cap representable, unlike a 0 sentinel.
type Limit struct {
	value   float64
	bounded bool
}

// NoLimit is the unbounded limit.
var NoLimit = Limit{}

// LimitOf returns a bounded limit of v pixels.
func LimitOf(v float64) Limit {
	return Limit{value: v, bounded: true}
}

// Bounded reports whether the limit is set.
func (l Limit) Bounded() bool {
	return l.bounded
}

// Value returns the bound in pixels; meaningful only when Bounded.
func (l Limit) Value() float64 {
	return l.value
}

// String returns a human-readable representation of the limit.
func (l Limit) String() string {
	if !l.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("%g", l.value)
}

// Box is the geometric state record underlying every widget and layout.
// Fields are owned exclusively by the containing node and mutated only
// through its methods or by its parent layout during realignment.
type Box struct {
	preferred geometry.Size
	current   geometry.Size
	position  geometry.Offset
	minimum   [2]Limit
	maximum   [2]Limit
	behavior  [2]Behavior
}

// New creates a box with the given preferred size, a matching current size
// and Fixed behavior on both axes.
func New(preferred geometry.Size) Box {
	return Box{
		preferred: preferred,
		current:   preferred,
	}
}

// Preferred returns the preferred size.
func (b *Box) Preferred() geometry.Size {
	return b.preferred
}

// SetPreferred replaces the preferred size.
func (b *Box) SetPreferred(s geometry.Size) {
	b.preferred = s
}

// SetPreferredAlong replaces the preferred dimension on one axis.
func (b *Box) SetPreferredAlong(a geometry.Axis, v float64) {
	b.preferred = b.preferred.WithAlong(a, v)
}

// Current returns the current (solved) size.
func (b *Box) Current() geometry.Size {
	return b.current
}

// SetCurrent replaces the current size.
func (b *Box) SetCurrent(s geometry.Size) {
	b.current = s
}

// SetCurrentAlong replaces the current dimension on one axis.
func (b *Box) SetCurrentAlong(a geometry.Axis, v float64) {
	b.current = b.current.WithAlong(a, v)
}

// ResetCurrentAlong restores the current dimension on one axis to the
// preferred dimension. The solver requires this before every run.
func (b *Box) ResetCurrentAlong(a geometry.Axis) {
	b.current = b.current.WithAlong(a, b.preferred.Along(a))
}

// Position returns the offset from the parent's origin.
// For an unparented box it is the absolute position.
func (b *Box) Position() geometry.Offset {
	return b.position
}

// SetPosition replaces the relative position.
func (b *Box) SetPosition(p geometry.Offset) {
	b.position = p
}

// SetPositionAlong replaces the relative position on one axis.
func (b *Box) SetPositionAlong(a geometry.Axis, v float64) {
	b.position = b.position.WithAlong(a, v)
}

// Minimum returns the lower size limit on the given axis.
func (b *Box) Minimum(a geometry.Axis) Limit {
	return b.minimum[a]
}

// SetMinimum replaces the lower size limit on the given axis.
func (b *Box) SetMinimum(a geometry.Axis, l Limit) {
	b.minimum[a] = l
}

// Maximum returns the upper size limit on the given axis.
func (b *Box) Maximum(a geometry.Axis) Limit {
	return b.maximum[a]
}

// SetMaximum replaces the upper size limit on the given axis.
func (b *Box) SetMaximum(a geometry.Axis, l Limit) {
	b.maximum[a] = l
}

// Behavior returns the size behavior on the given axis.
func (b *Box) Behavior(a geometry.Axis) Behavior {
	return b.behavior[a]
}

// SetBehavior replaces both axis behaviors at once.
func (b *Box) SetBehavior(horizontal, vertical Behavior) {
	b.behavior[geometry.Horizontal] = horizontal
	b.behavior[geometry.Vertical] = vertical
}

// SetBehaviorAlong replaces the size behavior on one axis.
func (b *Box) SetBehaviorAlong(a geometry.Axis, v Behavior) {
	b.behavior[a] = v
}

// IsFixed reports whether both axes are Fixed. Boxes that are not fully
// fixed get their rendered content regenerated after a realign.
func (b *Box) IsFixed() bool {
	return b.behavior[geometry.Horizontal] == Fixed && b.behavior[geometry.Vertical] == Fixed
}

// GrowCeiling returns the effective upper bound for growth on the axis.
// ok is false when growth is unbounded.
func (b *Box) GrowCeiling(a geometry.Axis) (limit float64, ok bool) {
	m := b.maximum[a]
	return m.value, m.bounded
}

// ShrinkFloor returns the effective lower bound for shrinking on the axis.
// An unset minimum floors at zero; sizes are never negative.
func (b *Box) ShrinkFloor(a geometry.Axis) float64 {
	m := b.minimum[a]
	if m.bounded {
		return m.value
	}
	return 0
}

// Rect returns the box's rectangle at the given absolute origin.
func (b *Box) Rect(origin geometry.Offset) geometry.Rect {
	p := origin.Add(b.position)
	return geometry.RectFromLTWH(p.X, p.Y, b.current.Width, b.current.Height)
}
