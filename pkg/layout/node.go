// Package layout implements the container side of the toolkit: the node
// tree contract, the size constraint solver and the stack container that
// arranges children along one axis.
package layout

import (
	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Parent is the upward view a node has of its container. It resolves
// absolute coordinates and accepts realign requests when a child's
// geometry inputs change.
type Parent interface {
	// AbsoluteOf converts an offset relative to this container into an
	// absolute offset.
	AbsoluteOf(rel geometry.Offset) geometry.Offset
	// RequestRealign marks the container for realignment on its next
	// Update.
	RequestRealign()
}

// Node is one participant in the tree: a widget leaf or a nested
// container. A node belongs to at most one parent at a time.
type Node interface {
	// Box returns the node's geometric state. Parents mutate it directly
	// during realignment.
	Box() *box.Box
	// Visible reports whether the node participates in layout and
	// rendering. Hidden nodes are excluded as if absent.
	Visible() bool
	// Parent returns the current container, or nil for a root.
	Parent() Parent
	// AttachParent installs or clears the node's container. Called by
	// containers only.
	AttachParent(p Parent)
	// Update advances the node by one frame.
	Update(frame *platform.Frame) error
	// Render draws the node onto the target surface.
	Render(target platform.Surface)
	// InvalidateSurface discards any rendered content that depends on the
	// node's current size, forcing regeneration.
	InvalidateSurface()
}

// Spacer is an empty, invisible-content node that grows on both axes.
// Stacks use it to push siblings apart under non-centered alignment.
type Spacer struct {
	box     box.Box
	parent  Parent
	visible bool
}

// NewSpacer returns a zero-sized, unbounded growing spacer.
func NewSpacer() *Spacer {
	s := &Spacer{visible: true}
	s.box.SetBehavior(box.Grow, box.Grow)
	return s
}

// Box returns the spacer's geometric state.
func (s *Spacer) Box() *box.Box { return &s.box }

// Visible reports whether the spacer takes part in layout.
func (s *Spacer) Visible() bool { return s.visible }

// SetVisible shows or hides the spacer.
func (s *Spacer) SetVisible(v bool) {
	if s.visible == v {
		return
	}
	s.visible = v
	if s.parent != nil {
		s.parent.RequestRealign()
	}
}

// Parent returns the containing layout, or nil.
func (s *Spacer) Parent() Parent { return s.parent }

// AttachParent installs the containing layout.
func (s *Spacer) AttachParent(p Parent) { s.parent = p }

// Update is a no-op; spacers have no behavior.
func (s *Spacer) Update(frame *platform.Frame) error { return nil }

// Render is a no-op; spacers have no content.
func (s *Spacer) Render(target platform.Surface) {}

// InvalidateSurface is a no-op; spacers have no surface.
func (s *Spacer) InvalidateSurface() {}
