package layout

import (
	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/errors"
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Realigner is implemented by concrete containers. Base calls it when the
// dirty flag is set during Update.
type Realigner interface {
	// PerformRealign recomputes child sizes and positions from the
	// container's current size.
	PerformRealign() error
}

// Base carries the tree plumbing shared by all containers: child
// bookkeeping, the realign dirty flag and frame traversal order. Concrete
// containers embed it and register themselves with SetSelf.
type Base struct {
	box      box.Box
	parent   Parent
	children []Node
	visible  bool

	needsRealign bool
	self         Realigner

	// Iterations records the solver pass count of the most recent
	// realign, for diagnostics.
	Iterations int
}

// Init prepares an embedded Base with a preferred size and registers the
// outer container as the realigner. Concrete constructors call it once.
// Containers default to Flex on both axes so a nested container tracks
// its parent's geometry; leaf widgets default to Fixed.
func (b *Base) Init(self Realigner, preferred geometry.Size) {
	b.box = box.New(preferred)
	b.box.SetBehavior(box.Flex, box.Flex)
	b.self = self
	b.visible = true
	b.needsRealign = true
}

// Box returns the container's geometric state.
func (b *Base) Box() *box.Box { return &b.box }

// Visible reports whether the container takes part in layout.
func (b *Base) Visible() bool { return b.visible }

// SetVisible shows or hides the container and its subtree.
func (b *Base) SetVisible(v bool) {
	if b.visible == v {
		return
	}
	b.visible = v
	if b.parent != nil {
		b.parent.RequestRealign()
	}
}

// Parent returns the containing layout, or nil for a root.
func (b *Base) Parent() Parent { return b.parent }

// AttachParent installs the containing layout.
func (b *Base) AttachParent(p Parent) { b.parent = p }

// AbsoluteOf converts a child-relative offset into an absolute offset.
func (b *Base) AbsoluteOf(rel geometry.Offset) geometry.Offset {
	return b.AbsolutePosition().Add(rel)
}

// AbsolutePosition returns the container's own absolute position.
func (b *Base) AbsolutePosition() geometry.Offset {
	if b.parent == nil {
		return b.box.Position()
	}
	return b.parent.AbsoluteOf(b.box.Position())
}

// RequestRealign marks the container for realignment on its next Update.
func (b *Base) RequestRealign() {
	b.needsRealign = true
}

// NeedsRealign reports whether a realign is pending.
func (b *Base) NeedsRealign() bool {
	return b.needsRealign
}

// InvalidateSurface propagates a size change into the subtree by forcing a
// realign; containers have no pixels of their own.
func (b *Base) InvalidateSurface() {
	b.RequestRealign()
}

// AddChild appends a node to the container. A node already held by another
// container is transferred; adding the same node twice is a caller bug.
func (b *Base) AddChild(n Node) error {
	for _, c := range b.children {
		if c == n {
			return errors.Usage("layout.Base.AddChild", "node added twice")
		}
	}
	if prev := n.Parent(); prev != nil {
		if pb, ok := prev.(interface{ detach(Node) }); ok {
			pb.detach(n)
		}
		prev.RequestRealign()
	}
	b.children = append(b.children, n)
	n.AttachParent(b)
	b.RequestRealign()
	return nil
}

// RemoveChild detaches a node from the container. Removing a node that was
// never added is a caller bug.
func (b *Base) RemoveChild(n Node) error {
	for i, c := range b.children {
		if c == n {
			b.children = append(b.children[:i], b.children[i+1:]...)
			n.AttachParent(nil)
			b.RequestRealign()
			return nil
		}
	}
	return errors.Usage("layout.Base.RemoveChild", "node was never added")
}

// detach removes a child without clearing its parent pointer; AddChild uses
// it when transferring a node between containers.
func (b *Base) detach(n Node) {
	for i, c := range b.children {
		if c == n {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// AddSpacer appends a fresh growing spacer and returns it.
func (b *Base) AddSpacer() *Spacer {
	s := NewSpacer()
	// A fresh spacer has no parent, so AddChild cannot fail.
	b.AddChild(s)
	return s
}

// ChildCount returns the number of children, visible or not.
func (b *Base) ChildCount() int {
	return len(b.children)
}

// VisitChildren calls fn for each child in insertion order.
func (b *Base) VisitChildren(fn func(Node)) {
	for _, c := range b.children {
		fn(c)
	}
}

// visibleChildren returns the children that participate in layout.
func (b *Base) visibleChildren() []Node {
	out := make([]Node, 0, len(b.children))
	for _, c := range b.children {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// Update advances the subtree by one frame. Nested containers update
// first so their sizes settle bottom-up, then a pending realign runs, then
// the leaf children update against the fresh geometry.
func (b *Base) Update(frame *platform.Frame) error {
	for _, c := range b.children {
		if !c.Visible() {
			continue
		}
		if _, nested := c.(Realigner); !nested {
			continue
		}
		if err := c.Update(frame); err != nil {
			return err
		}
	}
	if b.needsRealign {
		b.needsRealign = false
		if b.self != nil {
			if err := b.self.PerformRealign(); err != nil {
				errors.Report(&errors.LucidError{
					Op:   "layout.Base.Update",
					Kind: errors.KindInvariant,
					Err:  err,
				})
				return err
			}
		}
	}
	for _, c := range b.children {
		if !c.Visible() {
			continue
		}
		if _, nested := c.(Realigner); nested {
			continue
		}
		if err := c.Update(frame); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the visible children onto the target. A container whose own
// size is degenerate renders nothing.
func (b *Base) Render(target platform.Surface) {
	if !b.visible || !b.box.Current().Valid() {
		return
	}
	for _, c := range b.children {
		if c.Visible() {
			c.Render(target)
		}
	}
}
