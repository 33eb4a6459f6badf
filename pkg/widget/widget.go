// Package widget implements the interactive leaves of the tree: the shared
// input and surface machinery plus the stock Button, Label and TextInput.
package widget

import (
	"time"

	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/layout"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Painter paints a widget's content into its cached surface. The surface is
// sized to the widget's current size and cleared before each paint.
type Painter interface {
	Paint(target platform.Surface)
}

// HoverHandler receives mouse enter and leave edges.
type HoverHandler interface {
	MouseEnter(pos geometry.Offset)
	MouseLeave(pos geometry.Offset)
}

// PressHandler receives press and release transitions of the left button.
type PressHandler interface {
	MousePress(pos geometry.Offset)
	MouseRelease(pos geometry.Offset)
}

// DoubleClickHandler receives double clicks.
type DoubleClickHandler interface {
	MouseDoubleClick(pos geometry.Offset)
}

// FocusHandler receives focus transitions.
type FocusHandler interface {
	FocusGained()
	FocusLost()
}

// Widget carries the state machinery every interactive leaf shares: the
// box, hover and press tracking, double-click timing, focus membership and
// the lazily regenerated content surface. Concrete widgets embed it and
// register themselves with Init; capability interfaces they implement are
// picked up from there.
type Widget struct {
	box     box.Box
	parent  layout.Parent
	visible bool

	hovered bool
	pressed [platform.MouseButtonCount]bool

	doubleClickWindow time.Duration
	lastPressed       time.Time

	focus *Focus

	painter     Painter
	hover       HoverHandler
	press       PressHandler
	doubleClick DoubleClickHandler
	focusNotify FocusHandler

	surface    platform.Surface
	needsPaint bool
}

// Init prepares an embedded Widget and registers the outer widget's
// capabilities. Concrete constructors call it once with the outer type.
func (w *Widget) Init(self any, preferred geometry.Size) {
	w.box = box.New(preferred)
	w.visible = true
	w.doubleClickWindow = 500 * time.Millisecond
	w.focus = SharedFocus()
	w.needsPaint = true

	w.painter, _ = self.(Painter)
	w.hover, _ = self.(HoverHandler)
	w.press, _ = self.(PressHandler)
	w.doubleClick, _ = self.(DoubleClickHandler)
	w.focusNotify, _ = self.(FocusHandler)
}

// Box returns the widget's geometric state.
func (w *Widget) Box() *box.Box { return &w.box }

// Visible reports whether the widget takes part in layout and rendering.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible shows or hides the widget. Hiding dirties the parent so the
// remaining siblings reflow.
func (w *Widget) SetVisible(v bool) {
	if w.visible == v {
		return
	}
	w.visible = v
	if w.parent != nil {
		w.parent.RequestRealign()
	}
}

// Parent returns the containing layout, or nil.
func (w *Widget) Parent() layout.Parent { return w.parent }

// AttachParent installs the containing layout.
func (w *Widget) AttachParent(p layout.Parent) { w.parent = p }

// AbsolutePosition returns the widget's absolute position.
func (w *Widget) AbsolutePosition() geometry.Offset {
	if w.parent == nil {
		return w.box.Position()
	}
	return w.parent.AbsoluteOf(w.box.Position())
}

// AbsoluteRect returns the widget's absolute bounding rectangle.
func (w *Widget) AbsoluteRect() geometry.Rect {
	p := w.AbsolutePosition()
	return geometry.RectFromLTWH(p.X, p.Y, w.box.Current().Width, w.box.Current().Height)
}

// Hovered reports whether the mouse was inside the widget last frame.
func (w *Widget) Hovered() bool { return w.hovered }

// Pressed reports whether a left-button press started on the widget and
// has not been released.
func (w *Widget) Pressed() bool { return w.pressed[platform.MouseButtonLeft] }

// PressedButton reports whether the given button's press started on the
// widget and has not been released.
func (w *Widget) PressedButton(b platform.MouseButton) bool {
	if b < 0 || b >= platform.MouseButtonCount {
		return false
	}
	return w.pressed[b]
}

// Focused reports whether the widget owns the focus.
func (w *Widget) Focused() bool { return w.focus.Current() == w }

// RequestFocus makes the widget the focus owner.
func (w *Widget) RequestFocus() { w.focus.Request(w) }

// ReleaseFocus drops the focus if the widget owns it.
func (w *Widget) ReleaseFocus() { w.focus.Release(w) }

// SetFocusOwner rebinds the widget to a focus owner, for trees that do not
// share the process-wide one.
func (w *Widget) SetFocusOwner(f *Focus) {
	if f == nil {
		f = SharedFocus()
	}
	w.focus = f
}

// DoubleClickWindow returns the maximum delay between two presses that
// registers a double click.
func (w *Widget) DoubleClickWindow() time.Duration { return w.doubleClickWindow }

// SetDoubleClickWindow changes the double-click delay.
func (w *Widget) SetDoubleClickWindow(d time.Duration) { w.doubleClickWindow = d }

// Update advances hover, press, double-click and focus state by one frame.
func (w *Widget) Update(frame *platform.Frame) error {
	inside := w.AbsoluteRect().Contains(frame.Mouse)
	if inside && !w.hovered {
		if w.hover != nil {
			w.hover.MouseEnter(frame.Mouse)
		}
	} else if !inside && w.hovered {
		if w.hover != nil {
			w.hover.MouseLeave(frame.Mouse)
		}
	}
	w.hovered = inside

	for _, ev := range frame.Events {
		switch e := ev.(type) {
		case platform.MouseButtonDownEvent:
			if e.Button < 0 || e.Button >= platform.MouseButtonCount {
				continue
			}
			// Only the left button drives hooks, double clicks and
			// focus; the others just track their held state.
			if e.Button != platform.MouseButtonLeft {
				if w.hovered {
					w.pressed[e.Button] = true
				}
				continue
			}
			if !w.hovered {
				w.focus.Release(w)
				continue
			}
			if !w.lastPressed.IsZero() && frame.Now.Sub(w.lastPressed) < w.doubleClickWindow {
				// Reset so a third rapid press starts a fresh window.
				w.lastPressed = time.Time{}
				if w.doubleClick != nil {
					w.doubleClick.MouseDoubleClick(e.Position)
				}
			} else {
				w.lastPressed = frame.Now
			}
			w.pressed[e.Button] = true
			if w.press != nil {
				w.press.MousePress(e.Position)
			}
			w.focus.Request(w)

		case platform.MouseButtonUpEvent:
			if e.Button < 0 || e.Button >= platform.MouseButtonCount || !w.pressed[e.Button] {
				continue
			}
			w.pressed[e.Button] = false
			if e.Button == platform.MouseButtonLeft && w.press != nil {
				w.press.MouseRelease(e.Position)
			}
		}
	}
	return nil
}

// MarkNeedsPaint schedules a repaint of the cached surface before the next
// render.
func (w *Widget) MarkNeedsPaint() {
	w.needsPaint = true
}

// InvalidateSurface discards the cached surface entirely. Parents call it
// after resizing the widget.
func (w *Widget) InvalidateSurface() {
	w.surface = nil
	w.needsPaint = true
}

// Render blits the widget's surface onto the target, regenerating and
// repainting it first when needed. A widget with a degenerate current size
// renders nothing.
func (w *Widget) Render(target platform.Surface) {
	if !w.visible {
		return
	}
	if w.surface == nil {
		if !w.box.Current().Valid() {
			return
		}
		w.surface = platform.NewImageSurface(w.box.Current())
		w.needsPaint = true
	}
	if w.needsPaint {
		w.needsPaint = false
		w.surface.Clear()
		if w.painter != nil {
			w.painter.Paint(w.surface)
		}
	}
	target.Blit(w.surface, w.AbsolutePosition())
}

// notifyFocusGained forwards a focus gain to the widget's handler.
func (w *Widget) notifyFocusGained() {
	if w.focusNotify != nil {
		w.focusNotify.FocusGained()
	}
}

// notifyFocusLost forwards a focus loss to the widget's handler.
func (w *Widget) notifyFocusLost() {
	if w.focusNotify != nil {
		w.focusNotify.FocusLost()
	}
}
