// Package platform defines the contracts of the external collaborators the
// core consumes: the per-frame input event batch, the clipboard, and the
// drawing surface. The windowing glue that produces frames and presents
// surfaces lives outside this module.
package platform

import (
	"time"

	"github.com/go-lucid/lucid/pkg/geometry"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight

	// MouseButtonCount bounds per-button state arrays.
	MouseButtonCount
)

// Key identifies the keys the core reacts to. Backends map their native
// key codes onto these; unmapped keys arrive as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyReturn
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyA
	KeyC
	KeyV
	KeyX
	KeyShift
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all the given modifiers are held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Event is one input event in a frame's batch.
type Event interface {
	isEvent()
}

// QuitEvent signals that the application should shut down.
type QuitEvent struct{}

// KeyDownEvent reports a key press with the modifiers held at press time.
type KeyDownEvent struct {
	Key  Key
	Mods Modifiers
}

// KeyUpEvent reports a key release.
type KeyUpEvent struct {
	Key  Key
	Mods Modifiers
}

// TextInputEvent carries a composed character string from the keyboard.
type TextInputEvent struct {
	Text string
}

// MouseButtonDownEvent reports a button press at a position in window space.
type MouseButtonDownEvent struct {
	Button   MouseButton
	Position geometry.Offset
}

// MouseButtonUpEvent reports a button release.
type MouseButtonUpEvent struct {
	Button   MouseButton
	Position geometry.Offset
}

// MouseWheelEvent reports precise scroll deltas.
type MouseWheelEvent struct {
	DeltaX float64
	DeltaY float64
}

// WindowResizeEvent reports the new window dimensions.
type WindowResizeEvent struct {
	Width  float64
	Height float64
}

func (QuitEvent) isEvent()            {}
func (KeyDownEvent) isEvent()         {}
func (KeyUpEvent) isEvent()           {}
func (TextInputEvent) isEvent()       {}
func (MouseButtonDownEvent) isEvent() {}
func (MouseButtonUpEvent) isEvent()   {}
func (MouseWheelEvent) isEvent()      {}
func (WindowResizeEvent) isEvent()    {}

// Frame is the ordered input batch delivered once per update pass, together
// with the polled mouse position sample and the frame timestamp. All
// time-based logic (double-click window, cursor blink) compares against Now
// rather than the wall clock, which keeps it deterministic under test.
type Frame struct {
	Events []Event
	Mouse  geometry.Offset
	Now    time.Time
}

// EventSource supplies one frame of input per update pass.
type EventSource interface {
	NextFrame() Frame
}
