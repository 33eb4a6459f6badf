package uitest

import (
	"time"

	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/layout"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Driver pumps scripted input frames through a tree, standing in for the
// render loop a real application owns. Queue events, move the mouse,
// advance the clock, then Pump one frame.
type Driver struct {
	root  layout.Node
	clock *FakeClock
	mouse geometry.Offset
	queue []platform.Event
}

// NewDriver creates a driver over a tree root.
func NewDriver(root layout.Node) *Driver {
	return &Driver{root: root, clock: NewFakeClock()}
}

// Clock returns the driver's clock.
func (d *Driver) Clock() *FakeClock {
	return d.clock
}

// Queue appends events to the next frame's batch.
func (d *Driver) Queue(events ...platform.Event) {
	d.queue = append(d.queue, events...)
}

// MoveMouse sets the polled mouse position sample.
func (d *Driver) MoveMouse(to geometry.Offset) {
	d.mouse = to
}

// Advance moves the clock forward.
func (d *Driver) Advance(dur time.Duration) {
	d.clock.Advance(dur)
}

// Pump delivers the queued events as one frame and updates the tree.
func (d *Driver) Pump() error {
	frame := platform.Frame{
		Events: d.queue,
		Mouse:  d.mouse,
		Now:    d.clock.Now(),
	}
	d.queue = nil
	return d.root.Update(&frame)
}

// ClickAt queues a left press and release at the position and moves the
// mouse there.
func (d *Driver) ClickAt(pos geometry.Offset) {
	d.MoveMouse(pos)
	d.Queue(
		platform.MouseButtonDownEvent{Button: platform.MouseButtonLeft, Position: pos},
		platform.MouseButtonUpEvent{Button: platform.MouseButtonLeft, Position: pos},
	)
}

// PressAt queues a left press at the position and moves the mouse there.
func (d *Driver) PressAt(pos geometry.Offset) {
	d.MoveMouse(pos)
	d.Queue(platform.MouseButtonDownEvent{Button: platform.MouseButtonLeft, Position: pos})
}

// ReleaseAt queues a left release at the position and moves the mouse
// there.
func (d *Driver) ReleaseAt(pos geometry.Offset) {
	d.MoveMouse(pos)
	d.Queue(platform.MouseButtonUpEvent{Button: platform.MouseButtonLeft, Position: pos})
}

// TypeText queues a composed text event.
func (d *Driver) TypeText(s string) {
	d.Queue(platform.TextInputEvent{Text: s})
}

// TapKey queues a key press and release.
func (d *Driver) TapKey(key platform.Key, mods platform.Modifiers) {
	d.Queue(
		platform.KeyDownEvent{Key: key, Mods: mods},
		platform.KeyUpEvent{Key: key, Mods: mods},
	)
}

// Render draws the tree onto a fresh surface of the given size.
func (d *Driver) Render(size geometry.Size) *platform.ImageSurface {
	target := platform.NewImageSurface(size)
	d.root.Render(target)
	return target
}
