package widget

import (
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/hook"
	"github.com/go-lucid/lucid/pkg/platform"
	"github.com/go-lucid/lucid/pkg/text"
	"github.com/go-lucid/lucid/pkg/theme"
)

// Button is a push button with a centered caption.
//
// Hooks: Pressed fires on button-down, Released and Clicked on button-up.
type Button struct {
	Widget

	Pressed  hook.Hook
	Released hook.Hook
	Clicked  hook.Hook

	caption   string
	renderer  text.Renderer
	antialias bool
	theme     *theme.Theme
}

// NewButton creates a button. A nil theme uses the default theme.
func NewButton(renderer text.Renderer, caption string, th *theme.Theme) *Button {
	if th == nil {
		th = theme.Default()
	}
	b := &Button{
		caption:   caption,
		renderer:  renderer,
		antialias: true,
		theme:     th,
	}
	b.Init(b, geometry.Size{Width: 130, Height: 40})
	b.SetDoubleClickWindow(th.DoubleClickWindow.Std())
	return b
}

// Caption returns the button text.
func (b *Button) Caption() string { return b.caption }

// SetCaption changes the button text.
func (b *Button) SetCaption(caption string) {
	if b.caption == caption {
		return
	}
	b.caption = caption
	b.MarkNeedsPaint()
}

// Paint draws the border and the centered caption.
func (b *Button) Paint(target platform.Surface) {
	size := b.Box().Current()
	target.FillRect(geometry.RectFromLTWH(0, 0, size.Width, size.Height), b.theme.Background.RGBA)

	border := b.theme.Border
	if b.Hovered() {
		border = b.theme.FocusBorder
	}
	target.StrokeRect(geometry.RectFromLTWH(0, 0, size.Width, size.Height), border.RGBA)

	if b.renderer == nil || b.caption == "" {
		return
	}
	rendered := b.renderer.Render(b.caption, b.theme.Text.RGBA, b.antialias)
	ts := rendered.Size()
	target.Blit(rendered, geometry.Offset{
		X: (size.Width - ts.Width) / 2,
		Y: (size.Height - ts.Height) / 2,
	})
}

// MouseEnter repaints with the hover border.
func (b *Button) MouseEnter(pos geometry.Offset) { b.MarkNeedsPaint() }

// MouseLeave repaints with the resting border.
func (b *Button) MouseLeave(pos geometry.Offset) { b.MarkNeedsPaint() }

// MousePress fires Pressed.
func (b *Button) MousePress(pos geometry.Offset) {
	b.Pressed.Emit()
}

// MouseRelease fires Released then Clicked.
func (b *Button) MouseRelease(pos geometry.Offset) {
	b.Released.Emit()
	b.Clicked.Emit()
}
