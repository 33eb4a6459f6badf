package widget

import (
	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
	"github.com/go-lucid/lucid/pkg/text"
	"github.com/go-lucid/lucid/pkg/theme"
)

// Label is a non-interactive text widget. Setting the text can stretch the
// preferred size so the parent layout makes room for the content.
type Label struct {
	Widget

	content   string
	renderer  text.Renderer
	antialias bool
	theme     *theme.Theme
}

// NewLabel creates a label. A nil theme uses the default theme.
func NewLabel(renderer text.Renderer, content string, th *theme.Theme) *Label {
	if th == nil {
		th = theme.Default()
	}
	l := &Label{
		renderer:  renderer,
		antialias: true,
		theme:     th,
	}
	l.Init(l, geometry.Size{Width: 100, Height: 40})
	l.SetText(content)
	return l
}

// Text returns the label content.
func (l *Label) Text() string { return l.content }

// SetText changes the label content, stretching the preferred size when the
// measured text no longer fits and the size behavior permits it. The parent
// reflows on its next update.
func (l *Label) SetText(content string) {
	l.content = content
	l.stretchToFit()
	if p := l.Parent(); p != nil {
		p.RequestRealign()
	}
	l.MarkNeedsPaint()
}

// stretchToFit widens the preferred size to the measured text. Fixed axes
// keep the caller-chosen size; growing axes are already elastic.
func (l *Label) stretchToFit() {
	if l.renderer == nil {
		return
	}
	measured := l.renderer.Measure(l.content)
	b := l.Box()
	h := b.Behavior(geometry.Horizontal)
	if (h == box.Shrink || h == box.Flex) && measured.Width > b.Preferred().Width {
		b.SetPreferredAlong(geometry.Horizontal, measured.Width)
	}
	v := b.Behavior(geometry.Vertical)
	if v != box.Fixed && measured.Height > b.Preferred().Height {
		b.SetPreferredAlong(geometry.Vertical, measured.Height)
	}
}

// Paint draws the text left-aligned and vertically centered.
func (l *Label) Paint(target platform.Surface) {
	if l.renderer == nil || l.content == "" {
		return
	}
	rendered := l.renderer.Render(l.content, l.theme.Text.RGBA, l.antialias)
	size := l.Box().Current()
	target.Blit(rendered, geometry.Offset{Y: (size.Height - rendered.Size().Height) / 2})
}
