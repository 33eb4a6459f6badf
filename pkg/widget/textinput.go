package widget

import (
	"strings"
	"time"

	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/hook"
	"github.com/go-lucid/lucid/pkg/platform"
	"github.com/go-lucid/lucid/pkg/text"
	"github.com/go-lucid/lucid/pkg/theme"
)

// TextInput is a single-line text editor with cursor, selection and a
// horizontally scrolling viewport over the text. Editing happens only while
// focused; click to focus, click outside to unfocus.
//
// Hooks: Submitted fires when Return is pressed; the text is unchanged.
type TextInput struct {
	Widget

	Submitted hook.Hook

	// AllowCopy and AllowPaste gate the clipboard shortcuts.
	AllowCopy  bool
	AllowPaste bool

	renderer  text.Renderer
	clipboard platform.Clipboard
	theme     *theme.Theme
	antialias bool
	padding   float64

	runes       []rune
	placeholder string
	cursor      int

	scroll float64

	blinkInterval time.Duration
	blinkLast     time.Time
	blinkHidden   bool

	// Selection state: selecting marks a mouse drag in progress,
	// shiftExtending a shift+arrow extension, selectionDone a finalized
	// range. Endpoints are rune indices, -1 when no selection exists;
	// selStart is the anchor, so selEnd may be smaller.
	selecting      bool
	shiftExtending bool
	selectionDone  bool
	selStart       int
	selEnd         int
}

// NewTextInput creates a text input. A nil theme uses the default theme;
// a nil clipboard disables copy and paste.
func NewTextInput(renderer text.Renderer, clipboard platform.Clipboard, th *theme.Theme) *TextInput {
	if th == nil {
		th = theme.Default()
	}
	t := &TextInput{
		AllowCopy:     true,
		AllowPaste:    true,
		renderer:      renderer,
		clipboard:     clipboard,
		theme:         th,
		antialias:     true,
		padding:       th.Padding,
		blinkInterval: th.BlinkInterval.Std(),
		selStart:      -1,
		selEnd:        -1,
	}
	t.Init(t, geometry.Size{Width: 130, Height: 40})
	t.SetDoubleClickWindow(th.DoubleClickWindow.Std())
	return t
}

// Text returns the current content.
func (t *TextInput) Text() string { return string(t.runes) }

// SetText replaces the content, clearing any selection and clamping the
// cursor to the new length.
func (t *TextInput) SetText(s string) {
	t.runes = []rune(strings.ReplaceAll(strings.ReplaceAll(s, "\r", ""), "\n", ""))
	if t.cursor > len(t.runes) {
		t.cursor = len(t.runes)
	}
	t.Unselect()
	t.scrollBack()
	t.MarkNeedsPaint()
}

// Placeholder returns the text shown while the content is empty.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder changes the placeholder text.
func (t *TextInput) SetPlaceholder(s string) {
	t.placeholder = s
	t.MarkNeedsPaint()
}

// CursorPos returns the cursor position as a rune index.
func (t *TextInput) CursorPos() int { return t.cursor }

// ScrollOffset returns the viewport's horizontal scroll in pixels.
func (t *TextInput) ScrollOffset() float64 { return t.scroll }

// Selection returns the selected text. Only a finalized selection is
// extractable; an in-progress drag returns "".
func (t *TextInput) Selection() string {
	if !t.selectionDone || t.selStart == -1 {
		return ""
	}
	start, end := t.normalizedSelection()
	return string(t.runes[start:end])
}

// SelectAll selects the whole content and finalizes immediately.
func (t *TextInput) SelectAll() {
	t.selStart = 0
	t.selEnd = len(t.runes)
	t.selecting = true
	t.selectionDone = true
	t.MarkNeedsPaint()
}

// Unselect drops any selection, in progress or finalized.
func (t *TextInput) Unselect() {
	t.selecting = false
	t.shiftExtending = false
	t.selectionDone = false
	t.selStart = -1
	t.selEnd = -1
}

// Clear empties the content.
func (t *TextInput) Clear() {
	t.runes = nil
	t.cursor = 0
	t.Unselect()
	t.scrollBack()
	t.blinkHidden = false
	t.MarkNeedsPaint()
}

// dragging reports an in-progress mouse selection, during which keyboard
// editing is suspended.
func (t *TextInput) dragging() bool {
	return t.selecting && !t.selectionDone
}

// hasSelection reports a finalized selection ready for replace or copy.
func (t *TextInput) hasSelection() bool {
	return t.selectionDone && t.selStart != -1 && t.selEnd != -1
}

// normalizedSelection orders the endpoints so start <= end.
func (t *TextInput) normalizedSelection() (start, end int) {
	if t.selStart > t.selEnd {
		return t.selEnd, t.selStart
	}
	return t.selStart, t.selEnd
}

// Update advances the editing state machine by one frame.
func (t *TextInput) Update(frame *platform.Frame) error {
	if err := t.Widget.Update(frame); err != nil {
		return err
	}

	if t.Focused() {
		if t.blinkLast.IsZero() {
			t.blinkLast = frame.Now
		} else if frame.Now.Sub(t.blinkLast) > t.blinkInterval {
			t.blinkLast = frame.Now
			t.blinkHidden = !t.blinkHidden
			t.MarkNeedsPaint()
		}
	}

	if !t.Focused() {
		return nil
	}

	for _, ev := range frame.Events {
		switch e := ev.(type) {
		case platform.TextInputEvent:
			if t.dragging() {
				continue
			}
			t.resetBlink(frame.Now)
			t.insert(e.Text)
			t.MarkNeedsPaint()

		case platform.KeyDownEvent:
			if t.dragging() {
				continue
			}
			t.handleKey(e, frame.Now)

		case platform.KeyUpEvent:
			if e.Key == platform.KeyShift && t.shiftExtending {
				t.selectionDone = true
			}

		case platform.MouseButtonDownEvent:
			if e.Button != platform.MouseButtonLeft || !t.Hovered() {
				continue
			}
			x := e.Position.X - t.AbsolutePosition().X
			if i := t.indexAt(x); i != -1 {
				t.resetBlink(frame.Now)
				t.cursor = i
				t.selecting = true
				t.selectionDone = false
				t.selStart = i
				t.selEnd = i
				t.MarkNeedsPaint()
			}

		case platform.MouseButtonUpEvent:
			if e.Button != platform.MouseButtonLeft {
				continue
			}
			if t.selStart == t.selEnd {
				// A click without a drag selects nothing.
				t.Unselect()
			} else if t.selecting {
				t.selectionDone = true
				t.MarkNeedsPaint()
			}
		}
	}

	if t.dragging() {
		x := frame.Mouse.X - t.AbsolutePosition().X
		if i := t.indexAt(x); i != -1 {
			t.cursor = i
			t.selEnd = i
			t.MarkNeedsPaint()
		}
	}
	return nil
}

// handleKey processes one key press while focused and not mid-drag.
func (t *TextInput) handleKey(e platform.KeyDownEvent, now time.Time) {
	switch e.Key {
	case platform.KeyBackspace:
		t.resetBlink(now)
		if len(t.runes) == 0 {
			return
		}
		switch {
		case t.hasSelection():
			t.deleteSelection()
		case e.Mods.Has(platform.ModCtrl):
			t.deleteRange(t.wordLeft(), t.cursor)
		case t.cursor > 0:
			t.deleteRange(t.cursor-1, t.cursor)
		}

	case platform.KeyC:
		if t.AllowCopy && t.clipboard != nil && e.Mods.Has(platform.ModCtrl) && t.hasSelection() {
			// Best effort; a failed clipboard write is ignored.
			_ = t.clipboard.SetText(t.Selection())
		}

	case platform.KeyV:
		if t.AllowPaste && t.clipboard != nil && e.Mods.Has(platform.ModCtrl) {
			clip, err := t.clipboard.GetText()
			if err != nil {
				return
			}
			clip = strings.ReplaceAll(strings.ReplaceAll(clip, "\r", ""), "\n", "")
			if clip == "" {
				return
			}
			t.resetBlink(now)
			t.insert(clip)
		}

	case platform.KeyLeft:
		t.resetBlink(now)
		if t.hasSelection() {
			t.Unselect()
			break
		}
		t.beginShiftExtend(e.Mods)
		if e.Mods.Has(platform.ModCtrl) {
			t.cursor = t.wordLeft()
		} else {
			t.cursor--
		}
		if t.cursor < 0 {
			t.cursor = 0
		}
		t.endShiftExtend(e.Mods)
		t.scrollBack()

	case platform.KeyRight:
		t.resetBlink(now)
		if t.hasSelection() {
			t.Unselect()
			break
		}
		t.beginShiftExtend(e.Mods)
		if e.Mods.Has(platform.ModCtrl) {
			t.cursor = t.wordRight()
		} else {
			t.cursor++
		}
		if t.cursor > len(t.runes) {
			t.cursor = len(t.runes)
		}
		t.endShiftExtend(e.Mods)
		t.scrollForward()

	case platform.KeyA:
		if e.Mods.Has(platform.ModCtrl) {
			t.SelectAll()
		}

	case platform.KeyReturn:
		t.Unselect()
		t.Submitted.Emit()

	case platform.KeyHome:
		if len(t.runes) == 0 {
			return
		}
		t.resetBlink(now)
		t.Unselect()
		t.cursor = 0
		t.scrollBack()

	case platform.KeyEnd:
		if len(t.runes) == 0 {
			return
		}
		t.resetBlink(now)
		t.Unselect()
		t.cursor = len(t.runes)
		t.scrollForward()

	default:
		return
	}
	t.MarkNeedsPaint()
}

// beginShiftExtend anchors a shift selection at the pre-move cursor.
func (t *TextInput) beginShiftExtend(mods platform.Modifiers) {
	if mods.Has(platform.ModShift) && !t.shiftExtending {
		t.shiftExtending = true
		t.selStart = t.cursor
	}
}

// endShiftExtend extends the shift selection to the post-move cursor.
func (t *TextInput) endShiftExtend(mods platform.Modifiers) {
	if mods.Has(platform.ModShift) && t.shiftExtending {
		t.selEnd = t.cursor
	}
}

// insert places s at the cursor, replacing any finalized selection. The
// cursor lands immediately after the inserted content.
func (t *TextInput) insert(s string) {
	in := []rune(s)
	if t.hasSelection() {
		start, end := t.normalizedSelection()
		oldX := t.prefixWidth(end)

		out := make([]rune, 0, len(t.runes)-(end-start)+len(in))
		out = append(out, t.runes[:start]...)
		out = append(out, in...)
		out = append(out, t.runes[end:]...)
		t.runes = out
		t.cursor = start + len(in)
		t.Unselect()

		if t.scroll > 0 {
			t.scroll -= oldX - t.prefixWidth(t.cursor)
			if t.scroll < 0 {
				t.scroll = 0
			}
		}
		return
	}

	out := make([]rune, 0, len(t.runes)+len(in))
	out = append(out, t.runes[:t.cursor]...)
	out = append(out, in...)
	out = append(out, t.runes[t.cursor:]...)
	t.runes = out
	t.cursor += len(in)
	t.scrollForward()
}

// deleteSelection removes the selected range; the cursor lands at its
// start.
func (t *TextInput) deleteSelection() {
	start, end := t.normalizedSelection()
	oldX := t.prefixWidth(end)

	t.runes = append(t.runes[:start:start], t.runes[end:]...)
	t.cursor = start
	t.Unselect()
	t.retreatScroll(oldX)
}

// deleteRange removes runes in [start, end); the cursor lands at start.
func (t *TextInput) deleteRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(t.runes) || start >= end {
		return
	}
	oldX := t.prefixWidth(t.cursor)
	t.runes = append(t.runes[:start:start], t.runes[end:]...)
	t.cursor = start
	t.retreatScroll(oldX)
}

// retreatScroll pulls the viewport back by the pixels a deletion removed
// before the cursor, clamped at zero.
func (t *TextInput) retreatScroll(oldCursorX float64) {
	if t.scroll > 0 {
		t.scroll -= oldCursorX - t.prefixWidth(t.cursor)
		if t.scroll < 0 {
			t.scroll = 0
		}
	}
}

// wordLeft returns the previous word boundary: trailing spaces before the
// cursor are skipped, then the scan stops just after the prior space, or 0.
func (t *TextInput) wordLeft() int {
	i := t.cursor
	for i > 0 && t.runes[i-1] == ' ' {
		i--
	}
	for i > 0 && t.runes[i-1] != ' ' {
		i--
	}
	return i
}

// wordRight returns the next word boundary: the first non-space after the
// next space run, or the end of the text.
func (t *TextInput) wordRight() int {
	i := t.cursor
	for i < len(t.runes) && t.runes[i] != ' ' {
		i++
	}
	for i < len(t.runes) && t.runes[i] == ' ' {
		i++
	}
	return i
}

// prefixWidth measures the pixel width of the first end runes.
func (t *TextInput) prefixWidth(end int) float64 {
	if t.renderer == nil {
		return 0
	}
	return t.renderer.SubstringWidth(string(t.runes), end)
}

// viewportWidth is the visible text width inside the padding.
func (t *TextInput) viewportWidth() float64 {
	return t.Box().Current().Width - t.padding*2
}

// scrollForward advances the viewport when the cursor passed its right
// edge.
func (t *TextInput) scrollForward() {
	cursorX := t.prefixWidth(t.cursor)
	if overflow := cursorX - t.scroll - t.viewportWidth(); overflow > 0 {
		t.scroll += overflow
	}
}

// scrollBack retreats the viewport when the cursor moved left of its left
// edge.
func (t *TextInput) scrollBack() {
	if cursorX := t.prefixWidth(t.cursor); cursorX < t.scroll {
		t.scroll = cursorX
	}
}

// indexAt maps a widget-local x coordinate to the nearest rune boundary,
// or -1 when the coordinate hits no boundary.
func (t *TextInput) indexAt(x float64) int {
	if len(t.runes) == 0 {
		return -1
	}
	c := x + t.scroll
	var left, right float64
	for i := 0; i < len(t.runes); i++ {
		left = t.prefixWidth(i) + t.padding
		right = t.prefixWidth(i+1) + t.padding
		mid := c + (right-left)/2
		if left < mid && mid < right {
			return i
		}
	}
	if left < c {
		return len(t.runes)
	}
	return -1
}

// resetBlink restarts the blink timer with the cursor visible.
func (t *TextInput) resetBlink(now time.Time) {
	t.blinkLast = now
	t.blinkHidden = false
}

// FocusGained restarts the blink cycle.
func (t *TextInput) FocusGained() {
	t.blinkHidden = false
	t.MarkNeedsPaint()
}

// FocusLost clears the selection.
func (t *TextInput) FocusLost() {
	t.Unselect()
	t.MarkNeedsPaint()
}

// Paint draws the selection highlight, the scrolled text or placeholder,
// the cursor and the border.
func (t *TextInput) Paint(target platform.Surface) {
	size := t.Box().Current()

	if (t.selecting || t.shiftExtending) && t.selStart != -1 && t.selEnd != -1 {
		start, end := t.normalizedSelection()
		selX := t.prefixWidth(start)
		selW := t.prefixWidth(end) - selX
		target.FillRect(geometry.RectFromLTWH(
			selX+t.padding-t.scroll,
			t.padding,
			selW,
			size.Height-t.padding*2,
		), t.theme.Selection.RGBA)
	}

	if t.renderer != nil {
		if len(t.runes) == 0 {
			if t.placeholder != "" {
				rendered := t.renderer.Render(t.placeholder, t.theme.Placeholder.RGBA, t.antialias)
				target.Blit(rendered, geometry.Offset{
					X: t.padding,
					Y: (size.Height - rendered.Size().Height) / 2,
				})
			}
		} else {
			rendered := t.renderer.Render(string(t.runes), t.theme.Text.RGBA, t.antialias)
			// Clip the scrolled text to the padded viewport.
			viewport := platform.NewImageSurface(geometry.Size{
				Width:  size.Width - t.padding*2,
				Height: size.Height - t.padding*2,
			})
			viewport.Blit(rendered, geometry.Offset{
				X: -t.scroll,
				Y: (viewport.Size().Height - rendered.Size().Height) / 2,
			})
			target.Blit(viewport, geometry.Offset{X: t.padding, Y: t.padding})
		}
	}

	if t.Focused() && !t.blinkHidden {
		x := t.padding + t.prefixWidth(t.cursor) - t.scroll
		target.Line(
			geometry.Offset{X: x, Y: t.padding},
			geometry.Offset{X: x, Y: size.Height - t.padding},
			t.theme.Text.RGBA,
		)
	}

	border := t.theme.Border
	if t.Focused() {
		border = t.theme.FocusBorder
	}
	target.StrokeRect(geometry.RectFromLTWH(0, 0, size.Width, size.Height), border.RGBA)
}
