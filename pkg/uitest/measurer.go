package uitest

import (
	"image/color"

	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
)

// FixedMeasurer is a text renderer with a constant per-rune advance,
// making widths trivially predictable in tests. It renders blank surfaces
// of the measured size.
type FixedMeasurer struct {
	// Advance is the pixel width of every rune.
	Advance float64
	// LineHeight is the pixel height of every string.
	LineHeight float64
}

// NewFixedMeasurer returns a measurer with a 10px advance and 16px lines.
func NewFixedMeasurer() *FixedMeasurer {
	return &FixedMeasurer{Advance: 10, LineHeight: 16}
}

// Measure returns the fixed-advance dimensions of the string.
func (m *FixedMeasurer) Measure(text string) geometry.Size {
	return geometry.Size{
		Width:  float64(len([]rune(text))) * m.Advance,
		Height: m.LineHeight,
	}
}

// SubstringWidth returns the width of the first end runes.
func (m *FixedMeasurer) SubstringWidth(text string, end int) float64 {
	n := len([]rune(text))
	if end < 0 {
		end = 0
	}
	if end > n {
		end = n
	}
	return float64(end) * m.Advance
}

// Render returns an opaque surface of the measured size.
func (m *FixedMeasurer) Render(text string, c color.Color, antialias bool) platform.Surface {
	size := m.Measure(text)
	s := platform.NewImageSurface(size)
	if size.Valid() {
		s.FillRect(geometry.RectFromLTWH(0, 0, size.Width, size.Height), c)
	}
	return s
}
