// Package text provides the text measurement and rendering collaborator.
// Widgets consume it for pixel-width queries and rendered text surfaces;
// nothing in the core assumes monospaced glyphs.
package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Measurer answers pixel-size queries for text. Indices are rune indices,
// matching the cursor and selection positions of the editing state machine.
type Measurer interface {
	// Measure returns the pixel dimensions of the whole string.
	Measure(text string) geometry.Size
	// SubstringWidth returns the pixel width of the first end runes.
	SubstringWidth(text string, end int) float64
}

// Renderer measures and rasterizes text.
type Renderer interface {
	Measurer
	// Render draws the string into a fresh surface of exact pixel
	// dimensions. Antialiasing is advisory; faces without coverage
	// information render aliased regardless.
	Render(text string, c color.Color, antialias bool) platform.Surface
}

// FaceRenderer implements Renderer over a font.Face.
type FaceRenderer struct {
	face font.Face
}

// NewFaceRenderer wraps a font face.
func NewFaceRenderer(face font.Face) *FaceRenderer {
	return &FaceRenderer{face: face}
}

// Measure returns the advance width and line height of the string.
func (r *FaceRenderer) Measure(text string) geometry.Size {
	metrics := r.face.Metrics()
	return geometry.Size{
		Width:  fixedToFloat(font.MeasureString(r.face, text)),
		Height: fixedToFloat(metrics.Height),
	}
}

// SubstringWidth returns the advance width of the first end runes.
// Out-of-range indices clamp to the string bounds.
func (r *FaceRenderer) SubstringWidth(text string, end int) float64 {
	runes := []rune(text)
	if end < 0 {
		end = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	return fixedToFloat(font.MeasureString(r.face, string(runes[:end])))
}

// Render rasterizes the string into a surface sized to its measurement.
func (r *FaceRenderer) Render(text string, c color.Color, antialias bool) platform.Surface {
	size := r.Measure(text)
	surface := platform.NewImageSurface(size)
	if !size.Valid() {
		return surface
	}
	drawer := font.Drawer{
		Dst:  surface.Image(),
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: 0, Y: r.face.Metrics().Ascent},
	}
	drawer.DrawString(text)
	return surface
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
