package platform

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-lucid/lucid/pkg/geometry"
)

// Surface is an opaque alpha-capable 2D pixel sink. The core draws into it
// and blits child surfaces onto it but never inspects its contents.
type Surface interface {
	Size() geometry.Size
	Clear()
	FillRect(r geometry.Rect, c color.Color)
	StrokeRect(r geometry.Rect, c color.Color)
	Line(from, to geometry.Offset, c color.Color)
	Blit(src Surface, at geometry.Offset)
}

// imageProvider exposes the backing pixels of a surface for blitting.
type imageProvider interface {
	Image() *image.RGBA
}

// ImageSurface is the in-process Surface implementation over an RGBA buffer.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a transparent surface of the given size.
// Fractional dimensions round up so content is never clipped.
func NewImageSurface(size geometry.Size) *ImageSurface {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing pixel buffer.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() geometry.Size {
	b := s.img.Bounds()
	return geometry.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear resets every pixel to transparent.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect fills the rectangle with the color, compositing over existing
// content.
func (s *ImageSurface) FillRect(r geometry.Rect, c color.Color) {
	draw.Draw(s.img, clipRect(r, s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect draws a one-pixel outline of the rectangle.
func (s *ImageSurface) StrokeRect(r geometry.Rect, c color.Color) {
	left, top := int(r.Left), int(r.Top)
	right, bottom := int(r.Right), int(r.Bottom)
	s.FillRect(geometry.Rect{Left: float64(left), Top: float64(top), Right: float64(right), Bottom: float64(top + 1)}, c)
	s.FillRect(geometry.Rect{Left: float64(left), Top: float64(bottom - 1), Right: float64(right), Bottom: float64(bottom)}, c)
	s.FillRect(geometry.Rect{Left: float64(left), Top: float64(top), Right: float64(left + 1), Bottom: float64(bottom)}, c)
	s.FillRect(geometry.Rect{Left: float64(right - 1), Top: float64(top), Right: float64(right), Bottom: float64(bottom)}, c)
}

// Line draws a one-pixel line between two points.
func (s *ImageSurface) Line(from, to geometry.Offset, c color.Color) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		x := int(math.Round(from.X + dx*t))
		y := int(math.Round(from.Y + dy*t))
		if image.Pt(x, y).In(s.img.Bounds()) {
			s.img.Set(x, y, c)
		}
	}
}

// Blit composites another surface onto this one at the given offset.
// Sources that do not expose pixels are skipped; the sink contract is
// best-effort like the other collaborators.
func (s *ImageSurface) Blit(src Surface, at geometry.Offset) {
	provider, ok := src.(imageProvider)
	if !ok {
		return
	}
	srcImg := provider.Image()
	dst := srcImg.Bounds().Add(image.Pt(int(at.X), int(at.Y)))
	draw.Draw(s.img, dst, srcImg, srcImg.Bounds().Min, draw.Over)
}

// clipRect converts a geometry rect to an image rect clipped to bounds.
func clipRect(r geometry.Rect, bounds image.Rectangle) image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)).Intersect(bounds)
}
