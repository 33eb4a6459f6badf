package platform

import (
	"image/color"
	"testing"

	"github.com/go-lucid/lucid/pkg/geometry"
)

func TestMemoryClipboardRoundTrip(t *testing.T) {
	var c MemoryClipboard
	if err := c.SetText("hello"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	got, err := c.GetText()
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestModifiersHas(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.Has(ModShift) || !m.Has(ModCtrl) || !m.Has(ModShift|ModCtrl) {
		t.Error("combined modifiers should report both")
	}
	if m.Has(ModAlt) {
		t.Error("alt is not held")
	}
}

func TestImageSurfaceFillRect(t *testing.T) {
	s := NewImageSurface(geometry.Size{Width: 10, Height: 10})
	red := color.RGBA{R: 255, A: 255}
	s.FillRect(geometry.RectFromLTWH(2, 2, 4, 4), red)

	if got := s.Image().RGBAAt(3, 3); got != red {
		t.Errorf("pixel inside fill should be red, got %v", got)
	}
	if got := s.Image().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside fill should stay transparent, got %v", got)
	}
}

func TestImageSurfaceBlitOffset(t *testing.T) {
	src := NewImageSurface(geometry.Size{Width: 2, Height: 2})
	blue := color.RGBA{B: 255, A: 255}
	src.FillRect(geometry.RectFromLTWH(0, 0, 2, 2), blue)

	dst := NewImageSurface(geometry.Size{Width: 10, Height: 10})
	dst.Blit(src, geometry.Offset{X: 4, Y: 5})

	if got := dst.Image().RGBAAt(4, 5); got != blue {
		t.Errorf("blitted pixel should be blue, got %v", got)
	}
	if got := dst.Image().RGBAAt(3, 5); got.A != 0 {
		t.Errorf("pixel left of blit should stay transparent, got %v", got)
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(geometry.Size{Width: 4, Height: 4})
	s.FillRect(geometry.RectFromLTWH(0, 0, 4, 4), color.RGBA{G: 255, A: 255})
	s.Clear()
	if got := s.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("cleared surface should be transparent, got %v", got)
	}
}

func TestImageSurfaceVerticalLine(t *testing.T) {
	s := NewImageSurface(geometry.Size{Width: 8, Height: 8})
	black := color.RGBA{A: 255}
	s.Line(geometry.Offset{X: 3, Y: 1}, geometry.Offset{X: 3, Y: 6}, black)
	for y := 1; y <= 6; y++ {
		if got := s.Image().RGBAAt(3, y); got != black {
			t.Errorf("line pixel at y=%d should be set, got %v", y, got)
		}
	}
}
