package text

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestMeasureGrowsWithText(t *testing.T) {
	r := NewFaceRenderer(basicfont.Face7x13)
	short := r.Measure("ab")
	long := r.Measure("abcd")
	if long.Width <= short.Width {
		t.Errorf("longer text should measure wider: %v vs %v", long.Width, short.Width)
	}
	if short.Height <= 0 {
		t.Errorf("line height should be positive, got %v", short.Height)
	}
}

func TestSubstringWidthMonotonic(t *testing.T) {
	r := NewFaceRenderer(basicfont.Face7x13)
	s := "hello"
	prev := -1.0
	for i := 0; i <= len(s); i++ {
		w := r.SubstringWidth(s, i)
		if w < prev {
			t.Fatalf("substring width must be non-decreasing, got %v after %v at %d", w, prev, i)
		}
		prev = w
	}
	if r.SubstringWidth(s, 0) != 0 {
		t.Error("zero-length prefix has zero width")
	}
}

func TestSubstringWidthClampsIndex(t *testing.T) {
	r := NewFaceRenderer(basicfont.Face7x13)
	full := r.SubstringWidth("abc", 3)
	if r.SubstringWidth("abc", 99) != full {
		t.Error("over-length index clamps to the full string")
	}
	if r.SubstringWidth("abc", -1) != 0 {
		t.Error("negative index clamps to zero")
	}
}

func TestRenderProducesExactSizedSurface(t *testing.T) {
	r := NewFaceRenderer(basicfont.Face7x13)
	size := r.Measure("hi")
	surface := r.Render("hi", color.Black, true)
	got := surface.Size()
	if got.Width < size.Width || got.Height < size.Height {
		t.Errorf("surface %v smaller than measurement %v", got, size)
	}
}

func TestRenderEmptyString(t *testing.T) {
	r := NewFaceRenderer(basicfont.Face7x13)
	surface := r.Render("", color.Black, true)
	if surface.Size().Width != 0 {
		t.Errorf("empty text renders a zero-width surface, got %v", surface.Size())
	}
}
