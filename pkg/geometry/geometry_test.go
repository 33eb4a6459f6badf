package geometry

import "testing"

func TestSizeAlong(t *testing.T) {
	s := Size{Width: 30, Height: 70}
	if s.Along(Horizontal) != 30 {
		t.Errorf("expected width 30, got %v", s.Along(Horizontal))
	}
	if s.Along(Vertical) != 70 {
		t.Errorf("expected height 70, got %v", s.Along(Vertical))
	}
}

func TestSizeAlongInvalidAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for axis outside {Horizontal, Vertical}")
		}
	}()
	s := Size{Width: 1, Height: 1}
	s.Along(Axis(2))
}

func TestSizeValid(t *testing.T) {
	if (Size{Width: 0, Height: 10}).Valid() {
		t.Error("zero width should not be valid")
	}
	if (Size{Width: 10, Height: -1}).Valid() {
		t.Error("negative height should not be valid")
	}
	if !(Size{Width: 1, Height: 1}).Valid() {
		t.Error("positive size should be valid")
	}
}

func TestAxisCross(t *testing.T) {
	if Horizontal.Cross() != Vertical {
		t.Error("cross of horizontal should be vertical")
	}
	if Vertical.Cross() != Horizontal {
		t.Error("cross of vertical should be horizontal")
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if !r.Contains(Offset{X: 10, Y: 20}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Offset{X: 110, Y: 30}) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(Offset{X: 9, Y: 30}) {
		t.Error("point left of rect should be outside")
	}
}
