package layout

import (
	"math"
	"testing"

	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/geometry"
)

func solverBox(w, h float64, horizontal box.Behavior) *box.Box {
	b := box.New(geometry.Size{Width: w, Height: h})
	b.SetBehaviorAlong(geometry.Horizontal, horizontal)
	return &b
}

func TestSolveConservesAvailableSpace(t *testing.T) {
	boxes := []*box.Box{
		solverBox(100, 20, box.Grow),
		solverBox(100, 20, box.Grow),
		solverBox(100, 20, box.Grow),
	}
	if _, err := Solve(boxes, 500, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	sum := 0.0
	for _, b := range boxes {
		sum += b.Current().Width
	}
	if math.Abs(sum-500) > Epsilon {
		t.Errorf("solved sizes should sum to the available length, got %v", sum)
	}
}

func TestSolveMixesFixedAndGrowing(t *testing.T) {
	fixed := solverBox(80, 20, box.Fixed)
	growing := solverBox(100, 20, box.Grow)
	if _, err := Solve([]*box.Box{fixed, growing}, 300, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if fixed.Current().Width != 80 {
		t.Errorf("fixed box must keep its preferred size, got %v", fixed.Current().Width)
	}
	if math.Abs(growing.Current().Width-220) > Epsilon {
		t.Errorf("growing box should absorb the leftover, got %v", growing.Current().Width)
	}
}

func TestSolveClampsAtMaximum(t *testing.T) {
	capped := solverBox(100, 20, box.Grow)
	capped.SetMaximum(geometry.Horizontal, box.LimitOf(120))
	open := solverBox(100, 20, box.Grow)

	if _, err := Solve([]*box.Box{capped, open}, 500, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if capped.Current().Width > 120+Epsilon {
		t.Errorf("capped box escaped its maximum: %v", capped.Current().Width)
	}
	if math.Abs(open.Current().Width-380) > Epsilon {
		t.Errorf("unbounded box should take what the capped one declined, got %v", open.Current().Width)
	}
}

func TestSolveShrinkRespectsMinimum(t *testing.T) {
	floored := solverBox(100, 20, box.Shrink)
	floored.SetMinimum(geometry.Horizontal, box.LimitOf(90))
	free := solverBox(100, 20, box.Shrink)

	if _, err := Solve([]*box.Box{floored, free}, 120, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if floored.Current().Width < 90-Epsilon {
		t.Errorf("floored box shrank past its minimum: %v", floored.Current().Width)
	}
	if free.Current().Width < -Epsilon {
		t.Errorf("size went negative: %v", free.Current().Width)
	}
	sum := floored.Current().Width + free.Current().Width
	if math.Abs(sum-120) > Epsilon {
		t.Errorf("solved sizes should sum to the available length, got %v", sum)
	}
}

func TestSolveShrinkFloorsAtZero(t *testing.T) {
	b := solverBox(50, 20, box.Shrink)
	if _, err := Solve([]*box.Box{b}, -100, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if b.Current().Width != 0 {
		t.Errorf("unset minimum floors shrink at zero, got %v", b.Current().Width)
	}
}

func TestSolveZeroMaximumIsAHardCap(t *testing.T) {
	pinned := solverBox(0, 20, box.Grow)
	pinned.SetMaximum(geometry.Horizontal, box.LimitOf(0))
	open := solverBox(0, 20, box.Grow)

	if _, err := Solve([]*box.Box{pinned, open}, 200, geometry.Horizontal); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if pinned.Current().Width != 0 {
		t.Errorf("a bounded zero cap pins the box at zero, got %v", pinned.Current().Width)
	}
	if math.Abs(open.Current().Width-200) > Epsilon {
		t.Errorf("unbounded box should take everything, got %v", open.Current().Width)
	}
}

func TestSolveIdempotentAfterReset(t *testing.T) {
	run := func() []float64 {
		boxes := []*box.Box{
			solverBox(60, 20, box.Grow),
			solverBox(90, 20, box.Fixed),
			solverBox(40, 20, box.Flex),
		}
		boxes[0].SetMaximum(geometry.Horizontal, box.LimitOf(100))
		if _, err := Solve(boxes, 400, geometry.Horizontal); err != nil {
			t.Fatalf("Solve: %v", err)
		}
		out := make([]float64, len(boxes))
		for i, b := range boxes {
			out[i] = b.Current().Width
		}
		return out
	}
	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("box %d: %v then %v, identical inputs must solve identically", i, first[i], second[i])
		}
	}
}

func TestSolveIgnoresLimitsOfUntouchedBoxes(t *testing.T) {
	// A deficit pass only resizes shrinkable boxes. The growing box keeps
	// its preferred size even though that size exceeds its own maximum;
	// that is the caller's geometry, not a solver result.
	over := solverBox(100, 20, box.Grow)
	over.SetMaximum(geometry.Horizontal, box.LimitOf(50))
	giving := solverBox(100, 20, box.Shrink)

	if _, err := Solve([]*box.Box{over, giving}, 150, geometry.Horizontal); err != nil {
		t.Fatalf("untouched box tripped the limit check: %v", err)
	}
	if over.Current().Width != 100 {
		t.Errorf("ineligible box must keep its preferred size, got %v", over.Current().Width)
	}
	if math.Abs(giving.Current().Width-50) > Epsilon {
		t.Errorf("shrinkable box should absorb the whole deficit, got %v", giving.Current().Width)
	}
}

func TestSolveNoEligibleBoxesLeavesPreferred(t *testing.T) {
	a := solverBox(100, 20, box.Fixed)
	b := solverBox(100, 20, box.Fixed)
	iterations, err := Solve([]*box.Box{a, b}, 500, geometry.Horizontal)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if iterations != 0 {
		t.Errorf("nothing to distribute to, expected 0 passes, got %d", iterations)
	}
	if a.Current().Width != 100 || b.Current().Width != 100 {
		t.Error("fixed boxes must stay at preferred size")
	}
}
