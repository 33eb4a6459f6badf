package animation

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Unix(1000, 0)

// step feeds the tween the frame timestamp at the given offset from t0.
func step(tw *Tween, at time.Duration) {
	tw.Update(t0.Add(at))
}

func TestTweenInterpolatesLinearly(t *testing.T) {
	tw := NewTween(10, 20)
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 250*time.Millisecond)

	if math.Abs(tw.Value()-12.5) > 1e-9 {
		t.Errorf("quarter progress of 10..20 is 12.5, got %v", tw.Value())
	}
	step(tw, time.Second)
	if tw.Value() != 20 {
		t.Errorf("full progress reaches the end value, got %v", tw.Value())
	}
	if tw.IsPlaying() {
		t.Error("a non-repeating tween stops at the end")
	}
}

func TestTweenReversePlaysFromEnd(t *testing.T) {
	tw := NewTween(0, 100)
	tw.PlayReverse(time.Second)
	if tw.Value() != 100 {
		t.Errorf("reverse play starts at the end value, got %v", tw.Value())
	}
	step(tw, 0)
	step(tw, 250*time.Millisecond)
	if math.Abs(tw.Value()-75) > 1e-9 {
		t.Errorf("reverse quarter progress, got %v", tw.Value())
	}
	step(tw, time.Second)
	if tw.Value() != 0 || tw.IsPlaying() {
		t.Errorf("reverse play ends stopped at the start value, got %v", tw.Value())
	}
}

func TestTweenLoopWrapsAround(t *testing.T) {
	tw := NewTween(0, 100)
	tw.Repeat = RepeatLoop
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 1250*time.Millisecond)

	if math.Abs(tw.Value()-25) > 1e-9 {
		t.Errorf("overshoot wraps to the start, got %v", tw.Value())
	}
	if !tw.IsPlaying() {
		t.Error("a looping tween keeps playing past the end")
	}
}

func TestTweenBounceReflects(t *testing.T) {
	tw := NewTween(0, 100)
	tw.Repeat = RepeatBounce
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 1250*time.Millisecond)

	if math.Abs(tw.Value()-75) > 1e-9 {
		t.Errorf("overshoot reflects off the end, got %v", tw.Value())
	}
	step(tw, 1500*time.Millisecond)
	if math.Abs(tw.Value()-50) > 1e-9 {
		t.Errorf("a bounced tween moves back toward the start, got %v", tw.Value())
	}
}

func TestTweenStopFreezesValue(t *testing.T) {
	tw := NewTween(0, 100)
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 500*time.Millisecond)
	frozen := tw.Value()

	tw.Stop()
	step(tw, 900*time.Millisecond)
	if tw.Value() != frozen {
		t.Errorf("a stopped tween must not advance, got %v after %v", tw.Value(), frozen)
	}
}

func TestTweenUpdateBeforePlayIsNoOp(t *testing.T) {
	tw := NewTween(5, 10)
	step(tw, time.Second)
	if tw.Value() != 5 || tw.IsPlaying() {
		t.Errorf("an unplayed tween holds its start value, got %v", tw.Value())
	}
}

func TestTweenEmitsChangedOnValueChange(t *testing.T) {
	tw := NewTween(0, 100)
	emitted := 0
	tw.Changed.Connect(func() { emitted++ })

	tw.Play(time.Second)
	step(tw, 0)
	if emitted != 0 {
		t.Errorf("the reference sample produces no value change, got %d emissions", emitted)
	}
	step(tw, 250*time.Millisecond)
	if emitted != 1 {
		t.Errorf("one advance, one emission, got %d", emitted)
	}
	step(tw, 250*time.Millisecond)
	step(tw, 250*time.Millisecond)
	if emitted != 3 {
		t.Errorf("each advance emits once, got %d", emitted)
	}
}

func TestTweenAppliesEasing(t *testing.T) {
	tw := NewTween(0, 100)
	tw.Easing = EaseInCubic
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 500*time.Millisecond)

	if math.Abs(tw.Value()-12.5) > 1e-9 {
		t.Errorf("cubic ease-in at half progress is 0.125, got value %v", tw.Value())
	}
}

func TestTweenSetRangeRescalesValue(t *testing.T) {
	tw := NewTween(0, 10)
	tw.Play(time.Second)
	step(tw, 0)
	step(tw, 500*time.Millisecond)

	tw.SetRange(0, 100)
	if math.Abs(tw.Value()-50) > 1e-9 {
		t.Errorf("half progress over the new range, got %v", tw.Value())
	}
}

func TestEasingsCoverTheUnitRange(t *testing.T) {
	curves := map[string]Easing{
		"linear":         Linear,
		"ease-in-sine":   EaseInSine,
		"ease-out-sine":  EaseOutSine,
		"ease-in-out":    EaseInOutSine,
		"ease-in-cubic":  EaseInCubic,
		"ease-out-cubic": EaseOutCubic,
		"in-out-cubic":   EaseInOutCubic,
	}
	for name, e := range curves {
		if math.Abs(e(0)) > 1e-9 {
			t.Errorf("%s must map 0 to 0, got %v", name, e(0))
		}
		if math.Abs(e(1)-1) > 1e-9 {
			t.Errorf("%s must map 1 to 1, got %v", name, e(1))
		}
	}
	if got := EaseInCubic(0.5); got != 0.125 {
		t.Errorf("cubic ease-in midpoint, got %v", got)
	}
	if got := EaseOutCubic(0.5); got != 0.875 {
		t.Errorf("cubic ease-out midpoint, got %v", got)
	}
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("sine in-out midpoint, got %v", got)
	}
}
