// Package animation interpolates values over time, driven by the frame
// timestamp rather than a background timer.
package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/go-lucid/lucid/pkg/hook"
)

// RepeatMode selects what a playing tween does when progress reaches an
// end of its range.
type RepeatMode int

const (
	// RepeatNone stops the tween at the end value.
	RepeatNone RepeatMode = iota
	// RepeatLoop wraps progress back to the start and keeps playing.
	RepeatLoop
	// RepeatBounce reflects progress at the end and plays back the other
	// way.
	RepeatBounce
)

// String returns a human-readable representation of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "none"
	case RepeatLoop:
		return "loop"
	case RepeatBounce:
		return "bounce"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

// Tween interpolates between two values over a fixed duration. Callers
// feed it the frame timestamp through Update once per frame; progress
// advances by the elapsed wall time between samples, so a paused frame
// loop pauses the tween with it.
//
// Easing and Repeat may be set any time before Play. The Changed hook
// fires whenever Update produces a new value.
type Tween struct {
	// Changed fires after every value change.
	Changed hook.Hook

	// Easing remaps normalized progress; nil means Linear.
	Easing Easing
	// Repeat selects the behavior at the ends of the range.
	Repeat RepeatMode

	start, end float64
	value      float64
	normalized float64

	alpha    float64
	duration time.Duration
	reverse  bool
	playing  bool
	last     time.Time
}

// NewTween creates a stopped tween holding its start value.
func NewTween(start, end float64) *Tween {
	return &Tween{start: start, end: end, value: start}
}

// Start returns the value at zero progress.
func (t *Tween) Start() float64 { return t.start }

// End returns the value at full progress.
func (t *Tween) End() float64 { return t.end }

// SetRange replaces both endpoint values and recomputes the current value
// from the current progress.
func (t *Tween) SetRange(start, end float64) {
	t.start = start
	t.end = end
	t.apply()
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 { return t.value }

// Normalized returns the current eased progress in [0, 1].
func (t *Tween) Normalized() float64 { return t.normalized }

// IsPlaying reports whether Update advances the tween.
func (t *Tween) IsPlaying() bool { return t.playing }

// Play starts the tween from the start value. The first Update after Play
// only takes the reference timestamp; motion begins on the second.
func (t *Tween) Play(duration time.Duration) {
	t.play(duration, false, 0)
}

// PlayReverse starts the tween from the end value, moving toward the
// start value.
func (t *Tween) PlayReverse(duration time.Duration) {
	t.play(duration, true, 1)
}

func (t *Tween) play(duration time.Duration, reverse bool, alpha float64) {
	if duration <= 0 {
		return
	}
	t.duration = duration
	t.reverse = reverse
	t.alpha = alpha
	t.playing = true
	t.last = time.Time{}
	t.apply()
}

// Stop freezes the tween at its current value.
func (t *Tween) Stop() {
	t.playing = false
	t.last = time.Time{}
}

// Update advances progress by the time elapsed since the previous sample.
// A stopped tween ignores it.
func (t *Tween) Update(now time.Time) {
	if !t.playing {
		return
	}
	if t.last.IsZero() {
		t.last = now
		return
	}
	step := now.Sub(t.last).Seconds() / t.duration.Seconds()
	t.last = now
	if t.reverse {
		step = -step
	}
	t.alpha += step

	if !t.reverse && t.alpha >= 1 {
		over := t.alpha - 1
		switch t.Repeat {
		case RepeatLoop:
			t.alpha = math.Mod(over, 1)
		case RepeatBounce:
			t.alpha = 1 - over
			t.reverse = true
		default:
			t.alpha = 1
			t.playing = false
		}
	} else if t.reverse && t.alpha <= 0 {
		under := -t.alpha
		switch t.Repeat {
		case RepeatLoop:
			t.alpha = 1 - math.Mod(under, 1)
		case RepeatBounce:
			t.alpha = under
			t.reverse = false
		default:
			t.alpha = 0
			t.playing = false
		}
	}
	t.apply()
}

// apply recomputes the eased value and emits Changed when it moved.
func (t *Tween) apply() {
	easing := t.Easing
	if easing == nil {
		easing = Linear
	}
	normalized := easing(t.alpha)
	value := t.start + normalized*(t.end-t.start)
	if normalized == t.normalized && value == t.value {
		return
	}
	t.normalized = normalized
	t.value = value
	t.Changed.Emit()
}
