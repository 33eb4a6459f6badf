package animation

import "math"

// Easing remaps normalized tween progress in [0, 1]. The identity mapping
// is Linear; the sine and cubic families accelerate or decelerate motion
// toward one or both ends.
type Easing func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// EaseInSine starts slowly and accelerates.
func EaseInSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

// EaseOutSine starts quickly and decelerates.
func EaseOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseInOutSine eases on both ends with a sine profile.
func EaseInOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// EaseInCubic starts slowly with a cubic profile.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates with a cubic profile.
func EaseOutCubic(t float64) float64 {
	c := 1 - t
	return 1 - c*c*c
}

// EaseInOutCubic eases on both ends with a cubic profile.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	c := -2*t + 2
	return 1 - c*c*c/2
}
