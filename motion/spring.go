package motion

import (
	"math"
	"time"
)

const (
	minSpringDuration = 150 * time.Millisecond
	maxSpringDuration = 2 * time.Second
)

// Spring describes a physical spring. CSS has no spring timing function, so it is
// approximated by a duration and a cubic-bezier easing.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// Duration returns the approximate settle time, 8/damping seconds, clamped to
// [150ms, 2s]. A non-positive damping never settles and yields the maximum.
func (s Spring) Duration() time.Duration {
	if s.Damping <= 0 {
		return maxSpringDuration
	}
	d := time.Duration(8 / s.Damping * float64(time.Second))
	return min(max(d, minSpringDuration), maxSpringDuration)
}

// DampingRatio returns damping / (2 * sqrt(stiffness)) for a unit mass.
func (s Spring) DampingRatio() float64 {
	if s.Stiffness <= 0 {
		return 1
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness))
}

// Easing returns a CSS easing. Under-damped springs overshoot their target.
func (s Spring) Easing() string {
	if s.DampingRatio() < 1 {
		return "cubic-bezier(0.34, 1.56, 0.64, 1)"
	}
	return "cubic-bezier(0.22, 1, 0.36, 1)"
}
