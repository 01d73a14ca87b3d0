package sim

import (
	"time"

	"cube-ca/internal/core"
)

// Autoplay steps an engine on a wall-clock interval. It is polled once per
// frame; it never runs on its own goroutine.
type Autoplay struct {
	engine  *Engine
	clock   *core.Interval
	enabled bool
}

// NewAutoplay returns a disabled autoplay driver for e.
func NewAutoplay(e *Engine, interval time.Duration) *Autoplay {
	return &Autoplay{engine: e, clock: core.NewInterval(interval)}
}

// Enabled reports whether timed stepping is on.
func (a *Autoplay) Enabled() bool { return a.enabled }

// SetEnabled turns timed stepping on or off. Turning it on starts a fresh
// interval at now.
func (a *Autoplay) SetEnabled(on bool, now time.Time) {
	if on && !a.enabled {
		a.clock.Reset(now)
	}
	a.enabled = on
}

// Toggle flips the enabled state.
func (a *Autoplay) Toggle(now time.Time) { a.SetEnabled(!a.enabled, now) }

// Interval returns the time between generations.
func (a *Autoplay) Interval() time.Duration { return a.clock.Period() }

// SetInterval changes the time between generations.
func (a *Autoplay) SetInterval(d time.Duration) { a.clock.SetPeriod(d) }

// Tick steps the engine once if autoplay is enabled and the interval has
// elapsed. It reports whether a step happened.
func (a *Autoplay) Tick(now time.Time) bool {
	if !a.enabled || !a.clock.Due(now) {
		return false
	}
	a.engine.StepGeneration()
	return true
}
