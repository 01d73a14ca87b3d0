package core

import "time"

// Interval reports when a fixed wall-clock interval has elapsed. It is polled
// from the frame loop rather than driven by its own goroutine.
type Interval struct {
	period  time.Duration
	last    time.Time
	started bool
}

// NewInterval constructs an Interval with the given period. Non-positive
// periods fall back to one second.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{}
	iv.SetPeriod(period)
	return iv
}

// Seconds converts a floating point number of seconds to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Period returns the configured interval.
func (iv *Interval) Period() time.Duration { return iv.period }

// SetPeriod changes the interval. It is safe to call from the main loop.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second
	}
	iv.period = period
}

// Reset makes the next Due call start a fresh interval from now.
func (iv *Interval) Reset(now time.Time) {
	iv.last = now
	iv.started = true
}

// Due reports whether a full period has passed since the last time Due
// returned true. At most one period is consumed per call; a long stall does
// not produce a burst of catch-up steps.
func (iv *Interval) Due(now time.Time) bool {
	if !iv.started {
		iv.Reset(now)
		return false
	}
	elapsed := now.Sub(iv.last)
	if elapsed < iv.period {
		return false
	}
	if elapsed >= 2*iv.period {
		iv.last = now
	} else {
		iv.last = iv.last.Add(iv.period)
	}
	return true
}
