package engine

import (
	"math/rand"
	"time"
)

// Timer is a scheduled deadline checked once per tick, never awaited
// It re-arms itself after firing using its interval source
type Timer struct {
	next     time.Time
	interval func() time.Duration
	armed    bool
}

// NewFixedTimer creates a timer that re-arms with a constant interval
func NewFixedTimer(d time.Duration) *Timer {
	return &Timer{interval: func() time.Duration { return d }}
}

// NewRandomTimer creates a timer that re-arms with a uniform interval in [min, max]
func NewRandomTimer(rng *rand.Rand, min, max time.Duration) *Timer {
	span := int64(max - min)
	return &Timer{interval: func() time.Duration {
		if span <= 0 {
			return min
		}
		return min + time.Duration(rng.Int63n(span+1))
	}}
}

// Arm schedules the next deadline relative to now
func (t *Timer) Arm(now time.Time) {
	t.next = now.Add(t.interval())
	t.armed = true
}

// Disarm stops the timer until the next Arm
func (t *Timer) Disarm() {
	t.armed = false
}

// Due reports whether the deadline has been reached at now
// When due, the timer re-arms from now, so it fires at most once per check
func (t *Timer) Due(now time.Time) bool {
	if !t.armed || now.Before(t.next) {
		return false
	}
	t.Arm(now)
	return true
}

// Next returns the pending deadline; zero when disarmed
func (t *Timer) Next() time.Time {
	if !t.armed {
		return time.Time{}
	}
	return t.next
}
