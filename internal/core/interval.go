package core

import "time"

// Clock supplies the current time. The platform passes time.Now; tests
// inject a fake to drive the gate deterministically.
type Clock func() time.Time

// Interval is a fixed-rate gate pacing simulation ticks independently of
// rendering and input polling. Elapsed time is measured from the last
// fired tick rather than a fixed origin, so the rate does not drift.
// Missed ticks are not coalesced: a poll is binary due/not-due.
type Interval struct {
	clock  Clock
	last   time.Time
	period time.Duration
}

// NewInterval creates a gate firing tps ticks per second, measured
// against the wall clock.
func NewInterval(tps int) *Interval {
	return NewIntervalWithClock(tps, time.Now)
}

// NewIntervalWithClock creates a gate using the supplied clock.
func NewIntervalWithClock(tps int, clock Clock) *Interval {
	return &Interval{
		clock:  clock,
		last:   clock(),
		period: time.Second / time.Duration(tps),
	}
}

// Period returns the fixed tick period.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Poll reports whether a tick is due. A tick is due once the time since
// the last fired tick exceeds the period; the gate then resets to the
// current instant. When not due, wakeAt is the earliest instant worth
// polling again, so the caller can idle instead of busy-looping.
func (iv *Interval) Poll() (due bool, wakeAt time.Time) {
	now := iv.clock()
	sinceLast := now.Sub(iv.last)
	if sinceLast > iv.period {
		iv.last = now
		return true, now
	}
	return false, now.Add(iv.period - sinceLast)
}
