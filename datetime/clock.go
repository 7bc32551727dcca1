package datetime

import "time"

// Clock supplies the current instant. Every helper that compares against
// "now" takes an optional trailing Clock so tests can freeze time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock via time.Now.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
//
//	clk := datetime.FixedClock(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
//	datetime.IsToday(t, clk)
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// now resolves the optional clock argument, falling back to the system
// clock.
func now(clk []Clock) time.Time {
	if len(clk) > 0 && clk[0] != nil {
		return clk[0].Now()
	}
	return time.Now()
}
