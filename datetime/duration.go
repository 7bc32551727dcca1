package datetime

import (
	"fmt"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Duration helpers
// ─────────────────────────────────────────────────────────────────────────────

// IsZeroDuration reports whether d == 0.
func IsZeroDuration(d time.Duration) bool { return d == 0 }

// IsNegativeDuration reports whether d < 0.
func IsNegativeDuration(d time.Duration) bool { return d < 0 }

// InWeeks returns the number of whole weeks in d (whole days / 7).
func InWeeks(d time.Duration) int64 {
	return int64(d/day) / 7
}

// Ago returns now minus d.
func Ago(d time.Duration, clk ...Clock) time.Time { return now(clk).Add(-d) }

// FromNow returns now plus d.
func FromNow(d time.Duration, clk ...Clock) time.Time { return now(clk).Add(d) }

type parts struct {
	neg bool

	days, hours, mins, secs  int64
	totalHours, totalMinutes int64
}

func split(d time.Duration) parts {
	p := parts{neg: d < 0}
	// Work in whole seconds so math.MinInt64 cannot overflow on negation.
	s := int64(d / time.Second)
	if s < 0 {
		s = -s
	}
	p.secs = s % 60
	p.totalMinutes = s / 60
	p.mins = p.totalMinutes % 60
	p.totalHours = p.totalMinutes / 60
	p.hours = p.totalHours % 24
	p.days = p.totalHours / 24
	return p
}

// Formatted renders the non-zero day, hour, minute and second components
// of d largest first, separated by spaces. Seconds are always shown when
// every larger component is zero, and negative durations are prefixed
// with "-". Sub-second precision is dropped.
//
//	Formatted(time.Hour + 23*time.Minute + 45*time.Second) // "1h 23m 45s"
//	Formatted(0)                                          // "0s"
//	Formatted(-90 * time.Minute)                          // "-1h 30m"
func Formatted(d time.Duration) string {
	p := split(d)
	var out []string
	for _, c := range []struct {
		n    int64
		unit string
	}{{p.days, "d"}, {p.hours, "h"}, {p.mins, "m"}} {
		if c.n != 0 {
			out = append(out, fmt.Sprintf("%d%s", c.n, c.unit))
		}
	}
	if p.secs != 0 || len(out) == 0 {
		out = append(out, fmt.Sprintf("%ds", p.secs))
	}
	s := strings.Join(out, " ")
	if p.neg && s != "0s" {
		return "-" + s
	}
	return s
}

// ToHhMmSs renders d as "HH:MM:SS". The hour field carries total hours and
// is not wrapped at 24.
//
//	ToHhMmSs(26*time.Hour + 5*time.Second) // "26:00:05"
func ToHhMmSs(d time.Duration) string {
	p := split(d)
	return sign(p) + fmt.Sprintf("%02d:%02d:%02d", p.totalHours, p.mins, p.secs)
}

// ToMmSs renders d as "MM:SS" with total minutes in the first field.
//
//	ToMmSs(65*time.Minute + 10*time.Second) // "65:10"
func ToMmSs(d time.Duration) string {
	p := split(d)
	return sign(p) + fmt.Sprintf("%02d:%02d", p.totalMinutes, p.secs)
}

func sign(p parts) string {
	if p.neg && (p.totalMinutes != 0 || p.secs != 0) {
		return "-"
	}
	return ""
}
