package datetime

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Relative to now
// ─────────────────────────────────────────────────────────────────────────────

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time, clk ...Clock) bool {
	return IsSameDay(t, now(clk).In(t.Location()))
}

// IsYesterday reports whether t falls on the calendar day before today.
func IsYesterday(t time.Time, clk ...Clock) bool {
	return IsSameDay(t, now(clk).In(t.Location()).AddDate(0, 0, -1))
}

// IsTomorrow reports whether t falls on the calendar day after today.
func IsTomorrow(t time.Time, clk ...Clock) bool {
	return IsSameDay(t, now(clk).In(t.Location()).AddDate(0, 0, 1))
}

// IsPast reports whether t is before now.
func IsPast(t time.Time, clk ...Clock) bool { return t.Before(now(clk)) }

// IsFuture reports whether t is after now.
func IsFuture(t time.Time, clk ...Clock) bool { return t.After(now(clk)) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparing two times
// ─────────────────────────────────────────────────────────────────────────────

// IsSameYear reports whether a and b share the calendar year.
func IsSameYear(a, b time.Time) bool { return a.Year() == b.Year() }

// IsSameMonth reports whether a and b share year and month.
func IsSameMonth(a, b time.Time) bool {
	return IsSameYear(a, b) && a.Month() == b.Month()
}

// IsSameDay reports whether a and b share year, month and day.
func IsSameDay(a, b time.Time) bool {
	return IsSameMonth(a, b) && a.Day() == b.Day()
}

// IsSameHour reports whether a and b share the same day and hour.
func IsSameHour(a, b time.Time) bool {
	return IsSameDay(a, b) && a.Hour() == b.Hour()
}

// IsSameMinute reports whether a and b share the same hour and minute.
func IsSameMinute(a, b time.Time) bool {
	return IsSameHour(a, b) && a.Minute() == b.Minute()
}

// IsSameSecond reports whether a and b share the same minute and second.
func IsSameSecond(a, b time.Time) bool {
	return IsSameMinute(a, b) && a.Second() == b.Second()
}

// IsSameWeek reports whether a and b fall in the same ISO week.
func IsSameWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// IsBetween reports whether start <= t <= end.
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// IsAheadByDays reports whether t is at least days whole days after other.
func IsAheadByDays(t, other time.Time, days int) bool {
	return wholeDays(t.Sub(other)) >= days
}

// IsBehindByDays reports whether t is at least days whole days before
// other.
func IsBehindByDays(t, other time.Time, days int) bool {
	return wholeDays(other.Sub(t)) >= days
}

func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}

// ─────────────────────────────────────────────────────────────────────────────
// Weekdays & time of day
// ─────────────────────────────────────────────────────────────────────────────

// IsWeekend reports whether t is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports whether t is Monday through Friday.
func IsWeekday(t time.Time) bool { return !IsWeekend(t) }

// ISOWeekday returns the ISO-8601 day number of t: Monday = 1 .. Sunday = 7.
func ISOWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// TimeOfDay is a fixed band of the 24-hour day.
type TimeOfDay int

const (
	// Night is 23:00 to 05:59.
	Night TimeOfDay = iota
	// Morning is 06:00 to 11:59.
	Morning
	// Afternoon is 12:00 to 17:59.
	Afternoon
	// Evening is 18:00 to 22:59.
	Evening
)

// String returns the lower-case band name.
func (d TimeOfDay) String() string {
	switch d {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	case Night:
		return "night"
	}
	return "unknown"
}

// TimeOfDayOf returns the band containing the hour of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	case h >= 18 && h < 23:
		return Evening
	}
	return Night
}

// IsMorning reports whether t is in [06:00, 12:00).
func IsMorning(t time.Time) bool { return TimeOfDayOf(t) == Morning }

// IsAfternoon reports whether t is in [12:00, 18:00).
func IsAfternoon(t time.Time) bool { return TimeOfDayOf(t) == Afternoon }

// IsEvening reports whether t is in [18:00, 23:00).
func IsEvening(t time.Time) bool { return TimeOfDayOf(t) == Evening }

// IsNight reports whether t is in [23:00, 06:00).
func IsNight(t time.Time) bool { return TimeOfDayOf(t) == Night }
