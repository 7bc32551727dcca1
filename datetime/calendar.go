package datetime

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Period boundaries
//
// "End" boundaries are one unit after the start minus one millisecond, so
// EndOfDay is 23:59:59.999.
// ─────────────────────────────────────────────────────────────────────────────

const endOffset = time.Millisecond

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 on t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-endOffset)
}

// StartOfWeek returns midnight on the Monday of t's ISO week.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1-ISOWeekday(t))
}

// EndOfWeek returns 23:59:59.999 on the Sunday of t's ISO week.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-endOffset)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns 23:59:59.999 on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-endOffset)
}

// StartOfYear returns midnight on January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns 23:59:59.999 on December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-endOffset)
}

// ─────────────────────────────────────────────────────────────────────────────
// Calendar information
// ─────────────────────────────────────────────────────────────────────────────

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfYear returns the 1-based ordinal day of t within its year.
func DayOfYear(t time.Time) int { return t.YearDay() }

// QuarterOfYear returns 1..4 for the quarter containing t.
func QuarterOfYear(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// WeekOfYear returns the ISO-8601 week number of t (1..53). Days in early
// January can belong to the last week of the previous year, and days in
// late December to week 1 of the next; use [ISOWeek] to get the matching
// year.
func WeekOfYear(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ISOWeek returns the ISO-8601 week-numbering year and week of t.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// Age returns the number of whole years between birth and now: the
// difference in years, less one when the anniversary has not yet been
// reached this year.
func Age(birth time.Time, clk ...Clock) int {
	ref := now(clk).In(birth.Location())
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// ─────────────────────────────────────────────────────────────────────────────
// Seasons
// ─────────────────────────────────────────────────────────────────────────────

// Season is a Northern Hemisphere meteorological-astronomical season.
type Season int

const (
	// Winter starts on December 21.
	Winter Season = iota
	// Spring starts on March 20.
	Spring
	// Summer starts on June 21.
	Summer
	// Autumn starts on September 23.
	Autumn
)

// String returns the lower-case season name.
func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	}
	return "unknown"
}

var seasonStarts = []struct {
	month  time.Month
	day    int
	season Season
}{
	{time.December, 21, Winter},
	{time.September, 23, Autumn},
	{time.June, 21, Summer},
	{time.March, 20, Spring},
}

// SeasonOf returns the season containing t. Each boundary date belongs to
// the season it starts: March 20 is spring, March 19 is winter.
func SeasonOf(t time.Time) Season {
	m, d := t.Month(), t.Day()
	for _, s := range seasonStarts {
		if m > s.month || (m == s.month && d >= s.day) {
			return s.season
		}
	}
	return Winter
}
