package datetime

import "time"

// DaysUntil returns the signed number of whole days from t to target.
// Partial days are truncated toward zero.
func DaysUntil(t, target time.Time) int {
	return wholeDays(target.Sub(t))
}

// HoursUntil returns the signed number of whole hours from t to target.
func HoursUntil(t, target time.Time) int {
	return int(target.Sub(t) / time.Hour)
}

// AddWorkdays moves t by n weekdays, stepping one calendar day at a time
// and skipping Saturdays and Sundays. A negative n moves backwards. The
// time of day is kept.
//
//	AddWorkdays(friday, 1)  // the following Monday
//	AddWorkdays(monday, -1) // the previous Friday
func AddWorkdays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		t = t.AddDate(0, 0, step)
		if IsWeekday(t) {
			n--
		}
	}
	return t
}

// NextWeekday returns the first day strictly after t that falls on wd.
// When t is already on wd the result is one week later.
func NextWeekday(t time.Time, wd time.Weekday) time.Time {
	diff := (int(wd) - int(t.Weekday()) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return t.AddDate(0, 0, diff)
}

// PreviousWeekday returns the last day strictly before t that falls on wd.
func PreviousWeekday(t time.Time, wd time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(wd) + 7) % 7
	if diff == 0 {
		diff = 7
	}
	return t.AddDate(0, 0, -diff)
}

// AddMonthsClamped adds months to t, clamping the day to the length of the
// target month instead of overflowing into the next one.
//
//	AddMonthsClamped(jan31, 1) // Feb 29 in a leap year, not Mar 2
func AddMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := min(t.Day(), DaysInMonth(first.Year(), first.Month()))
	return first.AddDate(0, 0, day-1)
}
