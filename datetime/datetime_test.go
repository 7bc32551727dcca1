package datetime_test

import (
	"testing"
	"time"

	"github.com/hasbyte1/go-utility-belts/datetime"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

// noon on Tuesday 2024-03-05.
var clk = datetime.FixedClock(date(2024, time.March, 5, 12, 0, 0))

func assertTime(t *testing.T, name string, got, want time.Time) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s = %v; want %v", name, got, want)
	}
}

// ─── Relative predicates ──────────────────────────────────────────────────────

func TestRelativePredicates(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsToday early morning", datetime.IsToday(date(2024, 3, 5, 1, 0, 0), clk), true},
		{"IsToday next day", datetime.IsToday(date(2024, 3, 6, 0, 0, 0), clk), false},
		{"IsYesterday", datetime.IsYesterday(date(2024, 3, 4, 23, 59, 0), clk), true},
		{"IsYesterday today", datetime.IsYesterday(date(2024, 3, 5, 0, 0, 0), clk), false},
		{"IsTomorrow", datetime.IsTomorrow(date(2024, 3, 6, 0, 0, 0), clk), true},
		{"IsPast", datetime.IsPast(date(2024, 3, 5, 11, 59, 59), clk), true},
		{"IsPast now", datetime.IsPast(date(2024, 3, 5, 12, 0, 0), clk), false},
		{"IsFuture", datetime.IsFuture(date(2024, 3, 5, 12, 0, 1), clk), true},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %v; want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestClockFunc(t *testing.T) {
	calls := 0
	c := datetime.ClockFunc(func() time.Time {
		calls++
		return date(2024, 3, 5, 0, 0, 0)
	})
	if !datetime.IsToday(date(2024, 3, 5, 18, 0, 0), c) || calls != 1 {
		t.Fatalf("ClockFunc not consulted exactly once: %d calls", calls)
	}
}

// ─── Comparison predicates ────────────────────────────────────────────────────

func TestSamePredicates(t *testing.T) {
	a := date(2024, 3, 5, 14, 30, 45)
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsSameYear", datetime.IsSameYear(a, date(2024, 12, 1, 0, 0, 0)), true},
		{"IsSameMonth other year", datetime.IsSameMonth(a, date(2023, 3, 5, 0, 0, 0)), false},
		{"IsSameDay", datetime.IsSameDay(a, date(2024, 3, 5, 0, 0, 0)), true},
		{"IsSameDay other month", datetime.IsSameDay(a, date(2024, 4, 5, 14, 30, 45)), false},
		{"IsSameHour", datetime.IsSameHour(a, date(2024, 3, 5, 14, 0, 0)), true},
		{"IsSameMinute", datetime.IsSameMinute(a, date(2024, 3, 5, 14, 30, 0)), true},
		{"IsSameSecond", datetime.IsSameSecond(a, a.Add(500*time.Millisecond)), true},
		{"IsSameSecond other day", datetime.IsSameSecond(a, a.AddDate(0, 0, 1)), false},
		{"IsSameWeek Mon-Sun", datetime.IsSameWeek(date(2024, 3, 4, 0, 0, 0), date(2024, 3, 10, 23, 0, 0)), true},
		{"IsSameWeek Sun-Mon", datetime.IsSameWeek(date(2024, 3, 10, 0, 0, 0), date(2024, 3, 11, 0, 0, 0)), false},
		{"IsBetween start", datetime.IsBetween(a, a, a.Add(time.Hour)), true},
		{"IsBetween end", datetime.IsBetween(a, a.Add(-time.Hour), a), true},
		{"IsBetween outside", datetime.IsBetween(a, a.Add(time.Second), a.Add(time.Hour)), false},
		{"IsAheadByDays 2d23h >= 3", datetime.IsAheadByDays(date(2024, 3, 8, 12, 0, 0), date(2024, 3, 5, 13, 0, 0), 3), false},
		{"IsAheadByDays 2d23h >= 2", datetime.IsAheadByDays(date(2024, 3, 8, 12, 0, 0), date(2024, 3, 5, 13, 0, 0), 2), true},
		{"IsBehindByDays", datetime.IsBehindByDays(date(2024, 3, 1, 0, 0, 0), date(2024, 3, 5, 0, 0, 0), 4), true},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %v; want %v", tc.name, tc.got, tc.want)
		}
	}
}

// ─── Weekdays & time of day ───────────────────────────────────────────────────

func TestWeekend(t *testing.T) {
	if !datetime.IsWeekend(date(2024, 3, 9, 0, 0, 0)) || !datetime.IsWeekend(date(2024, 3, 10, 0, 0, 0)) {
		t.Fatal("Saturday and Sunday should be weekend days")
	}
	if datetime.IsWeekend(date(2024, 3, 8, 0, 0, 0)) || !datetime.IsWeekday(date(2024, 3, 4, 0, 0, 0)) {
		t.Fatal("Monday and Friday should be weekdays")
	}
	if got := datetime.ISOWeekday(date(2024, 3, 10, 0, 0, 0)); got != 7 {
		t.Fatalf("ISOWeekday(Sunday) = %d; want 7", got)
	}
	if got := datetime.ISOWeekday(date(2024, 3, 4, 0, 0, 0)); got != 1 {
		t.Fatalf("ISOWeekday(Monday) = %d; want 1", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	bands := map[int]datetime.TimeOfDay{
		0: datetime.Night, 5: datetime.Night, 6: datetime.Morning, 11: datetime.Morning,
		12: datetime.Afternoon, 17: datetime.Afternoon, 18: datetime.Evening,
		22: datetime.Evening, 23: datetime.Night,
	}
	for h, want := range bands {
		if got := datetime.TimeOfDayOf(date(2024, 3, 5, h, 59, 0)); got != want {
			t.Fatalf("TimeOfDayOf(%02d:59) = %v; want %v", h, got, want)
		}
	}
	if !datetime.IsMorning(date(2024, 3, 5, 6, 0, 0)) || !datetime.IsNight(date(2024, 3, 5, 23, 0, 0)) {
		t.Fatal("band boundaries are wrong")
	}
	if !datetime.IsAfternoon(date(2024, 3, 5, 12, 0, 0)) || !datetime.IsEvening(date(2024, 3, 5, 18, 0, 0)) {
		t.Fatal("band boundaries are wrong")
	}
	if datetime.Evening.String() != "evening" {
		t.Fatalf("Evening.String() = %q", datetime.Evening.String())
	}
}

// ─── Boundaries ───────────────────────────────────────────────────────────────

func TestBoundaries(t *testing.T) {
	ts := date(2024, 3, 5, 14, 30, 45)
	endMs := 999 * time.Millisecond

	assertTime(t, "StartOfDay", datetime.StartOfDay(ts), date(2024, 3, 5, 0, 0, 0))
	assertTime(t, "EndOfDay", datetime.EndOfDay(ts), date(2024, 3, 5, 23, 59, 59).Add(endMs))
	assertTime(t, "StartOfWeek", datetime.StartOfWeek(ts), date(2024, 3, 4, 0, 0, 0))
	assertTime(t, "StartOfWeek Sunday", datetime.StartOfWeek(date(2024, 3, 10, 8, 0, 0)), date(2024, 3, 4, 0, 0, 0))
	assertTime(t, "EndOfWeek", datetime.EndOfWeek(ts), date(2024, 3, 10, 23, 59, 59).Add(endMs))
	assertTime(t, "StartOfMonth", datetime.StartOfMonth(ts), date(2024, 3, 1, 0, 0, 0))
	assertTime(t, "EndOfMonth Feb leap", datetime.EndOfMonth(date(2024, 2, 10, 0, 0, 0)), date(2024, 2, 29, 23, 59, 59).Add(endMs))
	assertTime(t, "StartOfYear", datetime.StartOfYear(ts), date(2024, 1, 1, 0, 0, 0))
	assertTime(t, "EndOfYear", datetime.EndOfYear(ts), date(2024, 12, 31, 23, 59, 59).Add(endMs))
}

func TestBoundariesKeepLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2024, 3, 5, 2, 0, 0, 0, loc)
	got := datetime.StartOfDay(ts)
	if got.Location() != loc || got.Day() != 5 || got.Hour() != 0 {
		t.Fatalf("StartOfDay = %v; want midnight of the 5th in UTC+5", got)
	}
}

// ─── Calendar ─────────────────────────────────────────────────────────────────

func TestCalendar(t *testing.T) {
	leaps := map[int]bool{1900: false, 2000: true, 2023: false, 2024: true}
	for y, want := range leaps {
		if got := datetime.IsLeapYear(y); got != want {
			t.Fatalf("IsLeapYear(%d) = %v; want %v", y, got, want)
		}
	}
	if got := datetime.DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("DaysInMonth(2024, Feb) = %d; want 29", got)
	}
	if got := datetime.DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("DaysInMonth(2023, Feb) = %d; want 28", got)
	}
	if got := datetime.DaysInMonth(2023, time.December); got != 31 {
		t.Fatalf("DaysInMonth(2023, Dec) = %d; want 31", got)
	}
	if got := datetime.DayOfYear(date(2024, 3, 5, 0, 0, 0)); got != 65 {
		t.Fatalf("DayOfYear = %d; want 65", got)
	}
	for m, want := range map[time.Month]int{time.January: 1, time.March: 1, time.April: 2, time.September: 3, time.December: 4} {
		if got := datetime.QuarterOfYear(date(2024, m, 1, 0, 0, 0)); got != want {
			t.Fatalf("QuarterOfYear(%v) = %d; want %d", m, got, want)
		}
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		t        time.Time
		year, wk int
	}{
		{date(2024, 3, 5, 0, 0, 0), 2024, 10},
		{date(2021, 1, 1, 0, 0, 0), 2020, 53},
		{date(2024, 12, 30, 0, 0, 0), 2025, 1},
		{date(2024, 1, 1, 0, 0, 0), 2024, 1},
	}
	for _, tc := range tests {
		if got := datetime.WeekOfYear(tc.t); got != tc.wk {
			t.Fatalf("WeekOfYear(%v) = %d; want %d", tc.t, got, tc.wk)
		}
		if y, _ := datetime.ISOWeek(tc.t); y != tc.year {
			t.Fatalf("ISOWeek(%v) year = %d; want %d", tc.t, y, tc.year)
		}
	}
}

func TestAge(t *testing.T) {
	if got := datetime.Age(date(1990, 3, 6, 0, 0, 0), clk); got != 33 {
		t.Fatalf("Age before birthday = %d; want 33", got)
	}
	if got := datetime.Age(date(1990, 3, 5, 0, 0, 0), clk); got != 34 {
		t.Fatalf("Age on birthday = %d; want 34", got)
	}
	if got := datetime.Age(date(1990, 12, 1, 0, 0, 0), clk); got != 33 {
		t.Fatalf("Age later month = %d; want 33", got)
	}
}

func TestSeason(t *testing.T) {
	tests := []struct {
		m    time.Month
		d    int
		want datetime.Season
	}{
		{time.January, 15, datetime.Winter},
		{time.March, 19, datetime.Winter},
		{time.March, 20, datetime.Spring},
		{time.June, 20, datetime.Spring},
		{time.June, 21, datetime.Summer},
		{time.September, 22, datetime.Summer},
		{time.September, 23, datetime.Autumn},
		{time.December, 20, datetime.Autumn},
		{time.December, 21, datetime.Winter},
	}
	for _, tc := range tests {
		if got := datetime.SeasonOf(date(2024, tc.m, tc.d, 0, 0, 0)); got != tc.want {
			t.Fatalf("SeasonOf(%v %d) = %v; want %v", tc.m, tc.d, got, tc.want)
		}
	}
	if datetime.Autumn.String() != "autumn" {
		t.Fatalf("Autumn.String() = %q", datetime.Autumn.String())
	}
}

// ─── Arithmetic ───────────────────────────────────────────────────────────────

func TestUntil(t *testing.T) {
	if got := datetime.DaysUntil(date(2024, 3, 5, 12, 0, 0), date(2024, 3, 8, 11, 0, 0)); got != 2 {
		t.Fatalf("DaysUntil = %d; want 2", got)
	}
	if got := datetime.DaysUntil(date(2024, 3, 8, 0, 0, 0), date(2024, 3, 5, 0, 0, 0)); got != -3 {
		t.Fatalf("DaysUntil backwards = %d; want -3", got)
	}
	if got := datetime.HoursUntil(date(2024, 3, 5, 12, 0, 0), date(2024, 3, 5, 14, 30, 0)); got != 2 {
		t.Fatalf("HoursUntil = %d; want 2", got)
	}
}

func TestAddWorkdays(t *testing.T) {
	fri := date(2024, 3, 8, 9, 0, 0)
	mon := date(2024, 3, 11, 9, 0, 0)
	tue := date(2024, 3, 5, 9, 0, 0)

	assertTime(t, "Fri +1", datetime.AddWorkdays(fri, 1), mon)
	assertTime(t, "Mon -1", datetime.AddWorkdays(mon, -1), fri)
	assertTime(t, "Tue +5", datetime.AddWorkdays(tue, 5), date(2024, 3, 12, 9, 0, 0))
	assertTime(t, "Tue +0", datetime.AddWorkdays(tue, 0), tue)
	assertTime(t, "Sat +1", datetime.AddWorkdays(date(2024, 3, 9, 9, 0, 0), 1), mon)
}

func TestNextPreviousWeekday(t *testing.T) {
	tue := date(2024, 3, 5, 9, 0, 0)
	assertTime(t, "Next Tuesday from Tuesday", datetime.NextWeekday(tue, time.Tuesday), date(2024, 3, 12, 9, 0, 0))
	assertTime(t, "Next Friday", datetime.NextWeekday(tue, time.Friday), date(2024, 3, 8, 9, 0, 0))
	assertTime(t, "Next Monday", datetime.NextWeekday(tue, time.Monday), date(2024, 3, 11, 9, 0, 0))
	assertTime(t, "Previous Monday", datetime.PreviousWeekday(tue, time.Monday), date(2024, 3, 4, 9, 0, 0))
	assertTime(t, "Previous Tuesday", datetime.PreviousWeekday(tue, time.Tuesday), date(2024, 2, 27, 9, 0, 0))
}

func TestAddMonthsClamped(t *testing.T) {
	assertTime(t, "Jan 31 +1 leap", datetime.AddMonthsClamped(date(2024, 1, 31, 8, 0, 0), 1), date(2024, 2, 29, 8, 0, 0))
	assertTime(t, "Jan 31 +1", datetime.AddMonthsClamped(date(2023, 1, 31, 0, 0, 0), 1), date(2023, 2, 28, 0, 0, 0))
	assertTime(t, "Mar 31 -1", datetime.AddMonthsClamped(date(2024, 3, 31, 0, 0, 0), -1), date(2024, 2, 29, 0, 0, 0))
	assertTime(t, "Jan 15 +13", datetime.AddMonthsClamped(date(2024, 1, 15, 0, 0, 0), 13), date(2025, 2, 15, 0, 0, 0))
}

// ─── TimeAgo ──────────────────────────────────────────────────────────────────

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{date(2024, 3, 5, 11, 59, 30), "just now"},
		{date(2024, 3, 5, 12, 0, 30), "just now"},
		{date(2024, 3, 5, 11, 59, 0), "1 minute ago"},
		{date(2024, 3, 5, 11, 57, 0), "3 minutes ago"},
		{date(2024, 3, 5, 11, 0, 0), "1 hour ago"},
		{date(2024, 3, 3, 12, 0, 0), "2 days ago"},
		{date(2024, 2, 20, 12, 0, 0), "2 weeks ago"},
		{date(2024, 1, 1, 12, 0, 0), "2 months ago"},
		{date(2022, 3, 5, 12, 0, 0), "2 years ago"},
		{date(2024, 3, 5, 12, 5, 0), "in 5 minutes"},
		{date(2024, 3, 6, 12, 0, 0), "in 1 day"},
	}
	for _, tc := range tests {
		if got := datetime.TimeAgo(tc.t, clk); got != tc.want {
			t.Fatalf("TimeAgo(%v) = %q; want %q", tc.t, got, tc.want)
		}
	}
}
