// Package datetime provides helpers for time.Time and time.Duration:
// relative and calendar predicates, period boundaries, ISO week numbers,
// seasons, workday arithmetic, "3 hours ago" phrasing, a pattern-based
// formatter and compact duration rendering.
//
// # Now
//
// Functions that depend on the current instant (IsToday, IsPast, Age,
// TimeAgo, Ago, FromNow and friends) take an optional trailing [Clock].
// Without one they read the system clock; tests pass a [FixedClock]:
//
//	clk := datetime.FixedClock(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
//	datetime.IsToday(t, clk)
//	datetime.TimeAgo(t, clk) // "2 hours ago"
//
// # Locations
//
// Calendar helpers work in the location of their argument: StartOfDay of a
// time in Europe/Paris is midnight in Paris. Comparisons between two times
// (IsSameDay and friends) compare calendar fields as they read in each
// argument's own location.
//
// # Formatting
//
// [Format] accepts Unicode-style patterns rather than Go's reference-time
// layouts:
//
//	datetime.Format(t, "dd MMM yyyy") // "05 Mar 2024", nil
//	datetime.Format(t, "EEEE 'at' HH:mm") // "Tuesday at 14:30", nil
//
// # Durations
//
// [Formatted] renders "1h 23m 45s"; [ToHhMmSs] and [ToMmSs] render clock
// style "01:23:45" and "83:45" without wrapping the leading field.
package datetime
