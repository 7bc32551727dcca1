package datetime

import (
	"fmt"
	"time"
)

const (
	day     = 24 * time.Hour
	week    = 7 * day
	month30 = 30 * day
	year365 = 365 * day
)

var agoUnits = []struct {
	below time.Duration
	unit  time.Duration
	name  string
}{
	{time.Hour, time.Minute, "minute"},
	{day, time.Hour, "hour"},
	{week, day, "day"},
	{month30, week, "week"},
	{year365, month30, "month"},
}

// TimeAgo describes t relative to now in the coarsest whole unit:
// "just now" under a minute, then minutes, hours, days, weeks, months
// (30 days) and years (365 days). Past times read "3 hours ago", future
// times "in 3 hours".
func TimeAgo(t time.Time, clk ...Clock) string {
	d := now(clk).Sub(t)
	future := d < 0
	if future {
		d = -d
	}
	if d < time.Minute {
		return "just now"
	}

	unit, name := year365, "year"
	for _, u := range agoUnits {
		if d < u.below {
			unit, name = u.unit, u.name
			break
		}
	}
	n := int64(d / unit)
	phrase := fmt.Sprintf("%d %s", n, name)
	if n != 1 {
		phrase += "s"
	}
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}
