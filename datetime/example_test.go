package datetime_test

import (
	"fmt"
	"time"

	"github.com/hasbyte1/go-utility-belts/datetime"
)

func ExampleTimeAgo() {
	now := datetime.FixedClock(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	fmt.Println(datetime.TimeAgo(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), now))
	fmt.Println(datetime.TimeAgo(time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC), now))
	// Output:
	// 3 hours ago
	// in 3 days
}

func ExampleFormat() {
	t := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	s, _ := datetime.Format(t, "EEEE 'at' HH:mm")
	fmt.Println(s)
	// Output: Tuesday at 14:30
}

func ExampleFormatted() {
	fmt.Println(datetime.Formatted(time.Hour + 23*time.Minute + 45*time.Second))
	fmt.Println(datetime.ToMmSs(65*time.Minute + 10*time.Second))
	// Output:
	// 1h 23m 45s
	// 65:10
}

func ExampleAddWorkdays() {
	friday := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	fmt.Println(datetime.AddWorkdays(friday, 1).Weekday())
	// Output: Monday
}

func ExampleSeasonOf() {
	fmt.Println(datetime.SeasonOf(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
	// Output: spring
}
