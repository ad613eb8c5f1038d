package domain

import "time"

// DateKeyLayout is the canonical calendar-day key, no time component.
const DateKeyLayout = "2006-01-02"

func DateKeyOf(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(dateKey string) (time.Time, error) {
	return time.Parse(DateKeyLayout, dateKey)
}

func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// EachDate invokes f for every calendar day of [start, end], both inclusive.
func EachDate(start, end time.Time, f func(t time.Time)) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		f(d)
	}
}
