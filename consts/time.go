package consts

import "time"

// DateLayout is the calendar-date format used across the checkout and
// aggregate collections and in all query parameters.
const DateLayout = "2006-01-02"

// DateOf formats t as a calendar date in UTC.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
