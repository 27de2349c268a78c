package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ESPNDate converts a YYYY-MM-DD date to ESPN's compact YYYYMMDD form.
func ESPNDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// RecentDates returns today and the preceding days-1 dates in loc,
// newest first.
func RecentDates(now time.Time, loc *time.Location, days int) []string {
	if loc != nil {
		now = now.In(loc)
	}
	if days <= 0 {
		days = 1
	}
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, FormatDate(now.AddDate(0, 0, -i)))
	}
	return out
}
