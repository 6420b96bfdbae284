package util

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParsePeriod accepts "2006-01-02" or a bare month "2006-01", which maps to
// the first day of that month.
func ParsePeriod(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period %q: expected YYYY-MM-DD or YYYY-MM", s)
	}
	return t, nil
}

func FormatPeriod(t time.Time) string {
	return t.Format(time.DateOnly)
}
