package event

import (
	"fmt"
	"time"
)

const (
	// MonthDayLayout is the format used for event start and end dates
	MonthDayLayout = "01/02"

	dateLayout = "2006-01-02"
)

// Window is the single-day time range used to query the calendar
type Window struct {
	Min time.Time
	Max time.Time
}

// NewWindow returns the window from 00:00:00 to 23:59:59 UTC on the day of now
func NewWindow(now time.Time) Window {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Window{
		Min: start,
		Max: start.Add(24*time.Hour - time.Second),
	}
}

// MinRFC3339 returns the window start formatted for a calendar query
func (w Window) MinRFC3339() string {
	return w.Min.Format(time.RFC3339)
}

// MaxRFC3339 returns the window end formatted for a calendar query
func (w Window) MaxRFC3339() string {
	return w.Max.Format(time.RFC3339)
}

// ResolveDate returns the MM/DD form of a calendar start or end.
// The date-only value wins when set; otherwise the calendar date of the
// RFC 3339 date-time is used, in the offset it was written with.
func ResolveDate(date, dateTime string) (string, error) {
	if date != "" {
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return "", fmt.Errorf("parsing date %q: %w", date, err)
		}
		return t.Format(MonthDayLayout), nil
	}

	if dateTime != "" {
		t, err := time.Parse(time.RFC3339, dateTime)
		if err != nil {
			return "", fmt.Errorf("parsing date-time %q: %w", dateTime, err)
		}
		return t.Format(MonthDayLayout), nil
	}

	return "", fmt.Errorf("event has neither date nor date-time")
}
