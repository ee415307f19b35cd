package reports

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Window is the half-open [Start, End) range a report filters rows by
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether an instant falls inside the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastDays covers the n most recent calendar days including today
func LastDays(n int, now time.Time) Window {
	end := startOfDay(now).AddDate(0, 0, 1)
	return Window{Start: end.AddDate(0, 0, -n), End: end}
}

// Today covers midnight to the next midnight
func Today(now time.Time) Window {
	start := startOfDay(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// ParseWindow builds a window from optional ISO date strings, falling back
// to the report's default span for whichever bound is absent. An explicit
// end date is inclusive through its whole day.
func ParseWindow(startStr, endStr string, defaultDays int, now time.Time) (Window, error) {
	w := LastDays(defaultDays, now)
	if startStr != "" {
		start, err := time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("invalid startDate %q: use YYYY-MM-DD", startStr)
		}
		w.Start = start
	}
	if endStr != "" {
		end, err := time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("invalid endDate %q: use YYYY-MM-DD", endStr)
		}
		w.End = end.AddDate(0, 0, 1)
	}
	if w.End.Before(w.Start) {
		return Window{}, fmt.Errorf("endDate is before startDate")
	}
	return w, nil
}
