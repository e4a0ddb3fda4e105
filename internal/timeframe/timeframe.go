// Package timeframe resolves the named reporting windows used by the
// earnings and dashboard views.
package timeframe

import "time"

// Frame is a named reporting window.
type Frame string

const (
	ThisMonth  Frame = "This Month"
	LastMonth  Frame = "Last Month"
	Last90Days Frame = "Last 90 Days"
	ThisYear   Frame = "This Year"
	AllTime    Frame = "All Time"
)

// Frames lists the windows in display order.
var Frames = []Frame{ThisMonth, LastMonth, Last90Days, ThisYear, AllTime}

// Valid reports whether f is a known frame.
func (f Frame) Valid() bool {
	for _, known := range Frames {
		if f == known {
			return true
		}
	}
	return false
}

// Window is an inclusive time range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Range resolves a frame against a reference instant. Month windows span
// the first of the month through the last day at 23:59:59; unknown frames
// resolve to the all-time window.
func Range(f Frame, now time.Time) Window {
	loc := now.Location()
	switch f {
	case ThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: endOfMonth(start)}
	case LastMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
		return Window{Start: start, End: endOfMonth(start)}
	case Last90Days:
		return Window{Start: now.AddDate(0, 0, -90), End: now}
	case ThisYear:
		return Window{
			Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc),
			End:   time.Date(now.Year(), 12, 31, 23, 59, 59, 0, loc),
		}
	default:
		return Window{
			Start: time.Unix(0, 0),
			End:   time.Date(9999, 12, 31, 23, 59, 59, 0, loc),
		}
	}
}

func endOfMonth(firstOfMonth time.Time) time.Time {
	return firstOfMonth.AddDate(0, 1, 0).Add(-time.Second)
}
