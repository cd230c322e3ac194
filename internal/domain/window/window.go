// Package window computes the rolling inclusion window for tracked jobs:
// all of yesterday and all of today in the deployment's local calendar.
package window

import "time"

// Window is a closed interval [Start, End] of time instants.
type Window struct {
	Start time.Time
	End   time.Time
}

// Compute returns the window covering yesterday and today relative to now,
// using calendar day boundaries in loc. Start is local midnight of yesterday;
// End is local midnight of tomorrow minus one millisecond. A nil loc falls
// back to time.Local.
func Compute(now time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	year, month, day := local.Date()
	start := time.Date(year, month, day-1, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return Window{Start: start, End: end}
}

// Contains reports whether t falls inside the window, inclusive on both
// ends. Comparison is between time instants, never string representations.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
