// Package analytics computes derived progress aggregates (weekly/monthly
// statistics, body-metric trends, achievement unlock state) from flat
// collections of logged events. Every function is pure: results depend only on
// the inputs, there is no I/O, and the reference day for time-sensitive
// calculations is always passed in by the caller.
package analytics

import "time"

// dayOf strips the time-of-day component so two timestamps on the same
// calendar day compare equal regardless of stored clock time or zone offset.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MostRecentSunday returns the start of the calendar week containing t,
// i.e. the most recent Sunday on or before t, normalized to a calendar day.
func MostRecentSunday(t time.Time) time.Time {
	d := dayOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
