// Package calendar provides the date arithmetic the amortization driver
// relies on: advancing a date by whole calendar months.
package calendar

import "time"

// AddMonths advances t by the given number of calendar months, clipping the
// day of month when the target month is shorter (Jan 31 + 1 month = Feb 28,
// or Feb 29 in a leap year). The stdlib AddDate normalizes overflow days
// into the following month instead, which is not the accounting convention.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	// time.Date normalizes out-of-range months, handling year rollover
	// in both directions.
	anchor := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := daysIn(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
// Day zero of the following month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
