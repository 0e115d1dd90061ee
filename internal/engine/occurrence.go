package engine

import "time"

// Occurrence is the next calendar date on which a birthday falls, together
// with the age attained on that date.
type Occurrence struct {
	// Date is the earliest month/day match on or after the reference day,
	// at midnight in the reference location.
	Date time.Time

	// Age is the age turned on Date. When AgeKnown is false it holds the
	// number of whole years the candidate was advanced past the reference
	// year, which is all that can be said without a birth year.
	Age int

	// AgeKnown reports whether Age is derived from a real birth year.
	AgeKnown bool
}

// NextOccurrence computes the next occurrence of a birthday relative to
// 'today', which is always passed explicitly so the function stays pure.
//
// The candidate starts in the year containing 'today' and is advanced one
// year at a time while strictly before today's date (time of day ignored).
// The loop runs at most twice for any valid month/day pair.
//
// A Feb 29 birthday in a non-leap candidate year resolves to Mar 1: time.Date
// normalizes the overflow, and the occurrence stays on the day the person
// completes the year rather than a day early.
func NextOccurrence(b Birthday, today time.Time) Occurrence {
	loc := today.Location()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	advanced := 0
	candidate := time.Date(today.Year(), b.Month, b.Day, 0, 0, 0, 0, loc)
	for candidate.Before(todayStart) {
		advanced++
		candidate = time.Date(today.Year()+advanced, b.Month, b.Day, 0, 0, 0, 0, loc)
	}

	occ := Occurrence{Date: candidate, Age: advanced}
	if b.YearKnown {
		occ.Age = candidate.Year() - b.Year
		occ.AgeKnown = true
	}
	return occ
}
