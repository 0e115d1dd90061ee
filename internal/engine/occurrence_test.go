package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNextOccurrence covers the occurrence projection relative to a fixed
// reference day, including the year-boundary and same-day cases.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": June 1st, 2024 (leap year), mid-morning.
	today := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday Birthday
		wantDate time.Time
		wantAge  int
		ageKnown bool
	}{
		{
			name:     "Upcoming this year, no birth year",
			birthday: Birthday{Month: time.June, Day: 15},
			wantDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			wantAge:  0, // candidate never advanced
			ageKnown: false,
		},
		{
			name:     "Upcoming this year, birth year known",
			birthday: Birthday{Month: time.June, Day: 15, Year: 1990, YearKnown: true},
			wantDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			wantAge:  34,
			ageKnown: true,
		},
		{
			name:     "Already passed, rolls to next year",
			birthday: Birthday{Month: time.January, Day: 1, Year: 1990, YearKnown: true},
			wantDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantAge:  35,
			ageKnown: true,
		},
		{
			name:     "Already passed, no birth year",
			birthday: Birthday{Month: time.January, Day: 1},
			wantDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantAge:  1, // advanced exactly once
			ageKnown: false,
		},
		{
			name:     "Today counts as the next occurrence",
			birthday: Birthday{Month: time.June, Day: 1, Year: 2000, YearKnown: true},
			wantDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantAge:  24,
			ageKnown: true,
		},
		{
			name:     "Dec 31 stays in the current year",
			birthday: Birthday{Month: time.December, Day: 31, Year: 1990, YearKnown: true},
			wantDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			wantAge:  34,
			ageKnown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ := NextOccurrence(tt.birthday, today)
			assert.Equal(t, tt.wantDate, occ.Date)
			assert.Equal(t, tt.wantAge, occ.Age)
			assert.Equal(t, tt.ageKnown, occ.AgeKnown)
			assert.False(t, occ.Date.Before(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
				"occurrence must be on or after today")
		})
	}
}

// TestNextOccurrence_LeapDay pins the Feb 29 policy: in a leap target year
// the occurrence stays on Feb 29; in a non-leap year it resolves to Mar 1.
func TestNextOccurrence_LeapDay(t *testing.T) {
	leapling := Birthday{Month: time.February, Day: 29, Year: 2000, YearKnown: true}

	t.Run("Leap target year", func(t *testing.T) {
		today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		occ := NextOccurrence(leapling, today)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), occ.Date)
		assert.Equal(t, 24, occ.Age)
	})

	t.Run("Non-leap target year becomes Mar 1", func(t *testing.T) {
		today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		occ := NextOccurrence(leapling, today)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), occ.Date)
		assert.Equal(t, 25, occ.Age)
	})

	t.Run("Mar 1 of a non-leap year is not already passed", func(t *testing.T) {
		today := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
		occ := NextOccurrence(leapling, today)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), occ.Date)
	})
}

// TestNextOccurrence_EarliestMatch sweeps a full year of reference days and
// asserts the invariant directly: the result is the earliest month/day match
// on or after the reference day.
func TestNextOccurrence_EarliestMatch(t *testing.T) {
	birthday := Birthday{Month: time.June, Day: 15}
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 366; i++ {
		today := start.AddDate(0, 0, i)
		occ := NextOccurrence(birthday, today)

		todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		assert.False(t, occ.Date.Before(todayStart), "reference %s", today)

		// The same month/day one year earlier must be strictly in the past.
		previous := occ.Date.AddDate(-1, 0, 0)
		assert.True(t, previous.Before(todayStart), "reference %s", today)
	}
}
