package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeBirthday_Shapes verifies every accepted BDAY shape maps to the
// same canonical month/day, with the year captured only when present.
func TestNormalizeBirthday_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		month     time.Month
		day       int
		year      int
		yearKnown bool
	}{
		{"ISO full date", "1990-06-15", time.June, 15, 1990, true},
		{"Compact full date", "19900615", time.June, 15, 1990, true},
		{"Truncated compact", "--0615", time.June, 15, 0, false},
		{"Truncated with dash", "--06-15", time.June, 15, 0, false},
		{"Leading whitespace", " 1990-06-15 ", time.June, 15, 1990, true},
		{"Leap day with year", "2000-02-29", time.February, 29, 2000, true},
		{"Leap day without year", "--0229", time.February, 29, 0, false},
		// Day 29 of February is accepted even for a non-leap birth year;
		// recurrence handling decides what it means per target year.
		{"Leap day, non-leap year", "1999-02-29", time.February, 29, 1999, true},
		{"End of year", "--1231", time.December, 31, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NormalizeBirthday(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.month, b.Month)
			assert.Equal(t, tt.day, b.Day)
			assert.Equal(t, tt.yearKnown, b.YearKnown)
			if tt.yearKnown {
				assert.Equal(t, tt.year, b.Year)
			}
		})
	}
}

// TestNormalizeBirthday_RoundTrip checks that re-serializing a canonical
// birthday and normalizing again is idempotent on month/day/year.
func TestNormalizeBirthday_RoundTrip(t *testing.T) {
	for _, raw := range []string{"1990-06-15", "20000229", "--0101", "--12-31"} {
		b1, err := NormalizeBirthday(raw)
		require.NoError(t, err, raw)

		b2, err := NormalizeBirthday(b1.String())
		require.NoError(t, err, b1.String())
		assert.Equal(t, b1, b2, "round trip must be stable for %q", raw)
	}
}

// TestNormalizeBirthday_Rejections covers the malformed inputs that must
// produce an error rather than a silently wrong date.
func TestNormalizeBirthday_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Whitespace only", "   "},
		{"Garbage", "not-a-date"},
		{"Wrong separator positions", "1990/06/15"},
		{"Month zero", "--0015"},
		{"Month thirteen", "1990-13-01"},
		{"Day zero", "19900600"},
		{"Day too large", "--0632"},
		{"Feb 30", "--0230"},
		{"April 31", "1990-04-31"},
		{"Non-numeric month", "--ab15"},
		{"Non-numeric year", "abcd-06-15"},
		{"Truncated too short", "--061"},
		{"Truncated too long", "--06155"},
		// strconv.Atoi would accept these sign characters as part of the
		// number; the digit fields must be digits only.
		{"Signed month", "--+115"},
		{"Signed day", "1990-06-+5"},
		{"Signed year", "+990-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeBirthday(tt.raw)
			assert.Error(t, err, "input %q must be rejected", tt.raw)
		})
	}
}
