package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/birthday-feed/internal/config"
)

// Birthday is the canonical form of a parsed BDAY value: a month/day pair
// plus an optional birth year.
type Birthday struct {
	Month time.Month
	Day   int

	// Year is the birth year. Only meaningful when YearKnown is true.
	Year int

	// YearKnown is false for truncated vCard dates (--MMDD / --MM-DD).
	YearKnown bool
}

// String re-serializes the birthday in the shape it was parsed from:
// YYYY-MM-DD when the year is known, --MMDD otherwise.
func (b Birthday) String() string {
	if b.YearKnown {
		return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
	}
	return fmt.Sprintf("--%02d%02d", int(b.Month), b.Day)
}

// daysInMonth holds the maximum day accepted per month. February is fixed
// at 29 regardless of year: leap handling is deferred to NextOccurrence,
// which decides what a Feb 29 birthday means in a non-leap year.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// parseDigits converts an ASCII-digits-only field to an int. Unlike
// strconv.Atoi it rejects sign characters, so "+6" is not a valid month.
func parseDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// NormalizeBirthday parses a raw BDAY field into a canonical Birthday.
//
// Accepted shapes:
//
//	YYYY-MM-DD  full date, ISO form
//	YYYYMMDD    full date, compact form
//	--MMDD      truncated, no birth year (vCard 4.0)
//	--MM-DD     truncated with separator (vCard 3.0 style)
//
// The shape is detected by the leading "--" marker, the hyphen at position
// 4, or the bare length. Anything else is rejected.
func NormalizeBirthday(raw string) (Birthday, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Birthday{}, errors.New(config.ErrDateEmpty)
	}

	var monthStr, dayStr, yearStr string

	switch {
	case strings.HasPrefix(value, config.BdayNoYearPrefix):
		rest := value[len(config.BdayNoYearPrefix):]
		switch len(value) {
		case config.BdayLenNoYear: // --MMDD
			monthStr, dayStr = rest[:2], rest[2:]
		case config.BdayLenNoYearDash: // --MM-DD
			if rest[2] != '-' {
				return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateShape, raw)
			}
			monthStr, dayStr = rest[:2], rest[3:]
		default:
			return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateShape, raw)
		}

	case len(value) == config.BdayLenFullDash: // YYYY-MM-DD
		if value[4] != '-' || value[7] != '-' {
			return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateShape, raw)
		}
		yearStr, monthStr, dayStr = value[:4], value[5:7], value[8:]

	case len(value) == config.BdayLenFullBasic: // YYYYMMDD
		yearStr, monthStr, dayStr = value[:4], value[4:6], value[6:]

	default:
		return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateShape, raw)
	}

	month, err := parseDigits(monthStr)
	if err != nil {
		return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateDigits, raw)
	}
	day, err := parseDigits(dayStr)
	if err != nil {
		return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateDigits, raw)
	}

	b := Birthday{Month: time.Month(month), Day: day}
	if yearStr != "" {
		year, err := parseDigits(yearStr)
		if err != nil {
			return Birthday{}, fmt.Errorf("%s: %q", config.ErrDateDigits, raw)
		}
		b.Year = year
		b.YearKnown = true
	}

	if month < 1 || month > 12 {
		return Birthday{}, fmt.Errorf("%s: %d", config.ErrDateMonth, month)
	}
	if day < 1 || day > daysInMonth[month] {
		return Birthday{}, fmt.Errorf("%s: %d", config.ErrDateDay, day)
	}

	return b, nil
}
