package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCard(t *testing.T, raw string) vcard.Card {
	t.Helper()
	card, err := vcard.NewDecoder(strings.NewReader(raw)).Decode()
	require.NoError(t, err)
	return card
}

func TestExtractContact_Success(t *testing.T) {
	card := decodeCard(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:John Doe\r\nBDAY:1990-06-15\r\nEND:VCARD\r\n")
	today := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	occ, outcome := ExtractContact(card, today)

	require.Equal(t, Extracted, outcome)
	assert.Equal(t, "John Doe", occ.Name)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), occ.Occurrence.Date)
	assert.Equal(t, 34, occ.Occurrence.Age)
	assert.True(t, occ.Occurrence.AgeKnown)
	assert.NotEmpty(t, occ.UID)
}

func TestExtractContact_NoBirthday(t *testing.T) {
	card := decodeCard(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:No Birthday\r\nEND:VCARD\r\n")

	_, outcome := ExtractContact(card, time.Now())

	assert.Equal(t, SkippedNoBirthday, outcome, "records without BDAY are skipped, not errors")
}

func TestExtractContact_MalformedBirthday(t *testing.T) {
	card := decodeCard(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Bad Date\r\nBDAY:sometime in june\r\nEND:VCARD\r\n")

	_, outcome := ExtractContact(card, time.Now())

	assert.Equal(t, SkippedBadBirthday, outcome)
}

// TestExtractContact_NameFallback verifies the FN > N > empty name strategy.
func TestExtractContact_NameFallback(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
	}{
		{
			"FN preferred",
			"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Formatted Name\r\nN:Structured;Name;;;\r\nBDAY:--0615\r\nEND:VCARD\r\n",
			"Formatted Name",
		},
		{
			"N as fallback",
			"BEGIN:VCARD\r\nVERSION:3.0\r\nN:Structured;Name;;;\r\nBDAY:--0615\r\nEND:VCARD\r\n",
			"Structured;Name;;;",
		},
		{
			"No name at all",
			"BEGIN:VCARD\r\nVERSION:3.0\r\nBDAY:--0615\r\nEND:VCARD\r\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ, outcome := ExtractContact(decodeCard(t, tt.raw), time.Now())
			require.Equal(t, Extracted, outcome)
			assert.Equal(t, tt.wantName, occ.Name)
		})
	}
}

// TestExtractContact_UIDStability ensures the same contact always hashes to
// the same UID across refreshes, and different contacts do not collide.
func TestExtractContact_UIDStability(t *testing.T) {
	raw := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Stable Person\r\nBDAY:1990-06-15\r\nEND:VCARD\r\n"

	first, outcome := ExtractContact(decodeCard(t, raw), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, Extracted, outcome)

	second, outcome := ExtractContact(decodeCard(t, raw), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, Extracted, outcome)

	assert.Equal(t, first.UID, second.UID, "UID must not depend on the reference day")

	other, outcome := ExtractContact(decodeCard(t,
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Someone Else\r\nBDAY:1990-06-15\r\nEND:VCARD\r\n"),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, Extracted, outcome)
	assert.NotEqual(t, first.UID, other.UID)
}
