package engine

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/birthday-feed/internal/config"
)

// ContactOccurrence is one directory contact with a usable birthday,
// resolved against a reference day. Instances are rebuilt from scratch on
// every refresh and never mutated.
type ContactOccurrence struct {
	// UID is a deterministic identifier derived from the contact's name and
	// birthday. It keeps event identity stable across refreshes so calendar
	// clients do not accumulate duplicates.
	UID string

	// Name is the display name. May be empty when the card carries neither
	// FN nor N.
	Name string

	Birthday   Birthday
	Occurrence Occurrence
}

// ExtractOutcome tags the result of extracting a single directory record.
// Skips are expected and never abort a refresh.
type ExtractOutcome int

const (
	// Extracted means the record produced a ContactOccurrence.
	Extracted ExtractOutcome = iota

	// SkippedNoBirthday means the record has no BDAY field.
	SkippedNoBirthday

	// SkippedBadBirthday means the BDAY value failed normalization.
	SkippedBadBirthday
)

// ExtractContact turns one decoded vCard into a ContactOccurrence relative
// to 'today'. Records without a birthday are skipped silently; records with
// a malformed birthday are skipped with a debug log so bad source data is
// visible without failing the refresh.
func ExtractContact(card vcard.Card, today time.Time) (ContactOccurrence, ExtractOutcome) {
	field := card.Get(config.VCardBDAY)
	if field == nil || field.Value == "" {
		return ContactOccurrence{}, SkippedNoBirthday
	}

	birthday, err := NormalizeBirthday(field.Value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, field.Value,
			config.LogKeyError, err,
		)
		return ContactOccurrence{}, SkippedBadBirthday
	}

	// Name strategy: FN (formatted) > N (structured) > empty.
	name := config.FallbackName
	if fn := card.Get(config.VCardFN); fn != nil {
		name = fn.Value
	} else if n := card.Get(config.VCardN); n != nil {
		name = n.Value
	}

	return ContactOccurrence{
		UID:        contactUID(name, birthday),
		Name:       name,
		Birthday:   birthday,
		Occurrence: NextOccurrence(birthday, today),
	}, Extracted
}

// contactUID hashes the identity-bearing fields of a contact. The same name
// and birthday always yield the same UID, across refreshes and restarts.
func contactUID(name string, b Birthday) string {
	input := fmt.Sprintf(config.FormatHashInput, name, int(b.Month), b.Day, b.Year, config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
