package engine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/birthday-feed/internal/config"
)

// Synthesize renders a list of contact occurrences into an iCalendar feed.
//
// It is a pure function: the same occurrence list (including order) always
// produces byte-identical output. Event UIDs come from the deterministic
// contact hash and DTSTAMP is derived from the occurrence date rather than
// the wall clock, so repeated refreshes over unchanged data republish the
// exact same document.
//
// An empty occurrence list yields a minimal valid VCALENDAR rather than an
// error: a feed with zero upcoming birthdays is a legitimate state.
func Synthesize(occs []ContactOccurrence, loc *time.Location) ([]byte, error) {
	if len(occs) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval to subscribing clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	for _, occ := range occs {
		cal.Children = append(cal.Children, buildEvent(occ, loc).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// buildEvent maps one occurrence to an all-day VEVENT with a display alarm.
func buildEvent(occ ContactOccurrence, loc *time.Location) *ical.Event {
	start := occ.Occurrence.Date

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID,
		fmt.Sprintf(config.FormatUID, occ.UID, start.Year(), config.ICalDomain))

	summary := eventSummary(occ)
	event.Props.SetText(config.PropSummary, summary)
	event.Props.SetText(config.PropDescription, summary)
	event.Props.SetText(config.PropStatus, config.ICalStatus)

	// All-day event: DTSTART on the occurrence day, DTEND exclusive one day
	// later per calendar convention.
	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDate(start.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	// DTSTAMP pinned to the occurrence date keeps the output stable across
	// refreshes for the same logical event.
	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC))
	event.Props.Set(dtStamp)

	addAlarm(event, alarmTime(start, loc), summary)

	return event
}

// eventSummary renders the fixed human-readable event text. The age is
// included only when a birth year was present in the source record.
func eventSummary(occ ContactOccurrence) string {
	if occ.Occurrence.AgeKnown {
		return fmt.Sprintf(config.FormatSummaryAge, occ.Name, occ.Occurrence.Age)
	}
	return fmt.Sprintf(config.FormatSummary, occ.Name)
}

// alarmTime places the reminder at the fixed local hour of the occurrence
// day in the configured zone.
func alarmTime(start time.Time, loc *time.Location) time.Time {
	return time.Date(start.Year(), start.Month(), start.Day(),
		config.AlarmHourLocal, 0, 0, 0, loc)
}

// addAlarm appends a DISPLAY alarm with an absolute trigger. Absolute
// DATE-TIME triggers must be in UTC per RFC 5545.
func addAlarm(event *ical.Event, at time.Time, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// SetDateTime marks the trigger VALUE=DATE-TIME, overriding the
	// DURATION default for this property.
	trigger := ical.NewProp(config.PropTrigger)
	trigger.SetDateTime(at.UTC())
	alarm.Props.Set(trigger)

	event.Children = append(event.Children, alarm)
}
