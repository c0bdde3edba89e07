package ics

import (
	"errors"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	appLog "questcal/internal/log"
	"questcal/internal/recur"
)

// ErrInvalidDocument is returned when an emitted document does not read back
// as a calendar with complete events.
var ErrInvalidDocument = errors.New("invalid calendar document")

// MaxSessionsPerEvent bounds how many occurrences Validate expands for
// one RRULE.
const MaxSessionsPerEvent = 1000

// Report summarizes a document that passed Validate.
type Report struct {
	Events    int
	Recurring int
	Sessions  int
	// Truncated is set when some rule had more than MaxSessionsPerEvent
	// occurrences; Sessions then counts only the first ones.
	Truncated bool
}

// requiredProps lists the properties every VEVENT must carry.
var requiredProps = []ical.ComponentProperty{
	ical.ComponentPropertyDtStart,
	ical.ComponentPropertyDtEnd,
	ical.ComponentPropertySummary,
	ical.ComponentPropertyLocation,
	ical.ComponentPropertyDescription,
}

// Validate parses doc back with an independent iCalendar reader and checks
// that the calendar header is present, every VEVENT carries the required
// properties, and every RRULE is a rule that expands.
func Validate(doc string) (Report, error) {
	var rep Report
	if strings.TrimSpace(doc) == "" {
		return rep, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	// The reader expects RFC 5545 CRLF line breaks.
	crlf := strings.ReplaceAll(strings.ReplaceAll(doc, "\r\n", "\n"), "\n", "\r\n")
	cal, err := ical.ParseCalendar(strings.NewReader(crlf))
	if err != nil {
		return rep, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := checkHeader(cal); err != nil {
		return rep, err
	}

	for i, ve := range cal.Events() {
		for _, name := range requiredProps {
			if ve.GetProperty(name) == nil {
				return rep, fmt.Errorf("%w: event %d has no %s", ErrInvalidDocument, i+1, name)
			}
		}
		if tz := ve.GetProperty(ical.ComponentPropertyDtStart).ICalParameters["TZID"]; len(tz) == 0 || tz[0] != recur.TZID {
			return rep, fmt.Errorf("%w: event %d DTSTART is not anchored to %s", ErrInvalidDocument, i+1, recur.TZID)
		}
		rep.Events++

		rp := ve.GetProperty(ical.ComponentPropertyRrule)
		if rp == nil {
			rep.Sessions++
			continue
		}
		n, truncated, err := countSessions(ve, rp.Value)
		if err != nil {
			return rep, fmt.Errorf("%w: event %d: %v", ErrInvalidDocument, i+1, err)
		}
		rep.Recurring++
		rep.Sessions += n
		rep.Truncated = rep.Truncated || truncated
	}

	appLog.Debug("calendar document validated",
		"events", rep.Events,
		"recurring", rep.Recurring,
		"sessions", rep.Sessions,
		"truncated", rep.Truncated,
	)
	return rep, nil
}

func checkHeader(cal *ical.Calendar) error {
	var version, prodID string
	for _, p := range cal.CalendarProperties {
		switch p.IANAToken {
		case string(ical.PropertyVersion):
			version = p.Value
		case string(ical.PropertyProductId):
			prodID = p.Value
		}
	}
	if version != Version {
		return fmt.Errorf("%w: VERSION is %q", ErrInvalidDocument, version)
	}
	if prodID == "" {
		return fmt.Errorf("%w: missing PRODID", ErrInvalidDocument)
	}
	return nil
}

// countSessions expands the rule from the event's DTSTART, stopping after
// MaxSessionsPerEvent occurrences. Events whose start time is blank count as
// zero sessions.
func countSessions(ve *ical.VEvent, rule string) (int, bool, error) {
	opt, err := rrule.StrToROptionInLocation(rule, recur.Toronto)
	if err != nil {
		return 0, false, err
	}
	start, err := localTimestamp(ve.GetProperty(ical.ComponentPropertyDtStart).Value)
	if err != nil {
		return 0, false, err
	}
	if start.IsZero() {
		return 0, false, nil
	}
	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return 0, false, err
	}
	starts, truncated := recur.Take(r.Iterator(), MaxSessionsPerEvent)
	return len(starts), truncated, nil
}
