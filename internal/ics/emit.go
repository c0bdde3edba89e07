package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"questcal/internal/model"
	"questcal/internal/recur"
)

const (
	Version   = "2.0"
	ProductID = "-//questscheduleexporter.stephenli.ca//EN"

	timestampLayout = "20060102T150405"
	uidDomain       = "questcal"
)

// uidNamespace scopes the name-based UUIDs derived from meeting keys.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://questscheduleexporter.stephenli.ca"))

// Options controls how events are written.
type Options struct {
	// Summary and Description are placeholder templates (see Fill).
	Summary     string
	Description string

	// EmitUID adds a UID derived from the meeting's identity, so that
	// re-importing the same schedule updates instead of duplicating.
	EmitUID bool

	// StrictEscaping escapes backslashes, semicolons and newlines in text
	// values and folds lines at 75 octets. Off, only commas are escaped.
	StrictEscaping bool
}

// Render writes the full calendar document. Zero events still yield a
// well-formed, empty calendar.
func Render(events []model.CalendarEvent, opts Options) string {
	var b strings.Builder
	for _, line := range DocumentLines(events, opts) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// DocumentLines returns every line of the document in order.
func DocumentLines(events []model.CalendarEvent, opts Options) []string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:" + Version,
		"PRODID:" + ProductID,
	}
	for _, ev := range events {
		lines = append(lines, EventLines(ev, opts)...)
	}
	return append(lines, "END:VCALENDAR")
}

// EventLines returns the VEVENT block of one event.
func EventLines(ev model.CalendarEvent, opts Options) []string {
	lines := []string{"BEGIN:VEVENT"}
	if opts.EmitUID {
		lines = append(lines, "UID:"+EventUID(ev))
	}
	lines = append(lines,
		"DTSTART;TZID="+recur.TZID+":"+timestamp(ev.Start.OrEmpty()),
		"DTEND;TZID="+recur.TZID+":"+timestamp(ev.End.OrEmpty()),
	)
	if rule := RRule(ev); rule != "" {
		lines = append(lines, "RRULE:"+rule)
	}

	text := func(name, value string) {
		if opts.StrictEscaping {
			lines = append(lines, Fold(name+":"+EscapeTextStrict(value))...)
			return
		}
		lines = append(lines, name+":"+EscapeText(value))
	}
	text("SUMMARY", Fill(opts.Summary, ev.Meta))
	text("LOCATION", ev.Meta.Location)
	text("DESCRIPTION", Fill(opts.Description, ev.Meta))

	return append(lines, "END:VEVENT")
}

// RRule returns the weekly recurrence value for ev, or "" when ev is a
// single event.
func RRule(ev model.CalendarEvent) string {
	until, ok := ev.Until.Get()
	if !ok {
		return ""
	}
	return "FREQ=WEEKLY;WKST=SU;BYDAY=" + strings.Join(ev.ByDay, ",") + ";UNTIL=" + timestamp(until)
}

// EventUID is the stable identifier of ev's meeting.
func EventUID(ev model.CalendarEvent) string {
	return uuid.NewSHA1(uidNamespace, []byte(ev.Key)).String() + "@" + uidDomain
}

// timestamp formats t as a floating local time; the zero time renders empty.
func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}
