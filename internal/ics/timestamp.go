package ics

import (
	"strings"
	"time"

	"questcal/internal/recur"
)

// localTimestamp parses a TZID-anchored DTSTART/DTEND value. A blank value
// (an event whose class time was unreadable) yields the zero time.
func localTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(timestampLayout, v, recur.Toronto)
}
