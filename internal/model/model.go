package model

import (
	"strings"
	"time"

	"github.com/samber/mo"
)

// CourseHeader is a "CODE - TITLE" line that opens a course block in the
// pasted schedule text.
type CourseHeader struct {
	Code  string // e.g. "CS 452"
	Title string // e.g. "Real-time Programming"
}

// MeetingRecord is one scheduled weekly time-block of a course section.
//
// Time and date fields hold the normalized field text as it appeared in the
// schedule; their interpretation (12/24-hour clock, date field order) belongs
// to the recurrence engine, which knows the caller's date convention.
type MeetingRecord struct {
	Course CourseHeader

	ClassNumber string // 4-5 digit registration number
	Section     string // e.g. "001"
	Component   string // LEC, TUT, LAB, ...

	Days     Weekdays
	DaysText string // compact code as written, e.g. "TTh"

	StartTime string // "10:30AM" or "13:00"
	EndTime   string

	Location   string
	Instructor string

	StartDate string // e.g. "01/06/2025", field order per DateFormat
	EndDate   string

	// IsTBA marks a meeting without an assigned day/time. Such records are
	// kept for traceability but never become calendar events.
	IsTBA bool
}

// Key is the composite identity used for de-duplication. Two records are the
// same entry only when every field matches.
func (m MeetingRecord) Key() string {
	tba := "0"
	if m.IsTBA {
		tba = "1"
	}
	return strings.Join([]string{
		m.Course.Code,
		m.Course.Title,
		m.ClassNumber,
		m.Section,
		m.Component,
		m.Days.String(),
		m.StartTime,
		m.EndTime,
		m.Location,
		m.Instructor,
		m.StartDate,
		m.EndDate,
		tba,
	}, "\x1f")
}

// Meta returns the display fields addressed by template placeholders.
func (m MeetingRecord) Meta() Meta {
	return Meta{
		Code:     m.Course.Code,
		Section:  m.Section,
		Name:     m.Course.Title,
		Type:     m.Component,
		Location: m.Location,
		Prof:     m.Instructor,
	}
}

// Meta holds the text fields that summary/description templates can reference.
type Meta struct {
	Code     string `json:"code"`
	Section  string `json:"section"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Prof     string `json:"prof"`
}

// CalendarEvent is the recurring (or single) event derived from one non-TBA
// MeetingRecord. It is created once by the recurrence engine and only read
// afterwards.
type CalendarEvent struct {
	// Start / End of the first occurrence in the America/Toronto zone. They
	// are absent when the meeting's time text could not be understood.
	Start mo.Option[time.Time]
	End   mo.Option[time.Time]

	// Until is the last instant of the recurrence; absent for a single event.
	Until mo.Option[time.Time]

	// ByDay lists two-letter weekday codes in Monday-first order.
	ByDay []string

	Meta Meta

	// Key is the originating record's de-duplication key.
	Key string
}

// Recurring reports whether the event repeats weekly.
func (e CalendarEvent) Recurring() bool {
	return e.Until.IsPresent()
}
