// Package exporter runs the whole schedule-text to iCalendar pipeline:
// parse, build records, compute recurrences, emit the document.
package exporter

import (
	"errors"
	"fmt"
	"strings"

	"questcal/internal/config"
	"questcal/internal/ics"
	appLog "questcal/internal/log"
	"questcal/internal/model"
	"questcal/internal/recur"
	"questcal/internal/schedule"
)

var (
	// ErrEmptyInput is returned for blank or whitespace-only text.
	ErrEmptyInput = errors.New("please paste your Quest schedule data")

	// ErrOnlyTBA is returned when every recognised meeting is TBA and
	// Limits.FailOnTBAOnly is set.
	ErrOnlyTBA = errors.New("schedule has no meetings with a day and time")
)

// Request bundles everything one export needs.
type Request struct {
	Text        string
	DateFormat  recur.DateFormat
	Summary     string
	Description string
	Limits      config.Limits

	EmitUID        bool
	StrictEscaping bool
}

// Result is a finished export.
type Result struct {
	Document string
	Filename string

	// Records are all distinct meetings found, TBA included.
	Records []model.MeetingRecord
	// Events are the calendar events written to Document.
	Events []model.CalendarEvent
}

// ProduceCalendarDocument converts pasted schedule text into iCalendar text.
// Empty templates fall back to the defaults; limits is merged over the
// default limits.
func ProduceCalendarDocument(text string, format recur.DateFormat, summary, description string, limits config.Limits) (string, error) {
	res, err := Run(Request{
		Text:        text,
		DateFormat:  format,
		Summary:     summary,
		Description: description,
		Limits:      limits,
	})
	if err != nil {
		return "", err
	}
	return res.Document, nil
}

// FromConfig builds a Request for text from the application configuration.
func FromConfig(cfg *config.Config, text string) (Request, error) {
	format, err := recur.ParseDateFormat(cfg.DateFormat)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Text:           text,
		DateFormat:     format,
		Summary:        cfg.Summary,
		Description:    cfg.Description,
		Limits:         cfg.Limits,
		EmitUID:        cfg.EmitUID,
		StrictEscaping: cfg.StrictEscaping,
	}, nil
}

// Run executes the pipeline and keeps the intermediate records and events.
func Run(req Request) (Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, ErrEmptyInput
	}
	if _, err := recur.ParseDateFormat(string(req.DateFormat)); err != nil {
		return Result{}, err
	}
	limits := req.Limits.WithDefaults()
	if req.Summary == "" {
		req.Summary = config.DefaultSummary
	}
	if req.Description == "" {
		req.Description = config.DefaultDescription
	}

	parsed, err := schedule.Parse(req.Text, schedule.Options{
		MaxCourses:  limits.MaxCourses,
		MaxSections: limits.MaxSections,
	})
	if err != nil {
		return Result{}, err
	}

	scheduled := parsed.Scheduled()
	if len(scheduled) == 0 && limits.FailOnTBAOnly {
		return Result{}, fmt.Errorf("%w: %d TBA meetings found", ErrOnlyTBA, len(parsed.Records))
	}

	events, err := recur.NewEngine(req.DateFormat).Events(scheduled)
	if err != nil {
		return Result{}, err
	}

	doc := ics.Render(events, ics.Options{
		Summary:        req.Summary,
		Description:    req.Description,
		EmitUID:        req.EmitUID,
		StrictEscaping: req.StrictEscaping,
	})

	appLog.Info("calendar exported",
		"courses", len(parsed.Courses),
		"records", len(parsed.Records),
		"tba", len(parsed.Records)-len(scheduled),
		"events", len(events),
		"notation", parsed.Notation.String(),
		"date_format", string(req.DateFormat),
	)

	return Result{
		Document: doc,
		Filename: limits.Filename,
		Records:  parsed.Records,
		Events:   events,
	}, nil
}
