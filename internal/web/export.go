package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"questcal/internal/config"
	"questcal/internal/exporter"
	"questcal/internal/ics"
	appLog "questcal/internal/log"
	"questcal/internal/model"
	"questcal/internal/recur"
	"questcal/internal/schedule"
)

// exportRequest is the JSON body of /api/export and /api/meetings. Empty
// fields fall back to the server configuration.
type exportRequest struct {
	Text        string         `json:"text"`
	DateFormat  string         `json:"date_format"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	Limits      *config.Limits `json:"limits,omitempty"`
}

// meetingsResponse is the JSON response shape for /api/meetings.
type meetingsResponse struct {
	Records []recordDTO `json:"records"`
	Events  []eventDTO  `json:"events"`
}

type recordDTO struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	ClassNumber string `json:"class_number"`
	Section     string `json:"section"`
	Component   string `json:"component"`
	Days        string `json:"days"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Instructor  string `json:"instructor"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TBA         bool   `json:"tba"`
}

type eventDTO struct {
	Meta     model.Meta `json:"meta"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Until    *time.Time `json:"until,omitempty"`
	ByDay    []string   `json:"by_day"`
	RRule    string     `json:"rrule,omitempty"`
	Sessions int        `json:"sessions"`
}

func (s *Server) handlePlaceholders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"placeholders": ics.Placeholders(),
		"summary":      s.cfg.Summary,
		"description":  s.cfg.Description,
		"date_formats": recur.DateFormats,
	})
}

// handleExport runs the pipeline and returns the calendar as a download.
//
// POST /api/export {"text": "...", "date_format": "MM/DD/YYYY", ...}
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(res.Document))
}

// handleMeetings runs the pipeline and returns what was recognised, for
// previewing before an export.
func (s *Server) handleMeetings(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}

	resp := meetingsResponse{
		Records: make([]recordDTO, 0, len(res.Records)),
		Events:  make([]eventDTO, 0, len(res.Events)),
	}
	for _, rec := range res.Records {
		resp.Records = append(resp.Records, recordDTO{
			Code:        rec.Course.Code,
			Title:       rec.Course.Title,
			ClassNumber: rec.ClassNumber,
			Section:     rec.Section,
			Component:   rec.Component,
			Days:        rec.DaysText,
			StartTime:   rec.StartTime,
			EndTime:     rec.EndTime,
			Location:    rec.Location,
			Instructor:  rec.Instructor,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			TBA:         rec.IsTBA,
		})
	}
	for _, ev := range res.Events {
		dto := eventDTO{
			Meta:  ev.Meta,
			Start: optTime(ev.Start.Get()),
			End:   optTime(ev.End.Get()),
			Until: optTime(ev.Until.Get()),
			ByDay: ev.ByDay,
			RRule: ics.RRule(ev),
		}
		if sessions, err := recur.Sessions(ev, 0); err == nil {
			dto.Sessions = len(sessions.Starts)
		}
		resp.Events = append(resp.Events, dto)
	}
	writeJSON(w, http.StatusOK, resp)
}

// run decodes the request and executes the export, writing an error
// response itself when something fails.
func (s *Server) run(w http.ResponseWriter, r *http.Request) (exporter.Result, bool) {
	var body exportRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return exporter.Result{}, false
	}

	cfg := *s.cfg
	if body.DateFormat != "" {
		cfg.DateFormat = body.DateFormat
	}
	if body.Summary != "" {
		cfg.Summary = body.Summary
	}
	if body.Description != "" {
		cfg.Description = body.Description
	}
	if body.Limits != nil {
		cfg.Limits = *body.Limits
	}

	req, err := exporter.FromConfig(&cfg, body.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return exporter.Result{}, false
	}

	res, err := exporter.Run(req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			appLog.Error("export failed", err)
		}
		writeError(w, status, "Error processing schedule data: "+err.Error())
		return exporter.Result{}, false
	}
	return res, true
}

// statusFor maps pipeline error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, exporter.ErrEmptyInput),
		errors.Is(err, recur.ErrUnknownDateFormat):
		return http.StatusBadRequest
	case errors.Is(err, schedule.ErrNoRecordsFound),
		errors.Is(err, schedule.ErrRecordLimitExceeded),
		errors.Is(err, recur.ErrInvalidFirstClassDate),
		errors.Is(err, recur.ErrInvalidDateValue),
		errors.Is(err, exporter.ErrOnlyTBA):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func optTime(t time.Time, ok bool) *time.Time {
	if !ok {
		return nil
	}
	return &t
}
