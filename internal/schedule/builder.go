package schedule

import (
	"fmt"
	"strings"

	appLog "questcal/internal/log"
	"questcal/internal/model"
)

// Default ceilings on course headers and on meetings per course.
const (
	DefaultMaxCourses  = 20
	DefaultMaxSections = 5
)

// Options bounds a parse pass. Zero values select the defaults.
type Options struct {
	// MaxCourses is the ceiling on course headers.
	MaxCourses int
	// MaxSections is the ceiling on distinct meetings per course.
	MaxSections int
}

func (o Options) normalized() Options {
	if o.MaxCourses <= 0 {
		o.MaxCourses = DefaultMaxCourses
	}
	if o.MaxSections <= 0 {
		o.MaxSections = DefaultMaxSections
	}
	return o
}

// Result is the outcome of one parse pass.
type Result struct {
	// Notation is the clock notation inferred for the whole input.
	Notation Notation
	// Courses lists the course headers in input order.
	Courses []model.CourseHeader
	// Records holds every distinct meeting in input order, TBA included.
	Records []model.MeetingRecord
}

// Scheduled returns the records that have a day and time, i.e. those that
// become calendar events.
func (r Result) Scheduled() []model.MeetingRecord {
	out := make([]model.MeetingRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		if rec.IsTBA {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Parse recognises course headers and meeting records in pasted schedule
// text. Malformed candidates are skipped; only an input without any
// recognisable record is an error (ErrNoRecordsFound). Inputs with more
// course headers or per-course meetings than opts allows fail with
// ErrRecordLimitExceeded.
func Parse(text string, opts Options) (Result, error) {
	opts = opts.normalized()
	text = strings.ReplaceAll(text, "\r\n", "\n")

	res := Result{Notation: DetectNotation(text)}
	g := newGrammar(res.Notation)

	blocks := splitCourses(text)
	if len(blocks) > opts.MaxCourses {
		return Result{}, fmt.Errorf("%w: %d course headers, at most %d allowed", ErrRecordLimitExceeded, len(blocks), opts.MaxCourses)
	}

	seen := make(map[string]struct{})
	for _, blk := range blocks {
		res.Courses = append(res.Courses, blk.header)

		raws := g.pickLayout(blk)
		added := 0
		for _, raw := range raws {
			rec, ok := buildRecord(blk.header, raw)
			if !ok {
				continue
			}
			key := rec.Key()
			if _, dup := seen[key]; dup {
				appLog.Debug("dropping duplicate meeting", "code", rec.Course.Code, "class_number", rec.ClassNumber)
				continue
			}
			added++
			if added > opts.MaxSections {
				return Result{}, fmt.Errorf("%w: course %s has more than %d meetings", ErrRecordLimitExceeded, blk.header.Code, opts.MaxSections)
			}
			seen[key] = struct{}{}
			res.Records = append(res.Records, rec)
		}
	}

	if len(res.Records) == 0 {
		return Result{}, fmt.Errorf("%w: check that the text was copied from the class schedule list view", ErrNoRecordsFound)
	}

	appLog.Debug("schedule parsed",
		"notation", res.Notation.String(),
		"courses", len(res.Courses),
		"records", len(res.Records),
	)
	return res, nil
}

// pickLayout runs both layout strategies over a course body and keeps the
// one that recognised more candidates; ties go to the columnar reading.
func (g grammar) pickLayout(blk courseBlock) []rawMeeting {
	columnar := g.parseColumnar(blk.body)
	inline := g.parseInline(blk.body)
	if len(inline) > len(columnar) {
		appLog.Debug("layout chosen", "code", blk.header.Code, "layout", "inline", "candidates", len(inline))
		return inline
	}
	appLog.Debug("layout chosen", "code", blk.header.Code, "layout", "columnar", "candidates", len(columnar))
	return columnar
}

// buildRecord normalizes a raw candidate into a MeetingRecord. It reports
// false when the candidate violates a field invariant.
func buildRecord(header model.CourseHeader, raw rawMeeting) (model.MeetingRecord, bool) {
	rec := model.MeetingRecord{
		Course:      header,
		ClassNumber: Flatten(raw.classNumber),
		Section:     Flatten(raw.section),
		Component:   Flatten(raw.component),
		Location:    Flatten(raw.room),
		Instructor:  Flatten(raw.instructor),
		StartDate:   Flatten(raw.startDate),
		EndDate:     Flatten(raw.endDate),
		IsTBA:       raw.tba,
	}
	if !componentRow.MatchString(rec.Component) {
		appLog.Debug("skipping meeting with invalid component", "code", header.Code, "component", rec.Component)
		return model.MeetingRecord{}, false
	}

	if rec.IsTBA {
		rec.DaysText = tbaToken
		return rec, true
	}

	days, err := ParseDays(Flatten(raw.days))
	if err != nil {
		appLog.Debug("skipping meeting with invalid days", "code", header.Code, "err", err)
		return model.MeetingRecord{}, false
	}
	rec.Days = days
	rec.DaysText = Flatten(raw.days)
	rec.StartTime = strings.ReplaceAll(Flatten(raw.start), " ", "")
	rec.EndTime = strings.ReplaceAll(Flatten(raw.end), " ", "")
	return rec, true
}
