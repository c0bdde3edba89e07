package recur

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/samber/mo"

	appLog "questcal/internal/log"
	"questcal/internal/model"
)

// TZID is the civil time zone every class time is anchored to.
const TZID = "America/Toronto"

// MaxFirstDaySearch bounds the day-by-day search for the first class date.
const MaxFirstDaySearch = 366

// Toronto is the location named by TZID.
var Toronto = mustLoad(TZID)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("recur: load %s: %v", name, err))
	}
	return loc
}

// Engine turns meeting records into calendar events under one date format.
type Engine struct {
	Format   DateFormat
	Location *time.Location
}

// NewEngine returns an Engine anchored to America/Toronto.
func NewEngine(format DateFormat) Engine {
	return Engine{Format: format, Location: Toronto}
}

// Events converts every scheduled record, skipping TBA meetings. The first
// date error aborts the whole conversion.
func (e Engine) Events(recs []model.MeetingRecord) ([]model.CalendarEvent, error) {
	out := make([]model.CalendarEvent, 0, len(recs))
	for _, rec := range recs {
		if rec.IsTBA {
			continue
		}
		ev, err := e.Event(rec)
		if err != nil {
			return nil, fmt.Errorf("%s %s %s: %w", rec.Course.Code, rec.Component, rec.Section, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// Event computes the first occurrence of rec on or after its start date and,
// when the date range spans more than one day, the weekly recurrence bound.
func (e Engine) Event(rec model.MeetingRecord) (model.CalendarEvent, error) {
	if rec.IsTBA {
		return model.CalendarEvent{}, ErrUnscheduled
	}
	loc := e.Location
	if loc == nil {
		loc = Toronto
	}

	startDate, err := e.Format.Parse(rec.StartDate, loc)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	endDate, err := e.Format.Parse(rec.EndDate, loc)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	first, err := FirstClassDate(startDate, rec.Days)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	ev := model.CalendarEvent{
		Start: at(first, ParseClock(rec.StartTime)),
		End:   at(first, ParseClock(rec.EndTime)),
		Until: mo.None[time.Time](),
		ByDay: rec.Days.ByDay(),
		Meta:  rec.Meta(),
		Key:   rec.Key(),
	}
	if ev.Start.IsAbsent() || ev.End.IsAbsent() {
		appLog.Warn("unreadable class time; emitting event without times",
			"code", rec.Course.Code,
			"start", rec.StartTime,
			"end", rec.EndTime,
		)
	}

	if !endDate.Equal(startDate) {
		ev.Until = mo.Some(time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, 0, loc))
	}
	return ev, nil
}

// FirstClassDate walks forward from start, one day at a time, until it lands
// on a day in days.
func FirstClassDate(start time.Time, days model.Weekdays) (time.Time, error) {
	d := start
	for i := 0; i < MaxFirstDaySearch; i++ {
		if days.Has(d.Weekday()) {
			return d, nil
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("%w: no class day %q within %d days of %s",
		ErrInvalidFirstClassDate, days.String(), MaxFirstDaySearch, start.Format("2006-01-02"))
}

func at(day time.Time, c mo.Option[Clock]) mo.Option[time.Time] {
	clock, ok := c.Get()
	if !ok {
		return mo.None[time.Time]()
	}
	return mo.Some(time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location()))
}
