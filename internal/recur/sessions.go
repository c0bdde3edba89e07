package recur

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"

	"questcal/internal/model"
)

const defaultMaxSessions = 1000

var rruleDays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// SessionResult lists the concrete class meetings of one event.
type SessionResult struct {
	Starts []time.Time
	// Truncated is set when the cap cut the list short.
	Truncated bool
}

// Sessions expands ev into the start instant of every class meeting,
// applying the same weekly rule that is written to the RRULE line. limit caps
// the expansion; zero selects a default.
func Sessions(ev model.CalendarEvent, limit int) (SessionResult, error) {
	var res SessionResult
	if limit <= 0 {
		limit = defaultMaxSessions
	}

	start, ok := ev.Start.Get()
	if !ok {
		return res, errors.New("sessions: event has no start time")
	}

	until, recurring := ev.Until.Get()
	if !recurring {
		res.Starts = []time.Time{start}
		return res, nil
	}

	r, err := rrule.NewRRule(weeklyOption(start, until, ev.ByDay))
	if err != nil {
		return res, err
	}

	res.Starts, res.Truncated = Take(r.Iterator(), limit)
	return res, nil
}

// Take pulls at most limit instants from next and reports whether more
// remained. The rule is never expanded past limit+1 occurrences.
func Take(next rrule.Next, limit int) ([]time.Time, bool) {
	out := make([]time.Time, 0)
	for {
		t, ok := next()
		if !ok {
			return out, false
		}
		if len(out) == limit {
			return out, true
		}
		out = append(out, t)
	}
}

// weeklyOption mirrors the emitted rule: FREQ=WEEKLY;WKST=SU;BYDAY=...;UNTIL=...
func weeklyOption(start, until time.Time, byDay []string) rrule.ROption {
	days := make([]rrule.Weekday, 0, len(byDay))
	for _, code := range byDay {
		if wd, ok := rruleDays[code]; ok {
			days = append(days, wd)
		}
	}
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Wkst:      rrule.SU,
		Byweekday: days,
		Until:     until,
	}
}
