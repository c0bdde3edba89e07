package model

import (
	"strings"
	"time"
)

// Weekdays is a set of class days; bit n is time.Weekday(n).
type Weekdays uint8

// canonicalOrder is the Monday-first order used for every rendering of a set.
var canonicalOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var byDayCodes = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

var compactCodes = map[time.Weekday]string{
	time.Monday:    "M",
	time.Tuesday:   "T",
	time.Wednesday: "W",
	time.Thursday:  "Th",
	time.Friday:    "F",
	time.Saturday:  "Sa",
	time.Sunday:    "Su",
}

// NewWeekdays builds a set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w = w.With(d)
	}
	return w
}

// With returns the set with d added.
func (w Weekdays) With(d time.Weekday) Weekdays {
	return w | 1<<uint(d)
}

// Has reports whether d is in the set.
func (w Weekdays) Has(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

// Empty reports whether the set has no days.
func (w Weekdays) Empty() bool {
	return w == 0
}

// Days returns the members in Monday-first order.
func (w Weekdays) Days() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for _, d := range canonicalOrder {
		if w.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// ByDay returns the iCalendar BYDAY codes in Monday-first order.
func (w Weekdays) ByDay() []string {
	days := w.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, byDayCodes[d])
	}
	return out
}

// String renders the set in the compact schedule notation, e.g. "MWF" or "TTh".
func (w Weekdays) String() string {
	var b strings.Builder
	for _, d := range w.Days() {
		b.WriteString(compactCodes[d])
	}
	return b.String()
}
