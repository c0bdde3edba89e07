package recur

import "errors"

var (
	// ErrInvalidFirstClassDate means no declared weekday was found within a
	// year of the start date.
	ErrInvalidFirstClassDate = errors.New("invalid first date of class")

	// ErrInvalidDateValue means a date string did not form a calendar date
	// under the chosen field order.
	ErrInvalidDateValue = errors.New("invalid date value")

	// ErrUnknownDateFormat means the date format name is not one of the six
	// supported field orders.
	ErrUnknownDateFormat = errors.New("unknown date format")

	// ErrUnscheduled is returned for TBA meetings, which have no day or time.
	ErrUnscheduled = errors.New("meeting has no scheduled day or time")
)
