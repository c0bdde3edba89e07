package recur

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the order of the day, month and year fields in the
// schedule's "a/b/c" dates.
type DateFormat string

const (
	DayMonthYear DateFormat = "DD/MM/YYYY"
	MonthDayYear DateFormat = "MM/DD/YYYY"
	YearMonthDay DateFormat = "YYYY/MM/DD"
	YearDayMonth DateFormat = "YYYY/DD/MM"
	MonthYearDay DateFormat = "MM/YYYY/DD"
	DayYearMonth DateFormat = "DD/YYYY/MM"
)

// DateFormats lists every supported field order.
var DateFormats = []DateFormat{
	DayMonthYear,
	MonthDayYear,
	YearMonthDay,
	YearDayMonth,
	MonthYearDay,
	DayYearMonth,
}

// ParseDateFormat validates a format name such as "MM/DD/YYYY".
func ParseDateFormat(name string) (DateFormat, error) {
	f := DateFormat(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range DateFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDateFormat, name)
}

// order returns the positions of day, month and year within the format.
func (f DateFormat) order() (day, month, year int, ok bool) {
	parts := strings.Split(string(f), "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	day, month, year = -1, -1, -1
	for i, p := range parts {
		switch p {
		case "DD":
			day = i
		case "MM":
			month = i
		case "YYYY":
			year = i
		}
	}
	return day, month, year, day >= 0 && month >= 0 && year >= 0
}

// Parse reads s as a calendar date at midnight in loc. Out-of-range values
// (month 13, April 31, ...) are rejected rather than normalized.
func (f DateFormat) Parse(s string, loc *time.Location) (time.Time, error) {
	di, mi, yi, ok := f.order()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDateFormat, string(f))
	}

	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q does not have three fields", ErrInvalidDateValue, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidDateValue, s)
		}
		nums[i] = n
	}

	day, month, year := nums[di], nums[mi], nums[yi]
	if len(parts[yi]) <= 2 {
		year += 2000
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q read as %s", ErrInvalidDateValue, s, f)
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, fmt.Errorf("%w: %q read as %s", ErrInvalidDateValue, s, f)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
