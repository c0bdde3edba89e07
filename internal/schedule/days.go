package schedule

import (
	"fmt"
	"time"

	"questcal/internal/model"
)

// ParseDays reads a compact weekday code such as "MWF", "TTh" or "MTWHF".
// "Th" and "H" are Thursday, a bare "T" is Tuesday. "Sa"/"S" and "Su"/"U"
// cover weekend sessions.
func ParseDays(code string) (model.Weekdays, error) {
	var days model.Weekdays
	for i := 0; i < len(code); i++ {
		next := byte(0)
		if i+1 < len(code) {
			next = code[i+1]
		}
		switch code[i] {
		case 'M':
			days = days.With(time.Monday)
		case 'T':
			switch next {
			case 'h':
				days = days.With(time.Thursday)
				i++
			case 'u':
				days = days.With(time.Tuesday)
				i++
			default:
				days = days.With(time.Tuesday)
			}
		case 'W':
			days = days.With(time.Wednesday)
		case 'H', 'R':
			days = days.With(time.Thursday)
		case 'F':
			days = days.With(time.Friday)
		case 'S':
			switch next {
			case 'u':
				days = days.With(time.Sunday)
				i++
			case 'a':
				days = days.With(time.Saturday)
				i++
			default:
				days = days.With(time.Saturday)
			}
		case 'U':
			days = days.With(time.Sunday)
		default:
			return 0, fmt.Errorf("unknown weekday letter %q in %q", code[i], code)
		}
	}
	if days.Empty() {
		return 0, fmt.Errorf("no weekdays in %q", code)
	}
	return days, nil
}
