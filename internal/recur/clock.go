package recur

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// ParseClock reads "10:30AM", "1:00 PM" or "13:00". Each value decides its
// own notation by the presence of an AM/PM suffix. Anything unreadable
// yields None instead of an error.
func ParseClock(s string) mo.Option[Clock] {
	sm := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if sm == nil {
		return mo.None[Clock]()
	}
	hour, _ := strconv.Atoi(sm[1])
	minute, _ := strconv.Atoi(sm[2])
	if minute > 59 {
		return mo.None[Clock]()
	}

	switch strings.ToUpper(sm[3]) {
	case "":
		if hour > 23 {
			return mo.None[Clock]()
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return mo.None[Clock]()
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return mo.None[Clock]()
		}
		if hour != 12 {
			hour += 12
		}
	}
	return mo.Some(Clock{Hour: hour, Minute: minute})
}
