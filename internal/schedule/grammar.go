package schedule

import (
	"regexp"
	"strings"
)

// Notation is the clock notation used by time fields of one input.
type Notation int

const (
	Notation24Hour Notation = iota
	Notation12Hour
)

func (n Notation) String() string {
	if n == Notation12Hour {
		return "12h"
	}
	return "24h"
}

const (
	time12Pattern  = `\d{1,2}:[0-5]\d ?[AP]M`
	time24Pattern  = `[0-2]?\d:[0-5]\d`
	daysPattern    = `(?:M|Th|Tu|T|W|H|R|F|Sa|Su|S|U)+`
	datePattern    = `\d{1,4}/\d{1,4}/\d{1,4}`
	tbaToken       = "TBA"
	headerPattern  = `(?m)^[ \t]*([A-Z]{2,7} \d{2,4}[A-Z]?) - ([^\r\n]*?)[ \t\r]*$`
	roomNumberLike = `^\d{1,5}[A-Z]?$`
	roomWordLike   = `^[A-Z]{2,}$`
)

var (
	ampmMarker     = regexp.MustCompile(`[0-5]\d ?[AP]M`)
	courseHeader   = regexp.MustCompile(headerPattern)
	classNumberRow = regexp.MustCompile(`^\d{4,5}$`)
	componentRow   = regexp.MustCompile(`^[A-Z]{3}$`)
	sectionRow     = regexp.MustCompile(`^[0-9A-Za-z]{1,4}$`)
	roomNumber     = regexp.MustCompile(roomNumberLike)
	roomWord       = regexp.MustCompile(roomWordLike)
	dateRangeRow   = regexp.MustCompile(`^(` + datePattern + `)\s*-\s*(` + datePattern + `)$`)
	// rowStart recognises the beginning of an inline row so that malformed
	// rows can be reported instead of vanishing silently.
	rowStart = regexp.MustCompile(`\b\d{4,5}[ \t]+[0-9A-Z]{3}[ \t]+\S+`)
)

// DetectNotation inspects the whole input once: any AM/PM marker switches
// every time field of that input to 12-hour notation.
func DetectNotation(text string) Notation {
	if ampmMarker.MatchString(text) {
		return Notation12Hour
	}
	return Notation24Hour
}

// grammar holds the notation-dependent patterns of one parse pass.
type grammar struct {
	notation Notation
	// meetingRow matches a columnar "days start - end" cell.
	meetingRow *regexp.Regexp
	// inlineRow matches a whole meeting on one line.
	inlineRow *regexp.Regexp
}

func newGrammar(n Notation) grammar {
	tp := time24Pattern
	if n == Notation12Hour {
		tp = time12Pattern
	}
	meeting := `(` + daysPattern + `)\s+(` + tp + `)\s*-\s*(` + tp + `)`

	inline := `\b(\d{4,5})[ \t]+([0-9A-Z]{3})[ \t]+([A-Z]{3})[ \t]+` +
		`(?:(` + tbaToken + `)|` + meeting + `)[ \t]+` +
		`([^\n]*?)[ \t]*(` + datePattern + `)[ \t]*-[ \t]*(` + datePattern + `)`

	return grammar{
		notation:   n,
		meetingRow: regexp.MustCompile(`^(?:` + tbaToken + `|` + meeting + `)$`),
		inlineRow:  regexp.MustCompile(inline),
	}
}

// rawMeeting is one candidate meeting as cut out of the text, before
// normalization and validation.
type rawMeeting struct {
	classNumber string
	section     string
	component   string
	tba         bool
	days        string
	start       string
	end         string
	room        string
	instructor  string
	startDate   string
	endDate     string
}

// splitRoomInstructor separates "MC 2066 William B Cowan" into room and
// instructor. The room ends at the last room-number-like token; names carry
// no digits. Without one, a leading all-caps word ("ONLINE", "TBA") is the
// room.
func splitRoomInstructor(s string) (room, instructor string) {
	tokens := strings.Fields(s)
	last := -1
	for i, tok := range tokens {
		if roomNumber.MatchString(tok) {
			last = i
		}
	}
	switch {
	case last >= 0:
		return strings.Join(tokens[:last+1], " "), strings.Join(tokens[last+1:], " ")
	case len(tokens) > 0 && roomWord.MatchString(tokens[0]):
		return tokens[0], strings.Join(tokens[1:], " ")
	default:
		return "", strings.Join(tokens, " ")
	}
}
