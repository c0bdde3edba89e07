package schedule

import (
	"strings"

	appLog "questcal/internal/log"
)

// splitCells breaks a columnar body into cells: one per line, and one per
// tab-separated column within a line. Empty cells are kept so that blank
// columns (an empty room, say) keep their position.
func splitCells(body string) []string {
	lines := strings.Split(body, "\n")
	cells := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, cell := range strings.Split(line, "\t") {
			cells = append(cells, strings.TrimSpace(cell))
		}
	}
	return cells
}

// group is the class number / section / component triple shared by every
// meeting row listed under it.
type group struct {
	classNumber string
	section     string
	component   string
}

// parseColumnar reads meetings laid out one field per line (or per tab
// column) in the fixed order: class number, section, component, days and
// times, room, instructor (one or two lines), date range.
func (g grammar) parseColumnar(body string) []rawMeeting {
	cells := splitCells(body)
	out := make([]rawMeeting, 0)

	var current *group
	for i := 0; i < len(cells); {
		cell := cells[i]
		switch {
		case g.startsGroup(cells, i):
			current = &group{
				classNumber: cell,
				section:     cells[i+1],
				component:   cells[i+2],
			}
			if !sectionRow.MatchString(current.section) {
				appLog.Debug("columnar: skipping group with malformed section", "class_number", cell, "section", current.section)
				current = nil
				i++
				continue
			}
			m, next, ok := g.columnarMeeting(cells, i+3, *current)
			if !ok {
				appLog.Debug("columnar: skipping malformed meeting", "class_number", cell)
				current = nil
				i++
				continue
			}
			out = append(out, m)
			i = next

		case g.meetingRow.MatchString(cell):
			if current == nil {
				appLog.Debug("columnar: skipping meeting row without class group", "row", cell)
				i++
				continue
			}
			m, next, ok := g.columnarMeeting(cells, i, *current)
			if !ok {
				appLog.Debug("columnar: skipping malformed continuation meeting", "class_number", current.classNumber)
				i++
				continue
			}
			out = append(out, m)
			i = next

		default:
			if cell != "" {
				current = nil
			}
			i++
		}
	}
	return out
}

// startsGroup reports whether cells[i] is a class number whose component
// cell sits two cells later.
func (g grammar) startsGroup(cells []string, i int) bool {
	return i+2 < len(cells) &&
		classNumberRow.MatchString(cells[i]) &&
		componentRow.MatchString(cells[i+2])
}

// columnarMeeting reads one meeting starting at the days/times cell j and
// returns it with the index just past its date range.
func (g grammar) columnarMeeting(cells []string, j int, grp group) (rawMeeting, int, bool) {
	if j+3 >= len(cells) {
		return rawMeeting{}, 0, false
	}
	sm := g.meetingRow.FindStringSubmatch(cells[j])
	if sm == nil {
		return rawMeeting{}, 0, false
	}

	m := rawMeeting{
		classNumber: grp.classNumber,
		section:     grp.section,
		component:   grp.component,
		room:        cells[j+1],
		instructor:  cells[j+2],
	}
	if sm[1] == "" {
		m.tba = true
	} else {
		m.days, m.start, m.end = sm[1], sm[2], sm[3]
	}

	dateIdx := j + 3
	if !dateRangeRow.MatchString(cells[dateIdx]) {
		// The instructor may continue on a second line.
		if dateIdx+1 >= len(cells) || !dateRangeRow.MatchString(cells[dateIdx+1]) {
			return rawMeeting{}, 0, false
		}
		m.instructor = joinInstructors(cells[j+2], cells[j+3])
		dateIdx++
	}
	dr := dateRangeRow.FindStringSubmatch(cells[dateIdx])
	m.startDate, m.endDate = dr[1], dr[2]

	return m, dateIdx + 1, true
}
