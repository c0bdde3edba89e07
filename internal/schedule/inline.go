package schedule

import (
	"strings"

	appLog "questcal/internal/log"
)

// parseInline reads meetings written one per line:
//
//	1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
//	1234 001 LEC TBA MC 2066 William B Cowan 01/06/2025 - 04/04/2025
func (g grammar) parseInline(body string) []rawMeeting {
	out := make([]rawMeeting, 0)
	for _, line := range strings.Split(body, "\n") {
		found := g.inlineRow.FindAllStringSubmatch(line, -1)
		if len(found) == 0 {
			if rowStart.MatchString(line) {
				appLog.Debug("inline: skipping malformed row", "row", strings.TrimSpace(line))
			}
			continue
		}
		for _, sm := range found {
			room, instructor := splitRoomInstructor(sm[8])
			out = append(out, rawMeeting{
				classNumber: sm[1],
				section:     sm[2],
				component:   sm[3],
				tba:         sm[4] != "",
				days:        sm[5],
				start:       sm[6],
				end:         sm[7],
				room:        room,
				instructor:  instructor,
				startDate:   sm[9],
				endDate:     sm[10],
			})
		}
	}
	return out
}
