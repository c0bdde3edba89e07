package schedule

import (
	"questcal/internal/model"
)

// courseBlock is a course header together with the text that follows it up
// to the next header or the end of input.
type courseBlock struct {
	header model.CourseHeader
	body   string
}

// splitCourses partitions text by course header lines.
func splitCourses(text string) []courseBlock {
	matches := courseHeader.FindAllStringSubmatchIndex(text, -1)
	blocks := make([]courseBlock, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		blocks = append(blocks, courseBlock{
			header: model.CourseHeader{
				Code:  Flatten(text[m[2]:m[3]]),
				Title: Flatten(text[m[4]:m[5]]),
			},
			body: text[m[1]:end],
		})
	}
	return blocks
}
