package schedule

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questcal/internal/model"
)

func TestDetectNotation(t *testing.T) {
	assert.Equal(t, Notation12Hour, DetectNotation(inlineSchedule))
	assert.Equal(t, Notation12Hour, DetectNotation("MWF 10:30 AM - 11:20 AM"))
	assert.Equal(t, Notation24Hour, DetectNotation(inline24HourSchedule))
	assert.Equal(t, Notation24Hour, DetectNotation(""))
}

func TestParse_Inline(t *testing.T) {
	res, err := Parse(inlineSchedule, Options{})
	require.NoError(t, err)

	assert.Equal(t, Notation12Hour, res.Notation)
	require.Len(t, res.Courses, 3)
	require.Len(t, res.Records, 3)

	assert.Equal(t, model.MeetingRecord{
		Course:      model.CourseHeader{Code: "CS 452", Title: "Real-time Programming"},
		ClassNumber: "1234",
		Section:     "001",
		Component:   "LEC",
		Days:        model.NewWeekdays(time.Monday, time.Wednesday, time.Friday),
		DaysText:    "MWF",
		StartTime:   "10:30AM",
		EndTime:     "11:20AM",
		Location:    "MC 2066",
		Instructor:  "William B Cowan",
		StartDate:   "01/06/2025",
		EndDate:     "04/04/2025",
	}, res.Records[0])

	math := res.Records[1]
	assert.Equal(t, "MATH 239", math.Course.Code)
	assert.Equal(t, "Introduction to Combinatorics", math.Course.Title)
	assert.Equal(t, "TTh", math.DaysText)
	assert.Equal(t, []string{"TU", "TH"}, math.Days.ByDay())
	assert.Equal(t, "DWE 3522A", math.Location)
	assert.Equal(t, "Jane Doe", math.Instructor)

	assert.Equal(t, "ECE 356", res.Records[2].Course.Code)
	assert.Equal(t, "02:30PM", res.Records[2].StartTime)
}

func TestParse_24HourNotation(t *testing.T) {
	res, err := Parse(inline24HourSchedule, Options{})
	require.NoError(t, err)

	assert.Equal(t, Notation24Hour, res.Notation)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "10:30", res.Records[0].StartTime)
	assert.Equal(t, "11:20", res.Records[0].EndTime)
	assert.Equal(t, "13:00", res.Records[1].StartTime)
}

func TestParse_Columnar(t *testing.T) {
	res, err := Parse(columnarSchedule, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	lec := res.Records[0]
	assert.Equal(t, "5678", lec.ClassNumber)
	assert.Equal(t, "001", lec.Section)
	assert.Equal(t, "LEC", lec.Component)
	assert.Equal(t, "TTh", lec.DaysText)
	assert.Equal(t, "1:00PM", lec.StartTime)
	assert.Equal(t, "2:20PM", lec.EndTime)
	assert.Equal(t, "MC 4045", lec.Location)
	assert.Equal(t, "David R Cheriton, Jane Smith", lec.Instructor)
	assert.Equal(t, "01/06/2025", lec.StartDate)
	assert.Equal(t, "04/04/2025", lec.EndDate)

	tut := res.Records[1]
	assert.Equal(t, "5679", tut.ClassNumber)
	assert.Equal(t, "TUT", tut.Component)
	assert.Equal(t, "F", tut.DaysText)
	assert.Equal(t, "Staff", tut.Instructor)
}

func TestParse_TabSeparatedColumns(t *testing.T) {
	res, err := Parse(tabbedSchedule, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.Equal(t, "CS 343", res.Records[0].Course.Code)
	assert.Equal(t, "8:30AM", res.Records[0].StartTime)
	assert.Equal(t, "Peter Buhr", res.Records[0].Instructor)
	assert.Equal(t, "MC 4060", res.Records[1].Location)
	assert.Equal(t, "TBA", res.Records[1].Instructor)
	assert.False(t, res.Records[1].IsTBA)
}

func TestParse_ContinuationMeetingRows(t *testing.T) {
	res, err := Parse(continuationSchedule, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	for _, rec := range res.Records {
		assert.Equal(t, "9012", rec.ClassNumber)
		assert.Equal(t, "001", rec.Section)
		assert.Equal(t, "LEC", rec.Component)
	}
	assert.Equal(t, "MW", res.Records[0].DaysText)
	assert.Equal(t, "F", res.Records[1].DaysText)
	assert.Equal(t, "3:20PM", res.Records[1].EndTime)
}

func TestParse_MixedLayouts(t *testing.T) {
	res, err := Parse(inlineSchedule+"\n"+columnarSchedule, Options{})
	require.NoError(t, err)

	require.Len(t, res.Courses, 4)
	assert.Len(t, res.Records, 5)
}

func TestParse_TBA(t *testing.T) {
	res, err := Parse(tbaSchedule, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	tba := res.Records[1]
	assert.True(t, tba.IsTBA)
	assert.Equal(t, "TBA", tba.DaysText)
	assert.True(t, tba.Days.Empty())
	assert.Empty(t, tba.StartTime)
	assert.Equal(t, "MC 2066", tba.Location)

	scheduled := res.Scheduled()
	require.Len(t, scheduled, 1)
	assert.Equal(t, "1234", scheduled[0].ClassNumber)
}

func TestParse_Deduplicates(t *testing.T) {
	row := "1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025\n"
	text := "CS 452 - Real-time Programming\n" + row + row + "\n\n" + row

	res, err := Parse(text, Options{})
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	text := `CS 452 - Real-time Programming
1234 001 LECT MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025
1234 001 LEC MWX 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
`
	res, err := Parse(text, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "MWF", res.Records[0].DaysText)
}

func TestParse_NoRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain text", text: "This is not valid Quest data\nIt should not parse correctly"},
		{name: "header only", text: "CS 452 - Real-time Programming\n"},
		{name: "meeting without class group", text: "CS 452 - Real-time Programming\nMWF 10:30AM - 11:20AM\nMC 2066\nStaff\n01/06/2025 - 04/04/2025\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, Options{})
			assert.ErrorIs(t, err, ErrNoRecordsFound)
		})
	}
}

func TestParse_Limits(t *testing.T) {
	t.Run("too many courses", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < DefaultMaxCourses+1; i++ {
			fmt.Fprintf(&b, "CS %d - Course %d\n", 100+i, i)
			fmt.Fprintf(&b, "%d 001 LEC MWF 10:30AM - 11:20AM MC 2066 Staff 01/06/2025 - 04/04/2025\n", 1000+i)
		}
		_, err := Parse(b.String(), Options{})
		assert.ErrorIs(t, err, ErrRecordLimitExceeded)
	})

	t.Run("custom course ceiling", func(t *testing.T) {
		_, err := Parse(inlineSchedule, Options{MaxCourses: 2})
		assert.ErrorIs(t, err, ErrRecordLimitExceeded)
	})

	t.Run("too many meetings in one course", func(t *testing.T) {
		_, err := Parse(continuationSchedule, Options{MaxSections: 1})
		assert.ErrorIs(t, err, ErrRecordLimitExceeded)
	})

	t.Run("duplicates do not count towards the ceiling", func(t *testing.T) {
		row := "1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025\n"
		res, err := Parse("CS 452 - Real-time Programming\n"+row+row, Options{MaxSections: 1})
		require.NoError(t, err)
		assert.Len(t, res.Records, 1)
	})
}

func TestParse_CRLF(t *testing.T) {
	res, err := Parse(strings.ReplaceAll(columnarSchedule, "\n", "\r\n"), Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Real-time Programming", res.Courses[0].Title)
}

func TestParse_LayoutWithMoreCandidatesWins(t *testing.T) {
	text := `CS 452 - Real-time Programming
1234 001 LEC MWF 10:30AM - 11:20AM MC 2066 William B Cowan 01/06/2025 - 04/04/2025
5678
001
LEC
TTh 1:00PM - 2:20PM
MC 4045
Staff
01/06/2025 - 04/04/2025
5679
101
TUT
F 9:30AM - 10:20AM
MC 4021
Staff
01/06/2025 - 04/04/2025
`
	blocks := splitCourses(text)
	require.Len(t, blocks, 1)

	g := newGrammar(DetectNotation(text))
	assert.Len(t, g.parseInline(blocks[0].body), 1)
	assert.Len(t, g.parseColumnar(blocks[0].body), 2)

	res, err := Parse(text, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "5678", res.Records[0].ClassNumber)
	assert.Equal(t, "5679", res.Records[1].ClassNumber)
}

func TestParse_InlineRoomWithoutNumber(t *testing.T) {
	text := "CS 452 - Real-time Programming\n" +
		"1234 001 LEC MWF 10:30AM - 11:20AM ONLINE William B Cowan 01/06/2025 - 04/04/2025\n"

	res, err := Parse(text, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "ONLINE", res.Records[0].Location)
	assert.Equal(t, "William B Cowan", res.Records[0].Instructor)
}
