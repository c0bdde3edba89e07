package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "inner runs", in: "Hello    World", want: "Hello World"},
		{name: "edges", in: "  Leading and trailing  ", want: "Leading and trailing"},
		{name: "newlines and tabs", in: "Multiple\n\nLines\tand\t\tTabs", want: "Multiple Lines and Tabs"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: " \t\n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Flatten(got))
		})
	}
}

func TestJoinInstructors(t *testing.T) {
	assert.Equal(t, "David R Cheriton, Jane Smith", joinInstructors("David R Cheriton,", "Jane Smith"))
	assert.Equal(t, "David R Cheriton, Jane Smith", joinInstructors("David R Cheriton", " Jane  Smith"))
	assert.Equal(t, "Jane Smith", joinInstructors("", "Jane Smith"))
	assert.Equal(t, "David R Cheriton", joinInstructors("David R Cheriton,", ""))
}

func TestSplitRoomInstructor(t *testing.T) {
	tests := []struct {
		in         string
		room       string
		instructor string
	}{
		{in: "MC 2066 William B Cowan", room: "MC 2066", instructor: "William B Cowan"},
		{in: "DWE 3522A Jane Doe", room: "DWE 3522A", instructor: "Jane Doe"},
		{in: "MC 2066 Cowan, William B", room: "MC 2066", instructor: "Cowan, William B"},
		{in: "TBA Staff", room: "TBA", instructor: "Staff"},
		{in: "ONLINE William B Cowan", room: "ONLINE", instructor: "William B Cowan"},
		{in: "ONLINE", room: "ONLINE", instructor: ""},
		{in: "William B Cowan", room: "", instructor: "William B Cowan"},
		{in: "Staff", room: "", instructor: "Staff"},
		{in: "", room: "", instructor: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			room, instructor := splitRoomInstructor(tt.in)
			assert.Equal(t, tt.room, room)
			assert.Equal(t, tt.instructor, instructor)
		})
	}
}
