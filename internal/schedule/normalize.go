package schedule

import "strings"

// Flatten collapses every run of whitespace (spaces, tabs, newlines) to a
// single space and trims both ends. Flatten(Flatten(s)) == Flatten(s).
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// joinInstructors merges an instructor name continued on a second line.
func joinInstructors(first, second string) string {
	first = strings.TrimRight(Flatten(first), ", ")
	second = strings.TrimLeft(Flatten(second), ", ")
	switch {
	case first == "":
		return second
	case second == "":
		return first
	}
	return first + ", " + second
}
