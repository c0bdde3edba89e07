package ics

import (
	"strings"

	"questcal/internal/model"
)

// Placeholder is one token of the template vocabulary.
type Placeholder struct {
	Token       string `json:"placeholder"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

var placeholders = []Placeholder{
	{Token: "@code", Description: "Course code", Example: "CS 452"},
	{Token: "@section", Description: "Course section number", Example: "001"},
	{Token: "@name", Description: "Name of the course", Example: "Real-time Programming"},
	{Token: "@type", Description: "Type of course", Example: "LEC"},
	{Token: "@location", Description: "Room for the course", Example: "DWE 3522A"},
	{Token: "@prof", Description: "Instructor for the course", Example: "William B Cowan"},
}

// Placeholders returns the fixed template vocabulary.
func Placeholders() []Placeholder {
	out := make([]Placeholder, len(placeholders))
	copy(out, placeholders)
	return out
}

// Fill replaces every occurrence of every placeholder in tmpl with the
// matching field of meta. Matching is case-sensitive; unknown @tokens are
// left as they are.
func Fill(tmpl string, meta model.Meta) string {
	r := strings.NewReplacer(
		"@code", meta.Code,
		"@section", meta.Section,
		"@name", meta.Name,
		"@type", meta.Type,
		"@location", meta.Location,
		"@prof", meta.Prof,
	)
	return r.Replace(tmpl)
}
