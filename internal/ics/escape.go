package ics

import (
	"strings"
	"unicode/utf8"
)

const foldWidth = 75

var (
	commaEscaper  = strings.NewReplacer(",", `\,`)
	strictEscaper = strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
)

// EscapeText puts a backslash before every comma and touches nothing else.
func EscapeText(s string) string {
	return commaEscaper.Replace(s)
}

// EscapeTextStrict applies the full RFC 5545 TEXT escaping.
func EscapeTextStrict(s string) string {
	return strictEscaper.Replace(s)
}

// Fold splits a content line longer than 75 octets into continuation lines
// that start with a single space. Multi-byte runes are never split.
func Fold(line string) []string {
	if len(line) <= foldWidth {
		return []string{line}
	}
	var out []string
	for len(line) > foldWidth {
		cut := foldWidth
		for cut > 1 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		out = append(out, line[:cut])
		// The leading space of a continuation line counts toward its width.
		line = " " + line[cut:]
	}
	return append(out, line)
}
