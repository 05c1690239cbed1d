// Package label normalizes army-data labels into the lower-case form used as
// rule table keys.
package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes s to NFC, lower-cases it, trims it and collapses runs of
// whitespace into single spaces. Safe for concurrent use.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.English).String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Split breaks a comma-separated list label into normalized, non-empty parts.
// A label without a comma yields a single part.
func Split(s string) []string {
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if n := Normalize(p); n != "" {
			parts = append(parts, n)
		}
	}
	return parts
}

// IsList reports whether s would split into more than one part.
func IsList(s string) bool {
	return len(Split(s)) > 1
}

// Slug converts a label into a URL path segment: normalized, with every run
// of characters other than letters and digits replaced by a single hyphen.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range Normalize(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
