package decode

import (
	"regexp"
	"strconv"
	"time"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractYear returns the first 19xx/20xx year token in s.
func ExtractYear(s string) (string, bool) {
	year := yearPattern.FindString(s)
	return year, year != ""
}

// NormalizeYear returns the first year token in s, or fallback when none is found.
func NormalizeYear(s, fallback string) string {
	if year, ok := ExtractYear(s); ok {
		return year
	}

	return fallback
}

// YearOf formats the calendar year of t.
func YearOf(t time.Time) string {
	return strconv.Itoa(t.Year())
}
