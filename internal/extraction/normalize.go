package extraction

import "strings"

// Normalize collapses every run of whitespace (line breaks and tabs included)
// into a single space and trims the ends. Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
