package services

import "strings"

// Normalize reduces a locale-formatted numeric string to a canonical form:
// the value is truncated at the first occurrence of unitMarker (when given),
// every rune that is not a digit, comma or period is dropped, and the comma
// decimal separator is replaced with a period. A value without digits yields
// an empty string; Normalize never fails.
func Normalize(raw, unitMarker string) string {
	if unitMarker != "" {
		if i := strings.Index(raw, unitMarker); i >= 0 {
			raw = raw[:i]
		}
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	return strings.ReplaceAll(b.String(), ",", ".")
}
