// Package utils provides small string helpers shared across packages.
package utils

import "strings"

// StripWhitespace removes all whitespace from a string, including interior
// runs. Used for part number comparison keys.
func StripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// NormalizeWhitespace replaces runs of whitespace with a single space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate truncates a string to max length, appending an ellipsis when it
// had to cut.
func Truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	return s[:maxLength] + "..."
}
