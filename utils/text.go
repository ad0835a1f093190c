package utils

import (
	"regexp"
	"strings"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize lower-cases text and strips every character that is not a
// lowercase letter, digit, or whitespace, so that punctuation does not
// break substring containment ("can't go on" -> "cant go on").
func Normalize(text string) string {
	return nonAlnumPattern.ReplaceAllString(strings.ToLower(text), "")
}

// ContainsAny reports whether any keyword occurs as a substring of the
// normalized text. Matching is intentionally not word-boundary aware:
// keywords inside longer words also match.
func ContainsAny(text string, keywords []string) bool {
	norm := Normalize(text)
	for _, keyword := range keywords {
		if strings.Contains(norm, keyword) {
			return true
		}
	}
	return false
}

// containsAnyLower is ContainsAny without punctuation stripping, used
// for phrase sets that are checked against the raw lowercased message.
func containsAnyLower(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
