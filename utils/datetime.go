package utils

import (
	"regexp"
	"strings"
)

// dateTimePattern matches a date token like 12/8/2025 or 2-8-25,
// optionally followed by a time token like 11:00am, separated by a
// comma and/or spaces.
var dateTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b[,\s]*(\d{1,2}:\d{2}(?:\s*[ap]m)?)?`)

// phonePattern matches a run of 8+ digits with an optional leading +
// and internal spaces or hyphens.
var phonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)

// ExtractDateTime scans text left to right for the first date token and
// an optional trailing time token. It returns empty strings when no
// date is found; a time alone is never returned.
func ExtractDateTime(text string) (date string, timeOfDay string) {
	match := dateTimePattern.FindStringSubmatch(text)
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

// ExtractPhoneNumber finds the first phone-number-shaped token in text
// and returns it with spaces and hyphens stripped. Empty string when
// none is found.
func ExtractPhoneNumber(text string) string {
	match := phonePattern.FindString(text)
	if match == "" {
		return ""
	}
	replacer := strings.NewReplacer(" ", "", "-", "")
	return replacer.Replace(match)
}
