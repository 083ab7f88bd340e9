package validator

import (
	"regexp"
	"strings"
)

// slugRegexp defines the valid format for article slugs:
// lowercase letters, numbers, and hyphens, 1-128 characters.
var slugRegexp = regexp.MustCompile(`^[a-z0-9-]{1,128}$`)

// ValidateSlug checks if the given slug is a valid article slug.
func ValidateSlug(slug string) bool {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return false
	}
	return slugRegexp.MatchString(trimmed)
}

// SanitizeSlug trims whitespace and validates the slug.
// Returns the sanitized slug and a boolean indicating if it's valid.
func SanitizeSlug(slug string) (string, bool) {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return "", false
	}
	if !slugRegexp.MatchString(trimmed) {
		return trimmed, false
	}
	return trimmed, true
}
