package utils

import (
	"strings"
)

// Slugify converts a string to a URL-safe slug
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	// Remove any characters that aren't alphanumeric or hyphens
	var result strings.Builder
	lastHyphen := false
	for _, char := range s {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') {
			result.WriteRune(char)
			lastHyphen = false
		} else if char == '-' && !lastHyphen && result.Len() > 0 {
			result.WriteRune(char)
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(result.String(), "-")
}

// ContainsFold checks if a string slice contains item, ignoring case
func ContainsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// Pluralize returns singular when n is 1, plural otherwise
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
