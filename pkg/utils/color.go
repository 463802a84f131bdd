package utils

import (
	"strings"

	"github.com/braunma/rackplanner/internal/constants"
)

// NormalizeColor converts various color formats to the stored format (6-char hex without #)
func NormalizeColor(input string) string {
	if input == "" {
		return ""
	}

	// Remove # prefix if present
	input = strings.TrimPrefix(input, "#")

	// Convert to lowercase
	input = strings.ToLower(input)

	// If it's 3 characters, expand to 6 (e.g., "f00" -> "ff0000")
	if len(input) == 3 {
		return string([]byte{
			input[0], input[0],
			input[1], input[1],
			input[2], input[2],
		})
	}

	// If it's already 6 characters, return as-is
	if len(input) == 6 {
		return input
	}

	// Invalid format, return empty
	return ""
}

// GetCategoryColor returns the default color for a device category
func GetCategoryColor(category string) string {
	if color, ok := constants.CategoryColorMap[strings.ToLower(category)]; ok {
		return color
	}
	if color, ok := constants.CategoryColorMap[constants.DefaultCategory]; ok {
		return color
	}

	return constants.DefaultDeviceColor
}
