package domain

import (
	"strings"
)

// NormalizeQuery prepares free text for filename matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
