package utils

import "strings"

func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

func NormalizeDifficulty(difficulty string) string {
	return strings.ToLower(strings.TrimSpace(difficulty))
}

// Truncate shortens text to at most max bytes.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
