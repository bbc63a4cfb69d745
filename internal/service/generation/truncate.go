package generation

import "unicode/utf8"

// TruncationMarker ends every truncated flashcard side.
const TruncationMarker = "..."

// Truncate shortens s to at most limit runes. When s is cut, the result ends
// with TruncationMarker and the marker counts towards the limit.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	markerLen := utf8.RuneCountInString(TruncationMarker)
	if limit <= markerLen {
		return string([]rune(TruncationMarker)[:limit])
	}

	runes := []rune(s)
	return string(runes[:limit-markerLen]) + TruncationMarker
}
