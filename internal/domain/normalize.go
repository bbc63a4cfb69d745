package domain

import "strings"

// NormalizeText folds text for duplicate detection: whitespace runs become a
// single space, the ends are trimmed and letters are lowercased. Punctuation
// and diacritics are kept.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
