package normalizer

import (
	"regexp"
	"strings"
)

// urlRegex matches URL-like substrings ("http...", "https...", "www...") up to
// the next whitespace. Runs after lowercasing, so uppercase schemes are covered.
var urlRegex = regexp.MustCompile(`http\S+|www\S+`)

// nonAlphaRegex matches every character outside the Latin alphabet and whitespace.
var nonAlphaRegex = regexp.MustCompile(`[^a-zA-Z\s]`)

// Normalize converts raw extracted text into a comparable token stream.
// It lowercases, strips URLs, drops digits/punctuation/symbols, removes English
// stop words, and rejoins the surviving tokens with single spaces.
//
// Normalize is pure and idempotent: Normalize(Normalize(x)) == Normalize(x),
// and an empty input yields an empty output.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := urlRegex.ReplaceAllString(lowered, "")
	stripped = nonAlphaRegex.ReplaceAllString(stripped, "")

	words := strings.Fields(stripped)
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if _, stop := stopWords[word]; !stop {
			filtered = append(filtered, word)
		}
	}
	return strings.Join(filtered, " ")
}

// Tokens returns the normalized token stream as a slice.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return make([]string, 0)
	}
	return strings.Split(normalized, " ")
}
