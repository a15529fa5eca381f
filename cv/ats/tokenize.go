package ats

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<.*?>`)
	splitPattern = regexp.MustCompile(`[^a-zA-Z0-9\+]+`)
)

// minTokenLen drops noise words like "a", "of", "to".
const minTokenLen = 3

// Normalize strips markup and lower-cases the input. Tag stripping is a naive
// non-greedy scan for "<...>": any text that itself contains angle brackets is
// removed along with real tags. Known limitation, kept for score stability.
func Normalize(s string) string {
	return strings.ToLower(tagPattern.ReplaceAllString(s, ""))
}

// Tokenize splits plain text into keyword candidates. Tokens are runs of
// letters, digits and '+' (so "c++" survives as one token while "r&d" splits
// into fragments too short to keep). Tokens shorter than minTokenLen are
// dropped; duplicates are preserved.
func Tokenize(s string) []string {
	parts := splitPattern.Split(s, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= minTokenLen {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
