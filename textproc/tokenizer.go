package textproc

import "regexp"

// wordPattern is the token pattern the training pipeline used.
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// Tokenize returns the maximal runs of ASCII letters in s, in order.
// Everything else (digits, punctuation, separators, non-ASCII) is dropped.
func Tokenize(s string) []string {
	tokens := wordPattern.FindAllString(s, -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
