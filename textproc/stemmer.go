package textproc

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// Stemmer applies the Snowball algorithm for a single language.
type Stemmer struct {
	lang string
}

// NewStemmer returns a stemmer for lang ("english", "spanish", ...).
func NewStemmer(lang string) (*Stemmer, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, err := snowball.Stem("probe", lang, true); err != nil {
		return nil, fmt.Errorf("stemmer: %w", err)
	}
	return &Stemmer{lang: lang}, nil
}

func (s *Stemmer) Language() string {
	return s.lang
}

// Stem returns the lower-cased stem of token. Stop words are stemmed too,
// the same way the vocabulary was built.
func (s *Stemmer) Stem(token string) string {
	stemmed, err := snowball.Stem(strings.ToLower(token), s.lang, true)
	if err != nil {
		return strings.ToLower(token)
	}
	return stemmed
}

// StemAll stems every token, keeping order and length.
func (s *Stemmer) StemAll(tokens []string) []string {
	stems := make([]string, len(tokens))
	for i, t := range tokens {
		stems[i] = s.Stem(t)
	}
	return stems
}
