package classifier

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultTokenPattern is the analyzer pattern used when an artifact does
// not carry one. It keeps tokens of two or more word characters.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

// Feature is one non-zero entry of a SparseVector.
type Feature struct {
	Index int
	Value float64
}

// SparseVector holds non-zero features ordered by index.
type SparseVector []Feature

// VectorizerArtifact is the exported form of a trained bag-of-words
// vectorizer.
type VectorizerArtifact struct {
	Vocabulary   map[string]int  `json:"vocabulary"`
	Analyzer     string          `json:"analyzer,omitempty"`
	Lowercase    *bool           `json:"lowercase,omitempty"`
	Binary       bool            `json:"binary,omitempty"`
	TokenPattern string          `json:"token_pattern,omitempty"`
	NgramRange   []int           `json:"ngram_range,omitempty"`
	StopWords    json.RawMessage `json:"stop_words,omitempty"`
}

// Vectorizer maps text to term counts over a fixed vocabulary.
type Vectorizer struct {
	vocabulary   map[string]int
	names        []string
	lowercase    bool
	binary       bool
	pattern      string
	tokenPattern *regexp.Regexp
	stopWords    map[string]struct{}
}

func NewVectorizer(a VectorizerArtifact) (*Vectorizer, error) {
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrCorruptArtifact)
	}
	if a.Analyzer != "" && a.Analyzer != "word" {
		return nil, fmt.Errorf("%w: analyzer %q, only word analysis is supported", ErrUnsupportedArtifact, a.Analyzer)
	}
	if len(a.NgramRange) != 0 && (len(a.NgramRange) != 2 || a.NgramRange[0] != 1 || a.NgramRange[1] != 1) {
		return nil, fmt.Errorf("%w: ngram_range %v, only unigrams are supported", ErrUnsupportedArtifact, a.NgramRange)
	}

	pattern := a.TokenPattern
	if pattern == "" {
		pattern = DefaultTokenPattern
	}
	// RE2 has no (?u) flag; \w and \b are ASCII-only here.
	re, err := regexp.Compile(strings.Replace(pattern, "(?u)", "", 1))
	if err != nil {
		return nil, fmt.Errorf("%w: token_pattern: %v", ErrUnsupportedArtifact, err)
	}

	stopWords, err := parseStopWords(a.StopWords)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(a.Vocabulary))
	seen := make([]bool, len(a.Vocabulary))
	vocab := make(map[string]int, len(a.Vocabulary))
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(names) {
			return nil, fmt.Errorf("%w: term %q has index %d outside [0,%d)", ErrCorruptArtifact, term, idx, len(names))
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: feature index %d assigned twice", ErrCorruptArtifact, idx)
		}
		seen[idx] = true
		names[idx] = term
		vocab[term] = idx
	}

	lowercase := true
	if a.Lowercase != nil {
		lowercase = *a.Lowercase
	}

	return &Vectorizer{
		vocabulary:   vocab,
		names:        names,
		lowercase:    lowercase,
		binary:       a.Binary,
		pattern:      pattern,
		tokenPattern: re,
		stopWords:    stopWords,
	}, nil
}

// parseStopWords accepts null or an explicit word list. Named built-in
// lists ("english") are rejected since their contents are not exported.
func parseStopWords(raw json.RawMessage) (map[string]struct{}, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return nil, fmt.Errorf("%w: stop_words %q must be exported as a word list", ErrUnsupportedArtifact, name)
	}

	var words []string
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("%w: stop_words: %v", ErrCorruptArtifact, err)
	}
	if len(words) == 0 {
		return nil, nil
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

// Transform analyzes text and counts vocabulary terms. Unknown terms are
// ignored.
func (v *Vectorizer) Transform(text string) SparseVector {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, term := range v.tokenPattern.FindAllString(text, -1) {
		if _, stop := v.stopWords[term]; stop {
			continue
		}
		idx, ok := v.vocabulary[term]
		if !ok {
			continue
		}
		if v.binary {
			counts[idx] = 1
		} else {
			counts[idx]++
		}
	}

	vec := make(SparseVector, 0, len(counts))
	for idx, n := range counts {
		vec = append(vec, Feature{Index: idx, Value: n})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })
	return vec
}

// FeatureNames returns the vocabulary ordered by feature index.
func (v *Vectorizer) FeatureNames() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// StopWords returns the stop list, sorted.
func (v *Vectorizer) StopWords() []string {
	if len(v.stopWords) == 0 {
		return nil
	}
	out := make([]string, 0, len(v.stopWords))
	for w := range v.stopWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (v *Vectorizer) Size() int {
	return len(v.names)
}

// Artifact returns the exportable form of v.
func (v *Vectorizer) Artifact() VectorizerArtifact {
	vocab := make(map[string]int, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		vocab[term] = idx
	}
	lowercase := v.lowercase
	a := VectorizerArtifact{
		Vocabulary:   vocab,
		Analyzer:     "word",
		Lowercase:    &lowercase,
		Binary:       v.binary,
		TokenPattern: v.pattern,
		NgramRange:   []int{1, 1},
	}
	if stop := v.StopWords(); stop != nil {
		// A []string always marshals.
		a.StopWords, _ = json.Marshal(stop)
	}
	return a
}
