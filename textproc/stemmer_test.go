package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStemmer_UnknownLanguage(t *testing.T) {
	_, err := NewStemmer("klingon")
	require.Error(t, err)
}

func TestStemmer_Stem(t *testing.T) {
	s, err := NewStemmer("English")
	require.NoError(t, err)
	assert.Equal(t, "english", s.Language())

	tests := []struct {
		input string
		want  string
	}{
		{"running", "run"},
		{"Winner", "winner"},
		{"prizes", "prize"},
		{"com", "com"},
		{"the", "the"},
		{"login", "login"},
	}

	for _, tc := range tests {
		got := s.Stem(tc.input)
		if got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestStemmer_StemAllKeepsOrder(t *testing.T) {
	s, err := NewStemmer("english")
	require.NoError(t, err)

	tokens := Tokenize("http://example.com/free-prize-winner")
	stems := s.StemAll(tokens)

	require.Len(t, stems, len(tokens))
	assert.Equal(t, "http", stems[0])
	assert.Equal(t, "com", stems[2])
	assert.Equal(t, "free", stems[3])
	assert.Equal(t, "prize", stems[4])
}

func TestStemmer_Deterministic(t *testing.T) {
	s, err := NewStemmer("english")
	require.NoError(t, err)
	assert.Equal(t, s.StemAll([]string{"generously", "banking"}), s.StemAll([]string{"generously", "banking"}))
}
