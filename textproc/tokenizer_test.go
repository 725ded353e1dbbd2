package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only separators", "://.-_/?=&123", []string{}},
		{"url", "http://example.com/free-prize-winner", []string{"http", "example", "com", "free", "prize", "winner"}},
		{"case preserved", "HTTPS://PayPal.Secure-Login.net", []string{"HTTPS", "PayPal", "Secure", "Login", "net"}},
		{"digits split words", "abc123def", []string{"abc", "def"}},
		{"duplicates kept", "a/a/a", []string{"a", "a", "a"}},
		{"non ascii dropped", "café.com", []string{"caf", "com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_LongInput(t *testing.T) {
	input := strings.Repeat("ab1", 700)
	tokens := Tokenize(input)
	assert.Len(t, tokens, 700)
	for _, tok := range tokens {
		assert.Equal(t, "ab", tok)
	}
}
