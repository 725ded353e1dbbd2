package web

import (
	"bytes"
	"io"
	"testing"

	"url-classifier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "+1.400", formatWeight(1.4))
	assert.Equal(t, "-2.000", formatWeight(-2))
	assert.Equal(t, "+0.000", formatWeight(0))
}

func TestTemplates_RenderCues(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "index.html", map[string]any{
		"status":     "bad",
		"label_text": "BAD (0)",
		"confidence": "88.0",
		"prob_good":  "12.0",
		"prob_bad":   "88.0",
		"cues":       []models.Cue{{Token: "prize", Weight: -2}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BAD (0)")
	assert.Contains(t, out, `class="cue neg"`)
	assert.Contains(t, out, "-2.000")
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("style.css")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".cue")
}
