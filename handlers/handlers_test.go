package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"url-classifier/classifier"
	"url-classifier/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testdata := filepath.Join("..", "classifier", "testdata")
	p, err := classifier.Load(
		filepath.Join(testdata, "vect.json"),
		filepath.Join(testdata, "model.json"),
		"english",
		classifier.Options{CheckConsistency: true},
	)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewRouter(New(p, 2048, log), log, []string{"*"})
}

func postForm(r http.Handler, value string) *httptest.ResponseRecorder {
	form := url.Values{"url": {value}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForm(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="url"`)
	assert.NotContains(t, body, `class="result`)
	assert.NotContains(t, body, `class="flash"`)
}

func TestSubmit_Validation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", msgEmptyURL},
		{"whitespace", "  \t\n ", msgEmptyURL},
		{"too long", strings.Repeat("a", 2049), msgURLTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(r, tt.input)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, `class="result`)
			assert.NotContains(t, body, "P(GOOD)")
		})
	}
}

func TestSubmit_MaxLengthAccepted(t *testing.T) {
	w := postForm(newTestRouter(t), strings.Repeat("a", 2048))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="result`)
}

func TestSubmit_Bad(t *testing.T) {
	w := postForm(newTestRouter(t), "  http://example.com/free-prize-winner ")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="result bad"`)
	assert.Contains(t, body, "BAD (0)")
	assert.Contains(t, body, "Confidence: 97.1%")
	assert.Contains(t, body, "<td>2.9%</td>")
	assert.Contains(t, body, "<td>97.1%</td>")
	assert.Contains(t, body, `value="http://example.com/free-prize-winner"`)

	prize := strings.Index(body, ">prize<")
	winner := strings.Index(body, ">winner<")
	require.NotEqual(t, -1, prize)
	require.NotEqual(t, -1, winner)
	assert.Less(t, prize, winner)
}

func TestSubmit_Good(t *testing.T) {
	w := postForm(newTestRouter(t), "https://github.com/wiki")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="result good"`)
	assert.Contains(t, body, "GOOD (1)")
	assert.Contains(t, body, "1.400")
}

func TestSubmit_NoCues(t *testing.T) {
	w := postForm(newTestRouter(t), "1234567")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No known tokens")
}

func TestSubmit_Idempotent(t *testing.T) {
	r := newTestRouter(t)
	first := postForm(r, "https://secure-login.bank.verify-account.com")
	second := postForm(r, "https://secure-login.bank.verify-account.com")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRedirectToForm(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predict", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestClassifyAPI(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{"url":"http://example.com/free-prize-winner"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var pred models.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pred))
	assert.Equal(t, "BAD (0)", pred.Label)
	assert.False(t, pred.IsGood)
	assert.InDelta(t, 1.0, pred.ProbGood+pred.ProbBad, 1e-12)
	assert.Len(t, pred.Cues, 6)
	assert.Equal(t, "prize", pred.Cues[0].Token)
}

func TestClassifyAPI_Errors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid json", `{"url":`, "Invalid request body"},
		{"empty url", `{"url":"   "}`, msgEmptyURL},
		{"too long", `{"url":"` + strings.Repeat("b", 2049) + `"}`, msgURLTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp["error"])
		})
	}
}

func TestModelInfoAPI(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/model", nil)
	req.Header.Set("Origin", "https://tools.example")
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var info models.ModelInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, 16, info.VocabularySize)
	assert.Equal(t, 2048, info.MaxURLLength)
	assert.Equal(t, 6, info.TopCues)
	assert.Equal(t, "english", info.Language)
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","service":"url-classifier"}`, w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://a.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, cfg.AllowOrigins)
}
