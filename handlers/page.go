package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"url-classifier/classifier"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgEmptyURL   = "Please enter a URL."
	msgURLTooLong = "URL is too long."
)

// Handler serves the classifier form and API. The predictor is shared
// read-only across requests.
type Handler struct {
	predictor    *classifier.Predictor
	maxURLLength int
	log          logrus.FieldLogger
}

func New(predictor *classifier.Predictor, maxURLLength int, log logrus.FieldLogger) *Handler {
	return &Handler{
		predictor:    predictor,
		maxURLLength: maxURLLength,
		log:          log,
	}
}

// validateURL trims raw and returns a user-facing message when it cannot be
// classified.
func (h *Handler) validateURL(raw string) (string, string) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", msgEmptyURL
	}
	if utf8.RuneCountInString(url) > h.maxURLLength {
		return "", msgURLTooLong
	}
	return url, ""
}

// Form renders the empty form.
func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"input_url": ""})
}

// Submit classifies the posted url field and renders the result.
func (h *Handler) Submit(c *gin.Context) {
	url, msg := h.validateURL(c.PostForm("url"))
	if msg != "" {
		c.HTML(http.StatusOK, "index.html", gin.H{"input_url": "", "flash_msg": msg})
		return
	}

	pred := h.predictor.Predict(url)
	h.log.WithFields(logrus.Fields{
		"status":    pred.Status,
		"prob_good": pred.ProbGood,
		"cues":      len(pred.Cues),
	}).Debug("classified url")

	c.HTML(http.StatusOK, "index.html", gin.H{
		"input_url":  url,
		"status":     pred.Status,
		"label_text": pred.Label,
		"confidence": classifier.Percent(pred.Confidence),
		"prob_good":  classifier.Percent(pred.ProbGood),
		"prob_bad":   classifier.Percent(pred.ProbBad),
		"cues":       pred.Cues,
	})
}

func (h *Handler) RedirectToForm(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
