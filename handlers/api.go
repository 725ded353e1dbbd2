package handlers

import (
	"net/http"

	"url-classifier/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Classify(c *gin.Context) {
	var req models.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	url, msg := h.validateURL(req.URL)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, h.predictor.Predict(url))
}

func (h *Handler) ModelInfo(c *gin.Context) {
	info := h.predictor.Info()
	info.MaxURLLength = h.maxURLLength
	c.JSON(http.StatusOK, info)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "url-classifier",
	})
}
