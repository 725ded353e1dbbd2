package handlers

import (
	"time"

	"url-classifier/logging"
	"url-classifier/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(h *Handler, log logrus.FieldLogger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(logging.Middleware(log), gin.Recovery())

	// Templates and assets are embedded in the binary.
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	r.GET("/", h.Form)
	r.POST("/", h.Submit)
	r.GET("/predict", h.RedirectToForm)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.Use(cors.New(corsConfig(allowedOrigins)))
	{
		api.POST("/classify", h.Classify)
		api.GET("/model", h.ModelInfo)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
