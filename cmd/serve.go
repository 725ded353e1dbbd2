package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"url-classifier/config"
	"url-classifier/handlers"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// newServer loads the artifacts and wires the router. It does not listen.
func newServer(cfg *config.Config, log logrus.FieldLogger) (*http.Server, error) {
	predictor, err := loadPredictor(cfg, log)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	h := handlers.New(predictor, cfg.MaxURLLength, log)
	router := handlers.NewRouter(h, log, cfg.AllowedOrigins)

	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv, err := newServer(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load artifacts")
	}

	go func() {
		log.Infof("Starting URL classifier on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down URL classifier...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("URL classifier exited")
	return nil
}
