package cmd

import (
	"url-classifier/classifier"
	"url-classifier/config"
	"url-classifier/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "url-classifier",
	Short: "Classify URLs as GOOD or BAD",
	Long:  "url-classifier serves a form that scores URLs with a pre-trained bag-of-words logistic regression and shows which tokens drove the decision.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides CONFIG_FILE env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(convertCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// loadPredictor reads both artifacts. Any failure means the process cannot
// serve.
func loadPredictor(cfg *config.Config, log logrus.FieldLogger) (*classifier.Predictor, error) {
	p, err := classifier.Load(cfg.VectorizerPath, cfg.ModelPath, cfg.StemmerLanguage, classifier.Options{
		TopCues:          cfg.TopCues,
		CheckConsistency: cfg.CheckArtifacts,
	})
	if err != nil {
		return nil, err
	}

	info := p.Info()
	log.WithFields(logrus.Fields{
		"vectorizer": cfg.VectorizerPath,
		"model":      cfg.ModelPath,
		"vocabulary": info.VocabularySize,
		"language":   info.Language,
	}).Info("artifacts loaded")
	if !cfg.CheckArtifacts {
		log.Warn("artifact consistency check disabled")
	}
	return p, nil
}
