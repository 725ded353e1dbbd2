package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "config.yaml"
	defaultEnvFile    = ".env"
)

type Config struct {
	ServerAddr      string   `yaml:"server_addr"`
	GinMode         string   `yaml:"gin_mode"`
	ArtifactDir     string   `yaml:"artifact_dir"`
	VectorizerPath  string   `yaml:"vectorizer_path"`
	ModelPath       string   `yaml:"model_path"`
	StemmerLanguage string   `yaml:"stemmer_language"`
	MaxURLLength    int      `yaml:"max_url_length"`
	TopCues         int      `yaml:"top_cues"`
	CheckArtifacts  bool     `yaml:"check_artifacts"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	LogLevel        string   `yaml:"log_level"`
	LogFormat       string   `yaml:"log_format"`
}

func Default() *Config {
	return &Config{
		ServerAddr:      ":8090",
		GinMode:         "release",
		ArtifactDir:     executableDir(),
		VectorizerPath:  "vect.json",
		ModelPath:       "model.json",
		StemmerLanguage: "english",
		MaxURLLength:    2048,
		TopCues:         6,
		CheckArtifacts:  true,
		AllowedOrigins:  []string{"*"},
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load builds the configuration from defaults, an optional YAML file, a
// .env file (ENV_FILE or ./.env) and the environment, later sources
// winning. path names the YAML file; when empty CONFIG_FILE or
// ./config.yaml is tried.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_FILE")
		explicit = path != ""
	}
	if !explicit {
		path = defaultConfigFile
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	cfg.VectorizerPath = cfg.resolve(cfg.VectorizerPath)
	cfg.ModelPath = cfg.resolve(cfg.ModelPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile tolerates a missing default .env but not a malformed one, or
// a missing file named by ENV_FILE.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	required := path != ""
	if !required {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.ServerAddr, "SERVER_ADDR")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.ArtifactDir, "ARTIFACT_DIR")
	setString(&c.VectorizerPath, "VECTORIZER_PATH")
	setString(&c.ModelPath, "MODEL_PATH")
	setString(&c.StemmerLanguage, "STEMMER_LANGUAGE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("PORT"); v != "" && os.Getenv("SERVER_ADDR") == "" {
		c.ServerAddr = ":" + v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	if err := setInt(&c.MaxURLLength, "MAX_URL_LENGTH"); err != nil {
		return err
	}
	if err := setInt(&c.TopCues, "TOP_CUES"); err != nil {
		return err
	}
	if v := os.Getenv("CHECK_ARTIFACTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CHECK_ARTIFACTS: %w", err)
		}
		c.CheckArtifacts = b
	}
	return nil
}

func (c *Config) Validate() error {
	if c.MaxURLLength <= 0 {
		return fmt.Errorf("max_url_length must be positive, got %d", c.MaxURLLength)
	}
	if c.TopCues <= 0 {
		return fmt.Errorf("top_cues must be positive, got %d", c.TopCues)
	}
	if c.VectorizerPath == "" || c.ModelPath == "" {
		return errors.New("vectorizer_path and model_path are required")
	}
	return nil
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ArtifactDir, p)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// executableDir is where the artifacts ship next to the binary.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
