// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration, loadable from a JSON file with environment
// variable overrides on top. All fields are optional; missing values use
// defaults or come from CLI flags.
type Config struct {
	// Scoring
	KeywordWeight       float64 `json:"keyword_weight,omitempty" validate:"gte=0,lte=1"`
	SemanticWeight      float64 `json:"semantic_weight,omitempty" validate:"gte=0,lte=1"`
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	RankFloor           float64 `json:"rank_floor,omitempty" validate:"gte=0,lte=100"`

	// Embedding backend
	EmbeddingURL       string `json:"embedding_url,omitempty" validate:"omitempty,url"`
	EmbeddingModel     string `json:"embedding_model,omitempty"`
	EmbeddingDimension int    `json:"embedding_dimension,omitempty" validate:"gte=0"`

	// Optional integrations
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	DatabaseURL  string `json:"database_url,omitempty"`
	UseBrowser   bool   `json:"use_browser,omitempty"` // headless browser for SPA job boards

	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		KeywordWeight:       0.6,
		SemanticWeight:      0.4,
		SimilarityThreshold: 0.5,
		RankFloor:           10,
		EmbeddingURL:        "http://localhost:11434",
		EmbeddingModel:      "all-minilm",
		EmbeddingDimension:  384,
	}
}

// Load reads configuration: defaults, then the JSON file when path is
// non-empty, then environment variables. The result is validated before
// return.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays MATCHER_* environment variables. The .env file, if any,
// is loaded into the environment by the CLI entrypoint before this runs.
func (c *Config) applyEnv() {
	if v := os.Getenv("MATCHER_EMBEDDING_URL"); v != "" {
		c.EmbeddingURL = v
	}
	if v := os.Getenv("MATCHER_EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
	if v := os.Getenv("MATCHER_EMBEDDING_DIMENSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.EmbeddingDimension = n
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
}

// Validate checks field ranges and cross-field consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.KeywordWeight+c.SemanticWeight == 0 {
		return fmt.Errorf("config error: keyword_weight and semantic_weight cannot both be zero")
	}
	return nil
}
