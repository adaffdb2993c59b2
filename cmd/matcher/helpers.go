package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// embeddingService builds the embedding layer from config. Returns nil when
// no embedding endpoint is configured; the match engine then runs
// keyword-only.
func embeddingService(cfg *config.Config) *embedding.Service {
	if cfg.EmbeddingURL == "" {
		return nil
	}
	embedder := embedding.NewOllamaEmbedder(cfg.EmbeddingURL, cfg.EmbeddingModel, cfg.EmbeddingDimension)
	return embedding.NewService(embedder)
}

func newEngine(cfg *config.Config, semantic bool) *matching.Engine {
	var service *embedding.Service
	if semantic {
		service = embeddingService(cfg)
	}
	return matching.NewEngine(
		matching.NewSkillMatcher(),
		service,
		vectorstore.NewStore(),
		matching.Config{
			KeywordWeight:       cfg.KeywordWeight,
			SemanticWeight:      cfg.SemanticWeight,
			SimilarityThreshold: cfg.SimilarityThreshold,
			RankFloor:           cfg.RankFloor,
		},
	)
}

// openDatabase connects when a database URL is configured, returning nil
// otherwise so callers can treat persistence as optional.
func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// fetchPosting retrieves a job posting URL, using the posting cache when a
// database is available.
func fetchPosting(ctx context.Context, cfg *config.Config, database *db.DB, url string) (*types.JobPosting, error) {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = cfg.UseBrowser

	fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{Options: opts})
	posting, fromCache, err := fetcher.Posting(ctx, url)
	if err != nil {
		return nil, err
	}
	if fromCache && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Using cached posting for %s\n", url)
	}
	return posting, nil
}

// writeJSON marshals a value with indentation and writes it to path.
func writeJSON(path string, value any) error {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateOutput checks a value against one of the bundled schemas. Schema
// problems are warnings; a document that fails validation is an error.
func validateOutput(schemaName string, value any) error {
	schemaPath := schemas.ResolveSchemaPath(schemaName)
	if schemaPath == "" {
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read schema %s: %v\n", schemaPath, err)
		return nil
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateJSONString(string(schemaContent), string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("output does not validate against schema: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}
