package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.KeywordWeight, 0.001)
	assert.InDelta(t, 0.4, cfg.SemanticWeight, 0.001)
	assert.InDelta(t, 0.5, cfg.SimilarityThreshold, 0.001)
	assert.InDelta(t, 10.0, cfg.RankFloor, 0.001)
	assert.Equal(t, 384, cfg.EmbeddingDimension)
}

func TestLoadValidJSON(t *testing.T) {
	content := `{
		"keyword_weight": 0.7,
		"semantic_weight": 0.3,
		"embedding_model": "nomic-embed-text",
		"verbose": true
	}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0o644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, cfg.KeywordWeight, 0.001)
	assert.InDelta(t, 0.3, cfg.SemanticWeight, 0.001)
	assert.Equal(t, "nomic-embed-text", cfg.EmbeddingModel)
	assert.True(t, cfg.Verbose)
	// Untouched fields keep defaults.
	assert.InDelta(t, 0.5, cfg.SimilarityThreshold, 0.001)
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte("{not json"), 0o644))

	_, err := Load(tmpFile)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeWeights(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"keyword_weight": 1.5}`), 0o644))

	_, err := Load(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MATCHER_EMBEDDING_URL", "http://embed.internal:11434")
	t.Setenv("MATCHER_EMBEDDING_DIMENSION", "768")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://embed.internal:11434", cfg.EmbeddingURL)
	assert.Equal(t, 768, cfg.EmbeddingDimension)
}
