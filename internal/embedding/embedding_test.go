package embedding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashEmbedder is a deterministic in-memory backend for tests.
type hashEmbedder struct {
	dim  int
	fail bool
}

func (h *hashEmbedder) Dimension() int { return h.dim }

func (h *hashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if h.fail {
		return nil, &UnavailableError{Message: "backend down"}
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := make([]float32, h.dim)
		for j, r := range text {
			v[(j+int(r))%h.dim] += 1
		}
		out[i] = v
	}
	return out, nil
}

func TestServiceBlankTextsBecomeZeroVectors(t *testing.T) {
	svc := NewService(&hashEmbedder{dim: 8})

	vectors, err := svc.EmbedTexts(context.Background(), []string{"hello", "", "   ", "world"})
	require.NoError(t, err)
	require.Len(t, vectors, 4)

	assert.Equal(t, make([]float32, 8), vectors[1])
	assert.Equal(t, make([]float32, 8), vectors[2])
	assert.NotEqual(t, make([]float32, 8), vectors[0])
	assert.NotEqual(t, make([]float32, 8), vectors[3])
}

func TestServiceAllBlankSkipsBackend(t *testing.T) {
	// A failing backend is never reached when every input is blank.
	svc := NewService(&hashEmbedder{dim: 4, fail: true})

	vectors, err := svc.EmbedTexts(context.Background(), []string{"", "  "})
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 4), vectors[0])
	assert.Equal(t, make([]float32, 4), vectors[1])
}

func TestServicePropagatesUnavailable(t *testing.T) {
	svc := NewService(&hashEmbedder{dim: 4, fail: true})

	_, err := svc.EmbedText(context.Background(), "text")
	require.Error(t, err)

	var uerr *UnavailableError
	assert.True(t, errors.As(err, &uerr))
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestOllamaEmbedder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embeddings":[[0.1,0.2],[0.3,0.4]]}`))
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "all-minilm", 2)
	vectors, err := embedder.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.InDelta(t, 0.3, vectors[1][0], 1e-6)
}

func TestOllamaEmbedderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "missing", 2)
	_, err := embedder.Embed(context.Background(), []string{"a"})

	var uerr *UnavailableError
	require.ErrorAs(t, err, &uerr)
	assert.Contains(t, uerr.Message, "404")
}
