// Package embedding turns resume and job description text into dense vectors
// and provides the similarity math used by the semantic match stage.
package embedding

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// DefaultDimension is the vector width of the default embedding model.
const DefaultDimension = 384

// Embedder produces one vector per input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// UnavailableError wraps a backend failure. Callers degrade to keyword-only
// scoring when they see it; semantic scoring is never load-bearing.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding unavailable: %s: %v", e.Message, e.Cause)
	}
	return "embedding unavailable: " + e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Service wraps an Embedder with the conventions the matching pipeline
// relies on: blank texts embed to zero vectors without a model call, and a
// batch either fully succeeds or fails as a unit.
type Service struct {
	embedder Embedder
}

// NewService returns a Service over the given backend.
func NewService(embedder Embedder) *Service {
	return &Service{embedder: embedder}
}

// Dimension reports the backend's vector width.
func (s *Service) Dimension() int {
	return s.embedder.Dimension()
}

// EmbedTexts embeds a batch, substituting zero vectors for blank inputs so
// that positions line up with the input slice.
func (s *Service) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	nonEmpty := make([]string, 0, len(texts))
	positions := make([]int, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			vectors[i] = make([]float32, s.embedder.Dimension())
			continue
		}
		nonEmpty = append(nonEmpty, text)
		positions = append(positions, i)
	}

	if len(nonEmpty) == 0 {
		return vectors, nil
	}

	embedded, err := s.embedder.Embed(ctx, nonEmpty)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(nonEmpty) {
		return nil, &UnavailableError{
			Message: fmt.Sprintf("backend returned %d vectors for %d texts", len(embedded), len(nonEmpty)),
		}
	}

	for i, pos := range positions {
		vectors[pos] = embedded[i]
	}
	return vectors, nil
}

// EmbedText embeds a single text.
func (s *Service) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// CosineSimilarity returns the cosine of the angle between two vectors, or
// zero when either has zero magnitude. Vectors of mismatched length compare
// over the shorter prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
