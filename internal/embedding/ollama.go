package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEmbedTimeout = 120 * time.Second

// OllamaEmbedder calls a local Ollama server's embed endpoint.
type OllamaEmbedder struct {
	baseURL    string
	model      string
	dimension  int
	httpClient *http.Client
}

// NewOllamaEmbedder returns an embedder for the given server and model.
// Dimension must match what the model emits; the default all-MiniLM class of
// models uses 384.
func NewOllamaEmbedder(baseURL, model string, dimension int) *OllamaEmbedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &OllamaEmbedder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		dimension:  dimension,
		httpClient: &http.Client{Timeout: defaultEmbedTimeout},
	}
}

func (e *OllamaEmbedder) Dimension() int {
	return e.dimension
}

// Embed posts the batch to /api/embed and returns the vectors in input order.
func (e *OllamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(map[string]any{
		"model": e.model,
		"input": texts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/embed", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Message: "embed request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &UnavailableError{Message: fmt.Sprintf("embed returned %d: %s", resp.StatusCode, msg)}
	}

	var response struct {
		Embeddings [][]float32 `json:"embeddings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &UnavailableError{Message: "decode embed response", Cause: err}
	}
	return response.Embeddings, nil
}
