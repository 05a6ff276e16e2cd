package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/lawkit/fatiao/pkg/utils"
)

const (
	ollamaTimeout    = 30 * time.Second
	ollamaMaxRetries = 3
)

// OllamaEmbedder produces embeddings through a local Ollama server. Useful
// when no ONNX model file is available; the model is pulled and served by
// Ollama instead.
type OllamaEmbedder struct {
	client     *api.Client
	model      string
	dimensions int
	cache      *Cache
}

// NewOllamaEmbedder creates an embedder against the Ollama server at host
// (empty host uses the OLLAMA_HOST environment default).
func NewOllamaEmbedder(host, model string, dimensions, cacheSize int) (*OllamaEmbedder, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama model name is required")
	}
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parse ollama host: %w", err)
		}
		hostURL = parsed
	}
	return &OllamaEmbedder{
		client:     api.NewClient(hostURL, http.DefaultClient),
		model:      model,
		dimensions: dimensions,
		cache:      NewCache(cacheSize),
	}, nil
}

// Embed returns the normalized embedding for text, retrying transient failures.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached, nil
	}

	var lastErr error
	for attempt := 0; attempt <= ollamaMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		emb, err := e.embedOnce(ctx, text)
		if err == nil {
			e.cache.Set(text, emb)
			return emb, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("ollama embedding failed after %d retries: %w", ollamaMaxRetries, lastErr)
}

func (e *OllamaEmbedder) embedOnce(ctx context.Context, text string) ([]float32, error) {
	reqCtx, cancel := context.WithTimeout(ctx, ollamaTimeout)
	defer cancel()

	resp, err := e.client.Embeddings(reqCtx, &api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embeddings request: %w", err)
	}
	if len(resp.Embedding) != e.dimensions {
		return nil, fmt.Errorf("ollama returned %d dimensions, expected %d", len(resp.Embedding), e.dimensions)
	}
	emb := make([]float32, len(resp.Embedding))
	for i, v := range resp.Embedding {
		emb[i] = float32(v)
	}
	utils.NormalizeL2(emb)
	return emb, nil
}

// EmbedBatch calls Embed for each text sequentially. Ollama serializes
// requests per model anyway, so client-side parallelism buys nothing.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// Dimensions returns the embedding dimension.
func (e *OllamaEmbedder) Dimensions() int {
	return e.dimensions
}

// ModelID identifies the Ollama model.
func (e *OllamaEmbedder) ModelID() string {
	return "ollama/" + e.model
}

// Close is a no-op; the HTTP client holds no resources worth releasing.
func (e *OllamaEmbedder) Close() error {
	return nil
}
