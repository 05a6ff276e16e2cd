// Package embedding provides text embedding providers (ONNX, Ollama, mock)
// behind a single interface, with caching.
package embedding

import (
	"context"
	"fmt"
)

// Embedder produces fixed-length vector embeddings for text. Embedding is a
// blocking model forward pass; callers needing timeouts wrap the context.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	// ModelID identifies the embedding model. An index records the ModelID it
	// was built with; querying with a different model is a configuration error.
	ModelID() string
	Close() error
}

// Options selects and configures an embedding provider.
type Options struct {
	Provider    string // "onnx", "ollama", "mock"
	ModelPath   string // onnx: path to the .onnx model file
	ModelID     string // optional override for the recorded model identifier
	OllamaHost  string // ollama: server URL, empty for the client default
	OllamaModel string // ollama: model name, e.g. "shaw/dmeta-embedding-zh"
	Dimensions  int
	MaxTokens   int
	CacheSize   int
}

// New creates an embedder for the configured provider.
func New(opts Options) (Embedder, error) {
	switch opts.Provider {
	case "onnx", "":
		return NewONNXEmbedder(opts.ModelPath, opts.ModelID, opts.Dimensions, opts.MaxTokens, opts.CacheSize)
	case "ollama":
		return NewOllamaEmbedder(opts.OllamaHost, opts.OllamaModel, opts.Dimensions, opts.CacheSize)
	case "mock":
		return NewMockEmbedder(opts.Dimensions), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: onnx, ollama, mock)", opts.Provider)
	}
}
