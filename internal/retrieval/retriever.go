// Package retrieval converts a query string into a ranked, scored list of
// clause results against the currently published index snapshot.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/embedding"
	"github.com/lawkit/fatiao/internal/index"
	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/pkg/utils"
)

// Retriever embeds queries with the same model the index was built with and
// maps nearest-neighbor hits back to clause metadata.
type Retriever struct {
	handle   *index.Handle
	embedder embedding.Embedder
	logger   *zap.Logger // optional
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) RetrieverOption {
	return func(r *Retriever) { r.logger = l }
}

// New creates a retriever over the index handle.
func New(handle *index.Handle, embedder embedding.Embedder, opts ...RetrieverOption) *Retriever {
	r := &Retriever{handle: handle, embedder: embedder}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve returns up to k clauses scoring at least minScore against the
// query, with 1-based ranks reassigned over the surviving results. An empty
// query (after trimming) returns an empty list, not an error; an embedding
// failure propagates, since an empty result could be mistaken for "no
// relevant law exists".
func (r *Retriever) Retrieve(ctx context.Context, query string, k int, minScore float64) ([]*models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	snap := r.handle.Current()
	if snap == nil || snap.Size() == 0 {
		return nil, nil
	}
	if err := snap.VerifyModel(r.embedder.ModelID()); err != nil {
		return nil, err
	}

	queryVector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	// The corpus is normalized at build time; the query must be normalized
	// here or the scores stop being cosine similarities.
	utils.NormalizeL2(queryVector)

	candidates, err := snap.Search(queryVector, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	results := make([]*models.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Score < minScore {
			continue
		}
		c.Rank = len(results) + 1
		results = append(results, c)
	}
	if r.logger != nil {
		r.logger.Debug("retrieval complete",
			zap.String("query", utils.Truncate(query, 80)),
			zap.Int("candidates", len(candidates)),
			zap.Int("results", len(results)),
		)
	}
	return results, nil
}
