// Package index owns the embedding index over statute clauses: build from a
// clause corpus, exact top-k search, and persistence as three artifacts
// (vectors, clause metadata, build configuration).
package index

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/embedding"
	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/internal/vector"
	"github.com/lawkit/fatiao/pkg/utils"
)

var (
	// ErrConfigMismatch means the index was built with a different embedding
	// model than the one supplied at query time. Fatal: comparing vectors
	// across models silently produces wrong rankings.
	ErrConfigMismatch = errors.New("index/model configuration mismatch")
	// ErrMissingArtifact means one of the three persisted files is absent.
	ErrMissingArtifact = errors.New("missing index artifact")
)

// Embedding of the corpus runs in batches of this size.
const buildBatchSize = 64

// BuildConfig is the persisted build-configuration artifact. It lets a
// mismatched model/index pairing be detected at load or query time.
type BuildConfig struct {
	ModelIdentifier string `json:"model_identifier"`
	VectorDimension int    `json:"vector_dimension"`
	TotalVectors    int    `json:"total_vectors"`
}

// Index is an immutable snapshot: vectors plus parallel clause metadata.
// Queries against a built Index need no locking; a corpus change produces a
// brand-new Index which callers republish through a Handle.
type Index struct {
	flat    *vector.FlatIndex
	clauses []*models.Clause
	cfg     BuildConfig
}

// BuildOption configures Build.
type BuildOption func(*builder)

type builder struct {
	logger *zap.Logger
}

// WithLogger sets a logger for build progress output.
func WithLogger(l *zap.Logger) BuildOption {
	return func(b *builder) { b.logger = l }
}

// Build embeds every clause's composite text (batched), L2-normalizes the
// vectors, and stores them keyed by insertion order, so vector position ==
// Clause.VectorIndex. Building from an empty clause list produces a valid,
// empty index.
func Build(ctx context.Context, clauses []*models.Clause, emb embedding.Embedder, opts ...BuildOption) (*Index, error) {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	flat, err := vector.NewFlatIndex(emb.Dimensions())
	if err != nil {
		return nil, err
	}
	ix := &Index{
		flat:    flat,
		clauses: make([]*models.Clause, 0, len(clauses)),
		cfg: BuildConfig{
			ModelIdentifier: emb.ModelID(),
			VectorDimension: emb.Dimensions(),
		},
	}

	for start := 0; start < len(clauses); start += buildBatchSize {
		end := start + buildBatchSize
		if end > len(clauses) {
			end = len(clauses)
		}
		batch := clauses[start:end]
		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.CompositeText()
		}
		vectors, err := emb.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed clause batch at %d: %w", start, err)
		}
		for _, v := range vectors {
			utils.NormalizeL2(v)
		}
		if err := flat.Add(vectors); err != nil {
			return nil, fmt.Errorf("add clause batch at %d: %w", start, err)
		}
		for i, c := range batch {
			c.VectorIndex = start + i
			ix.clauses = append(ix.clauses, c)
		}
		if b.logger != nil {
			b.logger.Debug("indexed clause batch", zap.Int("done", end), zap.Int("total", len(clauses)))
		}
	}

	ix.cfg.TotalVectors = flat.Size()
	if b.logger != nil {
		b.logger.Info("index built",
			zap.String("model", ix.cfg.ModelIdentifier),
			zap.Int("vectors", ix.cfg.TotalVectors),
			zap.Int("dimension", ix.cfg.VectorDimension),
		)
	}
	return ix, nil
}

// Search returns up to k clauses nearest to the normalized query vector,
// ordered by descending cosine similarity, ties by ascending vector index.
// Ranks are not assigned here; the retriever ranks after threshold filtering.
// Searching an empty index returns an empty result, not an error.
func (ix *Index) Search(queryVector []float32, k int) ([]*models.SearchResult, error) {
	hits, err := ix.flat.Search(queryVector, k)
	if err != nil {
		return nil, err
	}
	results := make([]*models.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, &models.SearchResult{
			Clause: ix.clauses[h.Position],
			Score:  h.Score,
		})
	}
	return results, nil
}

// VerifyModel fails fast with ErrConfigMismatch when modelID differs from the
// model the index was built with.
func (ix *Index) VerifyModel(modelID string) error {
	if modelID != ix.cfg.ModelIdentifier {
		return fmt.Errorf("%w: index built with %q, queried with %q",
			ErrConfigMismatch, ix.cfg.ModelIdentifier, modelID)
	}
	return nil
}

// Clause returns the clause at the given vector index position.
func (ix *Index) Clause(position int) (*models.Clause, error) {
	if position < 0 || position >= len(ix.clauses) {
		return nil, fmt.Errorf("vector index %d out of range [0, %d)", position, len(ix.clauses))
	}
	return ix.clauses[position], nil
}

// Size returns the number of indexed clauses.
func (ix *Index) Size() int {
	return ix.flat.Size()
}

// Dimensions returns the vector dimension.
func (ix *Index) Dimensions() int {
	return ix.cfg.VectorDimension
}

// ModelIdentifier returns the embedding model the index was built with.
func (ix *Index) ModelIdentifier() string {
	return ix.cfg.ModelIdentifier
}

// Config returns a copy of the build configuration.
func (ix *Index) Config() BuildConfig {
	return ix.cfg
}
