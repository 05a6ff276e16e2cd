// Package corpus loads statute JSON files from a directory and builds the
// embedding index over them. It is the rebuild pipeline shared by the build
// command, server startup, and the law-directory watcher.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lawkit/fatiao/internal/embedding"
	"github.com/lawkit/fatiao/internal/flatten"
	"github.com/lawkit/fatiao/internal/index"
	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/internal/storage"
)

// LoadDirectory parses every .json file under dir and flattens them into one
// clause corpus. Files are processed in name order so vector indices are
// stable across rebuilds of the same directory. A file that fails to parse
// aborts the load; a silently skipped statute would be invisible at query
// time.
func LoadDirectory(dir string, opts ...flatten.FlattenerOption) ([]*models.Clause, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read law directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	f := flatten.NewFlattener(opts...)
	var clauses []*models.Clause
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		doc, err := flatten.ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		clauses = append(clauses, f.Flatten(doc, len(clauses))...)
	}
	return clauses, nil
}

// Builder rebuilds the index from the law directory and republishes it.
type Builder struct {
	lawDir   string
	indexDir string
	embedder embedding.Embedder
	handle   *index.Handle
	store    *storage.Store // optional; clause mirror skipped when nil
	logger   *zap.Logger
}

// NewBuilder creates a corpus builder. store may be nil when no clause
// mirror is wanted (e.g. one-shot builds).
func NewBuilder(lawDir, indexDir string, embedder embedding.Embedder, handle *index.Handle, store *storage.Store, logger *zap.Logger) *Builder {
	return &Builder{
		lawDir:   lawDir,
		indexDir: indexDir,
		embedder: embedder,
		handle:   handle,
		store:    store,
		logger:   logger,
	}
}

// Rebuild loads the law directory, builds a fresh index, persists it, swaps
// it into the handle, and mirrors the clauses into the store. Queries keep
// hitting the old snapshot until the swap.
func (b *Builder) Rebuild(ctx context.Context) error {
	clauses, err := LoadDirectory(b.lawDir, flatten.WithLogger(b.logger))
	if err != nil {
		return err
	}
	ix, err := index.Build(ctx, clauses, b.embedder, index.WithLogger(b.logger))
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if b.indexDir != "" {
		if err := ix.Persist(b.indexDir); err != nil {
			return fmt.Errorf("persist index: %w", err)
		}
	}
	b.handle.Swap(ix)
	if b.store != nil {
		if err := b.store.ReplaceClauses(ctx, clauses); err != nil {
			return fmt.Errorf("mirror clauses: %w", err)
		}
	}
	if b.logger != nil {
		b.logger.Info("corpus rebuilt",
			zap.String("law_dir", b.lawDir),
			zap.Int("clauses", len(clauses)),
		)
	}
	return nil
}

// LoadOrRebuild publishes a previously persisted index when one exists and
// its model matches; otherwise it rebuilds from the law directory. A
// persisted index built with a different model is rebuilt rather than served.
func (b *Builder) LoadOrRebuild(ctx context.Context) error {
	if b.indexDir != "" {
		ix, err := index.Load(b.indexDir)
		if err == nil {
			if verr := ix.VerifyModel(b.embedder.ModelID()); verr == nil {
				b.handle.Swap(ix)
				if b.logger != nil {
					b.logger.Info("index loaded",
						zap.String("index_dir", b.indexDir),
						zap.Int("vectors", ix.Size()),
					)
				}
				return nil
			} else if b.logger != nil {
				b.logger.Warn("persisted index built with different model, rebuilding", zap.Error(verr))
			}
		} else if b.logger != nil {
			b.logger.Info("no usable persisted index, rebuilding", zap.Error(err))
		}
	}
	return b.Rebuild(ctx)
}
