package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawkit/fatiao/internal/models"
	"github.com/lawkit/fatiao/internal/vector"
)

// The three independently loadable artifacts. Keeping them separate lets a
// mismatched model/index pairing be detected from the config artifact alone.
const (
	VectorsFile = "vectors.bin"
	MetaFile    = "clause_meta.json"
	ConfigFile  = "index_config.json"
)

// Persist writes the index into dir as the three artifacts.
func (ix *Index) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	if err := ix.flat.Save(filepath.Join(dir, VectorsFile)); err != nil {
		return fmt.Errorf("persist vectors: %w", err)
	}

	meta, err := json.Marshal(ix.clauses)
	if err != nil {
		return fmt.Errorf("marshal clause metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetaFile), meta, 0644); err != nil {
		return fmt.Errorf("persist clause metadata: %w", err)
	}

	cfg, err := json.MarshalIndent(ix.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal build config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), cfg, 0644); err != nil {
		return fmt.Errorf("persist build config: %w", err)
	}
	return nil
}

// Load reads an index previously written by Persist. A missing artifact is
// reported as ErrMissingArtifact; inconsistent artifacts (count or dimension
// disagreement between files) are reported as ErrConfigMismatch.
func Load(dir string) (*Index, error) {
	for _, name := range []string{VectorsFile, MetaFile, ConfigFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingArtifact, name)
		}
	}

	cfgData, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("read build config: %w", err)
	}
	var cfg BuildConfig
	if err := json.Unmarshal(cfgData, &cfg); err != nil {
		return nil, fmt.Errorf("parse build config: %w", err)
	}

	flat, err := vector.LoadFlatIndex(filepath.Join(dir, VectorsFile))
	if err != nil {
		return nil, fmt.Errorf("load vectors: %w", err)
	}

	metaData, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		return nil, fmt.Errorf("read clause metadata: %w", err)
	}
	var clauses []*models.Clause
	if err := json.Unmarshal(metaData, &clauses); err != nil {
		return nil, fmt.Errorf("parse clause metadata: %w", err)
	}

	if flat.Dimensions() != cfg.VectorDimension {
		return nil, fmt.Errorf("%w: vectors have dimension %d, config says %d",
			ErrConfigMismatch, flat.Dimensions(), cfg.VectorDimension)
	}
	if flat.Size() != cfg.TotalVectors || len(clauses) != cfg.TotalVectors {
		return nil, fmt.Errorf("%w: %d vectors, %d clauses, config says %d",
			ErrConfigMismatch, flat.Size(), len(clauses), cfg.TotalVectors)
	}

	return &Index{flat: flat, clauses: clauses, cfg: cfg}, nil
}
