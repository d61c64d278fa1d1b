package cli

import (
	"fmt"
	"path/filepath"

	"github.com/artiklo/legato/internal/assembly"
	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/generate"
	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/rule"
)

// buildConfig assembles the effective configuration from defaults and viper
// bindings; flag values are applied by the individual commands on top.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	return cfg
}

// newRepository builds the clause store stack: a file-backed library when a
// store directory is configured, in-memory otherwise, with the read-through
// cache in front unless disabled.
func newRepository(cfg *model.Config) (clause.Repository, error) {
	var repo clause.Repository
	if cfg.Store.Dir != "" {
		fs, err := clause.NewFileStore(filepath.Join(cfg.Store.Dir, "clauses.yaml"))
		if err != nil {
			return nil, fmt.Errorf("open clause library: %w", err)
		}
		repo = fs
	} else {
		repo = clause.NewMemoryStore()
	}

	if cfg.Store.CacheEnabled {
		repo = clause.NewCachedStore(repo, cfg.Store.CacheTTL, cfg.Store.CacheCleanup)
	}
	return repo, nil
}

// newGenerator builds the full generation stack from one config
func newGenerator(cfg *model.Config) (*generate.Generator, clause.Repository, error) {
	repo, err := newRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	assembler := assembly.NewAssembler(repo, rule.NewEngine())
	assembler.FetchConcurrency = cfg.Assembly.FetchConcurrency

	return generate.NewGenerator(repo, assembler), repo, nil
}
