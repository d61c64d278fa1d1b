package clause

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/artiklo/legato/internal/model"
)

// FileStore is a Repository persisted as one YAML library file. All records
// including deactivated versions are written back on every mutation, so the
// Active/Supersedes chain survives restarts.
type FileStore struct {
	mem  *MemoryStore
	path string
}

// NewFileStore opens (or initializes) a library file
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{mem: NewMemoryStore(), path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	var clauses []*model.Clause
	if err := yaml.Unmarshal(data, &clauses); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	for _, c := range clauses {
		s.mem.mu.Lock()
		s.mem.records[c.ID] = cloneClause(c)
		s.mem.order = append(s.mem.order, c.ID)
		s.mem.mu.Unlock()
	}
	return s, nil
}

func (s *FileStore) GetByID(ctx context.Context, id string) (*model.Clause, error) {
	return s.mem.GetByID(ctx, id)
}

func (s *FileStore) GetByCategory(ctx context.Context, category model.Category) ([]*model.Clause, error) {
	return s.mem.GetByCategory(ctx, category)
}

func (s *FileStore) GetByUsageContext(ctx context.Context, usage model.UsageContext) ([]*model.Clause, error) {
	return s.mem.GetByUsageContext(ctx, usage)
}

func (s *FileStore) Search(ctx context.Context, params model.SearchParams) ([]*model.Clause, error) {
	return s.mem.Search(ctx, params)
}

func (s *FileStore) Versions(ctx context.Context, idPrefix string) ([]*model.Clause, error) {
	return s.mem.Versions(ctx, idPrefix)
}

func (s *FileStore) Create(ctx context.Context, c *model.Clause) error {
	if err := s.mem.Create(ctx, c); err != nil {
		return err
	}
	return s.persist()
}

func (s *FileStore) Update(ctx context.Context, id string, patch model.ClausePatch) (*model.Clause, error) {
	updated, err := s.mem.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FileStore) Deactivate(ctx context.Context, id string) error {
	if err := s.mem.Deactivate(ctx, id); err != nil {
		return err
	}
	return s.persist()
}

func (s *FileStore) BulkImport(ctx context.Context, clauses []*model.Clause) (int, error) {
	n, err := s.mem.BulkImport(ctx, clauses)
	if err != nil {
		return n, err
	}
	return n, s.persist()
}

// persist rewrites the whole library atomically (write temp, then rename)
func (s *FileStore) persist() error {
	s.mem.mu.RLock()
	clauses := make([]*model.Clause, 0, len(s.mem.order))
	for _, id := range s.mem.order {
		clauses = append(clauses, s.mem.records[id])
	}
	s.mem.mu.RUnlock()

	data, err := yaml.Marshal(clauses)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "mkdir", Err: err}
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &StorageError{Op: "rename", Err: err}
	}
	return nil
}

// LoadClauses reads a YAML file containing a list of clause records
func LoadClauses(path string) ([]*model.Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clause file: %w", err)
	}
	var clauses []*model.Clause
	if err := yaml.Unmarshal(data, &clauses); err != nil {
		return nil, fmt.Errorf("parse clause file %s: %w", path, err)
	}
	return clauses, nil
}

// LoadRuleSet reads a YAML rule set file
func LoadRuleSet(path string) (*model.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	var rs model.RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set %s: %w", path, err)
	}
	return &rs, nil
}
