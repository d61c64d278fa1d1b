package clause

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artiklo/legato/internal/model"
)

// MemoryStore is the in-memory Repository. It is the reference
// implementation and the test double for everything above it.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.Clause
	order   []string // insertion order, keeps listings stable
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*model.Clause)}
}

// GetByID returns the active clause with the given id
func (s *MemoryStore) GetByID(_ context.Context, id string) (*model.Clause, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.records[id]
	if !ok || !c.Active {
		return nil, ErrNotFound
	}
	return cloneClause(c), nil
}

// GetByCategory returns active clauses in a category, newest version first
func (s *MemoryStore) GetByCategory(_ context.Context, category model.Category) ([]*model.Clause, error) {
	return s.collect(func(c *model.Clause) bool {
		return c.Active && c.Category == category
	}), nil
}

// GetByUsageContext returns active clauses approved for a document type
func (s *MemoryStore) GetByUsageContext(_ context.Context, usage model.UsageContext) ([]*model.Clause, error) {
	return s.collect(func(c *model.Clause) bool {
		return c.Active && c.UsedIn(usage)
	}), nil
}

// Search filters clauses by the given params. ActiveOnly is the default;
// history queries must set IncludeInactive.
func (s *MemoryStore) Search(_ context.Context, params model.SearchParams) ([]*model.Clause, error) {
	query := strings.ToLower(params.TextQuery)
	return s.collect(func(c *model.Clause) bool {
		if !params.IncludeInactive && !c.Active {
			return false
		}
		if params.Category != "" && c.Category != params.Category {
			return false
		}
		if params.UsageContext != "" && !c.UsedIn(params.UsageContext) {
			return false
		}
		if query != "" && !matchesText(c, query) {
			return false
		}
		if len(params.LegalBasis) > 0 && !overlaps(c.LegalBasis, params.LegalBasis) {
			return false
		}
		return true
	}), nil
}

// Versions returns every record (active or not) whose id starts with the
// given lineage prefix, newest version first.
func (s *MemoryStore) Versions(_ context.Context, idPrefix string) ([]*model.Clause, error) {
	matches := s.collect(func(c *model.Clause) bool {
		return strings.HasPrefix(c.ID, idPrefix)
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Version > matches[j].Version
	})
	return matches, nil
}

// Create inserts a new clause record
func (s *MemoryStore) Create(_ context.Context, c *model.Clause) error {
	if err := Validate(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[c.ID]; exists {
		return &ValidationError{ClauseID: c.ID, Problems: []string{"clause_id already exists"}}
	}
	stored := cloneClause(c)
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.records[c.ID] = stored
	s.order = append(s.order, c.ID)
	return nil
}

// Update applies a patch to an existing record
func (s *MemoryStore) Update(_ context.Context, id string, patch model.ClausePatch) (*model.Clause, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyPatch(c, patch)
	c.UpdatedAt = time.Now().UTC()
	return cloneClause(c), nil
}

// Deactivate soft-deletes a clause. The record stays for version history.
func (s *MemoryStore) Deactivate(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	c.Active = false
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// BulkImport inserts a batch of clauses, validating each. Returns the number
// imported; the first invalid record aborts the remainder.
func (s *MemoryStore) BulkImport(ctx context.Context, clauses []*model.Clause) (int, error) {
	for i, c := range clauses {
		if err := s.Create(ctx, c); err != nil {
			return i, err
		}
	}
	return len(clauses), nil
}

// collect returns matching clauses ordered by category, then descending
// version, then insertion order.
func (s *MemoryStore) collect(match func(*model.Clause) bool) []*model.Clause {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Clause
	for _, id := range s.order {
		c := s.records[id]
		if match(c) {
			out = append(out, cloneClause(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Version > out[j].Version
	})
	return out
}

func matchesText(c *model.Clause, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(c.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(c.Body), loweredQuery) ||
		strings.Contains(strings.ToLower(c.Description), loweredQuery)
}

func overlaps(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func applyPatch(c *model.Clause, patch model.ClausePatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Category != nil {
		c.Category = *patch.Category
	}
	if patch.Body != nil {
		c.Body = *patch.Body
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.LegalBasis != nil {
		c.LegalBasis = append([]string(nil), patch.LegalBasis...)
	}
	if patch.LegalReferences != nil {
		c.LegalReferences = append([]string(nil), patch.LegalReferences...)
	}
	if patch.Version != nil {
		c.Version = *patch.Version
	}
	if patch.Active != nil {
		c.Active = *patch.Active
	}
	if patch.Supersedes != nil {
		c.Supersedes = *patch.Supersedes
	}
	if patch.ReviewedBy != nil {
		c.ReviewedBy = *patch.ReviewedBy
	}
	if patch.ApprovedBy != nil {
		c.ApprovedBy = *patch.ApprovedBy
	}
	if patch.UsageContexts != nil {
		c.UsageContexts = append([]model.UsageContext(nil), patch.UsageContexts...)
	}
	if patch.RequiredVariables != nil {
		c.RequiredVariables = append([]string(nil), patch.RequiredVariables...)
	}
	if patch.OptionalVariables != nil {
		c.OptionalVariables = append([]string(nil), patch.OptionalVariables...)
	}
	if patch.DisplayConditions != nil {
		c.DisplayConditions = append([]model.Condition(nil), patch.DisplayConditions...)
	}
	if patch.DependencyClauses != nil {
		c.DependencyClauses = append([]string(nil), patch.DependencyClauses...)
	}
}

func cloneClause(c *model.Clause) *model.Clause {
	cp := *c
	cp.LegalBasis = append([]string(nil), c.LegalBasis...)
	cp.LegalReferences = append([]string(nil), c.LegalReferences...)
	cp.UsageContexts = append([]model.UsageContext(nil), c.UsageContexts...)
	cp.RequiredVariables = append([]string(nil), c.RequiredVariables...)
	cp.OptionalVariables = append([]string(nil), c.OptionalVariables...)
	cp.DisplayConditions = append([]model.Condition(nil), c.DisplayConditions...)
	cp.DependencyClauses = append([]string(nil), c.DependencyClauses...)
	return &cp
}
