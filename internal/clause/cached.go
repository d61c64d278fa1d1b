package clause

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/artiklo/legato/internal/model"
)

// CachedStore is a read-through decorator over any Repository. Assembly hits
// GetByID once per selected clause per run, so a short TTL cache in front of
// a file- or network-backed store removes nearly all repeated reads. Every
// write invalidates, list queries pass through uncached.
type CachedStore struct {
	inner Repository
	cache *gocache.Cache
}

// NewCachedStore wraps a repository with a TTL cache
func NewCachedStore(inner Repository, ttl, cleanup time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: gocache.New(ttl, cleanup),
	}
}

func (s *CachedStore) GetByID(ctx context.Context, id string) (*model.Clause, error) {
	if hit, found := s.cache.Get(id); found {
		return cloneClause(hit.(*model.Clause)), nil
	}
	c, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(id, cloneClause(c))
	return c, nil
}

func (s *CachedStore) GetByCategory(ctx context.Context, category model.Category) ([]*model.Clause, error) {
	return s.inner.GetByCategory(ctx, category)
}

func (s *CachedStore) GetByUsageContext(ctx context.Context, usage model.UsageContext) ([]*model.Clause, error) {
	return s.inner.GetByUsageContext(ctx, usage)
}

func (s *CachedStore) Search(ctx context.Context, params model.SearchParams) ([]*model.Clause, error) {
	return s.inner.Search(ctx, params)
}

func (s *CachedStore) Versions(ctx context.Context, idPrefix string) ([]*model.Clause, error) {
	return s.inner.Versions(ctx, idPrefix)
}

func (s *CachedStore) Create(ctx context.Context, c *model.Clause) error {
	if err := s.inner.Create(ctx, c); err != nil {
		return err
	}
	s.cache.Delete(c.ID)
	return nil
}

func (s *CachedStore) Update(ctx context.Context, id string, patch model.ClausePatch) (*model.Clause, error) {
	updated, err := s.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(id)
	return updated, nil
}

func (s *CachedStore) Deactivate(ctx context.Context, id string) error {
	if err := s.inner.Deactivate(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)
	return nil
}

func (s *CachedStore) BulkImport(ctx context.Context, clauses []*model.Clause) (int, error) {
	n, err := s.inner.BulkImport(ctx, clauses)
	s.cache.Flush()
	return n, err
}
