// Package clause stores and queries the versioned legal clause library.
//
// The repository holds no business logic: it answers lookups by id, category
// and usage context, supports free-text search, and applies authoring writes.
// Deletion is always soft: the Active flag flips and history is never lost,
// so clause lineages stay reconstructible for audits.
package clause

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artiklo/legato/internal/model"
)

// ErrNotFound reports a clause id with no active record
var ErrNotFound = errors.New("clause not found")

// ValidationError reports a malformed clause at authoring/import time
type ValidationError struct {
	ClauseID string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid clause %q: %s", e.ClauseID, strings.Join(e.Problems, "; "))
}

// StorageError reports a backing-store failure (I/O, transport)
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("clause store %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Repository is the storage contract for clause records. Reads return active
// clauses only; Versions and SearchParams.IncludeInactive override that for
// history queries. Implementations must be safe for concurrent readers.
type Repository interface {
	GetByID(ctx context.Context, id string) (*model.Clause, error)
	GetByCategory(ctx context.Context, category model.Category) ([]*model.Clause, error)
	GetByUsageContext(ctx context.Context, usage model.UsageContext) ([]*model.Clause, error)
	Search(ctx context.Context, params model.SearchParams) ([]*model.Clause, error)
	Versions(ctx context.Context, idPrefix string) ([]*model.Clause, error)

	Create(ctx context.Context, c *model.Clause) error
	Update(ctx context.Context, id string, patch model.ClausePatch) (*model.Clause, error)
	Deactivate(ctx context.Context, id string) error
	BulkImport(ctx context.Context, clauses []*model.Clause) (int, error)
}

// Validate checks a clause record before insert
func Validate(c *model.Clause) error {
	var problems []string
	if c.ID == "" {
		problems = append(problems, "clause_id is required")
	}
	if c.Name == "" {
		problems = append(problems, "clause_name is required")
	}
	if c.Body == "" {
		problems = append(problems, "clause_text is required")
	}
	if !c.Category.Valid() {
		problems = append(problems, fmt.Sprintf("unknown clause_category %q", c.Category))
	}
	if c.Version == "" {
		problems = append(problems, "version is required")
	}
	if len(c.UsageContexts) == 0 {
		problems = append(problems, "at least one usage_context is required")
	}
	for _, u := range c.UsageContexts {
		if !u.Valid() {
			problems = append(problems, fmt.Sprintf("unknown usage_context %q", u))
		}
	}
	for i, cond := range c.DisplayConditions {
		if cond.Field == "" {
			problems = append(problems, fmt.Sprintf("display_conditions[%d]: field is required", i))
		}
		if !cond.Operator.Valid() {
			problems = append(problems, fmt.Sprintf("display_conditions[%d]: unknown operator %q", i, cond.Operator))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{ClauseID: c.ID, Problems: problems}
	}
	return nil
}
