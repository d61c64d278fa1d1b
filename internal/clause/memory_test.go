package clause

import (
	"context"
	"errors"
	"testing"

	"github.com/artiklo/legato/internal/model"
)

func testClause(id string, category model.Category) *model.Clause {
	return &model.Clause{
		ID:            id,
		Name:          "Test " + id,
		Category:      category,
		Body:          "Madde metni {DEGER}",
		Jurisdiction:  "TR",
		LegalBasis:    []string{"TBK m. 344"},
		Version:       "v1.0",
		Active:        true,
		CreatedBy:     "tester",
		UsageContexts: []model.UsageContext{model.ContextRentDisputePetition},
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := testClause("HEADER_TEST_TR_v1", model.CategoryRentObjection)
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := store.GetByID(ctx, "HEADER_TEST_TR_v1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != c.Name {
		t.Errorf("Name = %q, want %q", got.Name, c.Name)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set on create")
	}

	// Returned record is a copy; mutating it must not touch the store
	got.Body = "mutated"
	again, _ := store.GetByID(ctx, "HEADER_TEST_TR_v1")
	if again.Body == "mutated" {
		t.Error("Expected store to be isolated from caller mutation")
	}
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.GetByID(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_CreateRejectsDuplicateAndInvalid(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := testClause("DUP_TR_v1", model.CategoryRentGeneral)
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	err := store.Create(ctx, c)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationError for duplicate, got %v", err)
	}

	bad := testClause("BAD_TR_v1", "NO_SUCH_CATEGORY")
	if err := store.Create(ctx, bad); err == nil {
		t.Fatal("Expected error for unknown category")
	}

	empty := testClause("EMPTY_TR_v1", model.CategoryRentGeneral)
	empty.Body = ""
	if err := store.Create(ctx, empty); err == nil {
		t.Fatal("Expected error for empty clause text")
	}
}

func TestMemoryStore_DeactivateHidesFromReads(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := testClause("SOFT_DELETE_TR_v1", model.CategoryRentGeneral)
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := store.Deactivate(ctx, c.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := store.GetByID(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected deactivated clause hidden, got %v", err)
	}

	// History queries still see it
	versions, err := store.Versions(ctx, "SOFT_DELETE_TR")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(versions) != 1 || versions[0].Active {
		t.Errorf("Expected one inactive version in history, got %+v", versions)
	}
}

func TestMemoryStore_VersionsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	v1 := testClause("LINEAGE_TR_v1", model.CategoryRentGeneral)
	v1.Active = false
	v2 := testClause("LINEAGE_TR_v2", model.CategoryRentGeneral)
	v2.Version = "v2.0"
	v2.Supersedes = "LINEAGE_TR_v1"

	for _, c := range []*model.Clause{v1, v2} {
		if err := store.Create(ctx, c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	versions, err := store.Versions(ctx, "LINEAGE_TR")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("Expected 2 versions, got %d", len(versions))
	}
	if versions[0].Version != "v2.0" {
		t.Errorf("Expected newest version first, got %s", versions[0].Version)
	}
}

func TestMemoryStore_Search(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := testClause("SEARCH_A_TR_v1", model.CategoryRentObjection)
	a.Body = "fahiş artırım itirazı {ARTIRIM_ORANI}"
	b := testClause("SEARCH_B_TR_v1", model.CategoryRentGeneral)
	b.LegalBasis = []string{"HMK m. 119"}
	for _, c := range []*model.Clause{a, b} {
		if err := store.Create(ctx, c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	byCategory, _ := store.Search(ctx, model.SearchParams{Category: model.CategoryRentObjection})
	if len(byCategory) != 1 || byCategory[0].ID != a.ID {
		t.Errorf("Category search = %+v, want only %s", byCategory, a.ID)
	}

	byText, _ := store.Search(ctx, model.SearchParams{TextQuery: "FAHİŞ"})
	if len(byText) != 1 || byText[0].ID != a.ID {
		t.Errorf("Text search = %+v, want only %s", byText, a.ID)
	}

	byBasis, _ := store.Search(ctx, model.SearchParams{LegalBasis: []string{"HMK m. 119"}})
	if len(byBasis) != 1 || byBasis[0].ID != b.ID {
		t.Errorf("Legal basis search = %+v, want only %s", byBasis, b.ID)
	}
}

func TestMemoryStore_UpdatePatch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	c := testClause("PATCH_TR_v1", model.CategoryRentGeneral)
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newName := "Yeni Ad"
	updated, err := store.Update(ctx, c.ID, model.ClausePatch{Name: &newName})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Name = %q, want %q", updated.Name, newName)
	}
	if updated.Body != c.Body {
		t.Errorf("Expected untouched fields to survive the patch, body = %q", updated.Body)
	}
}

func TestMemoryStore_BulkImportAbortsOnFirstInvalid(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	bad := testClause("BULK_BAD_TR_v1", model.CategoryRentGeneral)
	bad.Name = ""
	clauses := []*model.Clause{
		testClause("BULK_A_TR_v1", model.CategoryRentGeneral),
		bad,
		testClause("BULK_C_TR_v1", model.CategoryRentGeneral),
	}

	count, err := store.BulkImport(ctx, clauses)
	if err == nil {
		t.Fatal("Expected error for invalid record")
	}
	if count != 1 {
		t.Errorf("Expected 1 imported before abort, got %d", count)
	}
	if _, err := store.GetByID(ctx, "BULK_C_TR_v1"); !errors.Is(err, ErrNotFound) {
		t.Error("Expected records after the invalid one to be skipped")
	}
}
