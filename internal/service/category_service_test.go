package service

import (
	"errors"
	"testing"
)

func TestCategoryService_CreateDerivesSlug(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	category, err := svc.Create(CategoryInput{Name: "Web Development"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.Slug != "web-development" {
		t.Fatalf("expected derived slug, got %q", category.Slug)
	}
	if !category.IsActive {
		t.Fatal("expected new category to default to active")
	}
}

func TestCategoryService_CreateKeepsExplicitSlug(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	category, err := svc.Create(CategoryInput{Name: "Web Development", Slug: "webdev"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.Slug != "webdev" {
		t.Fatalf("expected explicit slug kept, got %q", category.Slug)
	}
}

func TestCategoryService_CreateInactive(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	inactive := false
	category, err := svc.Create(CategoryInput{Name: "Hidden", IsActive: &inactive})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.IsActive {
		t.Fatal("expected category to be inactive")
	}
}

func TestCategoryService_NameUniqueness(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	if _, err := svc.Create(CategoryInput{Name: "Tech"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "Tech"}); !errors.Is(err, ErrCategoryNameTaken) {
		t.Fatalf("expected ErrCategoryNameTaken, got %v", err)
	}

	other, err := svc.Create(CategoryInput{Name: "Art"})
	if err != nil {
		t.Fatalf("create second category: %v", err)
	}

	// 改名撞到已有分类
	if _, err := svc.Update(other.ID, CategoryInput{Name: "Tech"}); !errors.Is(err, ErrCategoryNameTaken) {
		t.Fatalf("expected ErrCategoryNameTaken on update, got %v", err)
	}

	// 名字不变时更新自身不算冲突
	if _, err := svc.Update(other.ID, CategoryInput{Name: "Art", Description: "visual arts"}); err != nil {
		t.Fatalf("update with own name: %v", err)
	}
}

func TestCategoryService_UpdateRecomputesSlugWhenCleared(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	category, err := svc.Create(CategoryInput{Name: "Old Name", Slug: "custom"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	updated, err := svc.Update(category.ID, CategoryInput{Name: "New Name"})
	if err != nil {
		t.Fatalf("update category: %v", err)
	}
	if updated.Slug != "new-name" {
		t.Fatalf("expected recomputed slug, got %q", updated.Slug)
	}

	kept, err := svc.Update(category.ID, CategoryInput{Name: "New Name", Slug: "pinned"})
	if err != nil {
		t.Fatalf("update category with slug: %v", err)
	}
	if kept.Slug != "pinned" {
		t.Fatalf("expected explicit slug kept, got %q", kept.Slug)
	}
}

func TestCategoryService_ListActiveFiltersAndSorts(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	inactive := false
	if _, err := svc.Create(CategoryInput{Name: "Zebra"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "Alpha"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "Hidden", IsActive: &inactive}); err != nil {
		t.Fatalf("create category: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active categories, got %d", len(active))
	}
	if active[0].Name != "Alpha" || active[1].Name != "Zebra" {
		t.Fatalf("unexpected order: %q, %q", active[0].Name, active[1].Name)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin listing should bypass the active filter, got %d", len(all))
	}
}

func TestCategoryService_GetAndDeleteMissing(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCategoryService(gdb)

	if _, err := svc.Get(777); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := svc.Delete(777); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
