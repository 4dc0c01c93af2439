package modeltest

import (
	"testing"

	"warehouse.GO/core/cache"
	entity "warehouse.GO/model/entity"
	categoryRepo "warehouse.GO/model/repository/category"
)

func seedTree(t *testing.T, repo *categoryRepo.CategoryRepository) (root, mid, leaf, other entity.Category) {
	t.Helper()
	root = entity.Category{Name: "Hardware"}
	if err := repo.Create(&root); err != nil {
		t.Fatalf("create root: %v", err)
	}
	mid = entity.Category{Name: "Fasteners", ParentID: &root.ID}
	if err := repo.Create(&mid); err != nil {
		t.Fatalf("create mid: %v", err)
	}
	leaf = entity.Category{Name: "Bolts", ParentID: &mid.ID}
	if err := repo.Create(&leaf); err != nil {
		t.Fatalf("create leaf: %v", err)
	}
	other = entity.Category{Name: "Paint"}
	if err := repo.Create(&other); err != nil {
		t.Fatalf("create other: %v", err)
	}
	return
}

func TestCategoryRepository_DescendantIDs(t *testing.T) {
	db := testDB(t)
	cache.GetInstance().DeleteByTag("category_tree")
	repo := categoryRepo.NewCategoryRepository(db)
	root, mid, leaf, other := seedTree(t, repo)

	ids, err := repo.DescendantIDs(root.ID)
	if err != nil {
		t.Fatalf("DescendantIDs: %v", err)
	}
	want := map[uint]bool{root.ID: true, mid.ID: true, leaf.ID: true}
	if len(ids) != 3 {
		t.Fatalf("DescendantIDs: got %v, want 3 ids", ids)
	}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("DescendantIDs: unexpected id %d", id)
		}
		if id == other.ID {
			t.Errorf("DescendantIDs: sibling tree leaked in")
		}
	}

	ids, err = repo.DescendantIDs(leaf.ID)
	if err != nil {
		t.Fatalf("DescendantIDs leaf: %v", err)
	}
	if len(ids) != 1 || ids[0] != leaf.ID {
		t.Errorf("DescendantIDs leaf: got %v, want [%d]", ids, leaf.ID)
	}
}

func TestCategoryRepository_DescendantIDsCacheInvalidation(t *testing.T) {
	db := testDB(t)
	cache.GetInstance().DeleteByTag("category_tree")
	repo := categoryRepo.NewCategoryRepository(db)
	root, _, _, _ := seedTree(t, repo)

	before, err := repo.DescendantIDs(root.ID)
	if err != nil {
		t.Fatalf("DescendantIDs: %v", err)
	}

	// A new child must show up despite the cached walk.
	extra := entity.Category{Name: "Screws", ParentID: &root.ID}
	if err := repo.Create(&extra); err != nil {
		t.Fatalf("create extra: %v", err)
	}
	after, err := repo.DescendantIDs(root.ID)
	if err != nil {
		t.Fatalf("DescendantIDs after create: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("DescendantIDs not refreshed: before %v, after %v", before, after)
	}
}

func TestCategoryRepository_DeleteReparentsChildren(t *testing.T) {
	db := testDB(t)
	cache.GetInstance().DeleteByTag("category_tree")
	repo := categoryRepo.NewCategoryRepository(db)
	root, mid, leaf, _ := seedTree(t, repo)

	if err := repo.Delete(mid.ID); err != nil {
		t.Fatalf("delete mid: %v", err)
	}
	got, err := repo.FindByID(leaf.ID)
	if err != nil {
		t.Fatalf("reload leaf: %v", err)
	}
	if got.ParentID == nil || *got.ParentID != root.ID {
		t.Errorf("leaf parent = %v, want %d", got.ParentID, root.ID)
	}
}
