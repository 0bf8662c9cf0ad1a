package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/quillpad/internal/testutil"
)

func TestStore_CreateAndGetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{
		Slug:        "test-slug",
		Title:       "Test Group",
		Description: "A group for tests",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetBySlug(ctx, "test-slug")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID mismatch: got %v, want %v", found.ID, created.ID)
	}
	if found.Title != "Test Group" {
		t.Errorf("Title = %q", found.Title)
	}
}

func TestStore_GetBySlug_Normalizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Group{Slug: "test-slug", Title: "Test Group"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetBySlug(ctx, "  Test-Slug  ")
	if err != nil {
		t.Fatalf("GetBySlug with untrimmed input failed: %v", err)
	}
	if found.Slug != "test-slug" {
		t.Errorf("Slug = %q", found.Slug)
	}
}

func TestStore_GetBySlug_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "no-such-group")
	if !errors.Is(err, groupstore.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Group{Slug: "test-slug", Title: "First"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Group{Slug: "test-slug", Title: "Second"})
	if !errors.Is(err, groupstore.ErrDuplicateSlug) {
		t.Errorf("err = %v, want ErrDuplicateSlug", err)
	}
}

func TestStore_List_SortedByTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, g := range []models.Group{
		{Slug: "zebra", Title: "Zebra Watchers"},
		{Slug: "alpha", Title: "Alpine Hiking"},
		{Slug: "mid", Title: "Middle Earth"},
	} {
		if _, err := store.Create(ctx, g); err != nil {
			t.Fatalf("Create %q failed: %v", g.Slug, err)
		}
	}

	groups, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("len = %d, want 3", len(groups))
	}
	want := []string{"Alpine Hiking", "Middle Earth", "Zebra Watchers"}
	for i, title := range want {
		if groups[i].Title != title {
			t.Errorf("groups[%d].Title = %q, want %q", i, groups[i].Title, title)
		}
	}
}
