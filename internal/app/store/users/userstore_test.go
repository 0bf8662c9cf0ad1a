package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/quillpad/internal/testutil"
)

func TestStore_CreateAndGetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Username: "masha",
		FullName: "Masha Ivanova",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByUsername(ctx, "masha")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID mismatch: got %v, want %v", found.ID, created.ID)
	}
	if found.FullName != "Masha Ivanova" {
		t.Errorf("FullName = %q", found.FullName)
	}
}

func TestStore_GetByUsername_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Username: "Masha"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByUsername(ctx, "MASHA")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if found.Username != "Masha" {
		t.Errorf("Username = %q, want original casing preserved", found.Username)
	}
}

func TestStore_GetByUsername_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByUsername(ctx, "nobody")
	if !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_Create_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	if _, err := store.Create(ctx, models.User{Username: "masha"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.User{Username: "MASHA"})
	if !errors.Is(err, userstore.ErrDuplicateUsername) {
		t.Errorf("err = %v, want ErrDuplicateUsername", err)
	}
}
