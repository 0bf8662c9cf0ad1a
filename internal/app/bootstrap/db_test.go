package bootstrap

import (
	"errors"
	"testing"

	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/quillpad/internal/testutil"
	"go.uber.org/zap"
)

func TestEnsureSchema_CreatesUniqueIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	users := userstore.New(db)
	if _, err := users.Create(ctx, models.User{Username: "masha"}); err != nil {
		t.Fatalf("first user Create failed: %v", err)
	}
	if _, err := users.Create(ctx, models.User{Username: "Masha"}); !errors.Is(err, userstore.ErrDuplicateUsername) {
		t.Errorf("duplicate username err = %v, want ErrDuplicateUsername", err)
	}

	groups := groupstore.New(db)
	if _, err := groups.Create(ctx, models.Group{Slug: "cats", Title: "Cats"}); err != nil {
		t.Fatalf("first group Create failed: %v", err)
	}
	if _, err := groups.Create(ctx, models.Group{Slug: "cats", Title: "More Cats"}); !errors.Is(err, groupstore.ErrDuplicateSlug) {
		t.Errorf("duplicate slug err = %v, want ErrDuplicateSlug", err)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}

	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
			t.Fatalf("EnsureSchema run %d failed: %v", i+1, err)
		}
	}
}
