package commentstore_test

import (
	"testing"

	commentstore "github.com/dalemusser/quillpad/internal/app/store/comments"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/quillpad/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndListByPost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "masha", "Masha Ivanova")
	post := fixtures.CreatePost(ctx, author, nil, "a post worth commenting on", 0)

	first, err := store.Create(ctx, models.Comment{
		PostID:         post.ID,
		Text:           "first!",
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		AuthorName:     author.FullName,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	if _, err := store.Create(ctx, models.Comment{
		PostID:   post.ID,
		Text:     "second",
		AuthorID: author.ID,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	comments, err := store.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len = %d, want 2", len(comments))
	}
	// Oldest first.
	if comments[0].Text != "first!" || comments[1].Text != "second" {
		t.Errorf("order wrong: got %q then %q", comments[0].Text, comments[1].Text)
	}
}

func TestStore_ListByPost_ScopedToPost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "masha", "Masha Ivanova")
	postA := fixtures.CreatePost(ctx, author, nil, "post A", 0)
	postB := fixtures.CreatePost(ctx, author, nil, "post B", 0)

	fixtures.CreateComment(ctx, postA, author, "on A")

	comments, err := store.ListByPost(ctx, postB.ID)
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comment leaked across posts: got %d", len(comments))
	}

	count, err := store.CountByPost(ctx, postA.ID)
	if err != nil {
		t.Fatalf("CountByPost failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountByPost = %d, want 1", count)
	}
}
