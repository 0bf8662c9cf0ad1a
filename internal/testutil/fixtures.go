package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given username.
func (f *Fixtures) CreateUser(ctx context.Context, username, fullName string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		UsernameCI: text.Fold(username),
		FullName:   fullName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateGroup creates a test group with the given slug and title.
func (f *Fixtures) CreateGroup(ctx context.Context, slug, title string) models.Group {
	f.t.Helper()

	group := models.Group{
		ID:          primitive.NewObjectID(),
		Slug:        slug,
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test group description",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}

// CreatePost creates a test post by the given author, optionally filed
// under a group. CreatedAt is backdated by the given offset so tests
// can build candidate sets with a known order.
func (f *Fixtures) CreatePost(ctx context.Context, author models.User, group *models.Group, postText string, createdAgo time.Duration) models.Post {
	f.t.Helper()

	now := time.Now().UTC().Add(-createdAgo)
	post := models.Post{
		ID:             primitive.NewObjectID(),
		Text:           postText,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		AuthorName:     author.FullName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if group != nil {
		post.GroupID = &group.ID
		post.GroupSlug = group.Slug
		post.GroupTitle = group.Title
	}

	if _, err := f.db.Collection("posts").InsertOne(ctx, post); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}

	return post
}

// CreatePosts creates n posts in the given group, newest last, with
// distinct creation times.
func (f *Fixtures) CreatePosts(ctx context.Context, author models.User, group *models.Group, n int) []models.Post {
	f.t.Helper()

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		ago := time.Duration(n-i) * time.Minute
		posts = append(posts, f.CreatePost(ctx, author, group, fmt.Sprintf("Test post #%d", i+1), ago))
	}
	return posts
}

// CreateComment creates a test comment on the given post.
func (f *Fixtures) CreateComment(ctx context.Context, post models.Post, author models.User, commentText string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:             primitive.NewObjectID(),
		PostID:         post.ID,
		Text:           commentText,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		AuthorName:     author.FullName,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("comments").InsertOne(ctx, comment); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}

	return comment
}
