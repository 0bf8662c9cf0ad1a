// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/quillpad/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("post not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// EnsureIndexes creates the feed and filter indexes. Called at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}

// feedSort is the canonical feed order: newest first, ObjectID as the
// tie-breaker so the order is total even for identical timestamps.
func feedSort() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}
	return p, nil
}

// ListAll returns every post in feed order (the global feed candidate set).
func (s *Store) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, bson.M{})
}

// ListByGroup returns a group's posts in feed order.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Post, error) {
	return s.list(ctx, bson.M{"group_id": groupID})
}

// ListByAuthor returns an author's posts in feed order.
func (s *Store) ListByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	return s.list(ctx, bson.M{"author_id": authorID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cur, err := s.c.Find(ctx, filter, feedSort())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create persists a new post. The author fields and CreatedAt are fixed
// here for the lifetime of the post; only UpdateContent may touch the
// document afterwards.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// ContentUpdate carries the mutable fields of a post. Author and
// CreatedAt are deliberately absent.
type ContentUpdate struct {
	Text       string
	GroupID    *primitive.ObjectID
	GroupSlug  string
	GroupTitle string

	// ImagePath replaces the stored image only when SetImage is true,
	// so an edit without a new upload keeps the existing attachment.
	ImagePath string
	SetImage  bool
}

// UpdateContent mutates a post's text/group/image in place.
func (s *Store) UpdateContent(ctx context.Context, id primitive.ObjectID, upd ContentUpdate) error {
	set := bson.M{
		"text":       upd.Text,
		"updated_at": time.Now().UTC(),
	}
	unset := bson.M{}

	if upd.GroupID != nil {
		set["group_id"] = *upd.GroupID
		set["group_slug"] = upd.GroupSlug
		set["group_title"] = upd.GroupTitle
	} else {
		unset["group_id"] = ""
		unset["group_slug"] = ""
		unset["group_title"] = ""
	}

	if upd.SetImage {
		if upd.ImagePath != "" {
			set["image_path"] = upd.ImagePath
		} else {
			unset["image_path"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err := s.c.UpdateByID(ctx, id, update)
	return err
}

// CountByAuthor backs the profile page header.
func (s *Store) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"author_id": authorID})
}

// CountByGroup backs the group page header.
func (s *Store) CountByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"group_id": groupID})
}
