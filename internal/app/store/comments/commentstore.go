// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
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

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("comments")}
}

// EnsureIndexes creates the per-post listing index. Called at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

// ListByPost returns a post's comments oldest first, the order they
// read in on the detail page.
func (s *Store) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	find := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := s.c.Find(ctx, bson.M{"post_id": postID}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

// CountByPost backs the comment count shown on feed cards.
func (s *Store) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"post_id": postID})
}
