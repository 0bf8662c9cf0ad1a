// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/quillpad/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound      = errors.New("group not found")
	ErrDuplicateSlug = errors.New("a group with this slug already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// EnsureIndexes creates the unique slug index. Called at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Group{}, ErrNotFound
		}
		return models.Group{}, err
	}
	return g, nil
}

// GetBySlug resolves the public group identifier used in feed URLs.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"slug": strings.ToLower(strings.TrimSpace(slug))}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Group{}, ErrNotFound
		}
		return models.Group{}, err
	}
	return g, nil
}

// List returns all groups sorted by title for the group directory page.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	find := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	g.ID = primitive.NewObjectID()
	g.Slug = strings.ToLower(strings.TrimSpace(g.Slug))
	g.TitleCI = text.Fold(g.Title)
	g.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateSlug
		}
		return models.Group{}, err
	}
	return g, nil
}
