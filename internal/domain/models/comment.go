// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to exactly one post. PostID and AuthorID are set at
// creation and never change.
type Comment struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	PostID primitive.ObjectID `bson:"post_id" json:"post_id"`
	Text   string             `bson:"text" json:"text"`

	AuthorID       primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorUsername string             `bson:"author_username" json:"author_username"`
	AuthorName     string             `bson:"author_name" json:"author_name"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
