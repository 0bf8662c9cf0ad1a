// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a named collection posts can be filed under.
//
// NOTE:
//   - Slug is the stable public identifier used in feed URLs and is
//     unique across the site.
//   - Groups are never deleted; posts keep a valid group reference for
//     their whole lifetime.
type Group struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"title_ci"`
	Description string             `bson:"description" json:"description"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
