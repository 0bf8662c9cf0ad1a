// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a single authored entry.
//
// NOTE:
//   - AuthorID is set at creation and never reassigned; the author's
//     username and display name are denormalized onto the post so feed
//     pages render without a per-post user lookup.
//   - GroupID is optional. When set, GroupSlug/GroupTitle mirror the
//     group document the same way.
//   - CreatedAt is immutable. Feed ordering is created_at descending
//     with _id descending as the tie-breaker, which ObjectIDs make a
//     stable total order.
type Post struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Text string             `bson:"text" json:"text"`

	AuthorID       primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorUsername string             `bson:"author_username" json:"author_username"`
	AuthorName     string             `bson:"author_name" json:"author_name"`

	GroupID    *primitive.ObjectID `bson:"group_id,omitempty" json:"group_id,omitempty"`
	GroupSlug  string              `bson:"group_slug,omitempty" json:"group_slug,omitempty"`
	GroupTitle string              `bson:"group_title,omitempty" json:"group_title,omitempty"`

	// ImagePath is the storage path of an optional attached image,
	// relative to the upload root.
	ImagePath string `bson:"image_path,omitempty" json:"image_path,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
