package posts

import (
	"testing"

	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthorizeEdit(t *testing.T) {
	authorID := primitive.NewObjectID()
	post := models.Post{ID: primitive.NewObjectID(), AuthorID: authorID}

	tests := []struct {
		name string
		user *auth.SessionUser
		want editDecision
	}{
		{
			name: "anonymous visitor is sent to sign in",
			user: nil,
			want: editSignIn,
		},
		{
			name: "author is allowed",
			user: &auth.SessionUser{ID: authorID.Hex(), Username: "masha"},
			want: editAllowed,
		},
		{
			name: "signed-in non-author is deflected",
			user: &auth.SessionUser{ID: primitive.NewObjectID().Hex(), Username: "vova"},
			want: editDeflect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorizeEdit(tt.user, post); got != tt.want {
				t.Errorf("authorizeEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorizeEdit_Deterministic(t *testing.T) {
	post := models.Post{ID: primitive.NewObjectID(), AuthorID: primitive.NewObjectID()}
	u := &auth.SessionUser{ID: primitive.NewObjectID().Hex()}

	first := authorizeEdit(u, post)
	for i := 0; i < 5; i++ {
		if got := authorizeEdit(u, post); got != first {
			t.Fatalf("decision changed between calls: %v then %v", first, got)
		}
	}
}
