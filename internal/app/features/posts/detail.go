// internal/app/features/posts/detail.go
package posts

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type detailData struct {
	viewdata.BaseVM
	Post     models.Post
	Comments []models.Comment
	IsAuthor bool
}

// postID parses the {postID} route parameter.
func postID(r *http.Request) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, "postID"))
}

// ServeDetail renders a single post with its comments.
// GET /posts/{postID}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	oid, err := postID(r)
	if err != nil {
		uierrors.RenderNotFound(w, r, "No such post.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := h.Posts.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, poststore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "No such post.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to load post", err, "Failed to load the post.", "/")
		return
	}

	comments, err := h.Comments.ListByPost(ctx, post.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load comments", err, "Failed to load the post.", "/")
		return
	}

	isAuthor := false
	if u, ok := auth.CurrentUser(r); ok {
		isAuthor = u.ID == post.AuthorID.Hex()
	}

	data := detailData{
		BaseVM:   viewdata.NewBaseVM(r, "Post by "+post.AuthorName, "/"),
		Post:     post,
		Comments: comments,
		IsAuthor: isAuthor,
	}

	templates.Render(w, r, "post_detail", data)
}
