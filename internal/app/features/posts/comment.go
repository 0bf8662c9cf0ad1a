// internal/app/features/posts/comment.go
package posts

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/forms"
	"github.com/dalemusser/quillpad/internal/app/system/htmlsanitize"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleComment appends a comment to a post. Whatever happens, the
// visitor ends up back on the post's detail page; a blank comment is
// simply not persisted.
// POST /posts/{postID}/comment
func (h *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	oid, err := postID(r)
	if err != nil {
		uierrors.RenderNotFound(w, r, "No such post.", "/")
		return
	}
	detailURL := "/posts/" + oid.Hex()

	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
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

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", detailURL)
		return
	}

	text, ferr := forms.RequiredText("text", r.FormValue("text"))
	if ferr != nil {
		// Nothing to save; land back on the post.
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "bad session user id", err, "Failed to save the comment.", detailURL)
		return
	}

	comment := models.Comment{
		PostID:         post.ID,
		Text:           htmlsanitize.Sanitize(text),
		AuthorID:       userID,
		AuthorUsername: u.Username,
		AuthorName:     u.Name,
	}
	if _, err := h.Comments.Create(ctx, comment); err != nil {
		h.ErrLog.LogServerError(w, r, "failed to save comment", err, "Failed to save the comment.", detailURL)
		return
	}

	http.Redirect(w, r, detailURL, http.StatusSeeOther)
}

// RedirectComment handles a bare GET of the comment endpoint by sending
// the visitor to the post's detail page.
// GET /posts/{postID}/comment
func (h *Handler) RedirectComment(w http.ResponseWriter, r *http.Request) {
	oid, err := postID(r)
	if err != nil {
		uierrors.RenderNotFound(w, r, "No such post.", "/")
		return
	}
	http.Redirect(w, r, "/posts/"+oid.Hex(), http.StatusSeeOther)
}
