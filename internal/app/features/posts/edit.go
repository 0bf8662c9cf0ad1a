// internal/app/features/posts/edit.go
package posts

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/forms"
	"github.com/dalemusser/quillpad/internal/app/system/htmlsanitize"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// loadForEdit fetches the post and applies the edit authorization
// decision. It writes the response itself for every outcome except
// editAllowed, so callers just return when ok is false.
func (h *Handler) loadForEdit(w http.ResponseWriter, r *http.Request, ctx context.Context) (post models.Post, ok bool) {
	oid, err := postID(r)
	if err != nil {
		uierrors.RenderNotFound(w, r, "No such post.", "/")
		return post, false
	}

	p, err := h.Posts.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, poststore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "No such post.", "/")
			return post, false
		}
		h.ErrLog.LogServerError(w, r, "failed to load post", err, "Failed to load the post.", "/")
		return post, false
	}

	u, _ := auth.CurrentUser(r)
	switch authorizeEdit(u, p) {
	case editSignIn:
		http.Redirect(w, r, "/login?return="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return post, false
	case editDeflect:
		// Someone else's post: back to its detail page, no error shown.
		http.Redirect(w, r, "/posts/"+p.ID.Hex(), http.StatusSeeOther)
		return post, false
	}

	return p, true
}

// ServeEdit renders the edit form for the post's author.
// GET /posts/{postID}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, ok := h.loadForEdit(w, r, ctx)
	if !ok {
		return
	}

	groups, err := h.groupChoices(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load groups", err, "Failed to load the form.", "/")
		return
	}

	data := formData{
		BaseVM:    viewdata.NewBaseVM(r, "Edit post", "/posts/"+p.ID.Hex()),
		IsEdit:    true,
		PostID:    p.ID.Hex(),
		Text:      p.Text,
		GroupSlug: p.GroupSlug,
		ImagePath: p.ImagePath,
		Groups:    groups,
	}
	templates.Render(w, r, "post_form", data)
}

// HandleEdit validates and saves the author's changes. The author and
// creation time of the post are never touched.
// POST /posts/{postID}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Authorization is decided before the form is parsed or validated,
	// so a non-author submission is deflected without side effects.
	p, ok := h.loadForEdit(w, r, ctx)
	if !ok {
		return
	}

	if err := parseForm(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/posts/"+p.ID.Hex())
		return
	}

	rawText := r.FormValue("text")
	groupSlug := strings.TrimSpace(r.FormValue("group"))

	reRender := func(errs forms.Errors) {
		groups, gerr := h.groupChoices(ctx)
		if gerr != nil {
			h.ErrLog.LogServerError(w, r, "failed to load groups", gerr, "Failed to load the form.", "/")
			return
		}
		data := formData{
			BaseVM:    viewdata.NewBaseVM(r, "Edit post", "/posts/"+p.ID.Hex()),
			IsEdit:    true,
			PostID:    p.ID.Hex(),
			Text:      rawText,
			GroupSlug: groupSlug,
			ImagePath: p.ImagePath,
			Groups:    groups,
			Errors:    errs,
		}
		templates.Render(w, r, "post_form", data)
	}

	errs := forms.Errors{}

	text, ferr := forms.RequiredText("text", rawText)
	errs.Add(ferr)

	group, gferr := h.resolveGroup(ctx, groupSlug)
	errs.Add(gferr)

	if errs.Has() {
		reRender(errs)
		return
	}

	imagePath, err := h.saveImage(r)
	if err != nil {
		if errors.Is(err, errNotAnImage) {
			errs.AddMessage("image", "Please upload a png, jpeg, gif or webp image.")
			reRender(errs)
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to store image", err, "Failed to store the image.", "/posts/"+p.ID.Hex())
		return
	}

	upd := poststore.ContentUpdate{
		Text: htmlsanitize.Sanitize(text),
	}
	if group != nil {
		upd.GroupID = &group.ID
		upd.GroupSlug = group.Slug
		upd.GroupTitle = group.Title
	}
	if imagePath != "" {
		upd.ImagePath = imagePath
		upd.SetImage = true
	}

	if err := h.Posts.UpdateContent(ctx, p.ID, upd); err != nil {
		h.ErrLog.LogServerError(w, r, "failed to update post", err, "Failed to save the post.", "/posts/"+p.ID.Hex())
		return
	}

	http.Redirect(w, r, "/posts/"+p.ID.Hex(), http.StatusSeeOther)
}
