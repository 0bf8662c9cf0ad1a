// internal/app/features/posts/create.go
package posts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/forms"
	"github.com/dalemusser/quillpad/internal/app/system/htmlsanitize"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// formData is the shared view model for the create and edit forms.
type formData struct {
	viewdata.BaseVM
	IsEdit    bool
	PostID    string
	Text      string
	GroupSlug string
	ImagePath string
	Groups    []models.Group
	Errors    forms.Errors
}

func (h *Handler) groupChoices(ctx context.Context) ([]models.Group, error) {
	return h.Groups.List(ctx)
}

// resolveGroup maps a submitted slug to a group. An empty slug means
// the post is ungrouped; an unknown slug is a form error, not a 404.
func (h *Handler) resolveGroup(ctx context.Context, slug string) (*models.Group, *forms.FieldError) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	group, err := h.Groups.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			return nil, &forms.FieldError{Field: "group", Message: forms.UnknownGroupMessage}
		}
		return nil, &forms.FieldError{Field: "group", Message: "Failed to look up the group."}
	}
	return &group, nil
}

// ServeCreate renders the new post form.
// GET /create
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	groups, err := h.groupChoices(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load groups", err, "Failed to load the form.", "/")
		return
	}

	data := formData{
		BaseVM: viewdata.NewBaseVM(r, "New post", "/"),
		Groups: groups,
	}
	templates.Render(w, r, "post_form", data)
}

// HandleCreate validates and persists a new post.
// POST /create
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	if err := parseForm(r); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/create")
		return
	}

	rawText := r.FormValue("text")
	groupSlug := strings.TrimSpace(r.FormValue("group"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reRender := func(errs forms.Errors) {
		groups, gerr := h.groupChoices(ctx)
		if gerr != nil {
			h.ErrLog.LogServerError(w, r, "failed to load groups", gerr, "Failed to load the form.", "/")
			return
		}
		data := formData{
			BaseVM:    viewdata.NewBaseVM(r, "New post", "/"),
			Text:      rawText,
			GroupSlug: groupSlug,
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
		h.ErrLog.LogServerError(w, r, "failed to store image", err, "Failed to store the image.", "/create")
		return
	}

	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "bad session user id", err, "Failed to create the post.", "/")
		return
	}

	post := models.Post{
		Text:           htmlsanitize.Sanitize(text),
		AuthorID:       userID,
		AuthorUsername: u.Username,
		AuthorName:     u.Name,
		ImagePath:      imagePath,
	}
	if group != nil {
		post.GroupID = &group.ID
		post.GroupSlug = group.Slug
		post.GroupTitle = group.Title
	}

	if _, err := h.Posts.Create(ctx, post); err != nil {
		h.ErrLog.LogServerError(w, r, "failed to create post", err, "Failed to create the post.", "/create")
		return
	}

	http.Redirect(w, r, "/profile/"+u.Username, http.StatusSeeOther)
}
