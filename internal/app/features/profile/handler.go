// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/paging"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves author profile pages.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Posts  *poststore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Posts:  poststore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type profileData struct {
	viewdata.BaseVM
	Author    models.User
	PostCount int
	IsOwner   bool
	Posts     []models.Post
	Pager     viewdata.Pager
}

// ServeProfile renders an author's page with their posts, newest first.
// GET /profile/{username}
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	author, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "No such user.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to load profile", err, "Failed to load the profile.", "/")
		return
	}

	candidates, err := h.Posts.ListByAuthor(ctx, author.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load author feed", err, "Failed to load the author's posts.", "/")
		return
	}

	count, err := h.Posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to count author posts", err, "Failed to load the author's posts.", "/")
		return
	}

	page := paging.Paginate(candidates, paging.PageSize, paging.ParsePage(r))

	isOwner := false
	if u, ok := auth.CurrentUser(r); ok {
		isOwner = u.ID == author.ID.Hex()
	}

	data := profileData{
		BaseVM:    viewdata.NewBaseVM(r, author.FullName, "/"),
		Author:    author,
		PostCount: int(count),
		IsOwner:   isOwner,
		Posts:     page.Items,
		Pager:     viewdata.NewPager(page, "/profile/"+author.Username),
	}

	templates.Render(w, r, "profile", data)
}
