// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"github.com/dalemusser/quillpad/internal/app/system/paging"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the global feed.
type Handler struct {
	DB     *mongo.Database
	Posts  *poststore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Posts:  poststore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type feedData struct {
	viewdata.BaseVM
	Posts []models.Post
	Pager viewdata.Pager
}

// ServeFeed renders the global feed, newest posts first.
// GET /
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	candidates, err := h.Posts.ListAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load global feed", err, "Failed to load the feed.", "/")
		return
	}

	page := paging.Paginate(candidates, paging.PageSize, paging.ParsePage(r))

	data := feedData{
		BaseVM: viewdata.NewBaseVM(r, "Latest posts", "/"),
		Posts:  page.Items,
		Pager:  viewdata.NewPager(page, "/"),
	}

	templates.Render(w, r, "home", data)
}
