// internal/app/features/groups/feed.go
package groups

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	"github.com/dalemusser/quillpad/internal/app/system/paging"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type feedData struct {
	viewdata.BaseVM
	Group     models.Group
	PostCount int
	Posts     []models.Post
	Pager     viewdata.Pager
}

// ServeFeed renders one group's posts, newest first.
// GET /group/{slug}
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	group, err := h.Groups.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, groupstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "No such group.", "/groups")
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to load group", err, "Failed to load the group.", "/groups")
		return
	}

	candidates, err := h.Posts.ListByGroup(ctx, group.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load group feed", err, "Failed to load the group's posts.", "/groups")
		return
	}

	count, err := h.Posts.CountByGroup(ctx, group.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to count group posts", err, "Failed to load the group's posts.", "/groups")
		return
	}

	page := paging.Paginate(candidates, paging.PageSize, paging.ParsePage(r))

	data := feedData{
		BaseVM:    viewdata.NewBaseVM(r, group.Title, "/groups"),
		Group:     group,
		PostCount: int(count),
		Posts:     page.Items,
		Pager:     viewdata.NewPager(page, "/group/"+group.Slug),
	}

	templates.Render(w, r, "group_feed", data)
}
