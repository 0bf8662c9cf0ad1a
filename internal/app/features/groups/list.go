// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type listData struct {
	viewdata.BaseVM
	Groups []models.Group
}

// ServeList renders the group directory.
// GET /groups
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to list groups", err, "Failed to load groups.", "/")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Groups", "/"),
		Groups: groups,
	}

	templates.Render(w, r, "group_list", data)
}
