// internal/app/features/groups/new.go
package groups

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	"github.com/dalemusser/quillpad/internal/app/system/forms"
	"github.com/dalemusser/quillpad/internal/app/system/navigation"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type newData struct {
	viewdata.BaseVM
	GroupTitle  string
	Slug        string
	Description string
	Errors      forms.Errors
}

// ServeNew renders the "New Group" form.
// GET /groups/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{
		BaseVM: viewdata.NewBaseVM(r, "New group", "/groups"),
	}
	templates.Render(w, r, "group_new", data)
}

// HandleCreate processes the New Group form submission.
// POST /groups
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/groups")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	slug := strings.ToLower(strings.TrimSpace(r.FormValue("slug")))
	description := strings.TrimSpace(r.FormValue("description"))

	reRender := func(errs forms.Errors) {
		data := newData{
			BaseVM:      viewdata.NewBaseVM(r, "New group", "/groups"),
			GroupTitle:  title,
			Slug:        slug,
			Description: description,
			Errors:      errs,
		}
		templates.Render(w, r, "group_new", data)
	}

	errs := forms.Errors{}
	_, ferr := forms.RequiredText("title", title)
	errs.Add(ferr)
	if _, ferr := forms.RequiredText("slug", slug); ferr != nil {
		errs.Add(ferr)
	} else if !slugPattern.MatchString(slug) {
		errs.AddMessage("slug", "Use lowercase letters, digits and hyphens only.")
	}
	if errs.Has() {
		reRender(errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}
	created, err := h.Groups.Create(ctx, group)
	if err != nil {
		if errors.Is(err, groupstore.ErrDuplicateSlug) {
			errs.AddMessage("slug", "A group with this slug already exists.")
			reRender(errs)
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to create group", err, "Failed to create the group.", "/groups")
		return
	}

	ret := navigation.SafeReturnURL(r, "/group/"+created.Slug)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
