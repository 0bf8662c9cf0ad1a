// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound is the router's fallback for unmatched paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "The page you are looking for does not exist.", "/")
}

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
