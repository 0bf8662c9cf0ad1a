// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Handler renders the static about page.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Serve handles GET /about.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "About", "/"),
	}
	templates.Render(w, r, "about", data)
}
