// internal/app/features/posts/routes.go
package posts

import (
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves /posts/{postID} and its comment and edit endpoints.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/{postID}", h.ServeDetail)
	r.Get("/{postID}/comment", h.RedirectComment)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/{postID}/edit", h.ServeEdit)
		pr.Post("/{postID}/edit", h.HandleEdit)
		pr.Post("/{postID}/comment", h.HandleComment)
	})

	return r
}

// CreateRoutes serves the /create authoring form.
func CreateRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeCreate)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
