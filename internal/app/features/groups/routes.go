// internal/app/features/groups/routes.go
package groups

import (
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the /groups directory and group creation.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	// Creating a group requires authentication; browsing does not.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
	})

	return r
}

// FeedRoutes serves the public per-group feed at /group/{slug}.
func FeedRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.ServeFeed)
	return r
}
