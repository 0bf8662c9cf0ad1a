// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler clears the visitor's session.
type Handler struct {
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

func NewHandler(sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Sessions: sm, Log: logger}
}

// HandleLogout ends the session and returns to the global feed.
// POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Warn("sign out failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
