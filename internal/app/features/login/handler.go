// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/authutil"
	"github.com/dalemusser/quillpad/internal/app/system/navigation"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the sign-in page and processes credentials.
type Handler struct {
	DB       *mongo.Database
	Users    *userstore.Store
	Sessions *auth.SessionManager
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Users:    userstore.New(db),
		Sessions: sm,
		Log:      logger,
		ErrLog:   errLog,
	}
}

type loginData struct {
	viewdata.BaseVM
	Username  string
	ReturnURL string
	Error     string
}

// ServeLogin renders the sign-in form.
// GET /login
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := loginData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: navigation.SafeReturnURL(r, ""),
	}
	templates.Render(w, r, "login", data)
}

// HandleLogin checks the submitted credentials and starts a session.
// POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/login")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	returnURL := navigation.SafeReturnURL(r, "")

	reRender := func(msg string) {
		data := loginData{
			BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
			Username:  username,
			ReturnURL: returnURL,
			Error:     msg,
		}
		templates.Render(w, r, "login", data)
	}

	if username == "" || password == "" {
		reRender("Please enter your username and password.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			reRender("Incorrect username or password.")
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to look up user", err, "Sign-in failed. Please try again.", "/login")
		return
	}

	if !authutil.CheckPassword(password, user.PasswordHash) {
		reRender("Incorrect username or password.")
		return
	}

	if err := h.Sessions.SignIn(w, r, &auth.SessionUser{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Name:     user.FullName,
	}); err != nil {
		h.ErrLog.LogServerError(w, r, "failed to start session", err, "Sign-in failed. Please try again.", "/login")
		return
	}

	dest := returnURL
	if dest == "" {
		dest = "/"
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
