// internal/app/features/signup/handler.go
package signup

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/authutil"
	"github.com/dalemusser/quillpad/internal/app/system/forms"
	"github.com/dalemusser/quillpad/internal/app/system/timeouts"
	"github.com/dalemusser/quillpad/internal/app/system/viewdata"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// Handler serves account creation.
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

type signupData struct {
	viewdata.BaseVM
	Username string
	FullName string
	Errors   forms.Errors
}

// ServeSignup renders the account creation form.
// GET /signup
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	data := signupData{
		BaseVM: viewdata.NewBaseVM(r, "Sign up", "/"),
	}
	templates.Render(w, r, "signup", data)
}

// HandleSignup creates the account and signs the new user in.
// POST /signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/signup")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	fullName := strings.TrimSpace(r.FormValue("full_name"))
	password := r.FormValue("password")

	reRender := func(errs forms.Errors) {
		data := signupData{
			BaseVM:   viewdata.NewBaseVM(r, "Sign up", "/"),
			Username: username,
			FullName: fullName,
			Errors:   errs,
		}
		templates.Render(w, r, "signup", data)
	}

	errs := forms.Errors{}
	if _, ferr := forms.RequiredText("username", username); ferr != nil {
		errs.Add(ferr)
	} else if !usernamePattern.MatchString(username) {
		errs.AddMessage("username", "Use 3-30 letters, digits or underscores.")
	}
	_, ferr := forms.RequiredText("full_name", fullName)
	errs.Add(ferr)
	if err := authutil.ValidatePassword(password); err != nil {
		errs.AddMessage("password", authutil.PasswordRules())
	}
	if errs.Has() {
		reRender(errs)
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to hash password", err, "Sign-up failed. Please try again.", "/signup")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateUsername) {
			errs.AddMessage("username", "That username is taken.")
			reRender(errs)
			return
		}
		h.ErrLog.LogServerError(w, r, "failed to create user", err, "Sign-up failed. Please try again.", "/signup")
		return
	}

	if err := h.Sessions.SignIn(w, r, &auth.SessionUser{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Name:     user.FullName,
	}); err != nil {
		// The account exists; let them sign in manually.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
