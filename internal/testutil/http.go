package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SessionUserFor converts a fixture user into the context identity the
// auth middleware would have injected.
func SessionUserFor(u models.User) *auth.SessionUser {
	return &auth.SessionUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Name:     u.FullName,
	}
}

// NewFormRequest creates a POST request with an urlencoded form body.
func NewFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertRedirect checks for a 303 redirect to the expected location.
func AssertRedirect(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, expectedLocation string) {
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status code: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", loc, expectedLocation)
	}
}
