package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager("0123456789abcdef0123456789abcdef", "quillpad-test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := NewSessionManager("", "name", "", false, zap.NewNop())
	if err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestCurrentUser_Anonymous(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, ok := CurrentUser(r); ok {
		t.Error("CurrentUser on bare request should report not found")
	}
}

func TestWithTestUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = WithTestUser(r, &SessionUser{ID: "abc", Username: "masha", Name: "Masha"})

	u, ok := CurrentUser(r)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.Username != "masha" {
		t.Errorf("Username = %q, want %q", u.Username, "masha")
	}
}

func TestRequireSignedIn_RedirectsAnonymousWithReturn(t *testing.T) {
	sm := newTestManager(t)

	var reached bool
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	r := httptest.NewRequest("GET", "/create", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if reached {
		t.Error("handler ran for anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got, want := rec.Header().Get("Location"), "/login?return=%2Fcreate"; got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestRequireSignedIn_PassesSignedIn(t *testing.T) {
	sm := newTestManager(t)

	var reached bool
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	r := WithTestUser(httptest.NewRequest("GET", "/create", nil), &SessionUser{ID: "abc"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if !reached {
		t.Error("handler did not run for signed-in request")
	}
}

func TestSignIn_LoadSessionUser_Roundtrip(t *testing.T) {
	sm := newTestManager(t)

	// Sign in and capture the cookie.
	signInReq := httptest.NewRequest("POST", "/login", nil)
	signInRec := httptest.NewRecorder()
	if err := sm.SignIn(signInRec, signInReq, &SessionUser{ID: "user-1"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := signInRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("SignIn set no cookie")
	}

	// Replay the cookie through the middleware.
	var got *SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), next)

	if got == nil {
		t.Fatal("no user loaded from session cookie")
	}
	if got.ID != "user-1" {
		t.Errorf("ID = %q, want %q", got.ID, "user-1")
	}
}

func TestSignOut_ClearsSession(t *testing.T) {
	sm := newTestManager(t)

	signInReq := httptest.NewRequest("POST", "/login", nil)
	signInRec := httptest.NewRecorder()
	if err := sm.SignIn(signInRec, signInReq, &SessionUser{ID: "user-1"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	outReq := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range signInRec.Result().Cookies() {
		outReq.AddCookie(c)
	}
	outRec := httptest.NewRecorder()
	if err := sm.SignOut(outRec, outReq); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	var got *SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range outRec.Result().Cookies() {
		next.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), next)

	if got != nil {
		t.Errorf("user still present after sign-out: %+v", got)
	}
}
