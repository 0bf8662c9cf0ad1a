package login_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	"github.com/dalemusser/quillpad/internal/app/features/login"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/quillpad/internal/app/system/authutil"
	"github.com/dalemusser/quillpad/internal/domain/models"
	"github.com/dalemusser/quillpad/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*login.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "quillpad_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return login.NewHandler(db, sm, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func createAccount(t *testing.T, fixtures *testutil.Fixtures, username, password string) models.User {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	store := userstore.New(fixtures.DB())
	user, err := store.Create(ctx, models.User{
		Username:     username,
		FullName:     "Test User",
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("Create user failed: %v", err)
	}
	return user
}

func TestHandleLogin_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	createAccount(t, fixtures, "masha", "correct horse battery")

	form := url.Values{
		"username": {"masha"},
		"password": {"correct horse battery"},
	}
	req := testutil.NewFormRequest("/login", form)
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	testutil.AssertRedirect(t, rec, "/")
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLogin_HonorsReturnURL(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	createAccount(t, fixtures, "masha", "correct horse battery")

	form := url.Values{
		"username": {"masha"},
		"password": {"correct horse battery"},
		"return":   {"/create"},
	}
	req := testutil.NewFormRequest("/login", form)
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	testutil.AssertRedirect(t, rec, "/create")
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	createAccount(t, fixtures, "masha", "correct horse battery")

	form := url.Values{
		"username": {"masha"},
		"password": {"wrong"},
	}
	req := testutil.NewFormRequest("/login", form)
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.HandleLogin(rec, req)
	}()

	if len(rec.Result().Cookies()) != 0 {
		t.Error("session cookie set for a failed sign-in")
	}
}

func TestHandleLogin_UnknownUser(t *testing.T) {
	handler, _ := newTestHandler(t)

	form := url.Values{
		"username": {"nobody"},
		"password": {"whatever"},
	}
	req := testutil.NewFormRequest("/login", form)
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.HandleLogin(rec, req)
	}()

	if len(rec.Result().Cookies()) != 0 {
		t.Error("session cookie set for an unknown user")
	}
}
