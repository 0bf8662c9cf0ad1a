package profile_test

import (
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	"github.com/dalemusser/quillpad/internal/app/features/profile"
	"github.com/dalemusser/quillpad/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*profile.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return profile.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestServeProfile_UnknownUser(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/profile/nobody", nil)
	req = testutil.WithChiURLParam(req, "username", "nobody")
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.ServeProfile(rec, req)
	}()
}

func TestServeProfile_WithPosts(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "masha", "Masha Ivanova")
	fixtures.CreatePosts(ctx, author, nil, 3)

	req := httptest.NewRequest("GET", "/profile/masha", nil)
	req = testutil.WithChiURLParam(req, "username", "masha")
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.ServeProfile(rec, req)
	}()
}
