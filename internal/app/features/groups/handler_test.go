package groups_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	"github.com/dalemusser/quillpad/internal/app/features/groups"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	"github.com/dalemusser/quillpad/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return groups.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestServeFeed_UnknownSlug(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/group/no-such-group", nil)
	req = testutil.WithChiURLParam(req, "slug", "no-such-group")
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		handler.ServeFeed(rec, req)
	}()

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleCreate_PersistsGroup(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"title":       {"Cat Pictures"},
		"slug":        {"cat-pictures"},
		"description": {"Pictures of cats"},
	}
	req := testutil.NewFormRequest("/groups", form)
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	testutil.AssertRedirect(t, rec, "/group/cat-pictures")

	store := groupstore.New(fixtures.DB())
	group, err := store.GetBySlug(ctx, "cat-pictures")
	if err != nil {
		t.Fatalf("group not persisted: %v", err)
	}
	if group.Title != "Cat Pictures" {
		t.Errorf("Title = %q", group.Title)
	}
}

func TestHandleCreate_MissingTitle(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"title": {"   "},
		"slug":  {"cat-pictures"},
	}
	req := testutil.NewFormRequest("/groups", form)
	rec := httptest.NewRecorder()

	// Re-rendering the form may panic without a booted template engine;
	// the assertion that matters is that nothing was persisted.
	func() {
		defer func() { _ = recover() }()
		handler.HandleCreate(rec, req)
	}()

	store := groupstore.New(fixtures.DB())
	if _, err := store.GetBySlug(ctx, "cat-pictures"); err == nil {
		t.Error("group was persisted despite a blank title")
	}
}
