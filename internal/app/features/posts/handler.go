// internal/app/features/posts/handler.go
package posts

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	commentstore "github.com/dalemusser/quillpad/internal/app/store/comments"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the post detail, authoring and comment handlers.
type Handler struct {
	DB       *mongo.Database
	Posts    *poststore.Store
	Groups   *groupstore.Store
	Comments *commentstore.Store

	// UploadDir is where attached images are written. Empty disables uploads.
	UploadDir string

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, uploadDir string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Posts:     poststore.New(db),
		Groups:    groupstore.New(db),
		Comments:  commentstore.New(db),
		UploadDir: uploadDir,
		Log:       logger,
		ErrLog:    errLog,
	}
}

// parseForm handles both url-encoded and multipart submissions, since
// the authoring forms carry an optional image.
func parseForm(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadBytes)
	}
	return r.ParseForm()
}
