// internal/app/features/groups/handler.go
package groups

import (
	uierrors "github.com/dalemusser/quillpad/internal/app/features/errors"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the group directory and group feed pages.
type Handler struct {
	DB     *mongo.Database
	Groups *groupstore.Store
	Posts  *poststore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Groups: groupstore.New(db),
		Posts:  poststore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}
