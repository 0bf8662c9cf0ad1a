// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with the user-facing error pages,
// so handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the underlying error and renders the server error page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs a client error and renders the bad request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogForbidden logs a denied access attempt and renders the forbidden page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderForbidden(w, r, userMsg, backURL)
}
