// internal/app/features/errors/render.go
package errors

import "net/http"

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The page you are looking for does not exist."
	}
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "You don't have permission to view this page."
	}
	render(w, r, http.StatusForbidden, "Access denied", msg, backURL)
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	render(w, r, http.StatusUnauthorized, "Sign in required", "Please sign in to continue.", backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	render(w, r, http.StatusInternalServerError, "Server error", msg, backURL)
}
